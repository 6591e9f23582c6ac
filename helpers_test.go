package stateminimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustBuild builds an automaton whose states are named and numbered in the order of names.
func mustBuild(t *testing.T, alphabet []string, names []string, transitions [][3]string, finals ...string) *Automaton {
	t.Helper()
	b := NewBuilder(alphabet...)
	for _, name := range names {
		b.AddState(name)
	}
	for _, tr := range transitions {
		require.NoError(t, b.AddTransition(tr[0], tr[1], tr[2]))
	}
	b.SetFinal(finals...)
	a, err := b.Finish()
	require.NoError(t, err)
	return a
}

func mustMinimize(t *testing.T, a *Automaton) *Result {
	t.Helper()
	res, err := Minimize(a)
	require.NoError(t, err)
	return res
}

func marked(t *testing.T, res *Result, a, b int) bool {
	t.Helper()
	ok, err := res.IsMarked(a, b)
	require.NoError(t, err)
	return ok
}

func groupIDs(res *Result) [][]int {
	ids := make([][]int, 0)
	for _, g := range res.Groups() {
		ids = append(ids, g.IDs())
	}
	return ids
}
