package stateminimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitioner(t *testing.T) {
	alphabet := []string{"a", "b", "c"}

	t.Run("equal symbol sets share a group", func(t *testing.T) {
		p := NewPartitioner(alphabet)
		groups := p.Partition([]State{
			{ID: 0, Transitions: map[string]int{"c": 0, "a": 0}},
			{ID: 1, Transitions: map[string]int{"a": 1, "c": 0}},
			{ID: 2, Transitions: map[string]int{"b": 0}},
			{ID: 3},
		}, false)

		require.Len(t, groups, 3)
		assert.Equal(t, []int{0, 1}, groups[0].States)
		assert.Equal(t, "a,c", groups[0].Key)
		assert.Equal(t, []string{"a", "c"}, groups[0].Symbols())
		assert.Equal(t, []int{2}, groups[1].States)
		assert.Equal(t, "b", groups[1].Key)
		assert.Equal(t, []int{3}, groups[2].States)
		assert.Empty(t, groups[2].Symbols())
		assert.Equal(t, uint(0), groups[2].Signature().Count())

		for i, g := range groups {
			assert.Equal(t, i, g.ID)
		}
	})

	t.Run("ids are never reused across calls", func(t *testing.T) {
		p := NewPartitioner(alphabet)
		first := p.Partition([]State{{ID: 0, Transitions: map[string]int{"a": 0}}}, true)
		second := p.Partition([]State{{ID: 1, Transitions: map[string]int{"a": 1}}}, false)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, 0, first[0].ID)
		assert.Equal(t, 1, second[0].ID)
		assert.True(t, first[0].Final)
		assert.False(t, second[0].Final)
	})

	t.Run("symbols containing the separator", func(t *testing.T) {
		p := NewPartitioner([]string{"a", "b", "a,b"})
		groups := p.Partition([]State{
			{ID: 1, Transitions: map[string]int{"a,b": 1}},
			{ID: 2, Transitions: map[string]int{"a": 1, "b": 1}},
		}, false)

		require.Len(t, groups, 2)
		assert.Equal(t, groups[0].Key, groups[1].Key)
		assert.Equal(t, []string{"a,b"}, groups[0].Symbols())
		assert.Equal(t, []string{"a", "b"}, groups[1].Symbols())
	})

	t.Run("key follows alphabet order", func(t *testing.T) {
		p := NewPartitioner([]string{"z", "y"})
		sig := p.Signature(State{Transitions: map[string]int{"y": 0, "z": 0}})
		assert.Equal(t, "z,y", p.Key(sig))
	})
}

func TestSignatureIndex(t *testing.T) {
	a := ExampleAutomaton()
	idx := NewSignatureIndex(a)

	assert.Len(t, idx.FinalGroups(), 1)
	assert.Len(t, idx.NonFinalGroups(), 2)

	q0, err := idx.GroupOf(0)
	require.NoError(t, err)
	assert.Equal(t, "a,b", q0.Key)
	assert.True(t, q0.Final)

	q1, err := idx.GroupOf(1)
	require.NoError(t, err)
	q4, err := idx.GroupOf(4)
	require.NoError(t, err)
	assert.Equal(t, q1.ID, q4.ID)
	assert.Equal(t, "b", q1.Key)

	q2, err := idx.GroupOf(2)
	require.NoError(t, err)
	q3, err := idx.GroupOf(3)
	require.NoError(t, err)
	assert.Equal(t, q2.ID, q3.ID)
	assert.NotEqual(t, q1.ID, q2.ID)

	_, err = idx.GroupOf(9)
	assert.ErrorIs(t, err, ErrNotFound)

	groups := idx.Groups()
	require.Len(t, groups, 3)
	for i, g := range groups {
		assert.Equal(t, i, g.ID)
	}
}

func TestSignatureGroupsNeverCrossFinality(t *testing.T) {
	a := mustBuild(t, []string{"a"}, []string{"s", "f"}, [][3]string{
		{"s", "a", "f"},
		{"f", "a", "s"},
	}, "f")
	idx := NewSignatureIndex(a)

	gs, err := idx.GroupOf(0)
	require.NoError(t, err)
	gf, err := idx.GroupOf(1)
	require.NoError(t, err)
	assert.Equal(t, gs.Key, gf.Key)
	assert.NotEqual(t, gs.ID, gf.ID)
}

func TestPairSet(t *testing.T) {
	p := NewPairSet(4)
	assert.True(t, p.Add(3, 1))
	assert.False(t, p.Add(1, 3))
	assert.True(t, p.Has(1, 3))
	assert.True(t, p.Has(3, 1))
	assert.False(t, p.Has(1, 1))
	assert.False(t, p.Has(0, 3))
	assert.Equal(t, 1, p.Len())

	assert.Equal(t, Pair{A: 2, B: 5}, NewPair(5, 2))
}
