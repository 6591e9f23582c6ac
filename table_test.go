package stateminimizer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	input := strings.Join([]string{
		`States\Input symbols;a;b;Final state?`,
		"q0;q3;q1;t",
		"q1;;q2;",
		"q2;q0;;",
		"q3;q4;;",
		"q4;;q0;",
		"q5;q0;q0;",
	}, "\n")

	a, err := ReadTable(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, a.Alphabet())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, a.IDs())
	assert.Equal(t, []int{0}, a.FinalIDs())

	initial, err := a.InitialState()
	require.NoError(t, err)
	assert.Equal(t, "q0", initial.Name)

	dest, ok := a.Step(0, "a")
	assert.True(t, ok)
	assert.Equal(t, 3, dest)
	_, ok = a.Step(1, "a")
	assert.False(t, ok)

	res := mustMinimize(t, a)
	assert.False(t, res.Automaton().Has(5), "q5 is unreachable")
}

func TestReadTableDelimiter(t *testing.T) {
	input := "x,a,final\nstart,end,\nend,,yes\n"
	a, err := ReadTable(strings.NewReader(input), WithDelimiter(','))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, a.FinalIDs())
	assert.True(t, Run(a, "a"))
}

func TestReadTableMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "header too short", input: "x\n"},
		{name: "no states", input: "x;a;f\n"},
		{name: "empty symbol", input: "x;;f\ns;;\n"},
		{name: "short row", input: "x;a;f\ns;s\n"},
		{name: "empty name", input: "x;a;f\n;s;\n"},
		{name: "duplicate state", input: "x;a;f\ns;;\ns;;\n"},
		{name: "unknown target", input: "x;a;f\ns;t;\n"},
		{name: "conflicting duplicate symbol", input: "x;a;a;f\ns;s;t;\nt;;;\n"},
		{name: "bad quoting", input: "x;a;f\n\"s;s;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, ExampleAutomaton()))

	want := strings.Join([]string{
		`States\Input symbols;a;b;Final state?`,
		"q0;q3;q1;t",
		"q1;;q2;",
		"q2;q0;;",
		"q3;q4;;",
		"q4;;q0;",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, string(ExampleTable()))

	a, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, ExampleAutomaton().States(), a.States())
	assert.Equal(t, ExampleAutomaton().FinalIDs(), a.FinalIDs())
}

func TestWriteTableLabels(t *testing.T) {
	t.Run("unnamed states", func(t *testing.T) {
		a, err := NewAutomaton([]State{
			{ID: 0, Transitions: map[string]int{"a": 1}},
			{ID: 1},
		}, []string{"a"}, []int{1})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, a))
		assert.Equal(t, "States\\Input symbols;a;Final state?\nq0;q1;\nq1;;t\n", buf.String())
	})

	t.Run("colliding labels", func(t *testing.T) {
		a, err := NewAutomaton([]State{
			{ID: 0, Transitions: map[string]int{"a": 1}},
			{ID: 1, Name: "q0"},
		}, []string{"a"}, []int{1})
		require.NoError(t, err)

		var buf bytes.Buffer
		err = WriteTable(&buf, a)
		assert.ErrorIs(t, err, ErrInvalidAutomaton)
		assert.Empty(t, buf.String())
	})
}
