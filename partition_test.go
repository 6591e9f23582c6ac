package stateminimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPartition(t *testing.T) {
	a := mustBuild(t, []string{"a"}, []string{"w", "x", "y", "z"}, nil)

	tests := []struct {
		name   string
		marked [][2]int
		want   [][]int
	}{
		{
			name: "nothing marked",
			want: [][]int{{0, 1, 2, 3}},
		},
		{
			name:   "everything marked",
			marked: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
			want:   [][]int{{0}, {1}, {2}, {3}},
		},
		{
			name:   "last state alone",
			marked: [][2]int{{0, 3}, {1, 3}, {2, 3}},
			want:   [][]int{{0, 1, 2}, {3}},
		},
		{
			name:   "interleaved classes",
			marked: [][2]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}},
			want:   [][]int{{0, 2}, {1, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewPairSet(a.GetNumStates())
			for _, p := range tt.marked {
				set.Add(p[0], p[1])
			}
			groups := buildPartition(a, set)

			got := make([][]int, 0, len(groups))
			for i, g := range groups {
				assert.Equal(t, i, g.ID)
				got = append(got, g.IDs())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateGroup(t *testing.T) {
	g := &StateGroup{ID: 2, States: []State{{ID: 1, Name: "x"}, {ID: 4}}}
	assert.Equal(t, []int{1, 4}, g.IDs())
	assert.Equal(t, []string{"x", "q4"}, g.Names())
	assert.True(t, g.Contains(4))
	assert.False(t, g.Contains(2))
	assert.Equal(t, "state group: 2 states: x, q4", g.String())
}
