package stateminimizer

import (
	"github.com/bits-and-blooms/bitset"
)

// Pair An unordered pair of distinct state ids, normalized so that A < B.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewPair Returns the normalized pair of a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// cell Identifies a pair by the positions of its states in automaton order, i < j.
type cell struct {
	i, j int
}

func newCell(i, j int) cell {
	if i > j {
		i, j = j, i
	}
	return cell{i: i, j: j}
}

// PairSet A symmetric relation over the states of one automaton. Pairs are addressed by
// state position; a bit is kept for every cell of the upper triangle.
type PairSet struct {
	n    int
	bits *bitset.BitSet
}

func NewPairSet(numStates int) *PairSet {
	return &PairSet{
		n:    numStates,
		bits: bitset.New(uint(numStates * numStates)),
	}
}

func (p *PairSet) offset(c cell) uint {
	return uint(c.i*p.n + c.j)
}

// add Adds the cell, returns false if it was already present.
func (p *PairSet) add(c cell) bool {
	off := p.offset(c)
	if p.bits.Test(off) {
		return false
	}
	p.bits.Set(off)
	return true
}

// has Returns true if the cell is present. A state is never paired with itself.
func (p *PairSet) has(c cell) bool {
	if c.i == c.j {
		return false
	}
	return p.bits.Test(p.offset(c))
}

// Add Adds the pair of positions i and j.
func (p *PairSet) Add(i, j int) bool {
	return p.add(newCell(i, j))
}

// Has Returns true if the pair of positions i and j is present, in either order.
func (p *PairSet) Has(i, j int) bool {
	return p.has(newCell(i, j))
}

// Len Returns the number of pairs in the set.
func (p *PairSet) Len() int {
	return int(p.bits.Count())
}
