package stateminimizer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// SignatureGroup A set of states sharing the same signature: the set of symbols on which they
// have a defined transition. Groups are only ever formed inside the final or the non-final
// states, never across them.
type SignatureGroup struct {
	// ID is unique across both subsets of one run.
	ID int

	// Key lists the symbols of the signature in alphabet order, separated by commas. It is for
	// display only: a symbol may itself contain a comma.
	Key string

	Final  bool
	States []int

	signature *bitset.BitSet
	symbols   []string
}

// Symbols Returns the symbols of the group's signature in alphabet order.
func (g *SignatureGroup) Symbols() []string {
	return slices.Clone(g.symbols)
}

// Signature Returns a copy of the signature bitset over alphabet positions.
func (g *SignatureGroup) Signature() *bitset.BitSet {
	return g.signature.Clone()
}

func (g *SignatureGroup) String() string {
	return fmt.Sprintf("signature group: %d {%s} states: %v", g.ID, g.Key, g.States)
}

// Partitioner Groups states by signature. Group ids increase monotonically over every call to
// Partition made on the same Partitioner.
type Partitioner struct {
	alphabet []string
	symbols  map[string]int
	nextID   int
}

func NewPartitioner(alphabet []string) *Partitioner {
	symbols := make(map[string]int, len(alphabet))
	for i, symbol := range alphabet {
		symbols[symbol] = i
	}
	return &Partitioner{alphabet: alphabet, symbols: symbols}
}

// Signature Returns the signature of s as a bitset over alphabet positions.
func (p *Partitioner) Signature(s State) *bitset.BitSet {
	sig := bitset.New(uint(len(p.alphabet)))
	for symbol := range s.Transitions {
		if i, ok := p.symbols[symbol]; ok {
			sig.Set(uint(i))
		}
	}
	return sig
}

// SymbolsOf Returns the symbols of sig in alphabet order.
func (p *Partitioner) SymbolsOf(sig *bitset.BitSet) []string {
	symbols := make([]string, 0, sig.Count())
	for i, ok := sig.NextSet(0); ok; i, ok = sig.NextSet(i + 1) {
		symbols = append(symbols, p.alphabet[i])
	}
	return symbols
}

// Key Formats a signature as its symbols in alphabet order, separated by commas.
func (p *Partitioner) Key(sig *bitset.BitSet) string {
	return strings.Join(p.SymbolsOf(sig), ",")
}

// setKey Identifies a signature by its alphabet positions. Equal sets give equal keys and
// different sets different ones, whatever the symbols look like.
func setKey(sig *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := sig.NextSet(0); ok; i, ok = sig.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte('.')
	}
	return sb.String()
}

// Partition Groups states by signature, ordered by group id. final is recorded on every
// created group.
func (p *Partitioner) Partition(states []State, final bool) []*SignatureGroup {
	bySet := make(map[string]*SignatureGroup)
	groups := make([]*SignatureGroup, 0)
	for _, s := range states {
		sig := p.Signature(s)
		set := setKey(sig)
		if group, ok := bySet[set]; ok {
			group.States = append(group.States, s.ID)
			continue
		}
		group := &SignatureGroup{
			ID:        p.nextID,
			Key:       p.Key(sig),
			Final:     final,
			States:    []int{s.ID},
			signature: sig,
			symbols:   p.SymbolsOf(sig),
		}
		p.nextID++
		bySet[set] = group
		groups = append(groups, group)
	}
	return groups
}

// SignatureIndex Holds the signature groups of the final and of the non-final states.
type SignatureIndex struct {
	dfa      *Automaton
	final    []*SignatureGroup
	nonFinal []*SignatureGroup

	// State id to group, filled from both subsets.
	byState map[int]*SignatureGroup
}

// NewSignatureIndex Partitions the final and the non-final states of a separately.
func NewSignatureIndex(a *Automaton) *SignatureIndex {
	p := NewPartitioner(a.alphabet)
	idx := &SignatureIndex{
		dfa:      a,
		final:    p.Partition(a.FinalStates(), true),
		nonFinal: p.Partition(a.NonFinalStates(), false),
		byState:  make(map[int]*SignatureGroup, a.GetNumStates()),
	}
	for _, group := range idx.Groups() {
		for _, id := range group.States {
			idx.byState[id] = group
		}
	}
	return idx
}

// GroupOf Returns the group holding the state, searched in the subset matching its final status.
func (idx *SignatureIndex) GroupOf(id int) (*SignatureGroup, error) {
	group, ok := idx.byState[id]
	if !ok || group.Final != idx.dfa.IsFinal(id) {
		return nil, fmt.Errorf("%w: state %d has no signature group", ErrNotFound, id)
	}
	return group, nil
}

// Groups Returns all groups ordered by id. Final groups are created first, so they come first.
func (idx *SignatureIndex) Groups() []*SignatureGroup {
	return slices.Concat(idx.final, idx.nonFinal)
}

// FinalGroups Returns the groups of the final states.
func (idx *SignatureIndex) FinalGroups() []*SignatureGroup {
	return slices.Clone(idx.final)
}

// NonFinalGroups Returns the groups of the non-final states.
func (idx *SignatureIndex) NonFinalGroups() []*SignatureGroup {
	return slices.Clone(idx.nonFinal)
}
