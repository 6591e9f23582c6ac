package stateminimizer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DefaultDelimiter separates the cells of an automaton table.
const DefaultDelimiter = ';'

type tableOptions struct {
	delimiter rune
}

type TableOption func(o *tableOptions)

// WithDelimiter Sets the cell separator, DefaultDelimiter if unset.
func WithDelimiter(delimiter rune) TableOption {
	return func(o *tableOptions) {
		o.delimiter = delimiter
	}
}

func newTableOptions(options ...TableOption) *tableOptions {
	opts := &tableOptions{delimiter: DefaultDelimiter}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

// ReadTable Parses an automaton table. The header row holds an ignored corner cell, the input
// symbols and a final marker column. Each following row is a state: its name, one cell per
// symbol that is either empty or the name of the target state, and a final marker that is
// non-empty for final states. Ids follow row order, so the first state is the initial one.
func ReadTable(r io.Reader, options ...TableOption) (*Automaton, error) {
	opts := newTableOptions(options...)

	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header needs a state column and a final column", ErrMalformedTable)
	}
	symbols := header[1 : len(header)-1]
	for i, symbol := range symbols {
		symbols[i] = strings.TrimSpace(symbol)
		if symbols[i] == "" {
			return nil, fmt.Errorf("%w: empty input symbol in column %d", ErrMalformedTable, i+2)
		}
	}

	rows = rows[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrMalformedTable)
	}

	b := NewBuilder(symbols...)
	names := make(map[string]struct{}, len(rows))
	for n, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrMalformedTable, n+2, len(row), len(header))
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, fmt.Errorf("%w: row %d has no state name", ErrMalformedTable, n+2)
		}
		if _, ok := names[name]; ok {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrMalformedTable, name)
		}
		names[name] = struct{}{}
		b.AddState(name)
	}

	for _, row := range rows {
		name := strings.TrimSpace(row[0])
		for i, symbol := range symbols {
			target := strings.TrimSpace(row[i+1])
			if target == "" {
				continue
			}
			if _, ok := names[target]; !ok {
				return nil, fmt.Errorf("%w: state %q goes to unknown state %q on %q",
					ErrMalformedTable, name, target, symbol)
			}
			if err := b.AddTransition(name, symbol, target); err != nil {
				// Duplicate header symbols can name two different targets.
				return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
			}
		}
		if strings.TrimSpace(row[len(row)-1]) != "" {
			b.SetFinal(name)
		}
	}

	return b.Finish()
}

// WriteTable Writes a in the format read by ReadTable. States are written by label, so two states
// with the same label are rejected with ErrInvalidAutomaton.
func WriteTable(w io.Writer, a *Automaton, options ...TableOption) error {
	opts := newTableOptions(options...)

	labels := make(map[string]int, len(a.states))
	for _, s := range a.states {
		if prev, ok := labels[s.Label()]; ok {
			return fmt.Errorf("write table: %w: states %d and %d are both labelled %q",
				ErrInvalidAutomaton, prev, s.ID, s.Label())
		}
		labels[s.Label()] = s.ID
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.delimiter

	header := make([]string, 0, len(a.alphabet)+2)
	header = append(header, `States\Input symbols`)
	header = append(header, a.alphabet...)
	header = append(header, "Final state?")

	rows := [][]string{header}
	for _, s := range a.states {
		row := make([]string, 0, len(header))
		row = append(row, s.Label())
		for _, symbol := range a.alphabet {
			cell := ""
			if dest, ok := s.Next(symbol); ok {
				target, err := a.State(dest)
				if err != nil {
					return err
				}
				cell = target.Label()
			}
			row = append(row, cell)
		}
		final := ""
		if a.IsFinal(s.ID) {
			final = "t"
		}
		rows = append(rows, append(row, final))
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
