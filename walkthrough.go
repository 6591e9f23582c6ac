package stateminimizer

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Stage is a step of the walkthrough. Each stage reveals more of the pair table.
type Stage string

const (
	// StageReduced shows the reduced automaton with an empty table.
	StageReduced Stage = "reduced"
	// StageFinalMarked reveals the pairs marked by final status.
	StageFinalMarked Stage = "final_marked"
	// StageSignatureMarked additionally reveals the pairs marked by signature.
	StageSignatureMarked Stage = "signature_marked"
	// StagePropagated reveals the complete table.
	StagePropagated Stage = "propagated"
	// StagePartitioned reveals the equivalence classes.
	StagePartitioned Stage = "partitioned"

	EventNext = "next"
)

var stageOrder = []Stage{StageReduced, StageFinalMarked, StageSignatureMarked, StagePropagated, StagePartitioned}

// Cell is the classification of a table cell at the current stage.
type Cell int

const (
	// CellHidden is a cell not decided at the current stage.
	CellHidden Cell = iota
	// CellUnmarked is a pair of indistinguishable states.
	CellUnmarked
	// CellRed is a pair of a final and a non-final state.
	CellRed
	// CellBlue is a pair with different signatures.
	CellBlue
	// CellPropagated is a pair marked through its successors.
	CellPropagated
)

func (c Cell) String() string {
	switch c {
	case CellUnmarked:
		return "unmarked"
	case CellRed:
		return "red"
	case CellBlue:
		return "blue"
	case CellPropagated:
		return "propagated"
	default:
		return "hidden"
	}
}

// Walkthrough Steps through a finished Result one stage at a time, the way the table is
// presented to a learner.
type Walkthrough struct {
	result *Result
	fsm    *fsm.FSM
	logger *zap.Logger
}

// NewWalkthrough Starts a walkthrough of res at StageReduced.
func NewWalkthrough(res *Result, logger *zap.Logger) *Walkthrough {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Walkthrough{result: res, logger: logger}

	events := make([]fsm.EventDesc, 0, len(stageOrder)-1)
	for i := 1; i < len(stageOrder); i++ {
		events = append(events, fsm.EventDesc{
			Name: EventNext,
			Src:  []string{string(stageOrder[i-1])},
			Dst:  string(stageOrder[i]),
		})
	}

	w.fsm = fsm.NewFSM(
		string(StageReduced),
		fsm.Events(events),
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				w.logger.Debug("walkthrough stage", zap.String("from", e.Src), zap.String("to", e.Dst))
			},
		},
	)
	return w
}

// Stage Returns the current stage.
func (w *Walkthrough) Stage() Stage {
	return Stage(w.fsm.Current())
}

// Done Returns true at the last stage.
func (w *Walkthrough) Done() bool {
	return !w.fsm.Can(EventNext)
}

// Next Advances to the following stage.
func (w *Walkthrough) Next(ctx context.Context) error {
	if w.Done() {
		return ErrWalkthroughDone
	}
	if err := w.fsm.Event(ctx, EventNext); err != nil {
		return fmt.Errorf("advance walkthrough: %w", err)
	}
	return nil
}

func (w *Walkthrough) reached(stage Stage) bool {
	current := w.Stage()
	for _, s := range stageOrder {
		if s == stage {
			return true
		}
		if s == current {
			return false
		}
	}
	return false
}

// Cell Classifies the pair a, b as visible at the current stage.
func (w *Walkthrough) Cell(a, b int) (Cell, error) {
	red, err := w.result.IsMarkedAsRed(a, b)
	if err != nil {
		return CellHidden, err
	}
	blue, err := w.result.IsMarkedAsBlue(a, b)
	if err != nil {
		return CellHidden, err
	}
	marked, err := w.result.IsMarked(a, b)
	if err != nil {
		return CellHidden, err
	}

	switch {
	case red && w.reached(StageFinalMarked):
		return CellRed, nil
	case blue && w.reached(StageSignatureMarked):
		return CellBlue, nil
	case !w.reached(StagePropagated):
		return CellHidden, nil
	case marked:
		return CellPropagated, nil
	default:
		return CellUnmarked, nil
	}
}

// Groups Returns the equivalence classes once StagePartitioned is reached, nil before.
func (w *Walkthrough) Groups() []*StateGroup {
	if !w.reached(StagePartitioned) {
		return nil
	}
	return w.result.Groups()
}
