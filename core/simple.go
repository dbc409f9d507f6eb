package core

import (
	"context"

	"github.com/fiking/cascade/bitvec"
)

// CombFunc is user-supplied combinational logic: given the current input
// and state snapshots, it returns the non-blocking updates to latch (keyed
// by the state VId they target) and whether any system task fired.
//
// It must not mutate the snapshots it is given; Simple owns them.
type CombFunc func(in *Input, state *State) (pending map[VId]*bitvec.BitVec, task bool)

// Simple is a minimal non-stub Core: a single CombFunc run to a fixed
// point of one pass per Evaluate call. It exists to pin down that the
// Core contract supports more than the degenerate Stub, using a plain
// interface with two implementations rather than a deeper class
// hierarchy, and without a generated native engine.
type Simple struct {
	comb CombFunc

	input *Input
	state *State

	pending  map[VId]*bitvec.BitVec
	hadTasks bool
	ifc      Interface
}

// NewSimple returns a Simple core driven by comb, reporting each pending
// update to ifc as an output (ifc may be nil if the caller doesn't need
// reporting). Tasks are not reported to ifc; comb's task flag is visible
// only through HadTasks.
func NewSimple(comb CombFunc, ifc Interface) *Simple {
	return &Simple{
		comb:  comb,
		input: NewInput(),
		state: NewState(),
		ifc:   ifc,
	}
}

// GetState returns an owned snapshot of the current registers.
func (s *Simple) GetState() *State { return s.state.Clone() }

// SetState restores registers from snapshot.
func (s *Simple) SetState(st *State) { s.state = st.Clone() }

// GetInput returns an owned snapshot of the current input slots.
func (s *Simple) GetInput() *Input { return s.input.Clone() }

// SetInput replaces all input slots at once.
func (s *Simple) SetInput(in *Input) { s.input = in.Clone() }

// Read writes b into input slot id without triggering evaluation.
func (s *Simple) Read(id VId, b *bitvec.BitVec) {
	s.input.Set(id, b)
}

// Evaluate runs comb once against the current input/state snapshot and
// latches whatever pending updates and task flag it returns.
func (s *Simple) Evaluate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pending, task := s.comb(s.input, s.state)
	s.pending = pending
	s.hadTasks = task
	if s.ifc != nil {
		for id, v := range pending {
			s.ifc.ReportOutput(id, v)
		}
	}
	return nil
}

// HasUpdates reports whether Update would change observable state.
func (s *Simple) HasUpdates() bool { return len(s.pending) > 0 }

// Update commits the pending updates latched by the most recent
// Evaluate and clears HasUpdates. Relative ordering among the committed
// writes is unobservable; last-writer-wins per destination VId, which
// map iteration already gives us since each id appears at most once in
// pending.
func (s *Simple) Update() {
	for id, v := range s.pending {
		s.state.Set(id, v)
	}
	s.pending = nil
}

// HadTasks reports whether the most recent Evaluate executed a system
// task.
func (s *Simple) HadTasks() bool { return s.hadTasks }

// IsStub is always false for Simple.
func (s *Simple) IsStub() bool { return false }

var _ Core = (*Simple)(nil)
