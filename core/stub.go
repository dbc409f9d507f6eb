package core

import (
	"context"

	"github.com/fiking/cascade/bitvec"
)

// Stub is the degenerate compute-core: it holds no state, consumes
// inputs without effect, and never signals updates or tasks. It exists
// so a scheduler can compose uniformly over cores even before a real one
// is compiled.
type Stub struct{}

// NewStub returns a ready-to-use Stub. There is no construction state to
// configure.
func NewStub() *Stub {
	return &Stub{}
}

// GetState always returns a fresh, empty State.
func (*Stub) GetState() *State { return NewState() }

// SetState discards s; the stub has no registers to restore.
func (*Stub) SetState(*State) {}

// GetInput always returns a fresh, empty Input.
func (*Stub) GetInput() *Input { return NewInput() }

// SetInput discards in; the stub has no input slots to replace.
func (*Stub) SetInput(*Input) {}

// Read discards id and b; the stub accepts all inputs without effect.
func (*Stub) Read(VId, *bitvec.BitVec) {}

// Evaluate is a no-op: it never enqueues updates or raises tasks.
func (*Stub) Evaluate(context.Context) error { return nil }

// HasUpdates is always false.
func (*Stub) HasUpdates() bool { return false }

// Update is a no-op.
func (*Stub) Update() {}

// HadTasks is always false.
func (*Stub) HadTasks() bool { return false }

// IsStub is always true.
func (*Stub) IsStub() bool { return true }

var _ Core = (*Stub)(nil)
