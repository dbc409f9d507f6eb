// Package core specifies the compute-core contract: an evaluation engine
// that holds BitVec-valued inputs and state, evaluates combinational
// logic, and reports pending updates and tasks.
//
// The AST node and parser fragments that would drive a real core through
// this contract are external collaborators, out of scope here. This
// package pins down the interface and the degenerate Stub implementation
// that lets a scheduler compose uniformly before a real core exists.
package core

import (
	"context"

	"golang.org/x/exp/maps"

	"github.com/fiking/cascade/bitvec"
)

// VId is an opaque integer naming an input slot on a core.
type VId int

// Input is a snapshot of a core's input-slot values, keyed by VId.
type Input struct {
	slots map[VId]*bitvec.BitVec
}

// NewInput returns an empty input snapshot.
func NewInput() *Input {
	return &Input{slots: map[VId]*bitvec.BitVec{}}
}

// Get returns the value at id, or nil if unset.
func (in *Input) Get(id VId) *bitvec.BitVec {
	return in.slots[id]
}

// Set stores v at id.
func (in *Input) Set(id VId, v *bitvec.BitVec) {
	in.slots[id] = v
}

// Len reports how many slots are populated.
func (in *Input) Len() int { return len(in.slots) }

// Clone returns an independent copy of in; the slot map is copied with
// maps.Clone. The BitVec values themselves are still owned by whichever
// cell last wrote them: exclusive ownership applies to each value, not
// to the snapshot container.
func (in *Input) Clone() *Input {
	return &Input{slots: maps.Clone(in.slots)}
}

// State is a snapshot of a core's internal registers, keyed by an
// implementation-defined VId (state slots and input slots are different
// namespaces even though both use VId as the key type).
type State struct {
	slots map[VId]*bitvec.BitVec
}

// NewState returns an empty state snapshot.
func NewState() *State {
	return &State{slots: map[VId]*bitvec.BitVec{}}
}

// Get returns the value at id, or nil if unset.
func (s *State) Get(id VId) *bitvec.BitVec {
	return s.slots[id]
}

// Set stores v at id.
func (s *State) Set(id VId, v *bitvec.BitVec) {
	s.slots[id] = v
}

// Len reports how many slots are populated.
func (s *State) Len() int { return len(s.slots) }

// Equal reports whether s and other hold the same slot ids each mapped
// to an equal BitVec. Used by tests to check "empty, equal-to-fresh"
// scenarios, such as a freshly constructed Stub core's state.
func (s *State) Equal(other *State) bool {
	if len(s.slots) != len(other.slots) {
		return false
	}
	for id, v := range s.slots {
		ov, ok := other.slots[id]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	return &State{slots: maps.Clone(s.slots)}
}

// Core is the compute-core contract. Implementations range from Stub
// (degenerate, performs no work) to fully generated native engines;
// callers that only need to skip unreachable work check IsStub rather
// than type-asserting a concrete implementation.
type Core interface {
	// GetState returns a snapshot of internal registers as an owned
	// object independent of the core's live state.
	GetState() *State

	// SetState restores internal registers from a snapshot.
	// Implementations may ignore unknown fields.
	SetState(s *State)

	// GetInput returns a snapshot of input-slot values.
	GetInput() *Input

	// SetInput replaces all input slots at once.
	SetInput(in *Input)

	// Read writes b into the input slot named id. Does not trigger
	// evaluation.
	Read(id VId, b *bitvec.BitVec)

	// Evaluate runs combinational logic to fixpoint. It may enqueue
	// pending non-blocking updates and/or raise HadTasks. It is
	// synchronous: it completes before returning.
	Evaluate(ctx context.Context) error

	// HasUpdates reports whether Update would change observable state.
	HasUpdates() bool

	// Update commits pending non-blocking updates latched during the
	// most recent Evaluate, and clears HasUpdates.
	Update()

	// HadTasks reports whether the most recent Evaluate executed
	// side-effecting system tasks (e.g. $display). Query-only.
	HadTasks() bool

	// IsStub identifies the degenerate Stub variant.
	IsStub() bool
}

// Interface is the collaborator through which a core reports outputs and
// tasks. A core holds a non-owning reference to one; the concrete
// implementer (a scheduler-side sink) is out of scope for this package,
// so this is deliberately the smallest contract a core needs against it.
type Interface interface {
	// ReportOutput notifies the collaborator that slot id now holds v.
	ReportOutput(id VId, v *bitvec.BitVec)

	// ReportTask notifies the collaborator that a system task named name
	// ran with the given arguments.
	ReportTask(name string, args []*bitvec.BitVec)
}
