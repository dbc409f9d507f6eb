package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiking/cascade/bitvec"
)

// Stub core scenario from spec.md §8.
func TestStubCoreScenario(t *testing.T) {
	s := NewStub()

	s.Read(VId(0), bitvec.New(8, 1))
	require.NoError(t, s.Evaluate(context.Background()))

	require.False(t, s.HasUpdates())
	require.False(t, s.HadTasks())
	require.True(t, s.IsStub())
	require.True(t, s.GetState().Equal(NewState()))
}

func TestStubDiscardsSetStateAndSetInput(t *testing.T) {
	s := NewStub()

	st := NewState()
	st.Set(VId(1), bitvec.New(4, 1))
	s.SetState(st)
	require.True(t, s.GetState().Equal(NewState()), "stub must ignore SetState")

	in := NewInput()
	in.Set(VId(1), bitvec.New(4, 1))
	s.SetInput(in)
	require.Equal(t, 0, s.GetInput().Len(), "stub must ignore SetInput")
}

func TestStubUpdateIsNoop(t *testing.T) {
	s := NewStub()
	s.Update() // must not panic with nothing pending
	require.False(t, s.HasUpdates())
}
