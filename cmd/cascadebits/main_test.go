package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiking/cascade/bitvec"
)

func TestEvalAddDecimal(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"eval", "5", "add", "2"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "7 (width 3)")
}

func TestEvalUnknownOperator(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"eval", "1", "xnand", "2"})
	err := root.Execute()
	require.Error(t, err)
}

func TestEvalDivideByZeroPropagatesError(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"eval", "4", "div", "0"})
	err := root.Execute()
	require.ErrorIs(t, err, bitvec.ErrDivideByZero)
}

func TestCheckpointDemoWritesReadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.cpk")

	root := newRootCmd()
	root.SetArgs([]string{"checkpoint-demo", path})
	require.NoError(t, root.Execute())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
