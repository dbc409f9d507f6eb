// Command cascadebits is a developer console for exercising package
// bitvec without a Verilog front end: it parses two BitVec literals,
// applies an operator, and prints the result. It also demonstrates
// package checkpoint by bundling named values into a file.
//
// This is tooling around the library, mirroring how a cmd/ binary wraps
// a core library: the core itself takes no environment variables, flags,
// or exit codes, and this console is not part of its contract surface.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fiking/cascade/bitvec"
	"github.com/fiking/cascade/checkpoint"
	"github.com/fiking/cascade/valueio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cascadebits",
		Short: "Exercise the Cascade BitVec core from the command line",
	}
	root.AddCommand(newEvalCmd())
	root.AddCommand(newCheckpointCmd())
	return root
}

var operators = map[string]func(a, b *bitvec.BitVec) (*bitvec.BitVec, error){
	"and": wrap2((*bitvec.BitVec).And),
	"or":  wrap2((*bitvec.BitVec).Or),
	"xor": wrap2((*bitvec.BitVec).Xor),
	"add": wrap2((*bitvec.BitVec).Add),
	"sub": wrap2((*bitvec.BitVec).Sub),
	"mul": wrap2((*bitvec.BitVec).Mul),
	"div": func(a, b *bitvec.BitVec) (*bitvec.BitVec, error) { return a.Div(b) },
	"mod": func(a, b *bitvec.BitVec) (*bitvec.BitVec, error) { return a.Mod(b) },
}

func wrap2(f func(a, b *bitvec.BitVec) *bitvec.BitVec) func(a, b *bitvec.BitVec) (*bitvec.BitVec, error) {
	return func(a, b *bitvec.BitVec) (*bitvec.BitVec, error) { return f(a, b), nil }
}

func newEvalCmd() *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Apply a binary operator to two BitVec literals and print the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operators[strings.ToLower(args[1])]
			if !ok {
				return fmt.Errorf("unknown operator %q (want one of and/or/xor/add/sub/mul/div/mod)", args[1])
			}
			radix := valueio.Base(base)
			a := valueio.Read(strings.NewReader(args[0]), radix)
			b := valueio.Read(strings.NewReader(args[2]), radix)

			result, err := op(a, b)
			if err != nil {
				return err
			}

			var sb strings.Builder
			if err := valueio.Write(&sb, result, radix); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (width %d)\n", sb.String(), result.Width())
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 10, "numeric radix for literals and output: 2, 8, 10, or 16")
	return cmd
}

func newCheckpointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoint-demo <file>",
		Short: "Write a sample checkpoint bundling a few named BitVec values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp := checkpoint.New()
			cp.Set("clk", bitvec.New(1, 1))
			cp.Set("counter", bitvec.New(32, 42))

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := cp.Write(f); err != nil {
				return err
			}
			fmt.Printf("wrote checkpoint %s (session %s)\n", args[0], cp.SessionID)
			return nil
		},
	}
	return cmd
}
