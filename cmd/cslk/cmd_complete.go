package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cslk/format"
	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/lsp"
)

func newSetsCmd() *cobra.Command {
	var typedefs []string
	var names bool

	cmd := &cobra.Command{
		Use:   "sets <file|->",
		Short: "Print the compatible terminal set before every token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := lexFile(args[0])
			if err != nil {
				return err
			}
			p := newParser(typedefs, false)
			sets, err := p.CompatibleSets(tokens)
			enc := format.NewSetLineEncoder(os.Stdout, p.Vocabulary())
			if names {
				enc = enc.WithNames()
			}
			if encErr := enc.Encode(tokens, sets); encErr != nil {
				return fmt.Errorf("encode: %w", encErr)
			}
			if err != nil {
				return fmt.Errorf("after %d sets: %w", len(sets), err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&typedefs, "typedef", "t", nil, "treat a name as a predeclared typedef")
	cmd.Flags().BoolVar(&names, "names", false, "print terminal names instead of ids")

	return cmd
}

func newCompleteCmd() *cobra.Command {
	var typedefs []string
	var line, column int

	cmd := &cobra.Command{
		Use:   "complete <file|->",
		Short: "List the tokens that may follow a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(args[0])
			if err != nil {
				return err
			}
			names := append(append([]string(nil), conf.Parser.Typedefs...), typedefs...)
			for _, item := range lsp.Complete(grammar.C99Vocabulary(), data, line, column, names...) {
				fmt.Printf("%s\t%s\n", item.Label, item.Detail)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&typedefs, "typedef", "t", nil, "treat a name as a predeclared typedef")
	cmd.Flags().IntVarP(&line, "line", "l", 1, "1-based line")
	cmd.Flags().IntVarP(&column, "column", "C", 0, "0-based byte column")

	return cmd
}
