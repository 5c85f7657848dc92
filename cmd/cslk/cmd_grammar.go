package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/cslk/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect the built-in C99 grammar tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "productions",
		Short: "List every production",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := grammar.C99Vocabulary()
			for id := 1; id <= v.Table().NumProductions(); id++ {
				fmt.Printf("%d\t%s\n", id, v.ProductionString(id))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "first <nonterminal>",
		Short: "Print the terminals a nonterminal can start with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := grammar.C99Vocabulary()
			sym, ok := v.Lookup(args[0])
			if !ok || !v.Table().IsNonterminal(sym) {
				return fmt.Errorf("unknown nonterminal: %s", args[0])
			}
			for t := range v.FirstSet(sym).All() {
				fmt.Printf("%d\t%s\n", t, v.Name(t))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "conflicts",
		Short: "List the conflict rows and the terminals each one resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := grammar.C99Vocabulary()
			first, end := v.Table().Conflicts()
			for marker := first; marker < end; marker++ {
				fmt.Printf("%d\t%s\n", marker, v.ConflictSet(marker))
			}
			return nil
		},
	})

	cmd.AddCommand(newGrammarEBNFCmd())
	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarEBNFCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "Print the grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := grammar.C99Vocabulary()
			text := v.EBNF()
			if verify {
				g, err := ebnf.Parse("c99.ebnf", strings.NewReader(text))
				if err == nil {
					err = ebnf.Verify(g, v.EBNFName(v.Table().StartSymbol()))
				}
				if err != nil {
					printErrors(err)
					return err
				}
			}
			_, err := os.Stdout.WriteString(text)
			return err
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the output with x/exp/ebnf before printing")

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			g, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
