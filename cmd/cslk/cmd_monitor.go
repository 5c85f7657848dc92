package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cslk/format"
	"github.com/dhamidi/cslk/parser"
	"github.com/dhamidi/cslk/words"
)

func newMonitorCmd() *cobra.Command {
	var wordsPath string
	var identifiers []string
	var typenames []string

	cmd := &cobra.Command{
		Use:   "monitor <file|->",
		Short: "Parse a file and print the per-token scope record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := lexFile(args[0])
			if err != nil {
				return err
			}

			if wordsPath == "" {
				wordsPath = conf.Monitor.Words
			}
			cfg := parser.MonitorConfig{
				Identifiers: append(append([]string(nil), conf.Monitor.Identifiers...), identifiers...),
				Typenames:   append(append([]string(nil), conf.Monitor.Typenames...), typenames...),
			}
			if wordsPath != "" {
				vocab, err := words.Load(wordsPath)
				if err != nil {
					return err
				}
				cfg.Words = vocab
			}

			_, rec, err := newParser(nil, false).ParseMonitored(tokens, cfg)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			texts := make([]string, len(tokens))
			for i, tok := range tokens {
				texts[i] = words.Text(tok.Label, tok.Value)
			}
			return format.NewRecordJSONEncoder(os.Stdout).Encode(texts, rec)
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "word vocabulary file (YAML)")
	cmd.Flags().StringSliceVar(&identifiers, "identifier", nil, "treat a name as a predeclared identifier")
	cmd.Flags().StringSliceVar(&typenames, "typename", nil, "treat a name as a predeclared typedef")

	return cmd
}

func newWordsCmd() *cobra.Command {
	var minCount int
	var output string

	cmd := &cobra.Command{
		Use:   "words <file>...",
		Short: "Build a word vocabulary from C files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var texts []string
			for _, name := range args {
				tokens, err := lexFile(name)
				if err != nil {
					return err
				}
				for _, tok := range tokens {
					texts = append(texts, words.Text(tok.Label, tok.Value))
				}
			}
			vocab, err := words.Build(texts, minCount)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return vocab.Encode(os.Stdout)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := vocab.Encode(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVarP(&minCount, "min-count", "m", 1, "drop words seen fewer times")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
