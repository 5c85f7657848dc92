package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cslk/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var typedefs []string
	var trace bool
	var actions bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a preprocessed C file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := lexFile(args[0])
			if err != nil {
				return err
			}

			if outputFormat == "tokens" {
				return format.NewTokenLineEncoder(os.Stdout).Encode(tokens)
			}

			p := newParser(typedefs, trace)
			tree, err := p.Parse(tokens)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewTreeJSONEncoder(os.Stdout, p.Vocabulary())
			case "tree":
				enc := format.NewTreeEncoder(os.Stdout, p.Vocabulary())
				if actions {
					enc = enc.WithActions()
				}
				encoder = enc
			case "productions":
				encoder = format.NewProductionEncoder(os.Stdout, p.Vocabulary())
			case "c":
				encoder = format.NewCPrettyPrinter(os.Stdout, p.Vocabulary())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree, tokens, productions, c)")
	cmd.Flags().StringSliceVarP(&typedefs, "typedef", "t", nil, "treat a name as a predeclared typedef")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every prediction at debug level")
	cmd.Flags().BoolVar(&actions, "actions", false, "include action leaves in tree output")

	return cmd
}
