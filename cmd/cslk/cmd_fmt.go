package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cslk/format"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool
	var typedefs []string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a preprocessed C file",
		Long: `Pretty-print a preprocessed C file to stdout.

If no file is provided, reads C source from stdin. Comments are dropped.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "-"
			if len(args) == 1 {
				filename = args[0]
				switch filepath.Ext(filename) {
				case ".c", ".h", ".i":
				default:
					return fmt.Errorf("expected .c, .h or .i file, got %s", filepath.Ext(filename))
				}
			} else if fmtOverwrite {
				return fmt.Errorf("-w requires a file argument")
			}

			tokens, err := lexFile(filename)
			if err != nil {
				return err
			}
			p := newParser(typedefs, false)
			tree, err := p.Parse(tokens)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			output, err := format.NewCPrettyPrinter(nil, p.Vocabulary()).MarshalText(tree)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().StringSliceVarP(&typedefs, "typedef", "t", nil, "treat a name as a predeclared typedef")

	return cmd
}
