package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cslk/lsp"
)

func newScanCmd() *cobra.Command {
	var typedefs []string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Parse every .c and .h file under a directory",
		Long: `Parse every .c and .h file under a directory.

Headers are parsed first; the typedef names they declare at file scope are
treated as declared in every other file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], typedefs, quiet)
		},
	}

	cmd.Flags().StringSliceVarP(&typedefs, "typedef", "t", nil, "treat a name as a predeclared typedef")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary")

	return cmd
}

func runScan(dir string, typedefs []string, quiet bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	names := append(append([]string(nil), conf.Parser.Typedefs...), typedefs...)
	w := lsp.New(dir, names...)
	if err := w.ScanAll(); err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	var failed []*lsp.File
	typedefCount := 0
	files := w.Files()
	for _, f := range files {
		typedefCount += len(f.Typedefs)
		if f.ParseErr != nil {
			failed = append(failed, f)
		} else if !quiet {
			fmt.Printf("ok   %s\n", f.Path)
		}
	}

	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Files parsed: %d\n", len(files))
	fmt.Printf("Typedefs declared: %d\n", typedefCount)
	fmt.Printf("Errors: %d\n", len(failed))
	for _, f := range failed {
		fmt.Printf("  - %s: %s\n", f.Path, f.ParseErr)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed to parse", len(failed), len(files))
	}
	return nil
}
