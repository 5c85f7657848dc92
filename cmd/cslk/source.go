package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cslk/parser"
)

// readSource reads the named file, or stdin for "-".
func readSource(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func lexFile(name string) ([]parser.Token, error) {
	data, err := readSource(name)
	if err != nil {
		return nil, err
	}
	tokens, err := parser.Lex(data, name)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	return tokens, nil
}

// newParser applies the configured typedefs and trace setting plus extra
// typedef names from the command line.
func newParser(typedefs []string, trace bool) *parser.Parser {
	names := append(append([]string(nil), conf.Parser.Typedefs...), typedefs...)
	opts := []parser.Option{parser.WithTypedefs(names...)}
	if trace || conf.Parser.Trace {
		opts = append(opts, parser.WithTrace())
	}
	return parser.New(opts...)
}
