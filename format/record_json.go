package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cslk/parser"
)

// RecordJSONEncoder writes a monitored record together with the word of
// every position, bootstrap positions included.
type RecordJSONEncoder struct {
	w io.Writer
}

func NewRecordJSONEncoder(w io.Writer) *RecordJSONEncoder {
	return &RecordJSONEncoder{w: w}
}

type recordJSON struct {
	Words        []string `json:"words"`
	ScopeIndex   []int    `json:"scopeIndex"`
	IsIdentifier []bool   `json:"isIdentifier"`
	MaxScope     []int    `json:"maxScope"`
	Identifiers  [][]int  `json:"identifiers"`
	Typenames    [][]int  `json:"typenames"`
}

func (e *RecordJSONEncoder) Encode(words []string, rec *parser.Record) error {
	text, err := e.MarshalText(words, rec)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

// MarshalText pairs words[i] with token position i of rec.
func (e *RecordJSONEncoder) MarshalText(words []string, rec *parser.Record) ([]byte, error) {
	all := make([]string, 0, rec.Len())
	for range parser.BootstrapEntries {
		all = append(all, "")
	}
	all = append(all, words...)
	return json.MarshalIndent(recordJSON{
		Words:        all,
		ScopeIndex:   rec.ScopeIndex,
		IsIdentifier: rec.IsIdentifier,
		MaxScope:     rec.MaxScope,
		Identifiers:  nonNil(rec.Identifiers),
		Typenames:    nonNil(rec.Typenames),
	}, "", "  ")
}

// nonNil makes empty snapshots encode as [] rather than null.
func nonNil(lists [][]int) [][]int {
	out := make([][]int, len(lists))
	for i, l := range lists {
		if l == nil {
			l = []int{}
		}
		out[i] = l
	}
	return out
}
