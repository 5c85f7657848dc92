// Package words maps token text to the integer ids used in monitored parse
// records.
package words

import (
	"io"
	"os"
	"sort"

	"github.com/pingcap/errors"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/cslk/grammar"
)

// DefaultUnknown is the word that stands for every word not in the list.
const DefaultUnknown = "<unk>"

// Vocabulary is an ordered word list. A word's id is its position.
type Vocabulary struct {
	words   []string
	index   map[string]int
	unknown int
}

type file struct {
	Unknown string   `yaml:"unknown"`
	Words   []string `yaml:"words"`
}

// New builds a vocabulary over words. The unknown word is appended when
// the list lacks it.
func New(unknown string, words []string) (*Vocabulary, error) {
	if unknown == "" {
		unknown = DefaultUnknown
	}
	v := &Vocabulary{index: make(map[string]int, len(words)+1)}
	for _, w := range words {
		if _, ok := v.index[w]; ok {
			return nil, errors.Errorf("duplicate word %q", w)
		}
		v.index[w] = len(v.words)
		v.words = append(v.words, w)
	}
	id, ok := v.index[unknown]
	if !ok {
		id = len(v.words)
		v.index[unknown] = id
		v.words = append(v.words, unknown)
	}
	v.unknown = id
	return v, nil
}

// Load reads a YAML vocabulary file:
//
//	unknown: <unk>
//	words: [int, main, "(", ")"]
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	v, err := Decode(f)
	if err != nil {
		return nil, errors.Annotatef(err, "load words %s", path)
	}
	return v, nil
}

func Decode(r io.Reader) (*Vocabulary, error) {
	var data file
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Trace(err)
	}
	return New(data.Unknown, data.Words)
}

// Encode writes v in the format Load reads.
func (v *Vocabulary) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file{Unknown: v.words[v.unknown], Words: v.words}); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(enc.Close())
}

// ID returns the id of word, or the unknown id.
func (v *Vocabulary) ID(word string) int {
	if id, ok := v.index[word]; ok {
		return id
	}
	return v.unknown
}

func (v *Vocabulary) Word(id int) string {
	if id < 0 || id >= len(v.words) {
		return v.words[v.unknown]
	}
	return v.words[id]
}

func (v *Vocabulary) Unknown() int { return v.unknown }
func (v *Vocabulary) Len() int     { return len(v.words) }

// Build collects the words that occur at least minCount times, most
// frequent first, ties in lexical order.
func Build(texts []string, minCount int) (*Vocabulary, error) {
	counts := make(map[string]int)
	for _, t := range texts {
		counts[t]++
	}
	var list []string
	for w, n := range counts {
		if n >= minCount {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if counts[list[i]] != counts[list[j]] {
			return counts[list[i]] > counts[list[j]]
		}
		return list[i] < list[j]
	})
	return New(DefaultUnknown, list)
}

var folds = grammar.C99Names().Folds

// Text is the word a token contributes: literal constants and strings
// collapse to their category, everything else is its source text.
func Text(label, value string) string {
	if to, ok := folds[label]; ok {
		return to
	}
	if label == "CONSTANT" || label == "STRING_LITERAL" {
		return label
	}
	return value
}
