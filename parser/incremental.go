package parser

import (
	"errors"
	"io"
	"iter"

	"github.com/dhamidi/cslk/grammar"
)

// Incremental parses a token list that arrives piecemeal. Whenever the
// driver needs a token that has not been added yet, it suspends and offers
// the set of terminals compatible with the input so far. The caller adds
// one or more tokens, or AddEnd, and resumes.
//
//	inc := p.Incremental()
//	for set, err := range inc.Sets() {
//		if err != nil {
//			return err
//		}
//		inc.Add(nextToken(set))
//	}
//
// An Incremental is single use and not safe for concurrent use.
type Incremental struct {
	p       *Parser
	src     *Dynamic
	builder *Builder
	m       *machine

	started bool
	done    bool
	err     error

	pull func() (grammar.TerminalSet, error, bool)
	stop func()
}

// Incremental starts a new incremental parse. Nothing runs until the
// sequence from Sets, or Next, is consumed.
func (p *Parser) Incremental() *Incremental {
	src := NewDynamic(p.vocab)
	b := NewBuilder(p.vocab, p.typedefs...)
	inc := &Incremental{p: p, src: src, builder: b}
	inc.m = &machine{p: p, table: p.vocab.Table(), src: src, h: b}
	src.SetClassifier(b.IsTypedef)
	return inc
}

// Add appends a token to the input.
func (inc *Incremental) Add(tok Token) error { return inc.src.Add(tok) }

// AddEnd marks the end of input.
func (inc *Incremental) AddEnd() { inc.src.AddEnd() }

// Sets yields the compatible set at each suspension. A failed parse yields
// its error last; a successful one just ends. Sets may be ranged over once.
func (inc *Incremental) Sets() iter.Seq2[grammar.TerminalSet, error] {
	return func(yield func(grammar.TerminalSet, error) bool) {
		if inc.started {
			panic("parser: incremental parse already consumed")
		}
		inc.started = true
		inc.m.suspend = func(set grammar.TerminalSet) bool {
			return yield(set, nil)
		}

		err := inc.m.run()
		if errors.Is(err, errStopped) {
			inc.err = err
			return
		}
		inc.done = true
		inc.err = err
		if err != nil {
			yield(grammar.TerminalSet{}, err)
		}
	}
}

// Next resumes the parse and returns the next compatible set. It returns
// io.EOF once the parse has succeeded, and the parse error if it failed.
func (inc *Incremental) Next() (grammar.TerminalSet, error) {
	if inc.pull == nil {
		inc.pull, inc.stop = iter.Pull2(inc.Sets())
	}
	set, err, ok := inc.pull()
	if !ok {
		if inc.err != nil && !errors.Is(inc.err, errStopped) {
			return grammar.TerminalSet{}, inc.err
		}
		return grammar.TerminalSet{}, io.EOF
	}
	return set, err
}

// Stop abandons a parse driven by Next.
func (inc *Incremental) Stop() {
	if inc.stop != nil {
		inc.stop()
	}
}

// Done reports whether the parse ran to completion, successfully or not.
func (inc *Incremental) Done() bool { return inc.done }

// Err returns the error that ended the parse.
func (inc *Incremental) Err() error {
	if errors.Is(inc.err, errStopped) {
		return nil
	}
	return inc.err
}

// Viable narrows the set offered at the current suspension to terminals the
// next prediction can actually accept.
func (inc *Incremental) Viable() grammar.TerminalSet {
	m := inc.m
	switch {
	case m.waitingMarker != 0:
		return inc.p.vocab.ConflictSet(m.waitingMarker)
	case m.waitingSym == 0:
		return grammar.NewTerminalSet(m.table.EndOfInput())
	case m.table.IsNonterminal(m.waitingSym):
		return inc.p.vocab.Viable(m.waitingSym)
	}
	return grammar.NewTerminalSet(m.waitingSym)
}

// Tree returns the tree built so far. It is complete only after a
// successful parse.
func (inc *Incremental) Tree() *Node { return inc.builder.Tree() }

// Typedefs lists the typedef names visible at the current suspension.
func (inc *Incremental) Typedefs() []string { return inc.builder.Typedefs() }

// Pending counts added tokens the driver has not consumed.
func (inc *Incremental) Pending() int { return inc.src.Available() }

// CompatibleSets replays tokens through an incremental parse and returns
// the set offered before each token, plus the one offered before end of
// input when the parse asks for it. sets[i] contains tokens[i] whenever the
// parse succeeds.
func (p *Parser) CompatibleSets(tokens []Token) ([]grammar.TerminalSet, error) {
	inc := p.Incremental()
	var sets []grammar.TerminalSet
	i := 0
	for set, err := range inc.Sets() {
		if err != nil {
			return sets, err
		}
		sets = append(sets, set)
		if i < len(tokens) {
			if err := inc.Add(tokens[i]); err != nil {
				return sets, err
			}
			i++
			continue
		}
		inc.AddEnd()
	}
	return sets, nil
}
