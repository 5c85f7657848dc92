package lsp

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/cslk/grammar"
	"github.com/dhamidi/cslk/parser"
)

// Workspace holds the parsed C files under a root directory. Typedef names
// declared at file scope in headers are treated as predefined when parsing
// every other file.
type Workspace struct {
	mu       sync.RWMutex
	rootDir  string
	vocab    *grammar.Vocabulary
	typedefs []string
	files    map[string]*File
	log      commonlog.Logger
}

type File struct {
	Path    string
	Content []byte
	Tree    *parser.Node
	// Typedefs are the file-scope typedef names the file declares.
	Typedefs []string
	ParseErr error
}

// New returns an empty workspace. typedefs are always treated as declared.
func New(rootDir string, typedefs ...string) *Workspace {
	return &Workspace{
		rootDir:  rootDir,
		vocab:    grammar.C99Vocabulary(),
		typedefs: typedefs,
		files:    make(map[string]*File),
		log:      commonlog.GetLogger("cslk.lsp"),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func isSource(path string) bool {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return true
	}
	return false
}

func isHeader(path string) bool { return filepath.Ext(path) == ".h" }

// ScanAll parses every header under the root, then every source file.
func (w *Workspace) ScanAll() error {
	var headers, sources []string
	err := filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == w.rootDir {
				return err
			}
			w.log.Warningf("walk %s: %s", path, err)
			return nil
		}
		if info.IsDir() || !isSource(path) {
			return nil
		}
		if isHeader(path) {
			headers = append(headers, path)
		} else {
			sources = append(sources, path)
		}
		return nil
	})
	for _, path := range append(headers, sources...) {
		if err := w.ScanFile(path); err != nil {
			w.log.Warningf("scan %s: %s", path, err)
		}
	}
	return err
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses path from content and returns the result.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	w.mu.Lock()
	defer w.mu.Unlock()

	f := w.parseLocked(path, content)
	w.files[path] = f
	return f
}

func (w *Workspace) parseLocked(path string, content []byte) *File {
	f := &File{Path: path, Content: content}
	known := w.typedefsLocked(path)

	tokens, err := parser.Lex(content, filepath.Base(path))
	if err != nil {
		f.ParseErr = err
		return f
	}
	src, err := parser.NewBuffered(w.vocab, tokens)
	if err != nil {
		f.ParseErr = err
		return f
	}
	b := parser.NewBuilder(w.vocab, known...)
	if err := parser.New(parser.WithVocabulary(w.vocab)).Run(src, b); err != nil {
		f.ParseErr = err
		w.log.Debugf("parse %s: %s", path, err)
		return f
	}
	f.Tree = b.Tree()

	seen := make(map[string]struct{}, len(known))
	for _, name := range known {
		seen[name] = struct{}{}
	}
	for _, name := range b.Typedefs() {
		if _, ok := seen[name]; !ok {
			f.Typedefs = append(f.Typedefs, name)
		}
	}
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns every parsed file ordered by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Typedefs lists the names treated as typedefs when parsing path: the
// configured ones and those of every other header.
func (w *Workspace) Typedefs(path string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.typedefsLocked(path)
}

func (w *Workspace) typedefsLocked(path string) []string {
	set := make(map[string]struct{})
	for _, name := range w.typedefs {
		set[name] = struct{}{}
	}
	for p, f := range w.files {
		if p == path || !isHeader(p) {
			continue
		}
		for _, name := range f.Typedefs {
			set[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CompletionsAtPoint completes at a 1-based line and 0-based column.
func (w *Workspace) CompletionsAtPoint(path string, line, column int) []CompletionItem {
	f := w.GetFile(path)
	if f == nil {
		return nil
	}
	return Complete(w.vocab, f.Content, line, column, w.Typedefs(path)...)
}
