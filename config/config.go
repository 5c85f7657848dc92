// Package config loads cslk.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

// DefaultFile is looked up in the working directory when no file is named.
const DefaultFile = "cslk.toml"

// Config is the cslk configuration.
type Config struct {
	Log     Log     `toml:"log"`
	Parser  Parser  `toml:"parser"`
	Monitor Monitor `toml:"monitor"`
}

// Log holds the commonlog settings.
type Log struct {
	// Verbosity is the commonlog level: 0 none, 1 errors up to 6 debug.
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Parser holds driver settings.
type Parser struct {
	Trace bool `toml:"trace"`
	// Typedefs are typedef names treated as declared before the input,
	// typically those of headers that were not preprocessed in.
	Typedefs []string `toml:"typedefs"`
}

// Monitor holds the predefined name sets of monitored parses.
type Monitor struct {
	Identifiers []string `toml:"identifiers"`
	Typenames   []string `toml:"typenames"`
	// Words is the path of the word vocabulary, relative to the config file.
	Words string `toml:"words"`
}

var defaultConf = Config{
	Log: Log{
		Verbosity: 1,
	},
	Parser: Parser{
		Typedefs: []string{"size_t", "ptrdiff_t", "wchar_t", "FILE"},
	},
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	conf := defaultConf
	conf.Parser.Typedefs = append([]string(nil), defaultConf.Parser.Typedefs...)
	return &conf
}

// Load decodes path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	c := NewConfig()
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}
	if c.Monitor.Words != "" && !filepath.IsAbs(c.Monitor.Words) {
		c.Monitor.Words = filepath.Join(filepath.Dir(path), c.Monitor.Words)
	}
	return c, nil
}

// LoadOrDefault loads path. An empty path loads DefaultFile when it exists
// and the defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, errors.Annotatef(err, "stat %s", DefaultFile)
	}
	return Load(DefaultFile)
}
