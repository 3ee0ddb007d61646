// Package config holds the settings of the callexpr command. Settings start
// from Default, can be overridden by a YAML file and finally by command line
// flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
	"gopkg.in/yaml.v3"
)

// Lexer settings
type Lexer struct {
	Unrecognized            lexer.Policy `yaml:"unrecognized"`
	AllowUnterminatedString bool         `yaml:"allow_unterminated_string"`
}

// Parser settings
type Parser struct {
	AutoCloseOnEOF  bool `yaml:"auto_close_on_eof"`
	AllowTrailing   bool `yaml:"allow_trailing"`
	RejectMalformed bool `yaml:"reject_malformed"`
	MaxDepth        int  `yaml:"max_depth"`
}

// Log settings
type Log struct {
	Level slog.Level `yaml:"level"`
	File  string     `yaml:"file"`
}

// Config is the whole set of settings.
type Config struct {
	Lexer  Lexer  `yaml:"lexer"`
	Parser Parser `yaml:"parser"`
	Log    Log    `yaml:"log"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Lexer: Lexer{
			Unrecognized: lexer.WarnUnrecognized,
		},
		Parser: Parser{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Log: Log{
			Level: slog.LevelInfo,
		},
	}
}

// Decode reads YAML settings on top of the defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the settings file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks the settings for values that make no sense.
func (c Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if _, err := c.Lexer.Unrecognized.MarshalText(); err != nil {
		return err
	}
	return nil
}

// Options returns the lexer and parser options described by the settings.
func (c Config) Options() callexpr.Options {
	return callexpr.Options{
		Lexer: lexer.Options{
			Unrecognized:            c.Lexer.Unrecognized,
			AllowUnterminatedString: c.Lexer.AllowUnterminatedString,
		},
		Parser: parser.Options{
			AutoCloseOnEOF:  c.Parser.AutoCloseOnEOF,
			AllowTrailing:   c.Parser.AllowTrailing,
			RejectMalformed: c.Parser.RejectMalformed,
			MaxDepth:        c.Parser.MaxDepth,
		},
	}
}
