// Package config loads parsekit's optional JSONC configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/parse"
	"github.com/griffithind/parsekit/internal/util"
)

// LocalConfigFile is looked up in the working directory.
const LocalConfigFile = ".parsekit.json"

// EnvConfigPath names an explicit config file.
const EnvConfigPath = "PARSEKIT_CONFIG"

// SourceDefaults is reported by Source when no file was loaded.
const SourceDefaults = "defaults"

// Config represents the parsekit configuration file.
type Config struct {
	CSV    CSVConfig    `json:"csv" yaml:"csv"`
	KV     KVConfig     `json:"kv" yaml:"kv"`
	Size   SizeConfig   `json:"size" yaml:"size"`
	Output OutputConfig `json:"output" yaml:"output"`

	source string
}

// CSVConfig holds defaults for the csv command.
type CSVConfig struct {
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Quote     string `json:"quote,omitempty" yaml:"quote,omitempty"`
}

// KVConfig holds defaults for the kv command.
type KVConfig struct {
	PairDelimiter     string `json:"pairDelimiter,omitempty" yaml:"pairDelimiter,omitempty"`
	KeyValueDelimiter string `json:"keyValueDelimiter,omitempty" yaml:"keyValueDelimiter,omitempty"`
}

// SizeConfig holds defaults for the size command.
type SizeConfig struct {
	// Mode is "binary" (1024) or "decimal" (1000).
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// OutputConfig holds output defaults.
type OutputConfig struct {
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	NoColor bool   `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	csv := parse.DefaultCSVOptions()
	kv := parse.DefaultKeyValueOptions()
	return &Config{
		CSV:    CSVConfig{Delimiter: csv.Delimiter, Quote: csv.Quote},
		KV:     KVConfig{PairDelimiter: kv.PairDelimiter, KeyValueDelimiter: kv.KeyValueDelimiter},
		Size:   SizeConfig{Mode: parse.Binary.String()},
		Output: OutputConfig{Format: string(output.FormatText)},
		source: SourceDefaults,
	}
}

// Parse parses a config file from bytes. Comments and trailing commas are
// allowed. Fields left out keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pkerrors.ConfigNotFound(path)
		}
		return nil, pkerrors.FileRead(path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		if pErr, ok := pkerrors.AsParseError(err); ok {
			return nil, pErr.WithContext("path", path)
		}
		return nil, pkerrors.ConfigParse(path, err)
	}
	cfg.source = path
	return cfg, nil
}

// Resolve finds and loads the config file. Lookup order:
//   - explicit path (from --config), which must exist
//   - $PARSEKIT_CONFIG, which must exist
//   - ./.parsekit.json
//   - $XDG_CONFIG_HOME/parsekit/config.json
//
// When nothing is found the defaults are returned.
func Resolve(explicit string) (*Config, error) {
	env := os.Getenv(EnvConfigPath)
	switch {
	case explicit != "" && env != "" && env != explicit:
		util.Warn("--config %s overrides $%s=%s", explicit, EnvConfigPath, env)
	case explicit == "":
		explicit = env
	}
	if explicit != "" {
		path := util.ExpandHome(explicit)
		util.With("path", path).Debug("loading config")
		return Load(path)
	}

	for _, path := range searchPaths() {
		if util.IsFile(path) {
			util.With("path", path).Debug("found config")
			return Load(path)
		}
	}

	util.Debug("no config file found, using defaults")
	return Default(), nil
}

func searchPaths() []string {
	paths := []string{LocalConfigFile}
	if dir := util.UserConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "parsekit", "config.json"))
	}
	return paths
}

// Source returns the file the config was loaded from, or SourceDefaults.
func (c *Config) Source() string {
	if c.source == "" {
		return SourceDefaults
	}
	return c.source
}

// Validate checks that every field can be handed to the parsers.
func (c *Config) Validate() error {
	if err := c.CSVOptions().Validate(); err != nil {
		return pkerrors.ConfigInvalid("csv", "invalid delimiter or quote").WithCause(err)
	}
	if err := c.KeyValueOptions().Validate(); err != nil {
		return pkerrors.ConfigInvalid("kv", "pairDelimiter and keyValueDelimiter must differ").WithCause(err)
	}
	if _, err := ParseSizeMode(c.Size.Mode); err != nil {
		return pkerrors.ConfigInvalid("size.mode", err.Error())
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return pkerrors.ConfigInvalid("output.format", err.Error())
	}
	return nil
}

// ApplyEnv applies environment overrides: NO_COLOR (https://no-color.org/)
// and PARSEKIT_NO_COLOR disable color, PARSEKIT_OUTPUT sets the format.
func (c *Config) ApplyEnv() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.NoColor = true
	}
	if v := strings.ToLower(os.Getenv("PARSEKIT_NO_COLOR")); v == "1" || v == "true" || v == "yes" {
		c.Output.NoColor = true
	}
	if v := os.Getenv("PARSEKIT_OUTPUT"); v != "" {
		c.Output.Format = v
	}
}

// CSVOptions returns the csv parser options.
func (c *Config) CSVOptions() parse.CSVOptions {
	return parse.CSVOptions{Delimiter: c.CSV.Delimiter, Quote: c.CSV.Quote}
}

// KeyValueOptions returns the key-value parser options.
func (c *Config) KeyValueOptions() parse.KeyValueOptions {
	return parse.KeyValueOptions{PairDelimiter: c.KV.PairDelimiter, KeyValueDelimiter: c.KV.KeyValueDelimiter}
}

// SizeMode returns the configured size mode. Validate guarantees it parses.
func (c *Config) SizeMode() parse.SizeMode {
	mode, _ := ParseSizeMode(c.Size.Mode)
	return mode
}

// ParseSizeMode converts "binary" or "decimal" into a parse.SizeMode.
// An empty name means binary.
func ParseSizeMode(name string) (parse.SizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "binary", "iec":
		return parse.Binary, nil
	case "decimal", "si":
		return parse.Decimal, nil
	}
	return parse.Binary, fmt.Errorf("unknown size mode %q (want binary or decimal)", name)
}
