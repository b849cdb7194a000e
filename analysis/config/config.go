// Copyright (c) the solidity-go authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultSimplifyDepthLimit bounds recursive expression simplification when
// the config does not set simplify-depth-limit.
const DefaultSimplifyDepthLimit = 64

var (
	// The global config file
	configFile string
)

// SetGlobalConfig sets the global config filename
func SetGlobalConfig(filename string) {
	configFile = filename
}

// LoadGlobal loads the config file that has been set by SetGlobalConfig
func LoadGlobal() (*Config, error) {
	return Load(configFile)
}

// Config collects the settings of an analysis run.
// If some field is not defined in the config file, it will be empty/zero in the struct.
// private fields are not populated from a yaml file, but computed after initialization
type Config struct {
	Options `yaml:",inline"`

	sourceFile string
}

// Options are the top-level yaml fields of a config file.
type Options struct {
	// LogLevel controls the verbosity of the tool, from errors only (1) up
	// to tracing (5). Zero means the default, InfoLevel.
	LogLevel int `yaml:"log-level"`

	// CheckInvariants makes the analyzer validate its internal state after
	// every statement. Violations are programming errors and panic.
	CheckInvariants bool `yaml:"check-invariants"`

	// DialectFile is the path, relative to the config file, of a yaml
	// builtin table extending or replacing the default dialect. Empty means
	// the default EVM dialect.
	DialectFile string `yaml:"dialect-file"`

	// SimplifyDepthLimit bounds the recursion depth of expression
	// simplification. Zero means DefaultSimplifyDepthLimit; past the limit
	// queries conservatively report no knowledge.
	SimplifyDepthLimit int `yaml:"simplify-depth-limit"`

	// ReportDot is a file name to which the final reference graph is
	// written in Graphviz DOT format. Empty disables the report.
	ReportDot string `yaml:"report-dot"`

	// Suppress warnings
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns the default config.
func NewDefault() *Config {
	return &Config{
		sourceFile: "",
		Options: Options{
			LogLevel:           int(InfoLevel),
			CheckInvariants:    false,
			DialectFile:        "",
			SimplifyDepthLimit: DefaultSimplifyDepthLimit,
			ReportDot:          "",
			SilenceWarn:        false,
		},
	}
}

// Load reads a configuration from a file
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	return LoadFromBytes(filename, b)
}

// LoadFromBytes parses a configuration from yaml bytes. The filename anchors
// relative paths appearing in the config, such as dialect-file.
func LoadFromBytes(filename string, b []byte) (*Config, error) {
	cfg := NewDefault()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", filename, err)
	}
	cfg.sourceFile = filename

	// If logLevel has not been specified (i.e. it is 0) set the default to Info
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.LogLevel < int(ErrLevel) || cfg.LogLevel > int(TraceLevel) {
		return nil, fmt.Errorf("log-level %d out of range %d..%d", cfg.LogLevel, ErrLevel, TraceLevel)
	}

	if cfg.SimplifyDepthLimit == 0 {
		cfg.SimplifyDepthLimit = DefaultSimplifyDepthLimit
	}
	if cfg.SimplifyDepthLimit < 0 {
		return nil, fmt.Errorf("simplify-depth-limit must be non-negative, got %d", cfg.SimplifyDepthLimit)
	}

	if cfg.DialectFile != "" {
		if _, err := os.Stat(cfg.RelPath(cfg.DialectFile)); err != nil {
			return nil, fmt.Errorf("dialect-file %s: %w", cfg.DialectFile, err)
		}
	}

	return cfg, nil
}

// SourceFile returns the path of the file this config was loaded from.
func (c Config) SourceFile() string {
	return c.sourceFile
}

// RelPath returns filename path relative to the config source file
func (c Config) RelPath(filename string) string {
	return path.Join(path.Dir(c.sourceFile), filename)
}

// Verbose returns true is the configuration verbosity setting is larger than Info (i.e. Debug or Trace)
func (c Config) Verbose() bool {
	return c.LogLevel >= int(DebugLevel)
}
