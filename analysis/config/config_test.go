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
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

//go:embed testdata
var testfsys embed.FS

func loadFromTestDir(filename string) (string, *Config, error) {
	filename = filepath.Join("testdata", filename)
	b, err := testfsys.ReadFile(filename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file %v: %v", filename, err)
	}
	config, err := LoadFromBytes(filename, b)
	if err != nil {
		return filename, nil, err
	}
	return filename, config, nil
}

func testLoadOneFile(t *testing.T, filename string, expected Config) {
	t.Helper()
	configFileName, config, err := loadFromTestDir(filename)
	if err != nil {
		t.Errorf("Error loading %q: %v", configFileName, err)
		return
	}
	c1, err1 := yaml.Marshal(config)
	c2, err2 := yaml.Marshal(expected)
	if err1 != nil {
		t.Errorf("Error marshalling %v", config)
	}
	if err2 != nil {
		t.Errorf("Error marshalling %v", expected)
	}
	if string(c1) != string(c2) {
		t.Errorf("Error in %q:\n%q is not\n%q\n", filename, c1, c2)
	}
}

func TestNewDefault(t *testing.T) {
	c := NewDefault()
	if c.LogLevel != int(InfoLevel) {
		t.Errorf("Default log level should be info")
	}
	if c.SimplifyDepthLimit != DefaultSimplifyDepthLimit {
		t.Errorf("Default simplify depth limit should be %d", DefaultSimplifyDepthLimit)
	}
	if c.CheckInvariants {
		t.Errorf("Default for CheckInvariants should be false")
	}
	if c.Verbose() {
		t.Errorf("Default config should not be verbose")
	}
}

func TestLoadFullConfig(t *testing.T) {
	fileName, config, err := loadFromTestDir("full.yaml")
	if config == nil || err != nil {
		t.Fatalf("Could not load %s: %v", fileName, err)
	}
	if config.LogLevel != int(TraceLevel) {
		t.Error("full config should have set trace")
	}
	if !config.CheckInvariants {
		t.Error("full config should have set check-invariants")
	}
	if config.DialectFile != "dialect.yaml" {
		t.Error("full config should have set dialect-file")
	}
	if config.SimplifyDepthLimit != 32 {
		t.Error("full config should set simplify-depth-limit to 32")
	}
	if config.ReportDot != "refs.dot" {
		t.Error("full config should have set report-dot")
	}
	if !config.SilenceWarn {
		t.Error("full config should have silence-warn set to true")
	}
	if !config.Verbose() {
		t.Error("full config should be verbose")
	}
	if config.RelPath(config.DialectFile) != filepath.Join("testdata", "dialect.yaml") {
		t.Errorf("dialect file should resolve relative to the config, got %s",
			config.RelPath(config.DialectFile))
	}
}

func TestLoadBadFormatFileReturnsError(t *testing.T) {
	_, config, err := loadFromTestDir("bad_format.yaml")
	if config != nil || err == nil {
		t.Errorf("Expected error and nil value when trying to load a badly formatted file.")
	}
}

func TestLoadRejectsLogLevelOutOfRange(t *testing.T) {
	_, config, err := loadFromTestDir("bad_level.yaml")
	if config != nil || err == nil {
		t.Errorf("Expected error and nil value for log-level outside the defined levels.")
	}
}

func TestLoadRejectsMissingDialectFile(t *testing.T) {
	b := []byte("dialect-file: does-not-exist.yaml\n")
	config, err := LoadFromBytes(filepath.Join("testdata", "inline.yaml"), b)
	if config != nil || err == nil {
		t.Errorf("Expected error and nil value for a dialect file that does not exist.")
	}
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "no-such-config.yaml"))
	if c != nil || err == nil {
		t.Errorf("Expected error and nil value when trying to load non existent file.")
	}
}

func TestGlobalConfig(t *testing.T) {
	SetGlobalConfig(filepath.Join("testdata", "full.yaml"))
	config, err := LoadGlobal()
	if err != nil {
		t.Fatalf("failed to load global config: %v", err)
	}
	if config.LogLevel != int(TraceLevel) {
		t.Error("global config should match the file it was set to")
	}
}

func TestLogGroupLevels(t *testing.T) {
	c := NewDefault()
	c.LogLevel = int(WarnLevel)
	logger := NewLogGroup(c)
	buf := &bytes.Buffer{}
	logger.SetAllOutput(buf)
	logger.SetAllFlags(0)
	logger.Infof("hidden %d", 1)
	logger.Debugf("hidden %d", 2)
	logger.Warnf("shown %d", 3)
	logger.Errorf("shown %d", 4)
	out := buf.String()
	if out != "[WARN] shown 3\n[ERROR] shown 4\n" {
		t.Errorf("unexpected log output: %q", out)
	}
	if logger.Level() != WarnLevel {
		t.Errorf("Level() = %d, expected %d", logger.Level(), WarnLevel)
	}
}

func TestLogGroupSilenceWarn(t *testing.T) {
	c := NewDefault()
	c.LogLevel = int(TraceLevel)
	c.SilenceWarn = true
	logger := NewLogGroup(c)
	buf := &bytes.Buffer{}
	logger.GetDebug().SetOutput(buf)
	logger.GetDebug().SetFlags(0)
	logger.Warnf("should not appear")
	logger.Debugf("appears")
	if buf.String() != "[DEBUG] appears\n" {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}
