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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tenfinney/solidity/analysis/config"
	"github.com/tenfinney/solidity/analysis/dataflow"
	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/analysis/simplify"
	"github.com/tenfinney/solidity/internal/formatutil"
)

var (
	configPath  = flag.String("config", "", "config file path for the analysis")
	dialectPath = flag.String("dialect", "", "yaml builtin table to use instead of the default EVM dialect")
	checkFlag   = flag.Bool("check", false, "validate the analyzer state after every statement")
	dotPath     = flag.String("dot", "", "write the final reference graph to this file in DOT format")
	verbose     = flag.Bool("v", false, "verbose printing on standard output")
)

const usage = `Report known variable values, references and storage contents of Yul programs.
Usage:
    dataflow [options] <program.json ...>
Examples:
% dataflow -config config.yaml program.json
`

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		_, _ = fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := doMain(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, formatutil.Red("dataflow: "+err.Error()))
		os.Exit(1)
	}
}

func doMain(files []string) error {
	cfg := config.NewDefault()
	if *configPath != "" {
		config.SetGlobalConfig(*configPath)
		loaded, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("could not load config %s: %w", *configPath, err)
		}
		cfg = loaded
	}

	// Command-line parameters override the config file.
	if *verbose {
		cfg.LogLevel = int(config.DebugLevel)
	}
	if *checkFlag {
		cfg.CheckInvariants = true
	}
	if *dotPath != "" {
		cfg.ReportDot = *dotPath
	}
	if cfg.ReportDot != "" && len(files) > 1 {
		return fmt.Errorf("a DOT report covers a single program, got %d", len(files))
	}

	d, err := loadDialect(cfg)
	if err != nil {
		return err
	}

	logger := config.NewLogGroup(cfg)
	logger.Infof("using dialect %s (%d builtins)", d.Name(), d.Size())

	for _, file := range files {
		if err := analyzeFile(logger, cfg, d, file); err != nil {
			return err
		}
	}
	return nil
}

// loadDialect resolves the builtin table: the -dialect flag wins over the
// config's dialect-file, which wins over the default EVM dialect.
func loadDialect(cfg *config.Config) (*dialect.Dialect, error) {
	if *dialectPath != "" {
		return dialect.Load(*dialectPath)
	}
	if cfg.DialectFile != "" {
		return dialect.Load(cfg.RelPath(cfg.DialectFile))
	}
	return dialect.EVM(), nil
}

func analyzeFile(logger *config.LogGroup, cfg *config.Config, d *dialect.Dialect, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read program: %w", err)
	}
	program, err := lang.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("could not decode %s: %w", file, err)
	}

	fmt.Println(formatutil.Faint("Analyzing " + file))

	analyzer := dataflow.NewAnalyzer(d, simplify.NewRules(d), logger, cfg)
	start := time.Now()
	analyzer.Analyze(program)
	logger.Debugf("analysis of %s took %3.4f s", file, time.Since(start).Seconds())

	dataflow.Report(analyzer, os.Stdout, file)

	if cfg.ReportDot != "" {
		if err := writeReferenceGraph(analyzer, cfg.ReportDot); err != nil {
			return err
		}
		logger.Infof("reference graph written to %s", cfg.ReportDot)
	}
	return nil
}

func writeReferenceGraph(analyzer *dataflow.Analyzer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()
	return dataflow.WriteReferenceGraphDOT(analyzer, f, "references")
}
