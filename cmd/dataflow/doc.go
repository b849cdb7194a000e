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

/*
The dataflow tool analyzes Yul programs in the JSON interchange format and
reports, for the end of each program, the variable values the analysis could
prove, the references between variables, and the known storage contents.

Usage:

	dataflow [flags] program.json ...

The flags are:

	-config path      a path to a yaml configuration file

	-dialect path     a yaml builtin table to use instead of the default EVM
	                  dialect; overrides the config's dialect-file

	-check            validate the analyzer state after every statement;
	                  violations indicate a bug in the analysis and panic

	-dot file         write the final reference graph to file in Graphviz DOT
	                  format; accepts a single program

	-v                verbose mode, overrides the config's log-level
*/
package main
