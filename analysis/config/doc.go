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
Package config provides the configuration and logging facilities shared by
the analyses and the command line tools.

Use [Load](filename) to load a configuration from a specific filename.

Use [SetGlobalConfig](filename) to set filename as the global config, and then [LoadGlobal]() to load the global config.

A config file is in yaml format. The top-level fields are the fields of
[Options]. For example:

	log-level: 4
	check-invariants: true
	dialect-file: dialects/ewasm.yaml
	simplify-depth-limit: 32

Relative paths inside a config file, such as dialect-file, are resolved
relative to the config file itself via [Config.RelPath].

# Logging

[NewLogGroup] builds a set of leveled loggers from a loaded config. Library
code takes a *LogGroup instead of writing to standard streams directly, so
that callers control verbosity and destination in one place.
*/
package config
