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
The dataflow package implements the knowledge-tracking core shared by the
optimization passes: while it traverses a program it maintains which
variables hold a syntactically known value, which variables those values
read, and which storage slots hold which variables. The approximation is
sound along every execution path; at control-flow joins only the knowledge
both sides agree on survives, and any effect that might destroy a fact
conservatively discards it.

The central object is the [Analyzer]. Assuming a dialect d, a rule set from
the simplify package, a logger log and a configuration cfg, run it over a
program with:

	analyzer := dataflow.NewAnalyzer(d, simplify.NewRules(d), log, cfg)
	analyzer.Analyze(program)

A pass that wants to rewrite the program while the analysis runs sets the
VisitExpr hook before calling [Analyzer.Analyze]; the hook receives a
pointer to every expression slot after its children were traversed and may
substitute through it. The current knowledge is available at any point
through [Analyzer.Value], [Analyzer.References], [Analyzer.StorageValue]
and the [KnowledgeBase] returned by [Analyzer.Knowledge].

Setting check-invariants in the configuration makes the analyzer re-run
[CheckInvariants] after every statement, trading speed for an immediate
panic when the internal state degrades.
*/
package dataflow
