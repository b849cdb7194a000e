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

// Package dialect describes the builtin functions a program may call and the
// semantic capabilities of each. The analyses never hard-code knowledge about
// individual builtins; everything they assume about a call goes through a
// Dialect lookup, and a name the dialect does not know yields the most
// pessimistic capabilities.
package dialect

import (
	"github.com/tenfinney/solidity/analysis/lang"
)

// A Builtin describes one builtin function of a dialect.
//
// The zero value is the right answer for an unknown call: not movable, not
// side-effect free, invalidating storage knowledge, never terminating.
type Builtin struct {
	Name       lang.Name
	Parameters int
	Returns    int

	// Movable builtins can be freely duplicated or reordered: the result
	// depends only on the arguments, with no reads of mutable context.
	Movable bool
	// SideEffectFree builtins can be dropped if their results are unused.
	// Reads of mutable context (storage, memory, gas) are side-effect free
	// without being movable.
	SideEffectFree bool
	// InvalidatesStorage marks builtins after which previously gathered
	// storage knowledge may no longer hold.
	InvalidatesStorage bool
	// Terminating builtins never return control to the caller.
	Terminating bool
	// StorageStore marks the plain store-to-slot primitive taking
	// (slot, value) operands.
	StorageStore bool
}

// Pessimistic returns the capabilities assumed for calls the dialect does not
// know: nothing may be moved or dropped, and storage knowledge dies.
func Pessimistic(name lang.Name) Builtin {
	return Builtin{Name: name, InvalidatesStorage: true}
}

// A Dialect is an immutable table of builtins keyed by name.
type Dialect struct {
	name     string
	builtins map[lang.Name]Builtin
}

// Name returns the dialect's name.
func (d *Dialect) Name() string {
	return d.name
}

// Builtin looks up a builtin function by name. The second return value is
// false when the name is not a builtin of this dialect; callers must then
// treat the call pessimistically (see Pessimistic).
func (d *Dialect) Builtin(name lang.Name) (Builtin, bool) {
	b, ok := d.builtins[name]
	return b, ok
}

// Size returns the number of builtins in the dialect.
func (d *Dialect) Size() int {
	return len(d.builtins)
}

// The constructors below keep the EVM table readable: each row states only
// what is true for its group.

func pure(name lang.Name, params int) Builtin {
	return Builtin{Name: name, Parameters: params, Returns: 1, Movable: true, SideEffectFree: true}
}

func view(name lang.Name, params int) Builtin {
	return Builtin{Name: name, Parameters: params, Returns: 1, SideEffectFree: true}
}

func effect(name lang.Name, params, returns int) Builtin {
	return Builtin{Name: name, Parameters: params, Returns: returns}
}

func clobber(name lang.Name, params, returns int) Builtin {
	return Builtin{Name: name, Parameters: params, Returns: returns, InvalidatesStorage: true}
}

func halt(name lang.Name, params int) Builtin {
	return Builtin{Name: name, Parameters: params, Terminating: true}
}

// EVM returns the default dialect: the EVM builtin set.
//
// Pure computation is movable; reads of mutable context (memory, storage,
// balances, gas) are side-effect free but pinned in place; anything that can
// run foreign code in this contract's storage context invalidates storage
// knowledge. staticcall stays out of the invalidating group because it cannot
// write state.
func EVM() *Dialect {
	table := []Builtin{
		// arithmetic, comparison, bitwise
		pure("add", 2), pure("sub", 2), pure("mul", 2), pure("div", 2),
		pure("sdiv", 2), pure("mod", 2), pure("smod", 2), pure("exp", 2),
		pure("addmod", 3), pure("mulmod", 3), pure("signextend", 2),
		pure("lt", 2), pure("gt", 2), pure("slt", 2), pure("sgt", 2),
		pure("eq", 2), pure("iszero", 1), pure("and", 2), pure("or", 2),
		pure("xor", 2), pure("not", 1), pure("byte", 2), pure("shl", 2),
		pure("shr", 2), pure("sar", 2),
		// execution-constant environment
		pure("address", 0), pure("origin", 0), pure("caller", 0),
		pure("callvalue", 0), pure("calldatasize", 0), pure("calldataload", 1),
		pure("codesize", 0), pure("gasprice", 0), pure("coinbase", 0),
		pure("timestamp", 0), pure("number", 0), pure("difficulty", 0),
		pure("gaslimit", 0), pure("chainid", 0),
		// reads of mutable context
		view("mload", 1), view("sload", 1), view("keccak256", 2),
		view("balance", 1), view("selfbalance", 0), view("extcodesize", 1),
		view("extcodehash", 1), view("returndatasize", 0), view("msize", 0),
		view("pc", 0), view("gas", 0),
		// memory and log writers
		effect("mstore", 2, 0), effect("mstore8", 2, 0),
		effect("calldatacopy", 3, 0), effect("codecopy", 3, 0),
		effect("extcodecopy", 4, 0), effect("returndatacopy", 3, 0),
		effect("log0", 2, 0), effect("log1", 3, 0), effect("log2", 4, 0),
		effect("log3", 5, 0), effect("log4", 6, 0),
		effect("staticcall", 6, 1),
		{Name: "pop", Parameters: 1, Movable: true, SideEffectFree: true},
		// storage writes and foreign code in our storage context
		clobber("call", 7, 1), clobber("callcode", 7, 1),
		clobber("delegatecall", 6, 1), clobber("create", 3, 1),
		clobber("create2", 4, 1),
		// control-flow terminators
		halt("stop", 0), halt("return", 2), halt("revert", 2),
		halt("selfdestruct", 1), halt("invalid", 0),
	}
	table = append(table, Builtin{
		Name: "sstore", Parameters: 2, InvalidatesStorage: true, StorageStore: true,
	})
	return New("evm", table)
}

// New builds a dialect from a builtin table. Later entries override earlier
// ones with the same name.
func New(name string, table []Builtin) *Dialect {
	d := &Dialect{name: name, builtins: make(map[lang.Name]Builtin, len(table))}
	for _, b := range table {
		d.builtins[b.Name] = b
	}
	return d
}
