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

package simplify

import (
	"math/big"

	"github.com/tenfinney/solidity/analysis/lang"
)

// Word arithmetic follows EVM semantics: 256-bit words wrapping on overflow,
// division and modulo by zero yielding zero, and signed variants reading
// words as two's complement.

var (
	two256   = new(big.Int).Lsh(big.NewInt(1), 256)
	two255   = new(big.Int).Lsh(big.NewInt(1), 255)
	maxWord  = new(big.Int).Sub(two256, big.NewInt(1))
	wordBits = 256
)

func wrap(z *big.Int) *big.Int {
	return z.Mod(z, two256)
}

func toSigned(x *big.Int) *big.Int {
	if x.Cmp(two255) >= 0 {
		return new(big.Int).Sub(x, two256)
	}
	return new(big.Int).Set(x)
}

func bool01(b bool) *big.Int {
	if b {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// evalBuiltin computes a pure builtin over literal words. The second result
// is false for builtins this evaluator does not fold.
//
//gocyclo:ignore
func evalBuiltin(name lang.Name, args []*big.Int) (*big.Int, bool) {
	a := func(i int) *big.Int { return args[i] }
	switch name {
	case "add":
		return wrap(new(big.Int).Add(a(0), a(1))), true
	case "sub":
		return wrap(new(big.Int).Sub(a(0), a(1))), true
	case "mul":
		return wrap(new(big.Int).Mul(a(0), a(1))), true
	case "div":
		if a(1).Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Div(a(0), a(1)), true
	case "sdiv":
		if a(1).Sign() == 0 {
			return big.NewInt(0), true
		}
		return wrap(new(big.Int).Quo(toSigned(a(0)), toSigned(a(1)))), true
	case "mod":
		if a(1).Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Mod(a(0), a(1)), true
	case "smod":
		if a(1).Sign() == 0 {
			return big.NewInt(0), true
		}
		return wrap(new(big.Int).Rem(toSigned(a(0)), toSigned(a(1)))), true
	case "exp":
		return new(big.Int).Exp(a(0), a(1), two256), true
	case "addmod":
		if a(2).Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Mod(new(big.Int).Add(a(0), a(1)), a(2)), true
	case "mulmod":
		if a(2).Sign() == 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Mod(new(big.Int).Mul(a(0), a(1)), a(2)), true
	case "lt":
		return bool01(a(0).Cmp(a(1)) < 0), true
	case "gt":
		return bool01(a(0).Cmp(a(1)) > 0), true
	case "slt":
		return bool01(toSigned(a(0)).Cmp(toSigned(a(1))) < 0), true
	case "sgt":
		return bool01(toSigned(a(0)).Cmp(toSigned(a(1))) > 0), true
	case "eq":
		return bool01(a(0).Cmp(a(1)) == 0), true
	case "iszero":
		return bool01(a(0).Sign() == 0), true
	case "and":
		return new(big.Int).And(a(0), a(1)), true
	case "or":
		return new(big.Int).Or(a(0), a(1)), true
	case "xor":
		return new(big.Int).Xor(a(0), a(1)), true
	case "not":
		return new(big.Int).Sub(maxWord, a(0)), true
	case "shl":
		if a(0).Cmp(big.NewInt(int64(wordBits))) >= 0 {
			return big.NewInt(0), true
		}
		return wrap(new(big.Int).Lsh(a(1), uint(a(0).Uint64()))), true
	case "shr":
		if a(0).Cmp(big.NewInt(int64(wordBits))) >= 0 {
			return big.NewInt(0), true
		}
		return new(big.Int).Rsh(a(1), uint(a(0).Uint64())), true
	case "sar":
		s := toSigned(a(1))
		if a(0).Cmp(big.NewInt(int64(wordBits))) >= 0 {
			if s.Sign() < 0 {
				return new(big.Int).Set(maxWord), true
			}
			return big.NewInt(0), true
		}
		return wrap(new(big.Int).Rsh(s, uint(a(0).Uint64()))), true
	case "byte":
		if a(0).Cmp(big.NewInt(32)) >= 0 {
			return big.NewInt(0), true
		}
		shift := uint(8 * (31 - a(0).Uint64()))
		b := new(big.Int).Rsh(a(1), shift)
		return b.And(b, big.NewInt(0xff)), true
	case "signextend":
		if a(0).Cmp(big.NewInt(31)) >= 0 {
			return new(big.Int).Set(a(1)), true
		}
		bit := uint(8*a(0).Uint64() + 7)
		mask := new(big.Int).Lsh(big.NewInt(1), bit+1)
		mask.Sub(mask, big.NewInt(1))
		low := new(big.Int).And(a(1), mask)
		if a(1).Bit(int(bit)) == 1 {
			ext := new(big.Int).Sub(two256, new(big.Int).Add(mask, big.NewInt(1)))
			return low.Add(low, ext), true
		}
		return low, true
	default:
		return nil, false
	}
}
