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

package lang

import (
	"math/big"
	"strings"
)

// maxWord is the largest value a 256-bit word can hold.
var maxWord = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Word returns the 256-bit word the literal denotes: the value of a decimal
// or 0x-prefixed hexadecimal number literal, one or zero for a boolean.
// String literals and numbers outside the word range have no word value.
func (l *Literal) Word() (*big.Int, bool) {
	switch l.Kind {
	case BooleanLiteral:
		if l.Value == "true" {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	case NumberLiteral:
		var z *big.Int
		var ok bool
		if strings.HasPrefix(l.Value, "0x") || strings.HasPrefix(l.Value, "0X") {
			z, ok = new(big.Int).SetString(l.Value[2:], 16)
		} else {
			z, ok = new(big.Int).SetString(l.Value, 10)
		}
		if !ok || z.Sign() < 0 || z.Cmp(maxWord) > 0 {
			return nil, false
		}
		return z, true
	default:
		return nil, false
	}
}
