package semantics

import (
	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
)

// BlockInvalidatesStorage reports whether running the block might invalidate
// previously gathered storage knowledge. Nested function definitions count:
// the check is purely syntactic and errs on the conservative side.
func BlockInvalidatesStorage(d *dialect.Dialect, b *lang.Block) bool {
	return invalidatesStorage(d, b)
}

// ExprInvalidatesStorage reports whether evaluating the expression might
// invalidate previously gathered storage knowledge.
func ExprInvalidatesStorage(d *dialect.Dialect, e lang.Expression) bool {
	return invalidatesStorage(d, e)
}

func invalidatesStorage(d *dialect.Dialect, n lang.Node) bool {
	found := false
	lang.Inspect(n, func(m lang.Node) bool {
		if found {
			return false
		}
		if call, ok := m.(*lang.FunctionCall); ok {
			b, known := d.Builtin(call.FunctionName)
			if !known || b.InvalidatesStorage {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
