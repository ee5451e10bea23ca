// Package normalize implements the ten normalization passes of spec.md
// §4.7, each built by composing pkg/rewrite's Transform or ReducePattern
// with a local rule specific to that pass.
package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// SortCommutativeOps canonicalizes the operand order of commutative Binops
// and AssocBinops: Binop operands swap if Left > Right, AssocBinop children
// sort ascending. Running it twice is a no-op (spec.md §8 property 7).
func SortCommutativeOps(e expr.Expression) expr.Expression {
	return rewrite.Transform(e, func(n expr.Expression) (expr.Expression, bool) {
		switch x := n.(type) {
		case expr.BinopExpr:
			if !x.Op.IsCommutative() {
				return x, false
			}
			if expr.Less(x.Right, x.Left) {
				return expr.BinopExpr{Op: x.Op, Left: x.Right, Right: x.Left}, true
			}
			return x, false

		case expr.AssocBinopExpr:
			if !x.Op.IsCommutative() || expr.IsSorted(x.Exprs) {
				return x, false
			}
			sorted := make([]expr.Expression, len(x.Exprs))
			copy(sorted, x.Exprs)
			expr.SortExpressions(sorted)
			return expr.AssocBinopExpr{Op: x.Op, Exprs: sorted}, true

		default:
			return n, false
		}
	})
}
