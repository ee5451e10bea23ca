package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// CombineAssociativeOps flattens nested AssocBinops of the same op: any
// child that is itself an AssocBinop with a matching op is spliced into the
// parent's children list in place. After this pass, no AssocBinop has a
// child AssocBinop with the same op (spec.md §8 property 8).
func CombineAssociativeOps(e expr.Expression) expr.Expression {
	return rewrite.Transform(e, func(n expr.Expression) (expr.Expression, bool) {
		x, ok := n.(expr.AssocBinopExpr)
		if !ok {
			return n, false
		}

		result := make([]expr.Expression, 0, len(x.Exprs))
		combined := false
		for _, child := range x.Exprs {
			if inner, ok := child.(expr.AssocBinopExpr); ok && inner.Op == x.Op {
				result = append(result, inner.Exprs...)
				combined = true
			} else {
				result = append(result, child)
			}
		}
		if !combined {
			return x, false
		}
		return expr.AssocBinopExpr{Op: x.Op, Exprs: result}, true
	})
}
