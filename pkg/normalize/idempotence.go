package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeIdempotence collapses an AssocBinop{And|Or} whose elements are
// all pairwise structurally equal down to that single element: A & A & A
// becomes A.
func NormalizeIdempotence(e expr.Expression) expr.Expression {
	return rewrite.Transform(e, func(n expr.Expression) (expr.Expression, bool) {
		x, ok := n.(expr.AssocBinopExpr)
		if !ok || (x.Op != expr.OpAnd && x.Op != expr.OpOr) {
			return n, false
		}
		if len(x.Exprs) == 0 {
			return n, false
		}
		for i := 1; i < len(x.Exprs); i++ {
			if !expr.Equal(x.Exprs[i-1], x.Exprs[i]) {
				return n, false
			}
		}
		return x.Exprs[0], true
	})
}
