package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeInverse rewrites ¬⊤ to ⊥ and ¬⊥ to ⊤.
func NormalizeInverse(e expr.Expression) expr.Expression {
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Not(expr.TautologyExpr{}), RHS: expr.ContradictionExpr{}},
		{LHS: expr.Not(expr.ContradictionExpr{}), RHS: expr.TautologyExpr{}},
	})
}
