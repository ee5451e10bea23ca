package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeDoubleNegation rewrites ¬¬φ to φ.
func NormalizeDoubleNegation(e expr.Expression) expr.Expression {
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Not(expr.Not(expr.Var("phi"))), RHS: expr.Var("phi")},
	})
}
