package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeAbsorption covers the eight 2-ary absorption shapes: both
// operand orders of A∧(A∨B) => A and A∨(A∧B) => A, at both nesting levels.
func NormalizeAbsorption(e expr.Expression) expr.Expression {
	a, b := expr.Var("A"), expr.Var("B")
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Assocbinop(expr.OpAnd, a, expr.Assocbinop(expr.OpOr, a, b)), RHS: a},
		{LHS: expr.Assocbinop(expr.OpAnd, a, expr.Assocbinop(expr.OpOr, b, a)), RHS: a},
		{LHS: expr.Assocbinop(expr.OpAnd, expr.Assocbinop(expr.OpOr, a, b), a), RHS: a},
		{LHS: expr.Assocbinop(expr.OpAnd, expr.Assocbinop(expr.OpOr, b, a), a), RHS: a},

		{LHS: expr.Assocbinop(expr.OpOr, a, expr.Assocbinop(expr.OpAnd, a, b)), RHS: a},
		{LHS: expr.Assocbinop(expr.OpOr, a, expr.Assocbinop(expr.OpAnd, b, a)), RHS: a},
		{LHS: expr.Assocbinop(expr.OpOr, expr.Assocbinop(expr.OpAnd, a, b), a), RHS: a},
		{LHS: expr.Assocbinop(expr.OpOr, expr.Assocbinop(expr.OpAnd, b, a), a), RHS: a},
	})
}
