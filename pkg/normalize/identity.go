package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeIdentity rewrites the 2-ary identity-element shapes: φ∧⊤ and
// ⊤∧φ both to φ, φ∨⊥ and ⊥∨φ both to φ.
func NormalizeIdentity(e expr.Expression) expr.Expression {
	phi := expr.Var("phi")
	top := expr.TautologyExpr{}
	bot := expr.ContradictionExpr{}
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Assocbinop(expr.OpAnd, phi, top), RHS: phi},
		{LHS: expr.Assocbinop(expr.OpAnd, top, phi), RHS: phi},
		{LHS: expr.Assocbinop(expr.OpOr, phi, bot), RHS: phi},
		{LHS: expr.Assocbinop(expr.OpOr, bot, phi), RHS: phi},
	})
}
