package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeAnnihilation rewrites the 2-ary annihilator shapes: φ∧⊥ and
// ⊥∧φ both to ⊥, φ∨⊤ and ⊤∨φ both to ⊤.
func NormalizeAnnihilation(e expr.Expression) expr.Expression {
	phi := expr.Var("phi")
	top := expr.TautologyExpr{}
	bot := expr.ContradictionExpr{}
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Assocbinop(expr.OpAnd, phi, bot), RHS: bot},
		{LHS: expr.Assocbinop(expr.OpAnd, bot, phi), RHS: bot},
		{LHS: expr.Assocbinop(expr.OpOr, phi, top), RHS: top},
		{LHS: expr.Assocbinop(expr.OpOr, top, phi), RHS: top},
	})
}
