package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeComplement rewrites the four 2-ary complement shapes: φ∧¬φ and
// ¬φ∧φ both to ⊥, φ∨¬φ and ¬φ∨φ both to ⊤. Larger AssocBinops are not
// reduced by this pass; split them to 2-ary first if needed.
func NormalizeComplement(e expr.Expression) expr.Expression {
	phi := expr.Var("phi")
	return rewrite.ReducePattern(e, []rewrite.Pattern{
		{LHS: expr.Assocbinop(expr.OpAnd, phi, expr.Not(phi)), RHS: expr.ContradictionExpr{}},
		{LHS: expr.Assocbinop(expr.OpAnd, expr.Not(phi), phi), RHS: expr.ContradictionExpr{}},
		{LHS: expr.Assocbinop(expr.OpOr, phi, expr.Not(phi)), RHS: expr.TautologyExpr{}},
		{LHS: expr.Assocbinop(expr.OpOr, expr.Not(phi), phi), RHS: expr.TautologyExpr{}},
	})
}
