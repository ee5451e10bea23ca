package normalize

import (
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/rewrite"
)

// NormalizeDemorgans rewrites ¬(A1 ∧ ... ∧ An) to (¬A1) ∨ ... ∨ (¬An), and
// ¬(A1 ∨ ... ∨ An) to (¬A1) ∧ ... ∧ (¬An). Other negations are unchanged.
func NormalizeDemorgans(e expr.Expression) expr.Expression {
	return rewrite.Transform(e, func(n expr.Expression) (expr.Expression, bool) {
		un, ok := n.(expr.UnopExpr)
		if !ok || un.Op != expr.OpNot {
			return n, false
		}

		switch operand := un.Operand.(type) {
		case expr.AssocBinopExpr:
			var target expr.AssocSymbol
			switch operand.Op {
			case expr.OpAnd:
				target = expr.OpOr
			case expr.OpOr:
				target = expr.OpAnd
			default:
				return n, false
			}
			negated := make([]expr.Expression, len(operand.Exprs))
			for i, sub := range operand.Exprs {
				negated[i] = expr.Not(sub)
			}
			return expr.AssocBinopExpr{Op: target, Exprs: negated}, true
		default:
			return n, false
		}
	})
}
