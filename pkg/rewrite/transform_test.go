package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	e "github.com/arisgo/ariscore/pkg/expr"
	. "github.com/arisgo/ariscore/pkg/rewrite"
)

func TestTransformAppliesToFixedPoint(t *testing.T) {
	// Rewrite every Var named "x" to "y", then every "y" to "z": a single
	// pass over the tree applies the rule once per node, so Transform must
	// re-run until stable.
	rule := func(n e.Expression) (e.Expression, bool) {
		if v, ok := n.(e.VarExpr); ok {
			switch v.Name {
			case "x":
				return e.Var("y"), true
			case "y":
				return e.Var("z"), true
			}
		}
		return n, false
	}

	out := Transform(e.Var("x"), rule)
	require.True(t, e.Equal(e.Var("z"), out))
}

func TestTransformRecursesIntoChildren(t *testing.T) {
	rule := func(n e.Expression) (e.Expression, bool) {
		if v, ok := n.(e.VarExpr); ok && v.Name == "a" {
			return e.Var("b"), true
		}
		return n, false
	}

	in := e.Assocbinop(e.OpAnd, e.Var("a"), e.Not(e.Var("a")))
	out := Transform(in, rule)
	want := e.Assocbinop(e.OpAnd, e.Var("b"), e.Not(e.Var("b")))
	require.True(t, e.Equal(want, out))
}

func TestTransformNoOpLeavesUnchanged(t *testing.T) {
	rule := func(n e.Expression) (e.Expression, bool) { return n, false }
	in := e.Forall("x", e.Apply(e.Var("p"), e.Var("x")))
	require.True(t, e.Equal(in, Transform(in, rule)))
}

func TestReducePatternDoubleNegation(t *testing.T) {
	// Scenario grounded in expression.rs::normalize_doublenegation:
	// ~~phi => phi.
	pattern := Pattern{
		LHS: e.Not(e.Not(e.Var("phi"))),
		RHS: e.Var("phi"),
	}
	in := e.Not(e.Not(e.Predicate("p", "x")))
	out := ReducePattern(in, []Pattern{pattern})
	require.True(t, e.Equal(e.Predicate("p", "x"), out))
}

func TestReducePatternVariableNameCollisionSafe(t *testing.T) {
	// The subject itself uses the name "phi" as an ordinary variable; the
	// pattern-variable renaming discipline must keep that from confusing
	// the matcher.
	pattern := Pattern{
		LHS: e.Not(e.Not(e.Var("phi"))),
		RHS: e.Var("phi"),
	}
	in := e.Assocbinop(e.OpAnd, e.Var("phi"), e.Not(e.Not(e.Var("phi"))))
	out := ReducePattern(in, []Pattern{pattern})
	want := e.Assocbinop(e.OpAnd, e.Var("phi"), e.Var("phi"))
	require.True(t, e.Equal(want, out))
}

func TestReducePatternPanicsOnEscapingRHSFreeVar(t *testing.T) {
	require.Panics(t, func() {
		ReducePattern(e.Var("x"), []Pattern{{
			LHS: e.Var("phi"),
			RHS: e.Var("unbound"),
		}})
	})
}
