package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	e "github.com/arisgo/ariscore/pkg/expr"
	. "github.com/arisgo/ariscore/pkg/normalize"
)

// Scenario 8: ~(a & b & c) => ~a | ~b | ~c
func TestNormalizeDemorgansScenario(t *testing.T) {
	in := e.Not(e.Assocbinop(e.OpAnd, e.Var("a"), e.Var("b"), e.Var("c")))
	want := e.Assocbinop(e.OpOr, e.Not(e.Var("a")), e.Not(e.Var("b")), e.Not(e.Var("c")))
	require.True(t, e.Equal(want, NormalizeDemorgans(in)))
}

func TestNormalizeDemorgansLeavesOtherNegationsAlone(t *testing.T) {
	in := e.Not(e.Var("a"))
	require.True(t, e.Equal(in, NormalizeDemorgans(in)))
}

// Scenario 9: A & (A | B) => A
func TestNormalizeAbsorptionScenario(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("A"), e.Assocbinop(e.OpOr, e.Var("A"), e.Var("B")))
	require.True(t, e.Equal(e.Var("A"), NormalizeAbsorption(in)))
}

func TestNormalizeAbsorptionAllEightShapes(t *testing.T) {
	A, B := e.Var("A"), e.Var("B")
	shapes := []e.Expression{
		e.Assocbinop(e.OpAnd, A, e.Assocbinop(e.OpOr, A, B)),
		e.Assocbinop(e.OpAnd, A, e.Assocbinop(e.OpOr, B, A)),
		e.Assocbinop(e.OpAnd, e.Assocbinop(e.OpOr, A, B), A),
		e.Assocbinop(e.OpAnd, e.Assocbinop(e.OpOr, B, A), A),
		e.Assocbinop(e.OpOr, A, e.Assocbinop(e.OpAnd, A, B)),
		e.Assocbinop(e.OpOr, A, e.Assocbinop(e.OpAnd, B, A)),
		e.Assocbinop(e.OpOr, e.Assocbinop(e.OpAnd, A, B), A),
		e.Assocbinop(e.OpOr, e.Assocbinop(e.OpAnd, B, A), A),
	}
	for i, s := range shapes {
		require.True(t, e.Equal(A, NormalizeAbsorption(s)), "shape %d", i)
	}
}

// Scenario 10: a & (b & c) => a & b & c (single flat AssocBinop)
func TestCombineAssociativeOpsScenario(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("a"), e.Assocbinop(e.OpAnd, e.Var("b"), e.Var("c")))
	out := CombineAssociativeOps(in)
	want := e.Assocbinop(e.OpAnd, e.Var("a"), e.Var("b"), e.Var("c"))
	require.True(t, e.Equal(want, out))

	flat, ok := out.(e.AssocBinopExpr)
	require.True(t, ok)
	for _, child := range flat.Exprs {
		if inner, ok := child.(e.AssocBinopExpr); ok {
			require.NotEqual(t, flat.Op, inner.Op)
		}
	}
}

func TestCombineAssociativeOpsLeavesDifferentOpsAlone(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("a"), e.Assocbinop(e.OpOr, e.Var("q"), e.Var("r")))
	out := CombineAssociativeOps(in)
	require.True(t, e.Equal(in, out))
}

func TestSortCommutativeOpsOrdersAssocAndBinop(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("c"), e.Var("a"), e.Var("b"))
	out := SortCommutativeOps(in)
	want := e.Assocbinop(e.OpAnd, e.Var("a"), e.Var("b"), e.Var("c"))
	require.True(t, e.Equal(want, out))

	// Running it twice changes nothing further (spec.md §8 property 7).
	require.True(t, e.Equal(out, SortCommutativeOps(out)))
}

func TestSortCommutativeOpsLeavesImpliesAlone(t *testing.T) {
	in := e.Binop(e.OpImplies, e.Var("z"), e.Var("a"))
	require.True(t, e.Equal(in, SortCommutativeOps(in)))
}

func TestNormalizeIdempotenceCollapsesRepeatedOperands(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("A"), e.Var("A"), e.Var("A"))
	require.True(t, e.Equal(e.Var("A"), NormalizeIdempotence(in)))
}

func TestNormalizeIdempotenceLeavesDistinctOperandsAlone(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("A"), e.Var("B"))
	require.True(t, e.Equal(in, NormalizeIdempotence(in)))
}

func TestNormalizeDoubleNegation(t *testing.T) {
	in := e.Not(e.Not(e.Var("phi")))
	require.True(t, e.Equal(e.Var("phi"), NormalizeDoubleNegation(in)))
}

func TestNormalizeComplementAllFourShapes(t *testing.T) {
	phi := e.Var("phi")
	require.True(t, e.Equal(e.ContradictionExpr{}, NormalizeComplement(e.Assocbinop(e.OpAnd, phi, e.Not(phi)))))
	require.True(t, e.Equal(e.ContradictionExpr{}, NormalizeComplement(e.Assocbinop(e.OpAnd, e.Not(phi), phi))))
	require.True(t, e.Equal(e.TautologyExpr{}, NormalizeComplement(e.Assocbinop(e.OpOr, phi, e.Not(phi)))))
	require.True(t, e.Equal(e.TautologyExpr{}, NormalizeComplement(e.Assocbinop(e.OpOr, e.Not(phi), phi))))
}

func TestNormalizeIdentity(t *testing.T) {
	phi := e.Var("phi")
	require.True(t, e.Equal(phi, NormalizeIdentity(e.Assocbinop(e.OpAnd, phi, e.TautologyExpr{}))))
	require.True(t, e.Equal(phi, NormalizeIdentity(e.Assocbinop(e.OpAnd, e.TautologyExpr{}, phi))))
	require.True(t, e.Equal(phi, NormalizeIdentity(e.Assocbinop(e.OpOr, phi, e.ContradictionExpr{}))))
	require.True(t, e.Equal(phi, NormalizeIdentity(e.Assocbinop(e.OpOr, e.ContradictionExpr{}, phi))))
}

func TestNormalizeAnnihilation(t *testing.T) {
	phi := e.Var("phi")
	require.True(t, e.Equal(e.ContradictionExpr{}, NormalizeAnnihilation(e.Assocbinop(e.OpAnd, phi, e.ContradictionExpr{}))))
	require.True(t, e.Equal(e.ContradictionExpr{}, NormalizeAnnihilation(e.Assocbinop(e.OpAnd, e.ContradictionExpr{}, phi))))
	require.True(t, e.Equal(e.TautologyExpr{}, NormalizeAnnihilation(e.Assocbinop(e.OpOr, phi, e.TautologyExpr{}))))
	require.True(t, e.Equal(e.TautologyExpr{}, NormalizeAnnihilation(e.Assocbinop(e.OpOr, e.TautologyExpr{}, phi))))
}

func TestNormalizeInverse(t *testing.T) {
	require.True(t, e.Equal(e.ContradictionExpr{}, NormalizeInverse(e.Not(e.TautologyExpr{}))))
	require.True(t, e.Equal(e.TautologyExpr{}, NormalizeInverse(e.Not(e.ContradictionExpr{}))))
}

func TestPassesAreIdempotentAtFixedPoint(t *testing.T) {
	in := e.Not(e.Assocbinop(e.OpAnd, e.Var("a"), e.Var("b")))
	for _, p := range DefaultPipeline() {
		once := p.Run(in)
		twice := p.Run(once)
		require.True(t, e.Equal(once, twice), "pass %s not idempotent at its own fixed point", p.Name)
	}
}

func TestRunReportsChangedSteps(t *testing.T) {
	in := e.Assocbinop(e.OpAnd, e.Var("A"), e.Assocbinop(e.OpOr, e.Var("A"), e.Var("B")))
	result, changed := Run(in, DefaultPipeline())
	require.True(t, e.Equal(e.Var("A"), result))
	require.Contains(t, changed, "absorption")
}
