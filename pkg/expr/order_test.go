package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/arisgo/ariscore/pkg/expr"
)

func TestCompareIsTotalOrder(t *testing.T) {
	a, b, c := Var("a"), Var("b"), Var("c")
	require.True(t, Less(a, b))
	require.True(t, Less(b, c))
	require.True(t, Less(a, c))
	require.True(t, Equal(a, Var("a")))
	require.False(t, Less(a, a))
}

func TestCompareOrdersByVariantThenFields(t *testing.T) {
	require.True(t, Less(ContradictionExpr{}, TautologyExpr{}))
	require.True(t, Less(TautologyExpr{}, Var("anything")))
	require.True(t, Less(Var("z"), Apply(Var("a"))))
}

func TestCompareStableUnderRepeatSort(t *testing.T) {
	exprs := []Expression{Var("c"), Var("a"), Var("b")}
	first := append([]Expression(nil), exprs...)
	SortExpressions(first)
	second := append([]Expression(nil), first...)
	SortExpressions(second)
	for i := range first {
		require.True(t, Equal(first[i], second[i]))
	}
}
