// Package rewrite provides the generic fixed-point tree transformer and the
// pattern-based rewrite driver built on top of it (spec.md §4.5-§4.6).
package rewrite

import "github.com/arisgo/ariscore/pkg/expr"

// Rule is a local rewrite step: given a node, it either returns the node
// unchanged with changed=false, or a replacement with changed=true. A rule
// must be progress-free on nodes it does not rewrite, or Transform will not
// terminate; that is a contract violation of the rule, not of Transform.
type Rule func(e expr.Expression) (expr.Expression, bool)

// Transform applies rule to e and to every sub-expression, repeating the
// whole pass until a fixed point (no further change) is reached.
func Transform(e expr.Expression, rule Rule) expr.Expression {
	result, changed := step(e, rule)
	for changed {
		result, changed = step(result, rule)
	}
	return result
}

// step applies rule once to e, then recurses into the (possibly rewritten)
// result's immediate children, returning the combined changed flag.
func step(e expr.Expression, rule Rule) (expr.Expression, bool) {
	e1, c1 := rule(e)
	e2, c2 := recurseChildren(e1, rule)
	return e2, c1 || c2
}

// recurseChildren applies step to every immediate sub-expression of e and
// rebuilds e from the results. Leaves (Contradiction, Tautology, Var) have
// no children and are returned unchanged.
func recurseChildren(e expr.Expression, rule Rule) (expr.Expression, bool) {
	switch x := e.(type) {
	case expr.ContradictionExpr, expr.TautologyExpr, expr.VarExpr:
		return e, false

	case expr.ApplyExpr:
		head, hc := step(x.Head, rule)
		args := make([]expr.Expression, len(x.Args))
		changed := hc
		for i, a := range x.Args {
			na, ac := step(a, rule)
			args[i] = na
			changed = changed || ac
		}
		return expr.ApplyExpr{Head: head, Args: args}, changed

	case expr.UnopExpr:
		operand, c := step(x.Operand, rule)
		return expr.UnopExpr{Op: x.Op, Operand: operand}, c

	case expr.BinopExpr:
		left, lc := step(x.Left, rule)
		right, rc := step(x.Right, rule)
		return expr.BinopExpr{Op: x.Op, Left: left, Right: right}, lc || rc

	case expr.AssocBinopExpr:
		exprs := make([]expr.Expression, len(x.Exprs))
		changed := false
		for i, sub := range x.Exprs {
			ne, c := step(sub, rule)
			exprs[i] = ne
			changed = changed || c
		}
		return expr.AssocBinopExpr{Op: x.Op, Exprs: exprs}, changed

	case expr.QuantifierExpr:
		body, c := step(x.Body, rule)
		return expr.QuantifierExpr{Op: x.Op, Bound: x.Bound, Body: body}, c

	default:
		panic("rewrite: recurseChildren: unhandled variant")
	}
}
