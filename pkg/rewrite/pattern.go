package rewrite

import (
	"fmt"
	"sort"

	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/unify"
)

// Pattern is a (match, replace) pair used by ReducePattern: any subtree of
// the subject that unifies with LHS on exactly its pattern variables is
// replaced by RHS with that unifier's bindings applied.
type Pattern struct {
	LHS, RHS expr.Expression
}

// preparedPattern is a Pattern whose free variables have been renamed fresh
// with respect to the subject expression, so that a subject variable can
// never accidentally collide with a pattern metavariable name.
type preparedPattern struct {
	lhs, rhs    expr.Expression
	patternVars map[string]struct{}
}

// ReducePattern rewrites e to a fixed point using patterns as local rewrite
// rules (spec.md §4.6). It panics if a pattern's RHS has a free variable
// that is not free in its LHS — that is a programmer error in the pattern
// table, not a property of any particular subject expression.
func ReducePattern(e expr.Expression, patterns []Pattern) expr.Expression {
	subjectFree := expr.FreeVars(e)
	prepared := make([]preparedPattern, len(patterns))

	for i, p := range patterns {
		lhs, rhs := p.LHS, p.RHS
		freeLHS := expr.FreeVars(lhs)
		freeRHS := expr.FreeVars(rhs)
		for v := range freeRHS {
			if _, ok := freeLHS[v]; !ok {
				panic(fmt.Sprintf("rewrite: pattern %d: replacement is free in %q, which is not free in the pattern", i, v))
			}
		}

		names := make([]string, 0, len(freeLHS))
		for v := range freeLHS {
			names = append(names, v)
		}
		sort.Strings(names)

		patternVars := make(map[string]struct{}, len(names))
		for _, v := range names {
			fresh := expr.Gensym(v, subjectFree)
			lhs = expr.Subst(lhs, v, expr.Var(fresh))
			rhs = expr.Subst(rhs, v, expr.Var(fresh))
			patternVars[fresh] = struct{}{}
		}

		prepared[i] = preparedPattern{lhs: lhs, rhs: rhs, patternVars: patternVars}
	}

	return Transform(e, func(n expr.Expression) (expr.Expression, bool) {
		for _, pp := range prepared {
			sub, err := unify.Unify([]unify.Constraint{{Left: pp.lhs, Right: n}})
			if err != nil {
				continue
			}
			if result, ok := applyIfExactCoverage(sub, pp); ok {
				return result, true
			}
		}
		return n, false
	})
}

// applyIfExactCoverage accepts a unifier result only if every binding names
// a pattern variable of pp, there is exactly one binding per pattern
// variable, and every pattern variable got one. This is the discipline that
// stops the unifier from "solving backward" into the subject expression.
func applyIfExactCoverage(sub unify.Substitution, pp preparedPattern) (expr.Expression, bool) {
	seen := make(map[string]expr.Expression, len(pp.patternVars))
	for _, pair := range sub {
		if _, isPatternVar := pp.patternVars[pair.Name]; !isPatternVar {
			return nil, false
		}
		if _, dup := seen[pair.Name]; dup {
			return nil, false
		}
		seen[pair.Name] = pair.Value
	}
	if len(seen) != len(pp.patternVars) {
		return nil, false
	}

	result := pp.rhs
	for name, value := range seen {
		result = expr.Subst(result, name, value)
	}
	return result, true
}
