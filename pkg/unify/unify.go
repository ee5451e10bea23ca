// Package unify implements first-order unification over pkg/expr trees:
// Martelli-Montanari style constraint solving with an occurs check and
// alpha-equivalence for quantifiers.
package unify

import (
	"errors"

	"github.com/arisgo/ariscore/internal/config"
	"github.com/arisgo/ariscore/pkg/expr"
)

// ErrNoUnifier is returned when no substitution can make the constraint set
// hold: an occurs-check violation, a shape mismatch, or a quantifier-bound
// variable escaping its scope.
var ErrNoUnifier = errors.New("unify: no unifier")

// Constraint is a single equality obligation between two expressions.
type Constraint struct {
	Left, Right expr.Expression
}

// Pair is one binding in a returned Substitution.
type Pair struct {
	Name  string
	Value expr.Expression
}

// Substitution is an ordered sequence of name/expression bindings. It
// represents a composable substitution built back-to-front: applying it
// means substituting the pairs from last to first (see Substitution.Apply).
type Substitution []Pair

// Apply substitutes the bindings into e from the last pair to the first,
// the reverse of the order in which Unify appends them, so that a binding
// whose value mentions a later-solved variable is resolved by that
// variable's own binding.
func (s Substitution) Apply(e expr.Expression) expr.Expression {
	for i := len(s) - 1; i >= 0; i-- {
		e = expr.Subst(e, s[i].Name, s[i].Value)
	}
	return e
}

// Unify attempts to find a Substitution that makes every pair of
// expressions in constraints structurally equal (modulo alpha-equivalence
// for quantifier subtrees). It returns ErrNoUnifier if none exists.
//
// The constraint set is drained in a deterministic order (the constraint
// whose String() rendering sorts first goes next; see pickConstraint) so
// that results are reproducible across runs; spec.md
// §4.4 permits any deterministic order since the existence of a unifier
// must not depend on the choice.
func Unify(constraints []Constraint) (Substitution, error) {
	if len(constraints) == 0 {
		return Substitution{}, nil
	}

	rest := make([]Constraint, len(constraints)-1)
	idx := pickConstraint(constraints)
	copy(rest, constraints[:idx])
	copy(rest[idx:], constraints[idx+1:])
	c := constraints[idx]

	s, t := c.Left, c.Right

	if expr.Equal(s, t) {
		return Unify(rest)
	}

	fvt := expr.FreeVars(t)
	if sv, ok := s.(expr.VarExpr); ok {
		if _, occurs := fvt[sv.Name]; !occurs {
			return bindAndRecurse(sv.Name, t, rest)
		}
	}
	fvs := expr.FreeVars(s)
	if tv, ok := t.(expr.VarExpr); ok {
		if _, occurs := fvs[tv.Name]; !occurs {
			return bindAndRecurse(tv.Name, s, rest)
		}
	}

	switch sx := s.(type) {
	case expr.UnopExpr:
		if tx, ok := t.(expr.UnopExpr); ok && sx.Op == tx.Op {
			rest = append(rest, Constraint{sx.Operand, tx.Operand})
			return Unify(rest)
		}
	case expr.BinopExpr:
		if tx, ok := t.(expr.BinopExpr); ok && sx.Op == tx.Op {
			rest = append(rest, Constraint{sx.Left, tx.Left}, Constraint{sx.Right, tx.Right})
			return Unify(rest)
		}
	case expr.ApplyExpr:
		if tx, ok := t.(expr.ApplyExpr); ok && len(sx.Args) == len(tx.Args) {
			rest = append(rest, Constraint{sx.Head, tx.Head})
			for i := range sx.Args {
				rest = append(rest, Constraint{sx.Args[i], tx.Args[i]})
			}
			return Unify(rest)
		}
	case expr.AssocBinopExpr:
		if tx, ok := t.(expr.AssocBinopExpr); ok && sx.Op == tx.Op && len(sx.Exprs) == len(tx.Exprs) {
			for i := range sx.Exprs {
				rest = append(rest, Constraint{sx.Exprs[i], tx.Exprs[i]})
			}
			return Unify(rest)
		}
	case expr.QuantifierExpr:
		if tx, ok := t.(expr.QuantifierExpr); ok && sx.Op == tx.Op {
			avoid := union(fvs, fvt)
			uv := expr.Gensym(config.UnificationVarPrefix, avoid)
			sb := expr.Subst(sx.Body, sx.Bound, expr.Var(uv))
			tb := expr.Subst(tx.Body, tx.Bound, expr.Var(uv))
			rest = append(rest, Constraint{sb, tb})
			sub, err := Unify(rest)
			if err != nil {
				return nil, err
			}
			for _, p := range sub {
				if p.Name == uv {
					return nil, ErrNoUnifier
				}
				if _, escapes := expr.FreeVars(p.Value)[uv]; escapes {
					return nil, ErrNoUnifier
				}
			}
			return sub, nil
		}
	}

	return nil, ErrNoUnifier
}

// bindAndRecurse implements the variable-elimination step: apply [name ->
// value] to the remaining constraints, recurse, then append the binding so
// the returned substitution composes back-to-front.
func bindAndRecurse(name string, value expr.Expression, rest []Constraint) (Substitution, error) {
	substituted := make([]Constraint, len(rest))
	for i, c := range rest {
		substituted[i] = Constraint{
			Left:  expr.Subst(c.Left, name, value),
			Right: expr.Subst(c.Right, name, value),
		}
	}
	sub, err := Unify(substituted)
	if err != nil {
		return nil, err
	}
	return append(sub, Pair{Name: name, Value: value}), nil
}

func union(a, b map[string]struct{}) map[string]struct{} {
	r := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		r[k] = struct{}{}
	}
	for k := range b {
		r[k] = struct{}{}
	}
	return r
}

// pickConstraint chooses which constraint to process next. Any choice is
// correct per spec.md §4.4; picking the pair whose String() rendering sorts
// first (cheap and stable) keeps behavior reproducible for tests
// without needing a bespoke structural hash.
func pickConstraint(cs []Constraint) int {
	best := 0
	bestKey := cs[0].Left.String() + "\x00" + cs[0].Right.String()
	for i := 1; i < len(cs); i++ {
		key := cs[i].Left.String() + "\x00" + cs[i].Right.String()
		if key < bestKey {
			best, bestKey = i, key
		}
	}
	return best
}
