package expr

// Var builds a bare identifier/atom.
func Var(name string) Expression {
	return VarExpr{Name: name}
}

// Apply builds a function/predicate application.
func Apply(head Expression, args ...Expression) Expression {
	return ApplyExpr{Head: head, Args: args}
}

// Predicate is a convenience over Apply for the common case of a named
// predicate applied to a list of bare variable names.
func Predicate(name string, argNames ...string) Expression {
	args := make([]Expression, len(argNames))
	for i, n := range argNames {
		args[i] = Var(n)
	}
	return Apply(Var(name), args...)
}

// Not negates an expression.
func Not(e Expression) Expression {
	return UnopExpr{Op: OpNot, Operand: e}
}

// Binop builds a fixed-arity binary expression.
func Binop(op BinopSymbol, l, r Expression) Expression {
	return BinopExpr{Op: op, Left: l, Right: r}
}

// BinopPlaceholder returns a binop over two wildcard "_" variables, for UI
// palettes that want to show an operator's shape before operands are filled
// in.
func BinopPlaceholder(op BinopSymbol) Expression {
	return Binop(op, Var("_"), Var("_"))
}

// Assocbinop builds a flat n-ary associative expression. Callers must pass
// at least two expressions per spec.md §3's invariant.
func Assocbinop(op AssocSymbol, exprs ...Expression) Expression {
	cp := make([]Expression, len(exprs))
	copy(cp, exprs)
	return AssocBinopExpr{Op: op, Exprs: cp}
}

// AssocPlaceholder returns a 3-ary placeholder ("_", "_", "...") for UI
// palettes.
func AssocPlaceholder(op AssocSymbol) Expression {
	return Assocbinop(op, Var("_"), Var("_"), Var("..."))
}

// QuantifierPlaceholder returns a placeholder quantifier binding "_" over
// the bare variable "_", for UI palettes.
func QuantifierPlaceholder(op QuantSymbol) Expression {
	return QuantifierExpr{Op: op, Bound: "_", Body: Var("_")}
}

// Forall builds a universal quantifier binding name inside body.
func Forall(name string, body Expression) Expression {
	return QuantifierExpr{Op: OpForall, Bound: name, Body: body}
}

// Exists builds an existential quantifier binding name inside body.
func Exists(name string, body Expression) Expression {
	return QuantifierExpr{Op: OpExists, Bound: name, Body: body}
}
