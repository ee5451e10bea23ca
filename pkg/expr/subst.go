package expr

// Subst replaces every free occurrence of name in e by value, renaming
// binders as needed so that no free variable of value is captured. See
// spec.md §4.3 for the three-way Quantifier case this implements.
func Subst(e Expression, name string, value Expression) Expression {
	switch x := e.(type) {
	case ContradictionExpr, TautologyExpr:
		return e
	case VarExpr:
		if x.Name == name {
			return value
		}
		return x
	case ApplyExpr:
		args := make([]Expression, len(x.Args))
		for i, a := range x.Args {
			args[i] = Subst(a, name, value)
		}
		return ApplyExpr{Head: Subst(x.Head, name, value), Args: args}
	case UnopExpr:
		return UnopExpr{Op: x.Op, Operand: Subst(x.Operand, name, value)}
	case BinopExpr:
		return BinopExpr{Op: x.Op, Left: Subst(x.Left, name, value), Right: Subst(x.Right, name, value)}
	case AssocBinopExpr:
		exprs := make([]Expression, len(x.Exprs))
		for i, sub := range x.Exprs {
			exprs[i] = Subst(sub, name, value)
		}
		return AssocBinopExpr{Op: x.Op, Exprs: exprs}
	case QuantifierExpr:
		if x.Bound == name {
			// The occurrence of name inside the body is already captured
			// by this binder; nothing under it can be name's free use.
			return x
		}
		fvValue := FreeVars(value)
		if _, captured := fvValue[x.Bound]; captured {
			fresh := Gensym(x.Bound, fvValue)
			renamedBody := Subst(x.Body, x.Bound, VarExpr{Name: fresh})
			return QuantifierExpr{Op: x.Op, Bound: fresh, Body: Subst(renamedBody, name, value)}
		}
		return QuantifierExpr{Op: x.Op, Bound: x.Bound, Body: Subst(x.Body, name, value)}
	default:
		panic("expr: Subst: unhandled variant")
	}
}
