package expr

// FreeVars returns the set of identifiers that occur as a Var outside the
// scope of any enclosing Quantifier binding that name. It is pure and total:
// Contradiction/Tautology contribute nothing, Apply accumulates from its
// head and every arg, and a Quantifier removes its bound name from its
// body's free variables.
func FreeVars(e Expression) map[string]struct{} {
	r := make(map[string]struct{})
	collectFreeVars(e, r)
	return r
}

func collectFreeVars(e Expression, into map[string]struct{}) {
	switch x := e.(type) {
	case ContradictionExpr, TautologyExpr:
		// contribute nothing
	case VarExpr:
		into[x.Name] = struct{}{}
	case ApplyExpr:
		collectFreeVars(x.Head, into)
		for _, a := range x.Args {
			collectFreeVars(a, into)
		}
	case UnopExpr:
		collectFreeVars(x.Operand, into)
	case BinopExpr:
		collectFreeVars(x.Left, into)
		collectFreeVars(x.Right, into)
	case AssocBinopExpr:
		for _, sub := range x.Exprs {
			collectFreeVars(sub, into)
		}
	case QuantifierExpr:
		inner := make(map[string]struct{})
		collectFreeVars(x.Body, inner)
		delete(inner, x.Bound)
		for name := range inner {
			into[name] = struct{}{}
		}
	default:
		panic("expr: FreeVars: unhandled variant")
	}
}
