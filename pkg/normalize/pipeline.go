package normalize

import "github.com/arisgo/ariscore/pkg/expr"

// Pass is a named normalization step, suitable for building a configurable
// pipeline (see internal/config's YAML pattern-set loader).
type Pass struct {
	Name string
	Run  func(expr.Expression) expr.Expression
}

// DefaultPipeline lists every pass in a reasonable default order: structural
// simplifications first (DeMorgan, double negation, inverse), then the
// algebraic identities, then idempotence/absorption, finishing with
// flattening and a canonical sort so the final form is stable.
func DefaultPipeline() []Pass {
	return []Pass{
		{Name: "demorgans", Run: NormalizeDemorgans},
		{Name: "doublenegation", Run: NormalizeDoubleNegation},
		{Name: "inverse", Run: NormalizeInverse},
		{Name: "complement", Run: NormalizeComplement},
		{Name: "identity", Run: NormalizeIdentity},
		{Name: "annihilation", Run: NormalizeAnnihilation},
		{Name: "absorption", Run: NormalizeAbsorption},
		{Name: "idempotence", Run: NormalizeIdempotence},
		{Name: "combine_associative", Run: CombineAssociativeOps},
		{Name: "sort_commutative", Run: SortCommutativeOps},
	}
}

// ByName looks up a pass by its config-file name.
func ByName(name string) (Pass, bool) {
	for _, p := range DefaultPipeline() {
		if p.Name == name {
			return p, true
		}
	}
	return Pass{}, false
}

// Run applies each pass in order, returning the final expression and the
// names, in run order, of the passes that changed the expression. Passes
// that left it unchanged are not listed.
func Run(e expr.Expression, passes []Pass) (result expr.Expression, changedSteps []string) {
	result = e
	for _, p := range passes {
		next := p.Run(result)
		if !expr.Equal(next, result) {
			changedSteps = append(changedSteps, p.Name)
		}
		result = next
	}
	return result, changedSteps
}
