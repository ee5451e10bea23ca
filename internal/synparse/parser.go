package synparse

import (
	"fmt"

	"github.com/arisgo/ariscore/pkg/expr"
)

// ParseError reports where in the source text parsing failed, mirroring the
// line/column reporting internal/parser gives funxy's diagnostics.
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("synparse: %d:%d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	lex  *lexer
	tok  token
	peek token
}

// Parse reads a single formula in glyph notation and returns its
// pkg/expr.Expression tree. Operator precedence, low to high: <->, ->, |, &,
// ~, with quantifier bodies extending as far right as a parenthesized
// subexpression allows ("forall x, body" binds until the end of the
// enclosing formula or a closing paren).
//
// Grammar:
//
//	formula   := bicon
//	bicon     := implies ("<->" implies)*
//	implies   := or ("->" implies)?
//	or        := and ("|" and)*
//	and       := unary ("&" unary)*
//	unary     := "~" unary | quantified | primary
//	quantified:= ("forall" | "exists") ident "," formula
//	primary   := "_contradiction_" | "_tautology_" | ident ["(" args ")"] | "(" formula ")"
func Parse(input string) (expr.Expression, error) {
	p := &parser{lex: newLexer(input)}
	p.advance()
	p.advance()

	e, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{p.tok.line, p.tok.col, fmt.Sprintf("unexpected trailing token %q", p.tok.lit)}
	}
	return e, nil
}

func (p *parser) advance() {
	p.tok = p.peek
	p.peek = p.lex.next()
}

func (p *parser) parseFormula() (expr.Expression, error) {
	return p.parseBicon()
}

func (p *parser) parseBicon() (expr.Expression, error) {
	first, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokBicon {
		return first, nil
	}
	exprs := []expr.Expression{first}
	for p.tok.kind == tokBicon {
		p.advance()
		next, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return expr.Assocbinop(expr.OpBicon, exprs...), nil
}

func (p *parser) parseImplies() (expr.Expression, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokImplies {
		return left, nil
	}
	p.advance()
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return expr.Binop(expr.OpImplies, left, right), nil
}

func (p *parser) parseOr() (expr.Expression, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokOr {
		return first, nil
	}
	exprs := []expr.Expression{first}
	for p.tok.kind == tokOr {
		p.advance()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return expr.Assocbinop(expr.OpOr, exprs...), nil
}

func (p *parser) parseAnd() (expr.Expression, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokAnd {
		return first, nil
	}
	exprs := []expr.Expression{first}
	for p.tok.kind == tokAnd {
		p.advance()
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return expr.Assocbinop(expr.OpAnd, exprs...), nil
}

func (p *parser) parseUnary() (expr.Expression, error) {
	switch p.tok.kind {
	case tokNot:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Not(operand), nil
	case tokForall, tokExists:
		return p.parseQuantified()
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parseQuantified() (expr.Expression, error) {
	op := expr.OpForall
	if p.tok.kind == tokExists {
		op = expr.OpExists
	}
	p.advance()

	if p.tok.kind != tokIdent {
		return nil, &ParseError{p.tok.line, p.tok.col, "expected bound variable name after quantifier"}
	}
	bound := p.tok.lit
	p.advance()

	if p.tok.kind != tokComma {
		return nil, &ParseError{p.tok.line, p.tok.col, "expected ',' after quantifier's bound variable"}
	}
	p.advance()

	body, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	if op == expr.OpForall {
		return expr.Forall(bound, body), nil
	}
	return expr.Exists(bound, body), nil
}

func (p *parser) parsePrimary() (expr.Expression, error) {
	switch p.tok.kind {
	case tokContradiction:
		p.advance()
		return expr.ContradictionExpr{}, nil
	case tokTautology:
		p.advance()
		return expr.TautologyExpr{}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, &ParseError{p.tok.line, p.tok.col, "expected ')'"}
		}
		p.advance()
		return inner, nil
	case tokIdent:
		name := p.tok.lit
		p.advance()
		if p.tok.kind != tokLParen {
			return expr.Var(name), nil
		}
		p.advance()
		var args []expr.Expression
		if p.tok.kind != tokRParen {
			for {
				arg, err := p.parseFormula()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.tok.kind != tokComma {
					break
				}
				p.advance()
			}
		}
		if p.tok.kind != tokRParen {
			return nil, &ParseError{p.tok.line, p.tok.col, "expected ')' to close argument list"}
		}
		p.advance()
		return expr.Apply(expr.Var(name), args...), nil
	default:
		return nil, &ParseError{p.tok.line, p.tok.col, fmt.Sprintf("unexpected token %q", p.tok.lit)}
	}
}
