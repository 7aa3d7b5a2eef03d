package parser

import (
	"strconv"
	"strings"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/token"
)

// parseExpression parses one `Expr` per §6:
//
//	Expr ::= identName [ "[" Expr "]" ]
//	       | identName "(" [ Expr { "," Expr } ] ")"
//	       | "(" Expr ")"
//	       | "bestow" qualName Expr
//	       | "super"
//	       | intLiteral | ratLiteral
func (p *Parser) parseExpression() ast.Expression {
	switch p.cur.Type {
	case token.IDENT:
		tok := p.cur
		name := p.cur.Lexeme
		p.advance()
		if p.curIs(token.LPAREN) {
			return p.parseCallTail(tok, name)
		}
		id := &ast.Identifier{Tok: tok, Name: name}
		if p.curIs(token.LBRACKET) {
			p.advance()
			id.Index = p.parseExpression()
			p.expect(token.RBRACKET)
		}
		return id
	case token.LPAREN:
		tok := p.cur
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return &ast.ParenExpression{Tok: tok, Inner: inner}
	case token.BESTOW:
		tok := p.cur
		p.advance()
		qual := p.expect(token.IDENT)
		value := p.parseExpression()
		return &ast.BestowExpression{Tok: tok, Qualifier: qual.Lexeme, Value: value}
	case token.SUPER:
		tok := p.cur
		p.advance()
		return &ast.SuperExpression{Tok: tok}
	case token.INT:
		tok := p.cur
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		p.advance()
		return &ast.IntLiteral{Tok: tok, Value: v}
	case token.RAT:
		tok := p.cur
		numer, denom := parseRatLexeme(tok.Lexeme)
		p.advance()
		return &ast.RatLiteral{Tok: tok, Numer: numer, Denom: denom}
	default:
		p.errorf(diagnostics.Syntax, "expected an expression, got %q", p.cur.Lexeme)
		tok := p.cur
		p.advance()
		return &ast.Identifier{Tok: tok, Name: tok.Lexeme}
	}
}

// parseCallTail parses `"(" [ Expr { "," Expr } ] ")"`, with cur
// positioned at the opening paren and tok/name already consumed as the
// procedure name.
func (p *Parser) parseCallTail(tok token.Token, name string) *ast.CallExpression {
	p.advance() // (
	call := &ast.CallExpression{Tok: tok, ProcName: name}
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		call.Arguments = append(call.Arguments, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	return call
}

func parseRatLexeme(lexeme string) (int64, int64) {
	parts := strings.SplitN(lexeme, "/", 2)
	numer, _ := strconv.ParseInt(parts[0], 10, 64)
	denom := int64(1)
	if len(parts) == 2 {
		denom, _ = strconv.ParseInt(parts[1], 10, 64)
	}
	return numer, denom
}
