package parser

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/token"
)

// parseStatement parses one `Statement` per §6:
//
//	Statement ::= Block | If | While | Return
//	            | identName [ "[" Expr "]" ] ":=" Expr
//	            | identName "(" [ Expr { "," Expr } ] ")"
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.BEGIN:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IDENT:
		return p.parseIdentStatement()
	default:
		p.errorf(diagnostics.Syntax, "expected a statement, got %q", p.cur.Lexeme)
		tok := p.cur
		p.advance()
		return &ast.CallStatement{Tok: tok, Call: &ast.CallExpression{Tok: tok, ProcName: tok.Lexeme}}
	}
}

// parseBlock parses `"begin" Statement { ";" Statement } "end"`.
func (p *Parser) parseBlock() *ast.BlockStatement {
	tok := p.cur
	p.advance() // begin
	block := &ast.BlockStatement{Tok: tok}
	block.Statements = append(block.Statements, p.parseStatement())
	for p.curIs(token.SEMI) {
		p.advance()
		if p.curIs(token.END) {
			break
		}
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.expect(token.END)
	return block
}

// parseIfStatement parses `"if" Expr "then" Statement [ "else" Statement ]`.
func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.cur
	p.advance() // if
	cond := p.parseExpression()
	p.expect(token.THEN)
	cons := p.parseStatement()
	stmt := &ast.IfStatement{Tok: tok, Condition: cond, Consequence: cons}
	if p.curIs(token.ELSE) {
		p.advance()
		stmt.Alternative = p.parseStatement()
	}
	return stmt
}

// parseWhileStatement parses `"while" Expr "do" Statement`.
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.cur
	p.advance() // while
	cond := p.parseExpression()
	p.expect(token.DO)
	body := p.parseStatement()
	return &ast.WhileStatement{Tok: tok, Condition: cond, Body: body}
}

// parseReturnStatement parses `"return" [ "final" ] Expr`.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.cur
	p.advance() // return
	final := false
	if p.curIs(token.FINAL) {
		final = true
		p.advance()
	}
	value := p.parseExpression()
	return &ast.ReturnStatement{Tok: tok, Final: final, Value: value}
}

// parseIdentStatement disambiguates the three statement forms that start
// with an identifier: a call statement, a plain assignment, and an
// indexed (map) assignment.
func (p *Parser) parseIdentStatement() ast.Statement {
	tok := p.cur
	name := p.cur.Lexeme
	p.advance() // identName

	if p.curIs(token.LPAREN) {
		call := p.parseCallTail(tok, name)
		return &ast.CallStatement{Tok: tok, Call: call}
	}

	var index ast.Expression
	if p.curIs(token.LBRACKET) {
		p.advance()
		index = p.parseExpression()
		p.expect(token.RBRACKET)
	}
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.AssignStatement{Tok: tok, Name: name, Index: index, Value: value}
}
