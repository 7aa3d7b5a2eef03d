// Package parser is a recursive-descent parser over the grammar in §6 of
// the specification. It is a narrow collaborator: the checker's only
// contract with it is that it produces an *ast.Program in which every
// type expression is already canonical (§4.2).
package parser

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/lexer"
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// Parser holds the two-token lookahead recursive-descent parser state.
type Parser struct {
	lex  *lexer.Lexer
	file string

	cur  token.Token
	peek token.Token

	errors *diagnostics.Bag
}

// New returns a parser reading from lex, tagging any diagnostics it
// raises with file.
func New(lex *lexer.Lexer, file string) *Parser {
	p := &Parser{lex: lex, file: file, errors: &diagnostics.Bag{}}
	p.advance()
	p.advance()
	return p
}

// Errors returns every diagnostic raised while parsing.
func (p *Parser) Errors() []*diagnostics.Error {
	return p.errors.Errors()
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(tt token.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt token.TokenType) bool { return p.peek.Type == tt }

// expect advances past cur if it matches tt, else reports a syntax error
// and advances anyway so parsing can continue (best-effort recovery, per
// §7 "the first hard error short-circuits that declaration" — we still
// want to keep scanning to the next declaration boundary when possible).
func (p *Parser) expect(tt token.TokenType) token.Token {
	tok := p.cur
	if !p.curIs(tt) {
		p.errorf(diagnostics.Syntax, "expected %s, got %s %q", tt, p.cur.Type, p.cur.Lexeme)
	}
	p.advance()
	return tok
}

func (p *Parser) errorf(code diagnostics.Code, format string, args ...interface{}) {
	p.errors.Addf(code, p.file, p.cur, format, args...)
}

// ParseProgram parses `{ Module | Ordering | Forward } "."`.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) && !p.curIs(token.DOT) {
		switch p.cur.Type {
		case token.MODULE:
			prog.Decls = append(prog.Decls, p.parseModule())
		case token.ORDER:
			prog.Decls = append(prog.Decls, p.parseOrdering())
		case token.FORWARD:
			prog.Decls = append(prog.Decls, p.parseForward())
		default:
			p.errorf(diagnostics.Syntax, "expected module, order, or forward, got %q", p.cur.Lexeme)
			p.advance()
		}
	}
	if p.curIs(token.DOT) {
		p.advance()
	}
	return prog
}

// parseOrdering parses `"order" qualName "<" qualName`.
func (p *Parser) parseOrdering() *ast.OrderingDecl {
	tok := p.cur
	p.advance() // order
	lo := p.expect(token.IDENT)
	p.expect(token.LT)
	hi := p.expect(token.IDENT)
	return &ast.OrderingDecl{Tok: tok, Lo: lo.Lexeme, Hi: hi.Lexeme}
}

// parseForward parses
// `"forward" procName "(" [ Type { "," Type } ] ")" ":" Type`.
func (p *Parser) parseForward() *ast.ForwardDecl {
	tok := p.cur
	p.advance() // forward
	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	var params []typesystem.Type
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		params = append(params, p.parseType())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	ret := p.parseType()
	return &ast.ForwardDecl{Tok: tok, Name: name.Lexeme, ParamTypes: params, ReturnType: ret}
}

// parseModule parses
// `"module" qualName { "var" VarDecl } { ProcDecl } "end"`.
func (p *Parser) parseModule() *ast.ModuleDecl {
	tok := p.cur
	p.advance() // module
	name := p.expect(token.IDENT)
	mod := &ast.ModuleDecl{Tok: tok, Name: name.Lexeme}

	for p.curIs(token.VAR) {
		mod.Variables = append(mod.Variables, p.parseVarDeclAfterVar())
	}
	for p.curIs(token.PROCEDURE) {
		proc := p.parseProcDecl()
		proc.Module = mod.Name
		mod.Procs = append(mod.Procs, proc)
	}
	p.expect(token.END)
	return mod
}

// parseVarDeclAfterVar parses `"var" varName ":" Type`, with cur
// positioned at the `var` keyword.
func (p *Parser) parseVarDeclAfterVar() *ast.VarDecl {
	p.advance() // var
	return p.parseVarDeclBody()
}

// parseVarDeclBody parses `varName ":" Type`, with cur positioned at the
// variable name.
func (p *Parser) parseVarDeclBody() *ast.VarDecl {
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	t := p.parseType()
	return &ast.VarDecl{Tok: nameTok, Name: nameTok.Lexeme, Type: t}
}

// parseProcDecl parses
// `"procedure" procName "(" [ VarDecl { "," VarDecl } ] ")" ":" Type
//  { "var" VarDecl } Statement`.
func (p *Parser) parseProcDecl() *ast.ProcDecl {
	tok := p.cur
	p.advance() // procedure
	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	var params []*ast.VarDecl
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		params = append(params, p.parseVarDeclBody())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	ret := p.parseType()

	var locals []*ast.VarDecl
	for p.curIs(token.VAR) {
		locals = append(locals, p.parseVarDeclAfterVar())
	}

	body := p.parseStatement()

	return &ast.ProcDecl{Tok: tok, Name: name.Lexeme, Params: params, ReturnType: ret, Locals: locals, Body: body}
}
