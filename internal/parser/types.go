package parser

import (
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// parseType parses `Type ::= { qualName } BareType`. Because every
// BareType alternative starts with a reserved word (or the ♥ sigil),
// a leading run of IDENT tokens is unambiguously the qualifier prefix.
func (p *Parser) parseType() typesystem.Type {
	var quals []string
	for p.curIs(token.IDENT) {
		quals = append(quals, p.cur.Lexeme)
		p.advance()
	}
	base := p.parseBareType()
	return typesystem.Type{Quals: typesystem.NewQualifierSet(quals...), Base: base}
}

// parseBareType parses
// `"map" [ "from" Type ] "to" Type | "♥" tvarName | "bool" | "int" |
//  "rat" | "string" | "ref" | "void"`.
//
// "void" is accepted here though the reference grammar's BareType
// production omits it; §3 lists void among BaseType's primitives (e.g.
// for procedures called only for effect), so the parser accepts it too.
func (p *Parser) parseBareType() typesystem.BaseType {
	switch p.cur.Type {
	case token.MAP:
		p.advance()
		var key *typesystem.Type
		if p.curIs(token.FROM) {
			p.advance()
			k := p.parseType()
			key = &k
		}
		p.expect(token.TO)
		value := p.parseType()
		return typesystem.MapType{KeyType: key, ValueType: &value}
	case token.TVAR:
		name := p.cur.Lexeme
		p.advance()
		return typesystem.TVar{Name: name}
	case token.BOOL:
		p.advance()
		return typesystem.Bool
	case token.INTTYPE:
		p.advance()
		return typesystem.Int
	case token.RATTYPE:
		p.advance()
		return typesystem.Rat
	case token.STRING:
		p.advance()
		return typesystem.Str
	case token.REF:
		p.advance()
		return typesystem.RefT
	case token.VOID:
		p.advance()
		return typesystem.VoidT
	default:
		p.errorf(diagnostics.Syntax, "expected a type, got %q", p.cur.Lexeme)
		p.advance()
		return typesystem.VoidT
	}
}
