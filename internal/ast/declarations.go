package ast

import (
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// VarDecl is `name : Type`, used for module-level variables, procedure
// parameters, and procedure-local variables alike.
type VarDecl struct {
	Tok  token.Token // the variable name token
	Name string
	Type typesystem.Type
}

func (v *VarDecl) TokenLiteral() string  { return v.Tok.Lexeme }
func (v *VarDecl) GetToken() token.Token { return v.Tok }

// OrderingDecl is `order q < q'`.
type OrderingDecl struct {
	Tok      token.Token
	Lo, Hi   string
	fileName string
}

func (o *OrderingDecl) TokenLiteral() string  { return o.Tok.Lexeme }
func (o *OrderingDecl) GetToken() token.Token { return o.Tok }
func (o *OrderingDecl) declNode()             {}
func (o *OrderingDecl) File() string          { return o.fileName }
func (o *OrderingDecl) SetFile(f string)      { o.fileName = f }

// ForwardDecl is `forward name(Type, ...): Type`: a procedure signature
// with no body, added to the procedure table like any `procedure`
// declaration (§4.3).
type ForwardDecl struct {
	Tok        token.Token
	Name       string
	ParamTypes []typesystem.Type
	ReturnType typesystem.Type
	fileName   string
}

func (f *ForwardDecl) TokenLiteral() string  { return f.Tok.Lexeme }
func (f *ForwardDecl) GetToken() token.Token { return f.Tok }
func (f *ForwardDecl) declNode()             {}
func (f *ForwardDecl) File() string          { return f.fileName }
func (f *ForwardDecl) SetFile(v string)      { f.fileName = v }

// ProcDecl is a full `procedure` declaration with a body.
type ProcDecl struct {
	Tok        token.Token
	Name       string
	Params     []*VarDecl
	ReturnType typesystem.Type
	Locals     []*VarDecl
	Body       Statement
	Module     string // owning module name, set by the parser
	fileName   string
}

func (p *ProcDecl) TokenLiteral() string  { return p.Tok.Lexeme }
func (p *ProcDecl) GetToken() token.Token { return p.Tok }
func (p *ProcDecl) declNode()             {}
func (p *ProcDecl) File() string          { return p.fileName }
func (p *ProcDecl) SetFile(v string)      { p.fileName = v }

// ParamTypes extracts the declared parameter types, in order.
func (p *ProcDecl) ParamTypes() []typesystem.Type {
	out := make([]typesystem.Type, len(p.Params))
	for i, prm := range p.Params {
		out[i] = prm.Type
	}
	return out
}

// ModuleDecl is `module name { var VarDecl } { ProcDecl } end`.
type ModuleDecl struct {
	Tok       token.Token
	Name      string
	Variables []*VarDecl
	Procs     []*ProcDecl
	fileName  string
}

func (m *ModuleDecl) TokenLiteral() string  { return m.Tok.Lexeme }
func (m *ModuleDecl) GetToken() token.Token { return m.Tok }
func (m *ModuleDecl) declNode()             {}
func (m *ModuleDecl) File() string          { return m.fileName }
func (m *ModuleDecl) SetFile(v string)      { m.fileName = v }
