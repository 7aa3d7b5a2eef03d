package ast

import "github.com/catseye/Dieter/internal/token"

// Identifier is a bare variable reference, or (with Index non-nil) a map
// indexing expression `v[k]`.
type Identifier struct {
	Tok   token.Token
	Name  string
	Index Expression // nil for a plain variable reference
}

func (i *Identifier) TokenLiteral() string  { return i.Tok.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Tok }
func (i *Identifier) expressionNode()       {}

// CallExpression is `procName "(" [ Expr { "," Expr } ] ")"`.
type CallExpression struct {
	Tok       token.Token
	ProcName  string
	Arguments []Expression
}

func (c *CallExpression) TokenLiteral() string  { return c.Tok.Lexeme }
func (c *CallExpression) GetToken() token.Token { return c.Tok }
func (c *CallExpression) expressionNode()       {}

// ParenExpression is `"(" Expr ")"`, kept as its own node only so
// diagnostics can point at the parenthesized span if needed; it carries
// no semantics of its own.
type ParenExpression struct {
	Tok   token.Token
	Inner Expression
}

func (p *ParenExpression) TokenLiteral() string  { return p.Tok.Lexeme }
func (p *ParenExpression) GetToken() token.Token { return p.Tok }
func (p *ParenExpression) expressionNode()       {}

// BestowExpression is `"bestow" qualName Expr`.
type BestowExpression struct {
	Tok       token.Token
	Qualifier string
	Value     Expression
}

func (b *BestowExpression) TokenLiteral() string  { return b.Tok.Lexeme }
func (b *BestowExpression) GetToken() token.Token { return b.Tok }
func (b *BestowExpression) expressionNode()       {}

// SuperExpression is the bare `"super"` expression.
type SuperExpression struct {
	Tok token.Token
}

func (s *SuperExpression) TokenLiteral() string  { return s.Tok.Lexeme }
func (s *SuperExpression) GetToken() token.Token { return s.Tok }
func (s *SuperExpression) expressionNode()       {}

// IntLiteral is an integer literal.
type IntLiteral struct {
	Tok   token.Token
	Value int64
}

func (l *IntLiteral) TokenLiteral() string  { return l.Tok.Lexeme }
func (l *IntLiteral) GetToken() token.Token { return l.Tok }
func (l *IntLiteral) expressionNode()       {}

// RatLiteral is a rational literal (n/d).
type RatLiteral struct {
	Tok          token.Token
	Numer, Denom int64
}

func (l *RatLiteral) TokenLiteral() string  { return l.Tok.Lexeme }
func (l *RatLiteral) GetToken() token.Token { return l.Tok }
func (l *RatLiteral) expressionNode()       {}
