package lexer

import (
	"testing"

	"github.com/catseye/Dieter/internal/token"
)

func tokenTypes(t *testing.T, input string) []token.TokenType {
	t.Helper()
	l := New(input)
	var out []token.TokenType
	for {
		tok := l.NextToken()
		out = append(out, tok.Type)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	input := `module foo var x : int end.`
	got := tokenTypes(t, input)
	want := []token.TokenType{
		token.MODULE, token.IDENT, token.VAR, token.IDENT, token.COLON,
		token.INTTYPE, token.END, token.DOT, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerTypeVariableSigil(t *testing.T) {
	l := New("♥t")
	tok := l.NextToken()
	if tok.Type != token.TVAR || tok.Lexeme != "t" {
		t.Errorf("got %v %q, want TVAR \"t\"", tok.Type, tok.Lexeme)
	}
}

func TestLexerIntAndRatLiterals(t *testing.T) {
	l := New("42 3/4")
	intTok := l.NextToken()
	if intTok.Type != token.INT || intTok.Lexeme != "42" {
		t.Errorf("got %v %q, want INT \"42\"", intTok.Type, intTok.Lexeme)
	}
	ratTok := l.NextToken()
	if ratTok.Type != token.RAT || ratTok.Lexeme != "3/4" {
		t.Errorf("got %v %q, want RAT \"3/4\"", ratTok.Type, ratTok.Lexeme)
	}
}

func TestLexerAssignVsColon(t *testing.T) {
	l := New(": :=")
	colon := l.NextToken()
	if colon.Type != token.COLON {
		t.Errorf("got %v, want COLON", colon.Type)
	}
	assign := l.NextToken()
	if assign.Type != token.ASSIGN || assign.Lexeme != ":=" {
		t.Errorf("got %v %q, want ASSIGN \":=\"", assign.Type, assign.Lexeme)
	}
}

func TestLexerSkipsLineComments(t *testing.T) {
	input := "-- a comment\nint"
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.INTTYPE {
		t.Errorf("got %v, want INTTYPE after a skipped comment line", tok.Type)
	}
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	if first.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Line)
	}
	if first.Column != 1 {
		t.Errorf("first token column = %d, want 1", first.Column)
	}
	second := l.NextToken()
	if second.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Line)
	}
	if second.Column != 1 {
		t.Errorf("second token column = %d, want 1", second.Column)
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Errorf("got %v, want ILLEGAL", tok.Type)
	}
}
