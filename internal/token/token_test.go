package token

import (
	"testing"

	"glox/internal/value"
)

func TestLookup(t *testing.T) {
	for word, typ := range Keywords {
		if got := Lookup(word); got != typ {
			t.Errorf("Lookup(%q) = %s, want %s", word, got, typ)
		}
	}
	for _, ident := range []string{"printer", "Var", "_if", "x"} {
		if got := Lookup(ident); got != IDENTIFIER {
			t.Errorf("Lookup(%q) = %s, want IDENTIFIER", ident, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: PLUS, Lexeme: "+", Line: 1}, "PLUS +"},
		{Token{Type: NUMBER, Lexeme: "2.50", Literal: value.Number(2.5), Line: 1}, "NUMBER 2.50 2.5"},
		{Token{Type: STRING, Lexeme: `"hi"`, Literal: value.String("hi"), Line: 1}, `STRING "hi" hi`},
		{Token{Type: EOF, Line: 3}, "EOF "},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
