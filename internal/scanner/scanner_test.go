package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"glox/internal/loxerr"
	"glox/internal/token"
	"glox/internal/value"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func mustScan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", src, err)
	}
	return toks
}

func wantLexError(t *testing.T, src string, line int, msg string) {
	t.Helper()
	_, err := Scan(src)
	var lerr *loxerr.Error
	if !errors.As(err, &lerr) {
		t.Fatalf("Scan(%q) = %v, want lexing error", src, err)
	}
	if lerr.Category != loxerr.LexingError {
		t.Fatalf("Scan(%q) category = %s, want LexingError", src, lerr.Category)
	}
	if lerr.Line != line {
		t.Fatalf("Scan(%q) line = %d, want %d", src, lerr.Line, line)
	}
	if !strings.Contains(lerr.Message, msg) {
		t.Fatalf("Scan(%q) message = %q, want it to contain %q", src, lerr.Message, msg)
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := mustScan(t, "(){},.-+;*/ ! != = == < <= > >=")
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestScanLongestOperatorWins(t *testing.T) {
	toks := mustScan(t, "!==")
	want := []token.Token{
		{Type: token.BANG_EQUAL, Lexeme: "!=", Line: 1},
		{Type: token.EQUAL, Lexeme: "=", Line: 1},
		{Type: token.EOF, Line: 1},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanLiterals(t *testing.T) {
	toks := mustScan(t, `12 3.25 "hi there" ""`)
	want := []token.Token{
		{Type: token.NUMBER, Lexeme: "12", Literal: value.Number(12), Line: 1},
		{Type: token.NUMBER, Lexeme: "3.25", Literal: value.Number(3.25), Line: 1},
		{Type: token.STRING, Lexeme: `"hi there"`, Literal: value.String("hi there"), Line: 1},
		{Type: token.STRING, Lexeme: `""`, Literal: value.String(""), Line: 1},
		{Type: token.EOF, Line: 1},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTrailingDotIsNotPartOfNumber(t *testing.T) {
	toks := mustScan(t, "12.")
	want := []token.Token{
		{Type: token.NUMBER, Lexeme: "12", Literal: value.Number(12), Line: 1},
		{Type: token.DOT, Lexeme: ".", Line: 1},
		{Type: token.EOF, Line: 1},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	src := "and class else false for fun nil if or print return super this true var while _x1 orchid"
	toks := mustScan(t, src)
	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.NIL, token.IF, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE,
		token.IDENTIFIER, token.IDENTIFIER, token.EOF,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
	if got := toks[17].Lexeme; got != "orchid" {
		t.Fatalf("lexeme = %q, want %q", got, "orchid")
	}
}

func TestScanLineCounting(t *testing.T) {
	src := "a\n// comment\n\"two\nlines\"\n/* block\n comment */ b\n/* outer /* inner\n */ still */ c"
	toks := mustScan(t, src)
	got := map[string]int{}
	for _, tok := range toks {
		if tok.Type == token.IDENTIFIER {
			got[tok.Lexeme] = tok.Line
		}
	}
	want := map[string]int{"a": 1, "b": 6, "c": 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("identifier lines mismatch (-want +got):\n%s", diff)
	}
	if eof := toks[len(toks)-1]; eof.Type != token.EOF || eof.Line != 8 {
		t.Fatalf("last token = %v on line %d, want EOF on line 8", eof.Type, eof.Line)
	}
}

func TestScanCommentsProduceNoTokens(t *testing.T) {
	for _, src := range []string{
		"// only a comment",
		"/* block */",
		"/* a /* nested */ comment */",
		"   \t\r\n",
		"",
	} {
		toks := mustScan(t, src)
		if len(toks) != 1 || toks[0].Type != token.EOF {
			t.Fatalf("Scan(%q) = %v, want only EOF", src, toks)
		}
	}
}

func TestScanSlashAfterComment(t *testing.T) {
	toks := mustScan(t, "/* c */ 4 / 2")
	want := []token.Type{token.NUMBER, token.SLASH, token.NUMBER, token.EOF}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestScanErrors(t *testing.T) {
	wantLexError(t, `print "abc`, 1, "Unterminated string")
	wantLexError(t, "\n\"abc\ndef", 3, "Unterminated string")
	wantLexError(t, "var a = 1;\n/* never closed\n\n", 2, "Unterminated block comment")
	wantLexError(t, "/* outer /* inner */ still open", 1, "Unterminated block comment")
	wantLexError(t, "var x = 1;\nx @ 2;", 2, "Invalid character")
	wantLexError(t, "#", 1, "Invalid character")
}

func TestScanStopsAtFirstError(t *testing.T) {
	toks, err := Scan("1 @ 2 $")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if toks != nil {
		t.Fatalf("expected no tokens on error, got %v", toks)
	}
	if !strings.Contains(err.Error(), "'@'") {
		t.Fatalf("error %q should name the first invalid character", err)
	}
}

// Re-scanning a token's lexeme on its own gives back the same literal.
func TestRescanLexemeRoundTrip(t *testing.T) {
	src := `var name = "glox"; print 3.5 * (10 - 4) >= 0.25; "x" + "y";`
	for _, tok := range mustScan(t, src) {
		if tok.Type == token.EOF {
			continue
		}
		again := mustScan(t, tok.Lexeme)
		if len(again) != 2 {
			t.Fatalf("rescanning %q gave %d tokens, want 2", tok.Lexeme, len(again))
		}
		if diff := cmp.Diff(tok, again[0]); diff != "" {
			t.Fatalf("rescanning %q mismatch (-orig +rescan):\n%s", tok.Lexeme, diff)
		}
	}
}
