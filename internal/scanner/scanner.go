package scanner

import (
	"strconv"

	"glox/internal/loxerr"
	"glox/internal/token"
	"glox/internal/value"
)

type Scanner struct {
	source string
	tokens []token.Token

	start   int
	current int
	line    int
}

func New(source string) *Scanner {
	return &Scanner{
		source: source,
		tokens: make([]token.Token, 0),
		line:   1,
	}
}

// Scan is shorthand for New(source).ScanTokens().
func Scan(source string) ([]token.Token, error) {
	return New(source).ScanTokens()
}

// ScanTokens consumes the whole source. The first lexing error aborts the
// scan; on success the slice always ends with a single EOF token.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Line: s.line})
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case ' ', '\r', '\t':
		// pass
	case '\n':
		s.line++
	case '(':
		s.addToken(token.LEFT_PAREN, nil)
	case ')':
		s.addToken(token.RIGHT_PAREN, nil)
	case '{':
		s.addToken(token.LEFT_BRACE, nil)
	case '}':
		s.addToken(token.RIGHT_BRACE, nil)
	case ',':
		s.addToken(token.COMMA, nil)
	case '.':
		s.addToken(token.DOT, nil)
	case '-':
		s.addToken(token.MINUS, nil)
	case '+':
		s.addToken(token.PLUS, nil)
	case ';':
		s.addToken(token.SEMICOLON, nil)
	case '*':
		s.addToken(token.STAR, nil)
	case '/':
		switch {
		case s.match('/'):
			s.scanLineComment()
		case s.match('*'):
			return s.scanBlockComment(s.line)
		default:
			s.addToken(token.SLASH, nil)
		}
	case '!':
		s.addTwoCharToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addTwoCharToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addTwoCharToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addTwoCharToken('=', token.GREATER_EQUAL, token.GREATER)
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifierOrKeyword()
		default:
			return loxerr.Lexing(s.line, "Invalid character %q.", c)
		}
	}
	return nil
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) addToken(typ token.Type, literal value.Value) {
	s.tokens = append(s.tokens, token.Token{
		Type:    typ,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

// addTwoCharToken prefers the longer operator when next follows.
func (s *Scanner) addTwoCharToken(next byte, long, short token.Type) {
	if s.match(next) {
		s.addToken(long, nil)
	} else {
		s.addToken(short, nil)
	}
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peekChar() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNextChar() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) scanString() error {
	for c := s.peekChar(); c != '"'; c = s.peekChar() {
		if s.isAtEnd() {
			return loxerr.Lexing(s.line, "Unterminated string.")
		}
		if c == '\n' {
			s.line++
		}
		s.current++
	}
	// Consume closing quote
	s.current++

	str := s.source[s.start+1 : s.current-1]
	s.addToken(token.STRING, value.String(str))

	return nil
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peekChar()) {
		s.current++
	}
	// A trailing '.' without a digit after it is left for the DOT token.
	if s.peekChar() == '.' && isDigit(s.peekNextChar()) {
		s.current++
		for isDigit(s.peekChar()) {
			s.current++
		}
	}

	// Digits with at most one inner '.' always parse.
	number, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addToken(token.NUMBER, value.Number(number))
}

func (s *Scanner) scanIdentifierOrKeyword() {
	for isAlphaNumeric(s.peekChar()) {
		s.current++
	}
	s.addToken(token.Lookup(s.source[s.start:s.current]), nil)
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peekChar() != '\n' {
		s.current++
	}
}

// scanBlockComment runs after the opening "/*" has been consumed. Nested
// openers recurse; an unterminated comment is reported at the line of the
// outermost opener.
func (s *Scanner) scanBlockComment(openLine int) error {
	for {
		if s.isAtEnd() {
			return loxerr.Lexing(openLine, "Unterminated block comment.")
		}

		switch c := s.advance(); {
		case c == '*' && s.match('/'):
			return nil
		case c == '/' && s.match('*'):
			if err := s.scanBlockComment(openLine); err != nil {
				return err
			}
		case c == '\n':
			s.line++
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
