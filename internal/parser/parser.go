package parser

import (
	"slices"

	"glox/internal/ast"
	"glox/internal/loxerr"
	"glox/internal/token"
	"glox/internal/value"
)

// parseError is panicked by consume and recovered at the exported entry
// points, so the recursive rules stay free of error plumbing.
type parseError struct {
	err *loxerr.Error
}

type Parser struct {
	tokens  []token.Token
	current int
}

// New expects tokens to end with an EOF token, as the scanner produces.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(slices.Clip(tokens), token.Token{Type: token.EOF, Line: line})
	}
	return &Parser{tokens: tokens}
}

// Parse is shorthand for New(tokens).Parse().
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	return New(tokens).Parse()
}

// program ::= declaration* EOF
func (p *Parser) Parse() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}
	err := p.guard(func() {
		for !p.isAtEnd() {
			stmts = append(stmts, p.parseDeclaration())
		}
	})
	if err != nil {
		return nil, err
	}

	return stmts, nil
}

// ParseExpression parses a single expression that must span the whole input.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	var expr ast.Expr
	err := p.guard(func() {
		expr = p.parseExpression()
		p.consumeToken(token.EOF, "Expect end of input after expression.")
	})
	if err != nil {
		return nil, err
	}

	return expr, nil
}

// guard runs fn and turns a parseError panic into the returned error.
func (p *Parser) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(parseError)
			if !ok {
				panic(r) // real panic, let it crash
			}
			err = perr.err
		}
	}()

	fn()
	return nil
}

func (p *Parser) isAtEnd() bool {
	return p.peekToken().Type == token.EOF
}

func (p *Parser) peekToken() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	if tok.Type != token.EOF {
		p.current++
	}
	return tok
}

func (p *Parser) tryConsume(typ token.Type) bool {
	if p.peekToken().Type == typ {
		p.advance()
		return true
	}

	return false
}

func (p *Parser) consumeOneOf(types ...token.Type) (token.Token, bool) {
	tok := p.peekToken()
	if slices.Contains(types, tok.Type) {
		p.advance()
		return tok, true
	}

	return tok, false
}

func (p *Parser) consumeToken(typ token.Type, message string) token.Token {
	if tok := p.peekToken(); tok.Type == typ {
		p.advance()
		return tok
	}
	panic(p.errorAtPeek(message))
}

func (p *Parser) errorAtPeek(message string) parseError {
	tok := p.peekToken()
	if tok.Type == token.EOF {
		return parseError{loxerr.Parsing(tok.Line, "%s Found end of input.", message)}
	}
	return parseError{loxerr.Parsing(tok.Line, "%s Found '%s'.", message, tok.Lexeme)}
}

// declaration ::= varDecl | statement
func (p *Parser) parseDeclaration() ast.Stmt {
	if p.tryConsume(token.VAR) {
		return p.parseVarDecl()
	}
	return p.parseStatement()
}

// varDecl ::= "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) parseVarDecl() ast.Stmt {
	name := p.consumeToken(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr = &ast.Literal{Value: value.Nil{}}
	if p.tryConsume(token.EQUAL) {
		initializer = p.parseExpression()
	}

	p.consumeToken(token.SEMICOLON, "Expect ';' after variable declaration.")

	return &ast.VarDecl{Name: name, Initializer: initializer}
}

// statement ::= printStmt | block | ifStmt | exprStmt
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.tryConsume(token.PRINT):
		return p.parsePrintStmt()
	case p.tryConsume(token.LEFT_BRACE):
		return p.parseBlock()
	case p.tryConsume(token.IF):
		return p.parseIfStmt()
	default:
		return p.parseExprStmt()
	}
}

// printStmt ::= "print" expression ";"
func (p *Parser) parsePrintStmt() ast.Stmt {
	expr := p.parseExpression()
	p.consumeToken(token.SEMICOLON, "Expect ';' after value.")

	return &ast.PrintStmt{Expr: expr}
}

// block ::= "{" declaration* "}"
func (p *Parser) parseBlock() ast.Stmt {
	stmts := []ast.Stmt{}
	for !p.isAtEnd() && p.peekToken().Type != token.RIGHT_BRACE {
		stmts = append(stmts, p.parseDeclaration())
	}

	p.consumeToken(token.RIGHT_BRACE, "Expect '}' after block.")

	return &ast.Block{Stmts: stmts}
}

// ifStmt ::= "if" "(" expression ")" statement ( "else" statement )?
// An else binds to the nearest if, since the inner call consumes it first.
func (p *Parser) parseIfStmt() ast.Stmt {
	p.consumeToken(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.parseExpression()
	p.consumeToken(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenStmt := p.parseStatement()

	var elseStmt ast.Stmt
	if p.tryConsume(token.ELSE) {
		elseStmt = p.parseStatement()
	}

	return &ast.IfStmt{Condition: cond, Then: thenStmt, Else: elseStmt}
}

// exprStmt ::= expression ";"
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpression()
	p.consumeToken(token.SEMICOLON, "Expect ';' after expression.")

	return &ast.ExprStmt{Expr: expr}
}

// expression ::= equality
func (p *Parser) parseExpression() ast.Expr {
	return p.parseEquality()
}

// equality ::= comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) parseEquality() ast.Expr {
	return p.parseLeftAssoc(p.parseComparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

// comparison ::= term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) parseComparison() ast.Expr {
	return p.parseLeftAssoc(p.parseTerm,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

// term ::= factor ( ( "-" | "+" ) factor )*
func (p *Parser) parseTerm() ast.Expr {
	return p.parseLeftAssoc(p.parseFactor, token.MINUS, token.PLUS)
}

// factor ::= unary ( ( "*" | "/" ) unary )*
func (p *Parser) parseFactor() ast.Expr {
	return p.parseLeftAssoc(p.parseUnary, token.SLASH, token.STAR)
}

// parseLeftAssoc folds operand (op operand)* into a left-leaning tree.
func (p *Parser) parseLeftAssoc(operand func() ast.Expr, ops ...token.Type) ast.Expr {
	expr := operand()
	for op, ok := p.consumeOneOf(ops...); ok; op, ok = p.consumeOneOf(ops...) {
		rhs := operand()
		expr = &ast.Binary{Left: expr, Op: op, Right: rhs}
	}

	return expr
}

// unary ::= ( "!" | "-" ) unary | primary
func (p *Parser) parseUnary() ast.Expr {
	if op, ok := p.consumeOneOf(token.BANG, token.MINUS); ok {
		rhs := p.parseUnary()
		return &ast.Unary{Op: op, Right: rhs}
	}

	return p.parsePrimary()
}

/*
 * primary ::= "true" | "false" | "nil"
 *           | NUMBER | STRING
 *           | IDENTIFIER
 *           | "(" expression ")"
 */
func (p *Parser) parsePrimary() ast.Expr {
	switch tok := p.peekToken(); tok.Type {
	case token.TRUE:
		p.advance()
		return &ast.Literal{Value: value.True}
	case token.FALSE:
		p.advance()
		return &ast.Literal{Value: value.False}
	case token.NIL:
		p.advance()
		return &ast.Literal{Value: value.Nil{}}
	case token.NUMBER, token.STRING:
		p.advance()
		return &ast.Literal{Value: tok.Literal}
	case token.IDENTIFIER:
		p.advance()
		return &ast.Variable{Name: tok}
	case token.LEFT_PAREN:
		p.advance()
		expr := p.parseExpression()
		p.consumeToken(token.RIGHT_PAREN, "Expect ')' after expression.")

		return &ast.Grouping{Expr: expr}
	default:
		panic(p.errorAtPeek("Unsupported token as primary."))
	}
}
