package token

var Keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Lookup returns the keyword type for ident, or IDENTIFIER.
func Lookup(ident string) Type {
	if typ, ok := Keywords[ident]; ok {
		return typ
	}
	return IDENTIFIER
}
