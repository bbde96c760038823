package ast

import (
	"fmt"
	"strings"

	"glox/internal/token"
	"glox/internal/value"
)

// Expr is implemented by the pointer types of every expression node. Each
// node owns its children; the tree never shares or cycles.
type Expr interface {
	isExpr()
	fmt.Stringer
}

type Literal struct {
	Value value.Value
}

func (*Literal) isExpr() {}
func (l Literal) String() string {
	if s, ok := l.Value.(value.String); ok {
		return `"` + string(s) + `"`
	}
	if l.Value == nil {
		return "nil"
	}
	return l.Value.String()
}

type Unary struct {
	Op    token.Token
	Right Expr
}

func (*Unary) isExpr() {}
func (u Unary) String() string {
	return parenthesize(u.Op.Lexeme, u.Right)
}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) isExpr() {}
func (b Binary) String() string {
	return parenthesize(b.Op.Lexeme, b.Left, b.Right)
}

type Grouping struct {
	Expr Expr
}

func (*Grouping) isExpr() {}
func (g Grouping) String() string {
	return parenthesize("group", g.Expr)
}

type Variable struct {
	Name token.Token
}

func (*Variable) isExpr() {}
func (v Variable) String() string {
	return v.Name.Lexeme
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(expr.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
