package ast

import (
	"fmt"
	"strings"

	"glox/internal/token"
)

type Stmt interface {
	isStmt()
	fmt.Stringer
}

type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) isStmt() {}
func (e ExprStmt) String() string {
	return "(; " + e.Expr.String() + ")"
}

type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) isStmt() {}
func (p PrintStmt) String() string {
	return parenthesize("print", p.Expr)
}

// VarDecl always has an initializer; the parser fills in a nil literal when
// the source omits one.
type VarDecl struct {
	Name        token.Token
	Initializer Expr
}

func (*VarDecl) isStmt() {}
func (d VarDecl) String() string {
	return parenthesize("var "+d.Name.Lexeme, d.Initializer)
}

type Block struct {
	Stmts []Stmt
}

func (*Block) isStmt() {}
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString("(block")
	for _, stmt := range b.Stmts {
		sb.WriteByte(' ')
		sb.WriteString(stmt.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// IfStmt.Else is nil when there is no else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) isStmt() {}
func (i IfStmt) String() string {
	var sb strings.Builder

	sb.WriteString("(if ")
	sb.WriteString(i.Condition.String())
	sb.WriteByte(' ')
	sb.WriteString(i.Then.String())
	if i.Else != nil {
		sb.WriteByte(' ')
		sb.WriteString(i.Else.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
