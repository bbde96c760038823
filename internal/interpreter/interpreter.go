package interpreter

import (
	"fmt"
	"io"
	"os"

	"glox/internal/ast"
	"glox/internal/loxerr"
	"glox/internal/token"
	"glox/internal/value"
)

type Interpreter struct {
	env    *Environment
	out    io.Writer
	scopes Stack[*Environment] // snapshots taken on block entry
}

// New returns an interpreter that prints to out, or to stdout when out is nil.
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{env: NewEnvironment(), out: out}
}

// Env is the live environment. It is replaced, not mutated, on block exit.
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Depth reports how many blocks are currently open.
func (i *Interpreter) Depth() int {
	return i.scopes.Len()
}

// Interpret executes stmts in order and stops at the first runtime error.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression against the live environment.
func (i *Interpreter) Evaluate(expr ast.Expr) (value.Value, error) {
	return i.evaluate(expr)
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		val, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}

		i.env.Define(s.Name.Lexeme, val)

		return nil
	case *ast.ExprStmt:
		_, err := i.evaluate(s.Expr)
		return err
	case *ast.PrintStmt:
		val, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(i.out, val.String())
		return err
	case *ast.Block:
		return i.execBlock(s)
	case *ast.IfStmt:
		return i.execIfStmt(s)
	default:
		panic(fmt.Sprintf(
			"Unimplemented Statement type: %T", s))
	}
}

// execBlock runs the block against the live environment and then restores
// the snapshot taken on entry, so declarations never escape the block.
func (i *Interpreter) execBlock(block *ast.Block) error {
	i.scopes.Push(i.env.Clone())
	defer func() { i.env = i.scopes.Pop() }() // ensure restoration even on error

	for _, stmt := range block.Stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execIfStmt(stmt *ast.IfStmt) error {
	cond, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}

	if value.Truthy(cond) {
		return i.execute(stmt.Then)
	}

	if stmt.Else != nil {
		return i.execute(stmt.Else)
	}

	return nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Value == nil {
			return value.Nil{}, nil
		}
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expr)
	case *ast.Variable:
		return i.env.Access(e.Name)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	default:
		panic(fmt.Sprintf(
			"Unimplemented Expression type: %T", e))
	}
}

func (i *Interpreter) evalUnary(expr *ast.Unary) (value.Value, error) {
	rhs, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case token.BANG:
		return value.Of(!value.Truthy(rhs)), nil
	case token.MINUS:
		// Negating a non-number yields nil rather than an error.
		n, ok := rhs.(value.Number)
		if !ok {
			return value.Nil{}, nil
		}
		return -n, nil
	default:
		return nil, loxerr.Runtime(expr.Op.Line,
			"Operator '%s' does not support unary operation.", expr.Op.Lexeme)
	}
}

func (i *Interpreter) evalBinary(expr *ast.Binary) (value.Value, error) {
	lhs, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	rhs, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case token.EQUAL_EQUAL:
		return value.Of(value.Equal(lhs, rhs)), nil
	case token.BANG_EQUAL:
		return value.Of(!value.Equal(lhs, rhs)), nil
	case token.PLUS:
		return evalPlus(expr.Op, lhs, rhs)
	case token.MINUS, token.STAR, token.SLASH:
		return evalMath(expr.Op, lhs, rhs)
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return evalComparison(expr.Op, lhs, rhs)
	default:
		return nil, loxerr.Runtime(expr.Op.Line,
			"Operator '%s' does not support binary operation.", expr.Op.Lexeme)
	}
}

// Currently, the only overloaded op is '+' for string concatenation
func evalPlus(op token.Token, lhs, rhs value.Value) (value.Value, error) {
	switch l := lhs.(type) {
	case value.Number:
		if r, ok := rhs.(value.Number); ok {
			return l + r, nil
		}
	case value.String:
		if r, ok := rhs.(value.String); ok {
			return l + r, nil
		}
	}

	return nil, loxerr.Runtime(op.Line,
		"Operand must be either number or string, got %s + %s.",
		value.TypeName(lhs), value.TypeName(rhs))
}

func evalMath(op token.Token, lhs, rhs value.Value) (value.Value, error) {
	l, lok := lhs.(value.Number)
	r, rok := rhs.(value.Number)
	if !lok || !rok {
		return nil, loxerr.Runtime(op.Line,
			"Operands of '%s' must be numbers, got %s and %s.",
			op.Lexeme, value.TypeName(lhs), value.TypeName(rhs))
	}

	switch op.Type {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	default:
		// NOTE: golang behavior:
		// 0/0 == NaN
		// 1/0 == +Inf
		// -1/0 == -Inf
		return l / r, nil
	}
}

func evalComparison(op token.Token, lhs, rhs value.Value) (value.Value, error) {
	switch l := lhs.(type) {
	case value.Number:
		if r, ok := rhs.(value.Number); ok {
			return value.Of(compare(op.Type, l, r)), nil
		}
	case value.String:
		if r, ok := rhs.(value.String); ok {
			return value.Of(compare(op.Type, l, r)), nil
		}
	}

	return nil, loxerr.Runtime(op.Line,
		"Operands of '%s' must be either numbers or strings, got %s and %s.",
		op.Lexeme, value.TypeName(lhs), value.TypeName(rhs))
}

func compare[T value.Number | value.String](typ token.Type, l, r T) bool {
	switch typ {
	case token.LESS:
		return l < r
	case token.LESS_EQUAL:
		return l <= r
	case token.GREATER:
		return l > r
	case token.GREATER_EQUAL:
		return l >= r
	}

	panic("Unreachable.")
}
