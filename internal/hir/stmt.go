package hir

import (
	"smir/internal/source"
)

// StmtKind enumerates surface statement kinds.
type StmtKind uint8

const (
	// StmtLet represents a let binding.
	StmtLet StmtKind = iota
	// StmtExpr represents an expression statement.
	StmtExpr
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtExpr:
		return "Expr"
	default:
		return "Unknown"
	}
}

// Stmt is a surface statement.
type Stmt struct {
	Kind          StmtKind
	Span          source.Span
	FromExpansion bool

	Let  LetStmt
	Expr *Expr // for StmtExpr
}

// LetStmt binds a pattern identifier to an optional initializer.
type LetStmt struct {
	Ident   string
	HasInit bool
	Init    *Expr
}

// Block is an ordered statement list with an optional trailing expression.
type Block struct {
	Stmts   []Stmt
	HasExpr bool
	Expr    Expr
	Span    source.Span
}
