package hir

import (
	"smir/internal/source"
)

// ExprKind enumerates surface expression kinds. Only the slice of the
// surface language the lint passes inspect is modeled; everything else
// folds into ExprOther with its children preserved.
type ExprKind uint8

const (
	// ExprLit represents a literal.
	ExprLit ExprKind = iota
	// ExprPath represents a (possibly qualified) path reference.
	ExprPath
	// ExprCall represents a path call like Vec::with_capacity(n).
	ExprCall
	// ExprMethodCall represents recv.method(args...).
	ExprMethodCall
	// ExprAddrOf represents &expr / &mut expr.
	ExprAddrOf
	// ExprOther represents any other expression; children are kept so
	// visitors can still walk through it.
	ExprOther
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Lit"
	case ExprPath:
		return "Path"
	case ExprCall:
		return "Call"
	case ExprMethodCall:
		return "MethodCall"
	case ExprAddrOf:
		return "AddrOf"
	case ExprOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Expr is a surface expression.
type Expr struct {
	Kind          ExprKind
	Span          source.Span
	FromExpansion bool

	Lit        LitExpr
	Path       PathExpr
	Call       CallExpr
	MethodCall MethodCallExpr
	AddrOf     AddrOfExpr
	Children   []Expr // for ExprOther
}

// LitExpr keeps the literal text plus its parsed integer value when the
// literal is an unsuffixed integer.
type LitExpr struct {
	Text   string
	IsInt  bool
	IntVal uint64
}

// PathExpr references a binding or item by its final segment. Qual holds
// the leading segments ("Vec" in Vec::with_capacity).
type PathExpr struct {
	Qual  string
	Ident string
}

// CallExpr is a call of a path expression.
type CallExpr struct {
	Callee PathExpr
	Args   []Expr
}

// MethodCallExpr is recv.method(args...).
type MethodCallExpr struct {
	Recv   *Expr
	Method string
	Args   []Expr
}

// AddrOfExpr is &expr or &mut expr.
type AddrOfExpr struct {
	Mut   bool
	Inner *Expr
}

// Walk visits the expression and all nested expressions in preorder until
// visit returns false.
func Walk(e *Expr, visit func(*Expr) bool) bool {
	if e == nil {
		return true
	}
	if !visit(e) {
		return false
	}
	switch e.Kind {
	case ExprCall:
		for i := range e.Call.Args {
			if !Walk(&e.Call.Args[i], visit) {
				return false
			}
		}
	case ExprMethodCall:
		if !Walk(e.MethodCall.Recv, visit) {
			return false
		}
		for i := range e.MethodCall.Args {
			if !Walk(&e.MethodCall.Args[i], visit) {
				return false
			}
		}
	case ExprAddrOf:
		if !Walk(e.AddrOf.Inner, visit) {
			return false
		}
	case ExprOther:
		for i := range e.Children {
			if !Walk(&e.Children[i], visit) {
				return false
			}
		}
	case ExprLit, ExprPath:
		// leaves
	}
	return true
}
