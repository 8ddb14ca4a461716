package lint

import (
	"fmt"

	"smir/internal/diag"
	"smir/internal/hir"
	"smir/internal/source"
)

// ReadZeroByteVec flags reads into a vector that is still zero-length.
// `Read::read` and `Read::read_exact` fill at most `len()` bytes, so a
// binding fresh from Vec::new or Vec::with_capacity silently reads nothing.
// Only the statement immediately following the binding is inspected; any
// intervening statement may grow the vector and suppresses the finding.
type ReadZeroByteVec struct{}

func (ReadZeroByteVec) Name() string { return "read-zero-byte-vec" }

func (p ReadZeroByteVec) CheckBlock(cx *Context, block *hir.Block) {
	for i := range block.Stmts {
		stmt := &block.Stmts[i]
		if stmt.Kind != hir.StmtLet || stmt.FromExpansion || !stmt.Let.HasInit {
			continue
		}
		init, ok := hir.GetVecInitKind(stmt.Let.Init)
		if !ok {
			continue
		}

		next, fromExpansion := followingExpr(block, i)
		if next == nil || fromExpansion {
			continue
		}
		read, found := findReadCall(next, stmt.Let.Ident)
		if !found {
			continue
		}
		p.report(cx, stmt.Let.Ident, init, read)
	}
}

// followingExpr returns the expression of the statement right after index
// i, or the trailing block expression when i is the last statement.
func followingExpr(block *hir.Block, i int) (expr *hir.Expr, fromExpansion bool) {
	if i+1 < len(block.Stmts) {
		next := &block.Stmts[i+1]
		if next.Kind != hir.StmtExpr {
			return nil, false
		}
		return next.Expr, next.FromExpansion
	}
	if block.HasExpr {
		return &block.Expr, block.Expr.FromExpansion
	}
	return nil, false
}

// findReadCall locates a `recv.read(&mut ident)` or `recv.read_exact(&mut
// ident)` call anywhere inside expr, including under `.await` chains.
func findReadCall(expr *hir.Expr, ident string) (*hir.Expr, bool) {
	var match *hir.Expr
	hir.Walk(expr, func(e *hir.Expr) bool {
		if e.Kind != hir.ExprMethodCall {
			return true
		}
		method := e.MethodCall.Method
		if method != "read" && method != "read_exact" {
			return true
		}
		if len(e.MethodCall.Args) == 0 {
			return true
		}
		arg := &e.MethodCall.Args[0]
		if arg.Kind != hir.ExprAddrOf || !arg.AddrOf.Mut {
			return true
		}
		inner := arg.AddrOf.Inner
		if inner == nil || inner.Kind != hir.ExprPath {
			return true
		}
		if inner.Path.Qual != "" || inner.Path.Ident != ident {
			return true
		}
		match = e
		return false
	})
	return match, match != nil
}

func (p ReadZeroByteVec) report(cx *Context, ident string, init hir.VecInitKind, read *hir.Expr) {
	builder := diag.ReportWarning(cx.Reporter, diag.LintReadZeroByteVec, read.Span,
		"reading zero byte data to `Vec`")

	switch init.Kind {
	case hir.VecInitWithConstCapacity:
		builder.WithFixSuggestion(p.resizeFix(cx, ident,
			fmt.Sprintf("%d", init.Capacity), read.Span))
	case hir.VecInitWithExprCapacity:
		builder.WithFixSuggestion(p.resizeFix(cx, ident,
			cx.Files.Snippet(init.CapSpan), read.Span))
	case hir.VecInitNew, hir.VecInitDefault:
		// No capacity to resize to; report without a suggestion.
	}
	builder.Emit()
}

func (p ReadZeroByteVec) resizeFix(cx *Context, ident, capacity string, readSpan source.Span) diag.Fix {
	snippet := cx.Files.Snippet(readSpan)
	return diag.Fix{
		ID:            p.Name(),
		Title:         "initialize the buffer before reading",
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityMaybeIncorrect,
		Edits: []diag.TextEdit{{
			Span:    readSpan,
			NewText: fmt.Sprintf("%s.resize(%s, 0); %s", ident, capacity, snippet),
			OldText: snippet,
		}},
	}
}
