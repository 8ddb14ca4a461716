package hir

import (
	"smir/internal/source"
)

// VecInitKindTag classifies how a Vec binding is initialized.
type VecInitKindTag uint8

const (
	// VecInitNew matches Vec::new() and vec![].
	VecInitNew VecInitKindTag = iota
	// VecInitDefault matches Default::default() / Vec::default().
	VecInitDefault
	// VecInitWithConstCapacity matches Vec::with_capacity(<int literal>).
	VecInitWithConstCapacity
	// VecInitWithExprCapacity matches Vec::with_capacity(<expr>).
	VecInitWithExprCapacity
)

// VecInitKind is the recognized zero-length vector initializer.
type VecInitKind struct {
	Kind VecInitKindTag

	Capacity uint64      // for VecInitWithConstCapacity
	CapSpan  source.Span // for VecInitWithExprCapacity
}

// GetVecInitKind recognizes initializer expressions that produce an empty
// vector. Returns false for anything else, including vec![...; n] and
// Vec::from(...), which start populated.
func GetVecInitKind(init *Expr) (VecInitKind, bool) {
	if init == nil {
		return VecInitKind{}, false
	}
	if init.Kind != ExprCall {
		return VecInitKind{}, false
	}
	callee := init.Call.Callee
	if callee.Qual != "Vec" && callee.Qual != "Default" {
		return VecInitKind{}, false
	}
	switch callee.Ident {
	case "new":
		if len(init.Call.Args) == 0 {
			return VecInitKind{Kind: VecInitNew}, true
		}
	case "default":
		if len(init.Call.Args) == 0 {
			return VecInitKind{Kind: VecInitDefault}, true
		}
	case "with_capacity":
		if len(init.Call.Args) != 1 {
			return VecInitKind{}, false
		}
		arg := &init.Call.Args[0]
		if arg.Kind == ExprLit && arg.Lit.IsInt {
			return VecInitKind{Kind: VecInitWithConstCapacity, Capacity: arg.Lit.IntVal}, true
		}
		return VecInitKind{Kind: VecInitWithExprCapacity, CapSpan: arg.Span}, true
	}
	return VecInitKind{}, false
}
