package ir

import (
	"fmt"

	"fortio.org/safecast"
)

// Interner owns the internal type table. Structurally equal descriptors get
// the same Ty; the table only grows for the lifetime of a compilation.
type Interner struct {
	types []Type
}

// NewInterner constructs an empty interner.
func NewInterner() *Interner {
	return &Interner{}
}

// Intern ensures the descriptor has a Ty, deduplicating by structural
// equality. Descriptors with slice payloads rule out a map index, so the
// scan is linear; fine at the scale of one compilation at a time.
func (in *Interner) Intern(t Type) Ty {
	for i := range in.types {
		if typeEqual(&in.types[i], &t) {
			return Ty(uint32(i))
		}
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := Ty(lenTypes)
	in.types = append(in.types, t)
	return id
}

// Lookup returns the descriptor for a Ty.
func (in *Interner) Lookup(id Ty) (Type, bool) {
	if int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id was not minted by this interner.
func (in *Interner) MustLookup(id Ty) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("ir: invalid Ty")
	}
	return tt
}

// Len returns the number of interned descriptors.
func (in *Interner) Len() int {
	return len(in.types)
}

func typeEqual(a, b *Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TyBool, TyChar, TyStr, TyNever, TyDynamic, TyAlias, TyParam, TyBound,
		TyPlaceholder, TyGeneratorWitness, TyInfer, TyError:
		return true
	case TyInt:
		return a.Int == b.Int
	case TyUint:
		return a.Uint == b.Uint
	case TyFloat:
		return a.Float == b.Float
	case TyAdt, TyFnDef, TyClosure:
		return a.Def == b.Def && argsEqual(a.Args, b.Args)
	case TyGenerator:
		return a.Def == b.Def && a.Movable == b.Movable && argsEqual(a.Args, b.Args)
	case TyForeign:
		return a.Def == b.Def
	case TyArray:
		return a.Elem == b.Elem && a.Len == b.Len
	case TySlice:
		return a.Elem == b.Elem
	case TyRawPtr:
		return a.Elem == b.Elem && a.Mut == b.Mut
	case TyRef:
		return a.Elem == b.Elem && a.Mut == b.Mut && a.Region == b.Region
	case TyFnPtr:
		return polySigEqual(&a.FnSig, &b.FnSig)
	case TyTuple:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func argsEqual(a, b GenericArgs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func polySigEqual(a, b *PolyFnSig) bool {
	if a.Sig.CVariadic != b.Sig.CVariadic ||
		a.Sig.Unsafety != b.Sig.Unsafety ||
		a.Sig.Abi != b.Sig.Abi {
		return false
	}
	if len(a.Sig.InputsAndOutput) != len(b.Sig.InputsAndOutput) {
		return false
	}
	for i := range a.Sig.InputsAndOutput {
		if a.Sig.InputsAndOutput[i] != b.Sig.InputsAndOutput[i] {
			return false
		}
	}
	if len(a.BoundVars) != len(b.BoundVars) {
		return false
	}
	for i := range a.BoundVars {
		if a.BoundVars[i] != b.BoundVars[i] {
			return false
		}
	}
	return true
}
