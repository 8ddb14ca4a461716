package ir

import "testing"

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	elem := in.Intern(MakeUint(UintU8))
	s1 := in.Intern(MakeSlice(elem))
	s2 := in.Intern(MakeSlice(elem))
	if s1 != s2 {
		t.Fatalf("slice types should be deduplicated")
	}
	if in.Len() != 2 {
		t.Fatalf("expected 2 interned types, got %d", in.Len())
	}
}

func TestInternerDistinguishesWidths(t *testing.T) {
	in := NewInterner()
	i32 := in.Intern(MakeInt(IntI32))
	i64 := in.Intern(MakeInt(IntI64))
	if i32 == i64 {
		t.Fatalf("i32 and i64 must differ")
	}
}

func TestReferenceMutabilityAffectsIdentity(t *testing.T) {
	in := NewInterner()
	elem := in.Intern(MakeBool())
	mut := in.Intern(MakeRef(Region{Kind: RegionErased}, elem, MutMut))
	imm := in.Intern(MakeRef(Region{Kind: RegionErased}, elem, MutNot))
	if mut == imm {
		t.Fatalf("mutable and immutable references must differ")
	}
}

func TestInternerLookupRoundTrip(t *testing.T) {
	in := NewInterner()
	elem := in.Intern(MakeChar())
	arr := in.Intern(MakeArray(elem, Const{Kind: ConstUint, UintValue: 4}))

	got, ok := in.Lookup(arr)
	if !ok {
		t.Fatalf("lookup failed for minted Ty")
	}
	if got.Kind != TyArray || got.Elem != elem {
		t.Fatalf("lookup returned wrong descriptor: %+v", got)
	}

	if _, ok := in.Lookup(Ty(99)); ok {
		t.Fatalf("lookup must fail for foreign Ty")
	}
}

func TestTupleFieldOrderAffectsIdentity(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeBool())
	b := in.Intern(MakeChar())
	ab := in.Intern(MakeTuple([]Ty{a, b}))
	ba := in.Intern(MakeTuple([]Ty{b, a}))
	if ab == ba {
		t.Fatalf("tuple field order must affect identity")
	}
	again := in.Intern(MakeTuple([]Ty{a, b}))
	if ab != again {
		t.Fatalf("equal tuples must deduplicate")
	}
}

func TestFnPtrSignatureIdentity(t *testing.T) {
	in := NewInterner()
	unit := in.Intern(MakeTuple(nil))
	boolTy := in.Intern(MakeBool())

	sig := PolyFnSig{Sig: FnSig{
		InputsAndOutput: []Ty{boolTy, unit},
		Abi:             Abi{Kind: AbiRust},
	}}
	p1 := in.Intern(MakeFnPtr(sig))
	p2 := in.Intern(MakeFnPtr(sig))
	if p1 != p2 {
		t.Fatalf("identical fn pointer signatures must deduplicate")
	}

	unsafeSig := sig
	unsafeSig.Sig.Unsafety = UnsafetyUnsafe
	p3 := in.Intern(MakeFnPtr(unsafeSig))
	if p3 == p1 {
		t.Fatalf("unsafety must affect identity")
	}
}
