package ir

// Ty references an interned internal type descriptor. It is only meaningful
// together with the Interner that minted it.
type Ty uint32

// TypeKind enumerates every internal type shape.
type TypeKind uint8

const (
	TyBool TypeKind = iota
	TyChar
	TyInt
	TyUint
	TyFloat
	TyAdt
	TyForeign
	TyStr
	TyArray
	TySlice
	TyRawPtr
	TyRef
	TyFnDef
	TyFnPtr
	TyDynamic
	TyClosure
	TyGenerator
	TyNever
	TyTuple
	TyAlias
	TyParam
	TyBound
	TyPlaceholder
	TyGeneratorWitness
	TyInfer
	TyError
)

// IntTy enumerates signed integer widths.
type IntTy uint8

const (
	IntIsize IntTy = iota
	IntI8
	IntI16
	IntI32
	IntI64
	IntI128
)

// UintTy enumerates unsigned integer widths.
type UintTy uint8

const (
	UintUsize UintTy = iota
	UintU8
	UintU16
	UintU32
	UintU64
	UintU128
)

// FloatTy enumerates floating point widths.
type FloatTy uint8

const (
	FloatF32 FloatTy = iota
	FloatF64
)

// Mutability distinguishes mutable from shared access.
type Mutability uint8

const (
	MutNot Mutability = iota
	MutMut
)

// Movability marks whether a generator may be moved after the first resume.
type Movability uint8

const (
	MovabilityStatic Movability = iota
	MovabilityMovable
)

// Unsafety marks function safety.
type Unsafety uint8

const (
	UnsafetyNormal Unsafety = iota
	UnsafetyUnsafe
)

// AbiKind enumerates calling conventions.
type AbiKind uint8

const (
	AbiRust AbiKind = iota
	AbiC
	AbiCdecl
	AbiStdcall
	AbiFastcall
	AbiVectorcall
	AbiThiscall
	AbiAapcs
	AbiWin64
	AbiSysV64
	AbiPtxKernel
	AbiMsp430Interrupt
	AbiX86Interrupt
	AbiAmdGpuKernel
	AbiEfiApi
	AbiAvrInterrupt
	AbiAvrNonBlockingInterrupt
	AbiCCmseNonSecureCall
	AbiWasm
	AbiSystem
	AbiRustIntrinsic
	AbiRustCall
	AbiPlatformIntrinsic
	AbiUnadjusted
	AbiRustCold
)

// Abi pairs a calling convention with its unwind flag. The flag is only
// meaningful for the conventions that support both variants.
type Abi struct {
	Kind   AbiKind
	Unwind bool
}

// GenericArgKind tags one positional generic argument.
type GenericArgKind uint8

const (
	GenericArgLifetime GenericArgKind = iota
	GenericArgType
	GenericArgConst
)

// GenericArg is one positional generic argument.
type GenericArg struct {
	Kind   GenericArgKind
	Region Region
	Ty     Ty
	Const  Const
}

// GenericArgs binds generic parameters positionally; order is significant.
type GenericArgs []GenericArg

// LifetimeArg builds a lifetime generic argument.
func LifetimeArg(r Region) GenericArg {
	return GenericArg{Kind: GenericArgLifetime, Region: r}
}

// TypeArg builds a type generic argument.
func TypeArg(ty Ty) GenericArg {
	return GenericArg{Kind: GenericArgType, Ty: ty}
}

// ConstArg builds a const generic argument.
func ConstArg(c Const) GenericArg {
	return GenericArg{Kind: GenericArgConst, Const: c}
}

// FnSig is a monomorphic function signature. InputsAndOutput lists the
// parameter types followed by the return type in last position.
type FnSig struct {
	InputsAndOutput []Ty
	CVariadic       bool
	Unsafety        Unsafety
	Abi             Abi
}

// BoundVariableKindTag tags a late-bound variable of a polymorphic signature.
type BoundVariableKindTag uint8

const (
	BoundVarTy BoundVariableKindTag = iota
	BoundVarRegion
	BoundVarConst
)

// BoundTyKind describes a late-bound type variable.
type BoundTyKind uint8

const (
	BoundTyAnon BoundTyKind = iota
	BoundTyParam
)

// BoundRegionKind describes a late-bound region variable.
type BoundRegionKind uint8

const (
	BoundRegionAnon BoundRegionKind = iota
	BoundRegionNamed
	BoundRegionEnv
)

// BoundVariableKind is one bound variable of a binder.
type BoundVariableKind struct {
	Kind BoundVariableKindTag

	TyKind     BoundTyKind
	RegionKind BoundRegionKind
	Def        DefID  // for BoundTyParam / BoundRegionNamed
	Name       string // for BoundTyParam / BoundRegionNamed
	HasSpan    bool   // for BoundRegionAnon
	Span       string // textual span rendering, opaque downstream
}

// PolyFnSig is a function signature together with its binder.
type PolyFnSig struct {
	Sig       FnSig
	BoundVars []BoundVariableKind
}

// Type is the internal structural descriptor for one type. Exactly the
// payload fields named by Kind are meaningful.
type Type struct {
	Kind TypeKind

	Int   IntTy   // TyInt
	Uint  UintTy  // TyUint
	Float FloatTy // TyFloat

	Def  DefID       // TyAdt, TyForeign, TyFnDef, TyClosure, TyGenerator
	Args GenericArgs // TyAdt, TyFnDef, TyClosure, TyGenerator

	Elem    Ty         // TyArray, TySlice, TyRawPtr, TyRef
	Len     Const      // TyArray
	Mut     Mutability // TyRawPtr, TyRef
	Region  Region     // TyRef
	FnSig   PolyFnSig  // TyFnPtr
	Fields  []Ty       // TyTuple
	Movable Movability // TyGenerator
}

// Descriptor helpers ---------------------------------------------------------

func MakeBool() Type  { return Type{Kind: TyBool} }
func MakeChar() Type  { return Type{Kind: TyChar} }
func MakeStr() Type   { return Type{Kind: TyStr} }
func MakeNever() Type { return Type{Kind: TyNever} }

// MakeInt describes a signed integer of the given width.
func MakeInt(width IntTy) Type {
	return Type{Kind: TyInt, Int: width}
}

// MakeUint describes an unsigned integer of the given width.
func MakeUint(width UintTy) Type {
	return Type{Kind: TyUint, Uint: width}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width FloatTy) Type {
	return Type{Kind: TyFloat, Float: width}
}

// MakeAdt describes a nominal type instantiated with generic arguments.
func MakeAdt(def DefID, args GenericArgs) Type {
	return Type{Kind: TyAdt, Def: def, Args: args}
}

// MakeForeign describes an extern type.
func MakeForeign(def DefID) Type {
	return Type{Kind: TyForeign, Def: def}
}

// MakeArray describes [T; N].
func MakeArray(elem Ty, length Const) Type {
	return Type{Kind: TyArray, Elem: elem, Len: length}
}

// MakeSlice describes [T].
func MakeSlice(elem Ty) Type {
	return Type{Kind: TySlice, Elem: elem}
}

// MakeRawPtr describes *const T / *mut T.
func MakeRawPtr(elem Ty, mut Mutability) Type {
	return Type{Kind: TyRawPtr, Elem: elem, Mut: mut}
}

// MakeRef describes &T / &mut T with its region.
func MakeRef(region Region, elem Ty, mut Mutability) Type {
	return Type{Kind: TyRef, Region: region, Elem: elem, Mut: mut}
}

// MakeFnDef describes the zero-sized type of a concrete function item.
func MakeFnDef(def DefID, args GenericArgs) Type {
	return Type{Kind: TyFnDef, Def: def, Args: args}
}

// MakeFnPtr describes a function pointer with the given signature.
func MakeFnPtr(sig PolyFnSig) Type {
	return Type{Kind: TyFnPtr, FnSig: sig}
}

// MakeClosure describes a closure type.
func MakeClosure(def DefID, args GenericArgs) Type {
	return Type{Kind: TyClosure, Def: def, Args: args}
}

// MakeGenerator describes a generator type.
func MakeGenerator(def DefID, args GenericArgs, movability Movability) Type {
	return Type{Kind: TyGenerator, Def: def, Args: args, Movable: movability}
}

// MakeTuple describes (T1, ..., Tn).
func MakeTuple(fields []Ty) Type {
	return Type{Kind: TyTuple, Fields: fields}
}
