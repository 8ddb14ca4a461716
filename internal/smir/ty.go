package smir

// Ty is an opaque handle to an interned type. Resolving it back to a
// structural kind requires the session that minted it.
type Ty uint32

// TyKindTag tags the top-level type classification. Only rigid types are
// modeled so far; alias/param/bound classifications stay unsupported at
// the conversion boundary.
type TyKindTag uint8

const (
	TyKindRigid TyKindTag = iota
)

// TyKind is the stable structural kind of a type.
type TyKind struct {
	Kind  TyKindTag
	Rigid RigidTy
}

// RigidTyKind enumerates the rigid type shapes.
type RigidTyKind uint8

const (
	RigidBool RigidTyKind = iota
	RigidChar
	RigidInt
	RigidUint
	RigidFloat
	RigidAdt
	RigidForeign
	RigidStr
	RigidArray
	RigidSlice
	RigidRawPtr
	RigidRef
	RigidFnDef
	RigidFnPtr
	RigidClosure
	RigidGenerator
	RigidNever
	RigidTuple
)

// IntTy enumerates stable signed integer kinds.
type IntTy uint8

const (
	IntIsize IntTy = iota
	IntI8
	IntI16
	IntI32
	IntI64
	IntI128
)

// UintTy enumerates stable unsigned integer kinds.
type UintTy uint8

const (
	UintUsize UintTy = iota
	UintU8
	UintU16
	UintU32
	UintU64
	UintU128
)

// FloatTy enumerates stable float kinds.
type FloatTy uint8

const (
	FloatF32 FloatTy = iota
	FloatF64
)

// Movability marks whether a generator may move between resumes.
type Movability uint8

const (
	MovabilityStatic Movability = iota
	MovabilityMovable
)

// RigidTy is one rigid type shape. Composite members reference nested
// structure through Ty handles, never inline copies, which keeps the
// representation acyclic and cheap to pass around.
type RigidTy struct {
	Kind RigidTyKind

	Int   IntTy
	Uint  UintTy
	Float FloatTy

	Adt       AdtTy
	Foreign   ForeignDef
	Array     ArrayTy
	Elem      Ty // RigidSlice
	RawPtr    PtrTy
	Ref       RefTy
	FnDef     FnDefTy
	FnPtr     PolyFnSig
	Closure   ClosureTy
	Generator GeneratorTy
	Tuple     TupleTy
}

// AdtTy is a nominal type with its generic arguments.
type AdtTy struct {
	Def  AdtDef
	Args GenericArgs
}

// ArrayTy is [T; N]; the length stays opaque.
type ArrayTy struct {
	Elem Ty
	Len  Opaque
}

// PtrTy is *const T / *mut T.
type PtrTy struct {
	Elem Ty
	Mut  Mutability
}

// RefTy is &T / &mut T; the region stays opaque.
type RefTy struct {
	Region Opaque
	Elem   Ty
	Mut    Mutability
}

// FnDefTy is the type of a concrete function item.
type FnDefTy struct {
	Def  FnDef
	Args GenericArgs
}

// ClosureTy is a closure with its captured environment arguments.
type ClosureTy struct {
	Def  ClosureDef
	Args GenericArgs
}

// GeneratorTy is a generator with its environment and movability.
type GeneratorTy struct {
	Def        GeneratorDef
	Args       GenericArgs
	Movability Movability
}

// TupleTy is (T1, ..., Tn).
type TupleTy struct {
	Fields []Ty
}

// GenericArgKind tags one stable generic argument.
type GenericArgKind uint8

const (
	GenericArgLifetime GenericArgKind = iota
	GenericArgType
	GenericArgConst
)

// GenericArg is one positional generic argument. Lifetimes and consts stay
// opaque.
type GenericArg struct {
	Kind     GenericArgKind
	Lifetime Opaque
	Ty       Ty
	Const    Opaque
}

// GenericArgs binds generic parameters positionally; order is significant.
type GenericArgs []GenericArg

// Safety is the stable function-safety marker.
type Safety uint8

const (
	SafetyNormal Safety = iota
	SafetyUnsafe
)

// AbiKind enumerates stable calling conventions.
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

// Abi pairs a calling convention with its unwind flag.
type Abi struct {
	Kind   AbiKind
	Unwind bool
}

// FnSig is a stable monomorphic signature: parameter types followed by the
// return type in last position.
type FnSig struct {
	InputsAndOutput []Ty
	CVariadic       bool
	Unsafety        Safety
	Abi             Abi
}

// PolyFnSig is a signature under its binder.
type PolyFnSig struct {
	Value     FnSig
	BoundVars []BoundVariableKind
}

// BoundVariableKindTag tags a bound variable.
type BoundVariableKindTag uint8

const (
	BoundVarTy BoundVariableKindTag = iota
	BoundVarRegion
	BoundVarConst
)

// BoundTyKindTag refines bound type variables.
type BoundTyKindTag uint8

const (
	BoundTyAnon BoundTyKindTag = iota
	BoundTyParam
)

// BoundTyKind is a bound type variable.
type BoundTyKind struct {
	Kind BoundTyKindTag
	Def  ParamDef
	Name string
}

// BoundRegionKindTag refines bound region variables.
type BoundRegionKindTag uint8

const (
	BrAnon BoundRegionKindTag = iota
	BrNamed
	BrEnv
)

// BoundRegionKind is a bound region variable; anonymous regions may carry
// an opaque span rendering.
type BoundRegionKind struct {
	Kind    BoundRegionKindTag
	HasSpan bool
	Span    Opaque
	Def     BrNamedDef
	Name    string
}

// BoundVariableKind is one variable of a binder.
type BoundVariableKind struct {
	Kind   BoundVariableKindTag
	Ty     BoundTyKind
	Region BoundRegionKind
}
