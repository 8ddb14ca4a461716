package ir

import (
	"fmt"
	"strings"
)

// StatementKind enumerates internal statement kinds.
type StatementKind uint8

const (
	StmtAssign StatementKind = iota
	StmtFakeRead
	StmtSetDiscriminant
	StmtDeinit
	StmtStorageLive
	StmtStorageDead
	StmtRetag
	StmtPlaceMention
	StmtAscribeUserType
	StmtCoverage
	StmtIntrinsic
	StmtConstEvalCounter
	StmtNop
)

// Statement is one internal MIR statement.
type Statement struct {
	Kind StatementKind

	Assign AssignStmt
}

// AssignStmt stores `place = rvalue`.
type AssignStmt struct {
	Place  Place
	Rvalue Rvalue
}

// ProjElemKind enumerates place projection steps.
type ProjElemKind uint8

const (
	ProjDeref ProjElemKind = iota
	ProjField
	ProjIndex
	ProjDowncast
)

// ProjElem is one step of a place projection chain.
type ProjElem struct {
	Kind  ProjElemKind
	Index uint32 // field index, index local, or variant index
}

func (p ProjElem) String() string {
	switch p.Kind {
	case ProjDeref:
		return "*"
	case ProjField:
		return fmt.Sprintf(".%d", p.Index)
	case ProjIndex:
		return fmt.Sprintf("[_%d]", p.Index)
	case ProjDowncast:
		return fmt.Sprintf("as variant#%d", p.Index)
	default:
		return "?"
	}
}

// Place is a memory location: a local plus a projection chain.
type Place struct {
	Local      uint32
	Projection []ProjElem
}

// ProjectionString renders the projection chain for display.
func (p Place) ProjectionString() string {
	if len(p.Projection) == 0 {
		return "[]"
	}
	parts := make([]string, len(p.Projection))
	for i, e := range p.Projection {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// OperandKind enumerates operand kinds.
type OperandKind uint8

const (
	OperandCopy OperandKind = iota
	OperandMove
	OperandConstant
)

// Operand is a value reference used by rvalues and terminators.
type Operand struct {
	Kind OperandKind

	Place Place
	Const Const
}

// CopyOf builds a copying operand.
func CopyOf(p Place) Operand {
	return Operand{Kind: OperandCopy, Place: p}
}

// MoveOf builds a moving operand.
func MoveOf(p Place) Operand {
	return Operand{Kind: OperandMove, Place: p}
}

// ConstOperand builds a constant operand.
func ConstOperand(c Const) Operand {
	return Operand{Kind: OperandConstant, Const: c}
}

// RvalueKind enumerates value-producing expressions.
type RvalueKind uint8

const (
	RvalueUse RvalueKind = iota
	RvalueRepeat
	RvalueRef
	RvalueThreadLocalRef
	RvalueAddressOf
	RvalueLen
	RvalueCast
	RvalueBinaryOp
	RvalueCheckedBinaryOp
	RvalueNullaryOp
	RvalueUnaryOp
	RvalueDiscriminant
	RvalueAggregate
	RvalueShallowInitBox
	RvalueCopyForDeref
)

// Rvalue is one internal value-producing expression.
type Rvalue struct {
	Kind RvalueKind

	Use            Operand        // RvalueUse
	Ref            RefRvalue      // RvalueRef
	ThreadLocalDef DefID          // RvalueThreadLocalRef
	AddressOf      AddressOfRval  // RvalueAddressOf
	Len            Place          // RvalueLen
	Cast           CastRvalue     // RvalueCast
	Binary         BinaryRvalue   // RvalueBinaryOp, RvalueCheckedBinaryOp
	Nullary        NullaryRvalue  // RvalueNullaryOp
	Unary          UnaryRvalue    // RvalueUnaryOp
	Discriminant   Place          // RvalueDiscriminant
	CopyForDeref   Place          // RvalueCopyForDeref
}

// RefRvalue stores `&place` with its borrow kind and region.
type RefRvalue struct {
	Region Region
	Borrow BorrowKind
	Place  Place
}

// AddressOfRval stores `&raw const place` / `&raw mut place`.
type AddressOfRval struct {
	Mut   Mutability
	Place Place
}

// CastRvalue stores `operand as ty` with the cast classification.
type CastRvalue struct {
	Cast    CastKind
	Operand Operand
	Ty      Ty
}

// BinaryRvalue stores binary (possibly overflow-checked) operations.
type BinaryRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// NullaryRvalue stores operations producing a value from a type alone.
type NullaryRvalue struct {
	Op NullOp
	Ty Ty
}

// UnaryRvalue stores unary operations.
type UnaryRvalue struct {
	Op      UnOp
	Operand Operand
}

// BorrowKindTag enumerates borrow classifications.
type BorrowKindTag uint8

const (
	BorrowShared BorrowKindTag = iota
	BorrowShallow
	BorrowMut
)

// MutBorrowKind refines mutable borrows.
type MutBorrowKind uint8

const (
	MutBorrowDefault MutBorrowKind = iota
	MutBorrowTwoPhase
	MutBorrowClosureCapture
)

// BorrowKind classifies one borrow.
type BorrowKind struct {
	Kind BorrowKindTag
	Mut  MutBorrowKind // for BorrowMut
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinAddUnchecked
	BinSub
	BinSubUnchecked
	BinMul
	BinMulUnchecked
	BinDiv
	BinRem
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShlUnchecked
	BinShr
	BinShrUnchecked
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
	BinOffset
)

// UnOp enumerates unary operators.
type UnOp uint8

const (
	UnNot UnOp = iota
	UnNeg
)

// NullOpKind enumerates nullary operations.
type NullOpKind uint8

const (
	NullOpSizeOf NullOpKind = iota
	NullOpAlignOf
	NullOpOffsetOf
)

// NullOp is a nullary operation; OffsetOf carries a field index path.
type NullOp struct {
	Kind    NullOpKind
	Indices []uint32 // for NullOpOffsetOf
}

// CastKindTag enumerates cast classifications.
type CastKindTag uint8

const (
	CastPointerExposeAddress CastKindTag = iota
	CastPointerFromExposedAddress
	CastPointerCoercion
	CastDynStar
	CastIntToInt
	CastFloatToInt
	CastFloatToFloat
	CastIntToFloat
	CastPtrToPtr
	CastFnPtrToPtr
	CastTransmute
)

// PointerCoercionKind enumerates implicit pointer adjustments.
type PointerCoercionKind uint8

const (
	CoercionReifyFnPointer PointerCoercionKind = iota
	CoercionUnsafeFnPointer
	CoercionClosureFnPointer
	CoercionMutToConstPointer
	CoercionArrayToPointer
	CoercionUnsize
)

// CastKind classifies one cast; coercions carry their own refinement.
type CastKind struct {
	Kind     CastKindTag
	Coercion PointerCoercionKind // for CastPointerCoercion
	Unsafety Unsafety            // for CoercionClosureFnPointer
}
