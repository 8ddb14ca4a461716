package smir

// Body is the stable snapshot of one definition's control-flow graph.
// Locals are referenced by position; blocks are referenced by position in
// jump targets. The value is fully owned by the caller except for the Ty
// handles, which need the originating session to resolve.
type Body struct {
	Blocks []BasicBlock
	Locals []Ty
}

// BasicBlock holds statements in source order plus exactly one terminator.
type BasicBlock struct {
	Statements []Statement
	Terminator Terminator
}

// StatementKind enumerates stable statement kinds.
type StatementKind uint8

const (
	StmtAssign StatementKind = iota
	StmtNop
)

// Statement is one stable statement.
type Statement struct {
	Kind StatementKind

	Assign AssignStmt
}

// AssignStmt stores `place = rvalue`.
type AssignStmt struct {
	Place  Place
	Rvalue Rvalue
}

// Mutability distinguishes mutable from shared access.
type Mutability uint8

const (
	MutNot Mutability = iota
	MutMut
)

// BorrowKindTag enumerates stable borrow classifications.
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
	Mut  MutBorrowKind
}

// Place is a memory location: a local index plus an opaque projection
// rendering. The local index is always < len(Locals) of the owning Body.
type Place struct {
	Local      int
	Projection string
}

// OperandKind enumerates stable operand kinds.
type OperandKind uint8

const (
	OperandCopy OperandKind = iota
	OperandMove
	OperandConstant
)

// Operand references a value. Constants keep only their rendering.
type Operand struct {
	Kind OperandKind

	Place Place
	Const string
}

// RvalueKind enumerates stable value-producing expressions.
type RvalueKind uint8

const (
	RvalueUse RvalueKind = iota
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
	RvalueCopyForDeref
)

// Rvalue is one stable value-producing expression.
type Rvalue struct {
	Kind RvalueKind

	Use            Operand
	Ref            RefRvalue
	ThreadLocalRef CrateItem
	AddressOf      AddressOfRvalue
	Len            Place
	Cast           CastRvalue
	Binary         BinaryRvalue // RvalueBinaryOp, RvalueCheckedBinaryOp
	Nullary        NullaryRvalue
	Unary          UnaryRvalue
	Discriminant   Place
	CopyForDeref   Place
}

// RefRvalue is `&place`; the region stays opaque.
type RefRvalue struct {
	Region Opaque
	Borrow BorrowKind
	Place  Place
}

// AddressOfRvalue is `&raw const place` / `&raw mut place`.
type AddressOfRvalue struct {
	Mut   Mutability
	Place Place
}

// CastRvalue is `operand as ty`.
type CastRvalue struct {
	Cast    CastKind
	Operand Operand
	Ty      Ty
}

// BinaryRvalue is a binary (possibly overflow-checked) operation.
type BinaryRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// NullaryRvalue produces a value from a type alone.
type NullaryRvalue struct {
	Op NullOp
	Ty Ty
}

// UnaryRvalue is a unary operation.
type UnaryRvalue struct {
	Op      UnOp
	Operand Operand
}

// BinOp enumerates stable binary operators.
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

// UnOp enumerates stable unary operators.
type UnOp uint8

const (
	UnNot UnOp = iota
	UnNeg
)

// NullOpKind enumerates stable nullary operations.
type NullOpKind uint8

const (
	NullOpSizeOf NullOpKind = iota
	NullOpAlignOf
	NullOpOffsetOf
)

// NullOp is a stable nullary operation; OffsetOf carries field indices.
type NullOp struct {
	Kind    NullOpKind
	Indices []int
}

// CastKindTag enumerates stable cast classifications.
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

// PointerCoercionKind enumerates stable pointer coercions.
type PointerCoercionKind uint8

const (
	CoercionReifyFnPointer PointerCoercionKind = iota
	CoercionUnsafeFnPointer
	CoercionClosureFnPointer
	CoercionMutToConstPointer
	CoercionArrayToPointer
	CoercionUnsize
)

// CastKind classifies one cast.
type CastKind struct {
	Kind     CastKindTag
	Coercion PointerCoercionKind
	Safety   Safety // for CoercionClosureFnPointer
}

// TerminatorKind enumerates stable terminator kinds.
type TerminatorKind uint8

const (
	TermGoto TerminatorKind = iota
	TermSwitchInt
	TermResume
	TermAbort
	TermReturn
	TermUnreachable
	TermDrop
	TermCall
	TermAssert
	TermInlineAsm
)

// Terminator ends a block. Every successor index it carries is strictly
// less than len(Blocks) of the owning Body.
type Terminator struct {
	Kind TerminatorKind

	Goto      GotoTerm
	SwitchInt SwitchIntTerm
	Drop      DropTerm
	Call      CallTerm
	Assert    AssertTerm
	InlineAsm InlineAsmTerm
}

// GotoTerm jumps unconditionally.
type GotoTerm struct {
	Target int
}

// SwitchTarget pairs one discriminant value with its target block.
type SwitchTarget struct {
	Value  uint64
	Target int
}

// SwitchIntTerm dispatches on an integer discriminant.
type SwitchIntTerm struct {
	Discr     Operand
	Targets   []SwitchTarget
	Otherwise int
}

// UnwindActionKind enumerates stable unwind edges.
type UnwindActionKind uint8

const (
	UnwindContinue UnwindActionKind = iota
	UnwindUnreachable
	UnwindTerminate
	UnwindCleanup
)

// UnwindAction describes the unwind edge of an operation.
type UnwindAction struct {
	Kind    UnwindActionKind
	Cleanup int
}

// DropTerm drops a place and continues.
type DropTerm struct {
	Place  Place
	Target int
	Unwind UnwindAction
}

// CallTerm invokes a function value.
type CallTerm struct {
	Func        Operand
	Args        []Operand
	Destination Place
	HasTarget   bool
	Target      int
	Unwind      UnwindAction
}

// AssertKind enumerates stable assertion messages.
type AssertKind uint8

const (
	AssertBoundsCheck AssertKind = iota
	AssertOverflow
	AssertOverflowNeg
	AssertDivisionByZero
	AssertRemainderByZero
	AssertResumedAfterReturn
	AssertResumedAfterPanic
	AssertMisalignedPointerDereference
)

// GeneratorKindTag distinguishes async generators from plain ones.
type GeneratorKindTag uint8

const (
	GeneratorAsync GeneratorKindTag = iota
	GeneratorGen
)

// AsyncGeneratorKind refines async generators.
type AsyncGeneratorKind uint8

const (
	AsyncGenBlock AsyncGeneratorKind = iota
	AsyncGenClosure
	AsyncGenFn
)

// GeneratorKind classifies the generator a resumed-after assertion names.
type GeneratorKind struct {
	Kind  GeneratorKindTag
	Async AsyncGeneratorKind
}

// AssertMessage is the stable payload of an Assert terminator.
type AssertMessage struct {
	Kind AssertKind

	Len       Operand
	Index     Operand
	Op        BinOp
	Left      Operand
	Right     Operand
	Operand   Operand
	Generator GeneratorKind
	Required  Operand
	Found     Operand
}

// AssertTerm checks a condition and panics with a message on failure.
type AssertTerm struct {
	Cond     Operand
	Expected bool
	Msg      AssertMessage
	Target   int
	Unwind   UnwindAction
}

// InlineAsmOperand keeps the structured in/out slots plus the raw
// rendering of the whole operand.
type InlineAsmOperand struct {
	HasIn   bool
	In      Operand
	HasOut  bool
	Out     Place
	RawRepr string
}

// InlineAsmTerm embeds an inline assembly block. Template, options and
// line spans stay textual.
type InlineAsmTerm struct {
	Template  string
	Operands  []InlineAsmOperand
	Options   string
	LineSpans string
	HasDest   bool
	Dest      int
	Unwind    UnwindAction
}

// Successors lists every block index the terminator can transfer to,
// including cleanup edges.
func (t *Terminator) Successors() []int {
	var out []int
	unwind := func(u UnwindAction) {
		if u.Kind == UnwindCleanup {
			out = append(out, u.Cleanup)
		}
	}
	switch t.Kind {
	case TermGoto:
		out = append(out, t.Goto.Target)
	case TermSwitchInt:
		for _, tgt := range t.SwitchInt.Targets {
			out = append(out, tgt.Target)
		}
		out = append(out, t.SwitchInt.Otherwise)
	case TermResume, TermAbort, TermReturn, TermUnreachable:
		// no successors
	case TermDrop:
		out = append(out, t.Drop.Target)
		unwind(t.Drop.Unwind)
	case TermCall:
		if t.Call.HasTarget {
			out = append(out, t.Call.Target)
		}
		unwind(t.Call.Unwind)
	case TermAssert:
		out = append(out, t.Assert.Target)
		unwind(t.Assert.Unwind)
	case TermInlineAsm:
		if t.InlineAsm.HasDest {
			out = append(out, t.InlineAsm.Dest)
		}
		unwind(t.InlineAsm.Unwind)
	}
	return out
}
