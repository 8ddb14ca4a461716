package ir

// TermKind enumerates internal terminator kinds.
type TermKind uint8

const (
	TermGoto TermKind = iota
	TermSwitchInt
	TermResume
	TermTerminate
	TermReturn
	TermUnreachable
	TermDrop
	TermCall
	TermAssert
	TermInlineAsm
	// The kinds below only exist before the later simplification passes and
	// must not appear in the bodies this layer consumes.
	TermYield
	TermGeneratorDrop
	TermFalseEdge
	TermFalseUnwind
)

// BlockID references a block by position inside its body.
type BlockID uint32

// Terminator is the control transfer ending a basic block.
type Terminator struct {
	Kind TermKind

	Goto      GotoTerm
	SwitchInt SwitchIntTerm
	Drop      DropTerm
	Call      CallTerm
	Assert    AssertTerm
	InlineAsm InlineAsmTerm
}

// GotoTerm jumps unconditionally.
type GotoTerm struct {
	Target BlockID
}

// SwitchCase pairs one discriminant value with its target block.
type SwitchCase struct {
	Value  uint64
	Target BlockID
}

// SwitchIntTerm dispatches on an integer discriminant.
type SwitchIntTerm struct {
	Discr     Operand
	Cases     []SwitchCase
	Otherwise BlockID
}

// UnwindActionKind enumerates unwind edges.
type UnwindActionKind uint8

const (
	UnwindContinue UnwindActionKind = iota
	UnwindUnreachable
	UnwindTerminate
	UnwindCleanup
)

// UnwindAction describes what happens when the operation unwinds.
type UnwindAction struct {
	Kind    UnwindActionKind
	Cleanup BlockID // for UnwindCleanup
}

// DropTerm drops a place and continues.
type DropTerm struct {
	Place  Place
	Target BlockID
	Unwind UnwindAction
}

// CallTerm invokes a function value.
type CallTerm struct {
	Func        Operand
	Args        []Operand
	Destination Place
	HasTarget   bool
	Target      BlockID
	Unwind      UnwindAction
}

// AssertKind enumerates assertion messages.
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

// AsyncGeneratorKind refines async generators by their source form.
type AsyncGeneratorKind uint8

const (
	AsyncGenBlock AsyncGeneratorKind = iota
	AsyncGenClosure
	AsyncGenFn
)

// GeneratorKind classifies the generator a resumed-after assertion names.
type GeneratorKind struct {
	Kind  GeneratorKindTag
	Async AsyncGeneratorKind // for GeneratorAsync
}

// AssertMessage is the payload of an Assert terminator.
type AssertMessage struct {
	Kind AssertKind

	Len       Operand // AssertBoundsCheck
	Index     Operand // AssertBoundsCheck
	Op        BinOp   // AssertOverflow
	Left      Operand // AssertOverflow
	Right     Operand // AssertOverflow
	Operand   Operand // AssertOverflowNeg, AssertDivisionByZero, AssertRemainderByZero
	Generator GeneratorKind
	Required  Operand // AssertMisalignedPointerDereference
	Found     Operand // AssertMisalignedPointerDereference
}

// AssertTerm checks a condition and panics with a message on failure.
type AssertTerm struct {
	Cond     Operand
	Expected bool
	Msg      AssertMessage
	Target   BlockID
	Unwind   UnwindAction
}

// InlineAsmOperandKind enumerates inline assembly operand roles.
type InlineAsmOperandKind uint8

const (
	AsmIn InlineAsmOperandKind = iota
	AsmOut
	AsmInOut
	AsmConst
	AsmSymFn
	AsmSymStatic
)

// InlineAsmOperand is one operand of an inline assembly block.
type InlineAsmOperand struct {
	Kind InlineAsmOperandKind

	In       Operand // AsmIn, AsmInOut
	HasOut   bool    // AsmOut, AsmInOut
	Out      Place
	RawRepr  string // textual rendering of the full operand
}

// InlineAsmTerm embeds an inline assembly block.
type InlineAsmTerm struct {
	Template  string
	Operands  []InlineAsmOperand
	Options   string
	LineSpans string
	HasDest   bool
	Dest      BlockID
	Unwind    UnwindAction
}
