package ir

// LocalDecl declares one body-local slot. Locals are referenced by position.
type LocalDecl struct {
	Ty  Ty
	Mut Mutability
}

// BasicBlock is a straight-line statement sequence ending in one terminator.
type BasicBlock struct {
	Statements []Statement
	Terminator Terminator
}

// Body is the control-flow graph of one definition after the final
// simplification passes. Blocks are referenced by position.
type Body struct {
	Blocks []BasicBlock
	Locals []LocalDecl
}
