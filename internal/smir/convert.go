package smir

// The conversion engine: one stableX method per internal shape, total over
// the shapes this layer claims to support. Sum-typed shapes convert through
// a single exhaustive case split; variants without a stable counterpart
// abort with NotYetImplemented, variants promised unreachable at this IR
// stage abort with InvariantViolated. Nothing is ever coerced into an
// unrelated stable variant.

import (
	"smir/internal/ir"
)

func (t *Tables) stableBody(body *ir.Body) Body {
	blocks := make([]BasicBlock, 0, len(body.Blocks))
	for i := range body.Blocks {
		src := &body.Blocks[i]
		stmts := make([]Statement, 0, len(src.Statements))
		for j := range src.Statements {
			stmts = append(stmts, t.stableStatement(&src.Statements[j]))
		}
		blocks = append(blocks, BasicBlock{
			Statements: stmts,
			Terminator: t.stableTerminator(&src.Terminator),
		})
	}
	locals := make([]Ty, 0, len(body.Locals))
	for _, decl := range body.Locals {
		locals = append(locals, t.InternTy(decl.Ty))
	}
	return Body{Blocks: blocks, Locals: locals}
}

func (t *Tables) stableStatement(stmt *ir.Statement) Statement {
	switch stmt.Kind {
	case ir.StmtAssign:
		return Statement{Kind: StmtAssign, Assign: AssignStmt{
			Place:  t.stablePlace(stmt.Assign.Place),
			Rvalue: t.stableRvalue(&stmt.Assign.Rvalue),
		}}
	case ir.StmtNop:
		return Statement{Kind: StmtNop}
	case ir.StmtFakeRead, ir.StmtSetDiscriminant, ir.StmtDeinit,
		ir.StmtStorageLive, ir.StmtStorageDead, ir.StmtRetag,
		ir.StmtPlaceMention, ir.StmtAscribeUserType, ir.StmtCoverage,
		ir.StmtIntrinsic, ir.StmtConstEvalCounter:
		unsupported("statement kind %d", stmt.Kind)
	default:
		violated("unknown statement kind %d", stmt.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableRvalue(rv *ir.Rvalue) Rvalue {
	switch rv.Kind {
	case ir.RvalueUse:
		return Rvalue{Kind: RvalueUse, Use: t.stableOperand(rv.Use)}
	case ir.RvalueRef:
		return Rvalue{Kind: RvalueRef, Ref: RefRvalue{
			Region: OpaqueOf(rv.Ref.Region),
			Borrow: t.stableBorrowKind(rv.Ref.Borrow),
			Place:  t.stablePlace(rv.Ref.Place),
		}}
	case ir.RvalueThreadLocalRef:
		return Rvalue{Kind: RvalueThreadLocalRef, ThreadLocalRef: t.CrateItemOf(rv.ThreadLocalDef)}
	case ir.RvalueAddressOf:
		return Rvalue{Kind: RvalueAddressOf, AddressOf: AddressOfRvalue{
			Mut:   t.stableMutability(rv.AddressOf.Mut),
			Place: t.stablePlace(rv.AddressOf.Place),
		}}
	case ir.RvalueLen:
		return Rvalue{Kind: RvalueLen, Len: t.stablePlace(rv.Len)}
	case ir.RvalueCast:
		return Rvalue{Kind: RvalueCast, Cast: CastRvalue{
			Cast:    t.stableCastKind(rv.Cast.Cast),
			Operand: t.stableOperand(rv.Cast.Operand),
			Ty:      t.InternTy(rv.Cast.Ty),
		}}
	case ir.RvalueBinaryOp:
		return Rvalue{Kind: RvalueBinaryOp, Binary: t.stableBinary(&rv.Binary)}
	case ir.RvalueCheckedBinaryOp:
		return Rvalue{Kind: RvalueCheckedBinaryOp, Binary: t.stableBinary(&rv.Binary)}
	case ir.RvalueNullaryOp:
		return Rvalue{Kind: RvalueNullaryOp, Nullary: NullaryRvalue{
			Op: t.stableNullOp(rv.Nullary.Op),
			Ty: t.InternTy(rv.Nullary.Ty),
		}}
	case ir.RvalueUnaryOp:
		return Rvalue{Kind: RvalueUnaryOp, Unary: UnaryRvalue{
			Op:      t.stableUnOp(rv.Unary.Op),
			Operand: t.stableOperand(rv.Unary.Operand),
		}}
	case ir.RvalueDiscriminant:
		return Rvalue{Kind: RvalueDiscriminant, Discriminant: t.stablePlace(rv.Discriminant)}
	case ir.RvalueCopyForDeref:
		return Rvalue{Kind: RvalueCopyForDeref, CopyForDeref: t.stablePlace(rv.CopyForDeref)}
	case ir.RvalueRepeat, ir.RvalueAggregate, ir.RvalueShallowInitBox:
		unsupported("rvalue kind %d", rv.Kind)
	default:
		violated("unknown rvalue kind %d", rv.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableBinary(b *ir.BinaryRvalue) BinaryRvalue {
	return BinaryRvalue{
		Op:    t.stableBinOp(b.Op),
		Left:  t.stableOperand(b.Left),
		Right: t.stableOperand(b.Right),
	}
}

func (t *Tables) stableOperand(op ir.Operand) Operand {
	switch op.Kind {
	case ir.OperandCopy:
		return Operand{Kind: OperandCopy, Place: t.stablePlace(op.Place)}
	case ir.OperandMove:
		return Operand{Kind: OperandMove, Place: t.stablePlace(op.Place)}
	case ir.OperandConstant:
		return Operand{Kind: OperandConstant, Const: op.Const.String()}
	default:
		violated("unknown operand kind %d", op.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stablePlace(p ir.Place) Place {
	return Place{
		Local:      int(p.Local),
		Projection: p.ProjectionString(),
	}
}

func (t *Tables) stableMutability(m ir.Mutability) Mutability {
	switch m {
	case ir.MutNot:
		return MutNot
	case ir.MutMut:
		return MutMut
	default:
		violated("unknown mutability %d", m)
	}
	panic("unreachable")
}

func (t *Tables) stableBorrowKind(bk ir.BorrowKind) BorrowKind {
	switch bk.Kind {
	case ir.BorrowShared:
		return BorrowKind{Kind: BorrowShared}
	case ir.BorrowShallow:
		return BorrowKind{Kind: BorrowShallow}
	case ir.BorrowMut:
		return BorrowKind{Kind: BorrowMut, Mut: t.stableMutBorrowKind(bk.Mut)}
	default:
		violated("unknown borrow kind %d", bk.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableMutBorrowKind(mk ir.MutBorrowKind) MutBorrowKind {
	switch mk {
	case ir.MutBorrowDefault:
		return MutBorrowDefault
	case ir.MutBorrowTwoPhase:
		return MutBorrowTwoPhase
	case ir.MutBorrowClosureCapture:
		return MutBorrowClosureCapture
	default:
		violated("unknown mutable borrow kind %d", mk)
	}
	panic("unreachable")
}

func (t *Tables) stableNullOp(op ir.NullOp) NullOp {
	switch op.Kind {
	case ir.NullOpSizeOf:
		return NullOp{Kind: NullOpSizeOf}
	case ir.NullOpAlignOf:
		return NullOp{Kind: NullOpAlignOf}
	case ir.NullOpOffsetOf:
		indices := make([]int, 0, len(op.Indices))
		for _, idx := range op.Indices {
			indices = append(indices, int(idx))
		}
		return NullOp{Kind: NullOpOffsetOf, Indices: indices}
	default:
		violated("unknown nullary op %d", op.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableCastKind(ck ir.CastKind) CastKind {
	switch ck.Kind {
	case ir.CastPointerExposeAddress:
		return CastKind{Kind: CastPointerExposeAddress}
	case ir.CastPointerFromExposedAddress:
		return CastKind{Kind: CastPointerFromExposedAddress}
	case ir.CastPointerCoercion:
		stable := CastKind{Kind: CastPointerCoercion}
		stable.Coercion = t.stableCoercion(ck.Coercion)
		if ck.Coercion == ir.CoercionClosureFnPointer {
			stable.Safety = t.stableSafety(ck.Unsafety)
		}
		return stable
	case ir.CastDynStar:
		return CastKind{Kind: CastDynStar}
	case ir.CastIntToInt:
		return CastKind{Kind: CastIntToInt}
	case ir.CastFloatToInt:
		return CastKind{Kind: CastFloatToInt}
	case ir.CastFloatToFloat:
		return CastKind{Kind: CastFloatToFloat}
	case ir.CastIntToFloat:
		return CastKind{Kind: CastIntToFloat}
	case ir.CastPtrToPtr:
		return CastKind{Kind: CastPtrToPtr}
	case ir.CastFnPtrToPtr:
		return CastKind{Kind: CastFnPtrToPtr}
	case ir.CastTransmute:
		return CastKind{Kind: CastTransmute}
	default:
		violated("unknown cast kind %d", ck.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableCoercion(pc ir.PointerCoercionKind) PointerCoercionKind {
	switch pc {
	case ir.CoercionReifyFnPointer:
		return CoercionReifyFnPointer
	case ir.CoercionUnsafeFnPointer:
		return CoercionUnsafeFnPointer
	case ir.CoercionClosureFnPointer:
		return CoercionClosureFnPointer
	case ir.CoercionMutToConstPointer:
		return CoercionMutToConstPointer
	case ir.CoercionArrayToPointer:
		return CoercionArrayToPointer
	case ir.CoercionUnsize:
		return CoercionUnsize
	default:
		violated("unknown pointer coercion %d", pc)
	}
	panic("unreachable")
}

func (t *Tables) stableSafety(u ir.Unsafety) Safety {
	switch u {
	case ir.UnsafetyNormal:
		return SafetyNormal
	case ir.UnsafetyUnsafe:
		return SafetyUnsafe
	default:
		violated("unknown unsafety %d", u)
	}
	panic("unreachable")
}

func (t *Tables) stableBinOp(op ir.BinOp) BinOp {
	switch op {
	case ir.BinAdd:
		return BinAdd
	case ir.BinAddUnchecked:
		return BinAddUnchecked
	case ir.BinSub:
		return BinSub
	case ir.BinSubUnchecked:
		return BinSubUnchecked
	case ir.BinMul:
		return BinMul
	case ir.BinMulUnchecked:
		return BinMulUnchecked
	case ir.BinDiv:
		return BinDiv
	case ir.BinRem:
		return BinRem
	case ir.BinBitXor:
		return BinBitXor
	case ir.BinBitAnd:
		return BinBitAnd
	case ir.BinBitOr:
		return BinBitOr
	case ir.BinShl:
		return BinShl
	case ir.BinShlUnchecked:
		return BinShlUnchecked
	case ir.BinShr:
		return BinShr
	case ir.BinShrUnchecked:
		return BinShrUnchecked
	case ir.BinEq:
		return BinEq
	case ir.BinLt:
		return BinLt
	case ir.BinLe:
		return BinLe
	case ir.BinNe:
		return BinNe
	case ir.BinGe:
		return BinGe
	case ir.BinGt:
		return BinGt
	case ir.BinOffset:
		return BinOffset
	default:
		violated("unknown binary op %d", op)
	}
	panic("unreachable")
}

func (t *Tables) stableUnOp(op ir.UnOp) UnOp {
	switch op {
	case ir.UnNot:
		return UnNot
	case ir.UnNeg:
		return UnNeg
	default:
		violated("unknown unary op %d", op)
	}
	panic("unreachable")
}

func (t *Tables) stableTerminator(term *ir.Terminator) Terminator {
	switch term.Kind {
	case ir.TermGoto:
		return Terminator{Kind: TermGoto, Goto: GotoTerm{Target: int(term.Goto.Target)}}
	case ir.TermSwitchInt:
		targets := make([]SwitchTarget, 0, len(term.SwitchInt.Cases))
		for _, c := range term.SwitchInt.Cases {
			targets = append(targets, SwitchTarget{Value: c.Value, Target: int(c.Target)})
		}
		return Terminator{Kind: TermSwitchInt, SwitchInt: SwitchIntTerm{
			Discr:     t.stableOperand(term.SwitchInt.Discr),
			Targets:   targets,
			Otherwise: int(term.SwitchInt.Otherwise),
		}}
	case ir.TermResume:
		return Terminator{Kind: TermResume}
	case ir.TermTerminate:
		return Terminator{Kind: TermAbort}
	case ir.TermReturn:
		return Terminator{Kind: TermReturn}
	case ir.TermUnreachable:
		return Terminator{Kind: TermUnreachable}
	case ir.TermDrop:
		return Terminator{Kind: TermDrop, Drop: DropTerm{
			Place:  t.stablePlace(term.Drop.Place),
			Target: int(term.Drop.Target),
			Unwind: t.stableUnwind(term.Drop.Unwind),
		}}
	case ir.TermCall:
		args := make([]Operand, 0, len(term.Call.Args))
		for _, arg := range term.Call.Args {
			args = append(args, t.stableOperand(arg))
		}
		return Terminator{Kind: TermCall, Call: CallTerm{
			Func:        t.stableOperand(term.Call.Func),
			Args:        args,
			Destination: t.stablePlace(term.Call.Destination),
			HasTarget:   term.Call.HasTarget,
			Target:      int(term.Call.Target),
			Unwind:      t.stableUnwind(term.Call.Unwind),
		}}
	case ir.TermAssert:
		return Terminator{Kind: TermAssert, Assert: AssertTerm{
			Cond:     t.stableOperand(term.Assert.Cond),
			Expected: term.Assert.Expected,
			Msg:      t.stableAssertMessage(&term.Assert.Msg),
			Target:   int(term.Assert.Target),
			Unwind:   t.stableUnwind(term.Assert.Unwind),
		}}
	case ir.TermInlineAsm:
		operands := make([]InlineAsmOperand, 0, len(term.InlineAsm.Operands))
		for i := range term.InlineAsm.Operands {
			operands = append(operands, t.stableAsmOperand(&term.InlineAsm.Operands[i]))
		}
		return Terminator{Kind: TermInlineAsm, InlineAsm: InlineAsmTerm{
			Template:  term.InlineAsm.Template,
			Operands:  operands,
			Options:   term.InlineAsm.Options,
			LineSpans: term.InlineAsm.LineSpans,
			HasDest:   term.InlineAsm.HasDest,
			Dest:      int(term.InlineAsm.Dest),
			Unwind:    t.stableUnwind(term.InlineAsm.Unwind),
		}}
	case ir.TermYield, ir.TermGeneratorDrop, ir.TermFalseEdge, ir.TermFalseUnwind:
		// These only exist before the later simplification passes; the
		// producing layer promises they are gone from the bodies we see.
		violated("terminator kind %d survived simplification", term.Kind)
	default:
		violated("unknown terminator kind %d", term.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableUnwind(u ir.UnwindAction) UnwindAction {
	switch u.Kind {
	case ir.UnwindContinue:
		return UnwindAction{Kind: UnwindContinue}
	case ir.UnwindUnreachable:
		return UnwindAction{Kind: UnwindUnreachable}
	case ir.UnwindTerminate:
		return UnwindAction{Kind: UnwindTerminate}
	case ir.UnwindCleanup:
		return UnwindAction{Kind: UnwindCleanup, Cleanup: int(u.Cleanup)}
	default:
		violated("unknown unwind action %d", u.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableAssertMessage(msg *ir.AssertMessage) AssertMessage {
	switch msg.Kind {
	case ir.AssertBoundsCheck:
		return AssertMessage{
			Kind:  AssertBoundsCheck,
			Len:   t.stableOperand(msg.Len),
			Index: t.stableOperand(msg.Index),
		}
	case ir.AssertOverflow:
		return AssertMessage{
			Kind:  AssertOverflow,
			Op:    t.stableBinOp(msg.Op),
			Left:  t.stableOperand(msg.Left),
			Right: t.stableOperand(msg.Right),
		}
	case ir.AssertOverflowNeg:
		return AssertMessage{Kind: AssertOverflowNeg, Operand: t.stableOperand(msg.Operand)}
	case ir.AssertDivisionByZero:
		return AssertMessage{Kind: AssertDivisionByZero, Operand: t.stableOperand(msg.Operand)}
	case ir.AssertRemainderByZero:
		return AssertMessage{Kind: AssertRemainderByZero, Operand: t.stableOperand(msg.Operand)}
	case ir.AssertResumedAfterReturn:
		return AssertMessage{Kind: AssertResumedAfterReturn, Generator: t.stableGeneratorKind(msg.Generator)}
	case ir.AssertResumedAfterPanic:
		return AssertMessage{Kind: AssertResumedAfterPanic, Generator: t.stableGeneratorKind(msg.Generator)}
	case ir.AssertMisalignedPointerDereference:
		return AssertMessage{
			Kind:     AssertMisalignedPointerDereference,
			Required: t.stableOperand(msg.Required),
			Found:    t.stableOperand(msg.Found),
		}
	default:
		violated("unknown assert message kind %d", msg.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableGeneratorKind(gk ir.GeneratorKind) GeneratorKind {
	switch gk.Kind {
	case ir.GeneratorGen:
		return GeneratorKind{Kind: GeneratorGen}
	case ir.GeneratorAsync:
		stable := GeneratorKind{Kind: GeneratorAsync}
		switch gk.Async {
		case ir.AsyncGenBlock:
			stable.Async = AsyncGenBlock
		case ir.AsyncGenClosure:
			stable.Async = AsyncGenClosure
		case ir.AsyncGenFn:
			stable.Async = AsyncGenFn
		default:
			violated("unknown async generator kind %d", gk.Async)
		}
		return stable
	default:
		violated("unknown generator kind %d", gk.Kind)
	}
	panic("unreachable")
}

func (t *Tables) stableAsmOperand(op *ir.InlineAsmOperand) InlineAsmOperand {
	stable := InlineAsmOperand{RawRepr: op.RawRepr}
	switch op.Kind {
	case ir.AsmIn:
		stable.HasIn = true
		stable.In = t.stableOperand(op.In)
	case ir.AsmOut:
		if op.HasOut {
			stable.HasOut = true
			stable.Out = t.stablePlace(op.Out)
		}
	case ir.AsmInOut:
		stable.HasIn = true
		stable.In = t.stableOperand(op.In)
		if op.HasOut {
			stable.HasOut = true
			stable.Out = t.stablePlace(op.Out)
		}
	case ir.AsmConst, ir.AsmSymFn, ir.AsmSymStatic:
		// Only the raw rendering survives for these.
	default:
		violated("unknown inline asm operand kind %d", op.Kind)
	}
	return stable
}
