package smir

import (
	"errors"
	"testing"

	"smir/internal/ir"
)

// sessionWithBody builds a one-fn context around the given body and opens a
// session over it.
func sessionWithBody(body *ir.Body) (*Session, CrateItem) {
	cx := ir.NewContext("demo")
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, body)
	s := NewSession(cx)
	return s, s.AllLocalItems()[0]
}

func intConst(ty ir.Ty, v int64) ir.Operand {
	return ir.ConstOperand(ir.Const{Kind: ir.ConstInt, Ty: ty, IntValue: v})
}

func TestStableBodyStatementsAndOperands(t *testing.T) {
	cx := ir.NewContext("demo")
	i32 := cx.InternType(ir.MakeInt(ir.IntI32))
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, &ir.Body{
		Locals: []ir.LocalDecl{{Ty: i32, Mut: ir.MutMut}, {Ty: i32}},
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{
				{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
					Place: ir.Place{Local: 0},
					Rvalue: ir.Rvalue{Kind: ir.RvalueBinaryOp, Binary: ir.BinaryRvalue{
						Op:    ir.BinAdd,
						Left:  ir.CopyOf(ir.Place{Local: 1}),
						Right: intConst(i32, 2),
					}},
				}},
				{Kind: ir.StmtNop},
			},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})
	s := NewSession(cx)

	body, err := s.MirBody(s.AllLocalItems()[0])
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}

	if len(body.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(body.Blocks))
	}
	stmts := body.Blocks[0].Statements
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	assign := stmts[0]
	if assign.Kind != StmtAssign {
		t.Fatalf("statement 0 kind = %v", assign.Kind)
	}
	if assign.Assign.Place.Local != 0 {
		t.Errorf("destination local = %d", assign.Assign.Place.Local)
	}
	rv := assign.Assign.Rvalue
	if rv.Kind != RvalueBinaryOp || rv.Binary.Op != BinAdd {
		t.Fatalf("rvalue = %+v", rv)
	}
	if rv.Binary.Left.Kind != OperandCopy || rv.Binary.Left.Place.Local != 1 {
		t.Errorf("left operand = %+v", rv.Binary.Left)
	}
	if rv.Binary.Right.Kind != OperandConstant || rv.Binary.Right.Const != "2" {
		t.Errorf("right operand = %+v", rv.Binary.Right)
	}

	if stmts[1].Kind != StmtNop {
		t.Errorf("statement 1 kind = %v", stmts[1].Kind)
	}
}

func TestStablePlaceProjection(t *testing.T) {
	cx := ir.NewContext("demo")
	i32 := cx.InternType(ir.MakeInt(ir.IntI32))
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, &ir.Body{
		Locals: []ir.LocalDecl{{Ty: i32}, {Ty: i32}},
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
				Place: ir.Place{Local: 0, Projection: []ir.ProjElem{
					{Kind: ir.ProjDeref},
					{Kind: ir.ProjField, Index: 1},
				}},
				Rvalue: ir.Rvalue{Kind: ir.RvalueUse, Use: ir.MoveOf(ir.Place{Local: 1})},
			}}},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})
	s := NewSession(cx)

	body, err := s.MirBody(s.AllLocalItems()[0])
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}
	place := body.Blocks[0].Statements[0].Assign.Place
	if place.Projection != "[*, .1]" {
		t.Errorf("projection rendering = %q", place.Projection)
	}
}

func TestStableTerminators(t *testing.T) {
	cx := ir.NewContext("demo")
	boolTy := cx.InternType(ir.MakeBool())
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, &ir.Body{
		Locals: []ir.LocalDecl{{Ty: boolTy}, {Ty: boolTy}},
		Blocks: []ir.BasicBlock{
			{Terminator: ir.Terminator{Kind: ir.TermSwitchInt, SwitchInt: ir.SwitchIntTerm{
				Discr:     ir.CopyOf(ir.Place{Local: 0}),
				Cases:     []ir.SwitchCase{{Value: 0, Target: 1}, {Value: 1, Target: 2}},
				Otherwise: 3,
			}}},
			{Terminator: ir.Terminator{Kind: ir.TermCall, Call: ir.CallTerm{
				Func:        ir.MoveOf(ir.Place{Local: 1}),
				Args:        []ir.Operand{ir.CopyOf(ir.Place{Local: 0})},
				Destination: ir.Place{Local: 0},
				HasTarget:   true,
				Target:      3,
				Unwind:      ir.UnwindAction{Kind: ir.UnwindCleanup, Cleanup: 4},
			}}},
			{Terminator: ir.Terminator{Kind: ir.TermAssert, Assert: ir.AssertTerm{
				Cond:     ir.CopyOf(ir.Place{Local: 0}),
				Expected: true,
				Msg: ir.AssertMessage{
					Kind: ir.AssertOverflow,
					Op:   ir.BinMul,
					Left: intConst(boolTy, 2), Right: intConst(boolTy, 3),
				},
				Target: 3,
				Unwind: ir.UnwindAction{Kind: ir.UnwindUnreachable},
			}}},
			{Terminator: ir.Terminator{Kind: ir.TermReturn}},
			{Terminator: ir.Terminator{Kind: ir.TermResume}},
		},
	})
	s := NewSession(cx)

	body, err := s.MirBody(s.AllLocalItems()[0])
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}

	sw := body.Blocks[0].Terminator
	if sw.Kind != TermSwitchInt {
		t.Fatalf("block 0 terminator = %v", sw.Kind)
	}
	if len(sw.SwitchInt.Targets) != 2 || sw.SwitchInt.Otherwise != 3 {
		t.Errorf("switch payload = %+v", sw.SwitchInt)
	}
	succs := sw.Successors()
	if len(succs) != 3 {
		t.Errorf("switch successors = %v", succs)
	}

	call := body.Blocks[1].Terminator
	if call.Kind != TermCall || !call.Call.HasTarget || call.Call.Target != 3 {
		t.Fatalf("call payload = %+v", call.Call)
	}
	if call.Call.Unwind.Kind != UnwindCleanup || call.Call.Unwind.Cleanup != 4 {
		t.Errorf("call unwind = %+v", call.Call.Unwind)
	}
	succs = call.Successors()
	if len(succs) != 2 || succs[0] != 3 || succs[1] != 4 {
		t.Errorf("call successors = %v", succs)
	}

	assert := body.Blocks[2].Terminator
	if assert.Kind != TermAssert || assert.Assert.Msg.Kind != AssertOverflow {
		t.Fatalf("assert payload = %+v", assert.Assert)
	}
	if assert.Assert.Msg.Op != BinMul {
		t.Errorf("assert op = %v", assert.Assert.Msg.Op)
	}

	if body.Blocks[3].Terminator.Kind != TermReturn {
		t.Errorf("block 3 terminator = %v", body.Blocks[3].Terminator.Kind)
	}
	if body.Blocks[4].Terminator.Kind != TermResume {
		t.Errorf("block 4 terminator = %v", body.Blocks[4].Terminator.Kind)
	}
}

func TestTerminateMapsToAbort(t *testing.T) {
	s, item := sessionWithBody(&ir.Body{
		Blocks: []ir.BasicBlock{{Terminator: ir.Terminator{Kind: ir.TermTerminate}}},
	})
	body, err := s.MirBody(item)
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}
	if body.Blocks[0].Terminator.Kind != TermAbort {
		t.Fatalf("terminator = %v, want abort", body.Blocks[0].Terminator.Kind)
	}
}

func TestUnsupportedStatementFailsWhole(t *testing.T) {
	s, item := sessionWithBody(&ir.Body{
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{{Kind: ir.StmtStorageLive}},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})

	_, err := s.MirBody(item)
	var convErr *Error
	if !errors.As(err, &convErr) || convErr.Kind != NotYetImplemented {
		t.Fatalf("expected NotYetImplemented, got %v", err)
	}

	// The failure must be deterministic: asking again gives the same answer.
	_, err2 := s.MirBody(item)
	var convErr2 *Error
	if !errors.As(err2, &convErr2) || convErr2.Kind != convErr.Kind {
		t.Fatalf("second query differs: %v vs %v", err, err2)
	}
}

func TestUnsupportedRvalue(t *testing.T) {
	s, item := sessionWithBody(&ir.Body{
		Locals: []ir.LocalDecl{{}},
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
				Place:  ir.Place{Local: 0},
				Rvalue: ir.Rvalue{Kind: ir.RvalueAggregate},
			}}},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})

	_, err := s.MirBody(item)
	var convErr *Error
	if !errors.As(err, &convErr) || convErr.Kind != NotYetImplemented {
		t.Fatalf("expected NotYetImplemented, got %v", err)
	}
}

func TestPreSimplificationTerminatorViolates(t *testing.T) {
	s, item := sessionWithBody(&ir.Body{
		Blocks: []ir.BasicBlock{{Terminator: ir.Terminator{Kind: ir.TermYield}}},
	})

	_, err := s.MirBody(item)
	var convErr *Error
	if !errors.As(err, &convErr) || convErr.Kind != InvariantViolated {
		t.Fatalf("expected InvariantViolated, got %v", err)
	}
}

func TestCastAndCoercionConversion(t *testing.T) {
	cx := ir.NewContext("demo")
	i32 := cx.InternType(ir.MakeInt(ir.IntI32))
	u8 := cx.InternType(ir.MakeUint(ir.UintU8))
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, &ir.Body{
		Locals: []ir.LocalDecl{{Ty: u8}, {Ty: i32}},
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{
				{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
					Place: ir.Place{Local: 0},
					Rvalue: ir.Rvalue{Kind: ir.RvalueCast, Cast: ir.CastRvalue{
						Cast:    ir.CastKind{Kind: ir.CastIntToInt},
						Operand: ir.CopyOf(ir.Place{Local: 1}),
						Ty:      u8,
					}},
				}},
				{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
					Place: ir.Place{Local: 0},
					Rvalue: ir.Rvalue{Kind: ir.RvalueCast, Cast: ir.CastRvalue{
						Cast: ir.CastKind{
							Kind:     ir.CastPointerCoercion,
							Coercion: ir.CoercionClosureFnPointer,
							Unsafety: ir.UnsafetyUnsafe,
						},
						Operand: ir.CopyOf(ir.Place{Local: 1}),
						Ty:      u8,
					}},
				}},
			},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})
	s := NewSession(cx)

	body, err := s.MirBody(s.AllLocalItems()[0])
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}

	plain := body.Blocks[0].Statements[0].Assign.Rvalue.Cast
	if plain.Cast.Kind != CastIntToInt {
		t.Errorf("plain cast = %+v", plain.Cast)
	}

	coerce := body.Blocks[0].Statements[1].Assign.Rvalue.Cast
	if coerce.Cast.Kind != CastPointerCoercion || coerce.Cast.Coercion != CoercionClosureFnPointer {
		t.Fatalf("coercion cast = %+v", coerce.Cast)
	}
	if coerce.Cast.Safety != SafetyUnsafe {
		t.Errorf("coercion safety = %v", coerce.Cast.Safety)
	}

	// The cast target type handle must resolve back to u8.
	kind, err := s.TyKind(coerce.Ty)
	if err != nil {
		t.Fatalf("TyKind failed: %v", err)
	}
	if kind.Rigid.Kind != RigidUint || kind.Rigid.Uint != UintU8 {
		t.Errorf("cast target = %+v", kind.Rigid)
	}
}

func TestRefRvalueKeepsRegionOpaque(t *testing.T) {
	cx := ir.NewContext("demo")
	boolTy := cx.InternType(ir.MakeBool())
	def := cx.Define(ir.LocalCrate, ir.DefKindFn, "f")
	cx.SetBody(def, &ir.Body{
		Locals: []ir.LocalDecl{{Ty: boolTy}, {Ty: boolTy}},
		Blocks: []ir.BasicBlock{{
			Statements: []ir.Statement{{Kind: ir.StmtAssign, Assign: ir.AssignStmt{
				Place: ir.Place{Local: 0},
				Rvalue: ir.Rvalue{Kind: ir.RvalueRef, Ref: ir.RefRvalue{
					Region: ir.Region{Kind: ir.RegionStatic},
					Borrow: ir.BorrowKind{Kind: ir.BorrowMut, Mut: ir.MutBorrowTwoPhase},
					Place:  ir.Place{Local: 1},
				}},
			}}},
			Terminator: ir.Terminator{Kind: ir.TermReturn},
		}},
	})
	s := NewSession(cx)

	body, err := s.MirBody(s.AllLocalItems()[0])
	if err != nil {
		t.Fatalf("MirBody failed: %v", err)
	}
	ref := body.Blocks[0].Statements[0].Assign.Rvalue.Ref
	if ref.Region.Repr != "'static" {
		t.Errorf("region rendering = %q", ref.Region.Repr)
	}
	if ref.Borrow.Kind != BorrowMut || ref.Borrow.Mut != MutBorrowTwoPhase {
		t.Errorf("borrow = %+v", ref.Borrow)
	}
}
