package testkit

import (
	"fmt"

	"smir/internal/smir"
)

// CheckBodyInvariants runs the structural invariants on a stable body:
// 1) every block has a terminator whose successors stay inside the body
// 2) every place reachable from statements and terminators names a local
// 3) unwind cleanup edges stay inside the body
func CheckBodyInvariants(body *smir.Body) error {
	if body == nil {
		return fmt.Errorf("nil body")
	}

	for i := range body.Blocks {
		bb := &body.Blocks[i]
		for _, succ := range bb.Terminator.Successors() {
			if succ < 0 || succ >= len(body.Blocks) {
				return fmt.Errorf("bb%d: successor bb%d outside body of %d blocks", i, succ, len(body.Blocks))
			}
		}
		for j := range bb.Statements {
			stmt := &bb.Statements[j]
			if stmt.Kind != smir.StmtAssign {
				continue
			}
			if err := checkPlace(body, stmt.Assign.Place); err != nil {
				return fmt.Errorf("bb%d stmt %d: %w", i, j, err)
			}
			if err := checkRvaluePlaces(body, &stmt.Assign.Rvalue); err != nil {
				return fmt.Errorf("bb%d stmt %d: %w", i, j, err)
			}
		}
		if err := checkTerminatorPlaces(body, &bb.Terminator); err != nil {
			return fmt.Errorf("bb%d: %w", i, err)
		}
	}
	return nil
}

func checkPlace(body *smir.Body, p smir.Place) error {
	if p.Local < 0 || p.Local >= len(body.Locals) {
		return fmt.Errorf("place names local _%d of %d", p.Local, len(body.Locals))
	}
	return nil
}

func checkOperandPlace(body *smir.Body, op *smir.Operand) error {
	switch op.Kind {
	case smir.OperandCopy, smir.OperandMove:
		return checkPlace(body, op.Place)
	case smir.OperandConstant:
		return nil
	}
	return fmt.Errorf("unknown operand kind %d", op.Kind)
}

func checkRvaluePlaces(body *smir.Body, rv *smir.Rvalue) error {
	switch rv.Kind {
	case smir.RvalueUse:
		return checkOperandPlace(body, &rv.Use)
	case smir.RvalueRef:
		return checkPlace(body, rv.Ref.Place)
	case smir.RvalueAddressOf:
		return checkPlace(body, rv.AddressOf.Place)
	case smir.RvalueLen:
		return checkPlace(body, rv.Len)
	case smir.RvalueCast:
		return checkOperandPlace(body, &rv.Cast.Operand)
	case smir.RvalueBinaryOp, smir.RvalueCheckedBinaryOp:
		if err := checkOperandPlace(body, &rv.Binary.Left); err != nil {
			return err
		}
		return checkOperandPlace(body, &rv.Binary.Right)
	case smir.RvalueUnaryOp:
		return checkOperandPlace(body, &rv.Unary.Operand)
	case smir.RvalueDiscriminant:
		return checkPlace(body, rv.Discriminant)
	case smir.RvalueCopyForDeref:
		return checkPlace(body, rv.CopyForDeref)
	case smir.RvalueThreadLocalRef, smir.RvalueNullaryOp:
		return nil
	}
	return fmt.Errorf("unknown rvalue kind %d", rv.Kind)
}

func checkTerminatorPlaces(body *smir.Body, term *smir.Terminator) error {
	switch term.Kind {
	case smir.TermSwitchInt:
		return checkOperandPlace(body, &term.SwitchInt.Discr)
	case smir.TermDrop:
		return checkPlace(body, term.Drop.Place)
	case smir.TermCall:
		if err := checkOperandPlace(body, &term.Call.Func); err != nil {
			return err
		}
		for i := range term.Call.Args {
			if err := checkOperandPlace(body, &term.Call.Args[i]); err != nil {
				return err
			}
		}
		return checkPlace(body, term.Call.Destination)
	case smir.TermAssert:
		return checkOperandPlace(body, &term.Assert.Cond)
	}
	return nil
}
