package smir

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions configures stable body dumping.
type DumpOptions struct{}

// DumpBody writes a human-readable rendering of a stable body. Ty handles
// are printed as ty#N; resolving them needs the owning session and is left
// to callers that want structural detail.
func DumpBody(w io.Writer, body *Body, _ DumpOptions) error {
	if w == nil || body == nil {
		return nil
	}

	fmt.Fprintf(w, "  locals:\n")
	for i, ty := range body.Locals {
		fmt.Fprintf(w, "    _%d: ty#%d\n", i, ty)
	}

	for i := range body.Blocks {
		bb := &body.Blocks[i]
		fmt.Fprintf(w, "  bb%d:\n", i)
		for j := range bb.Statements {
			fmt.Fprintf(w, "    %s\n", formatStatement(&bb.Statements[j]))
		}
		fmt.Fprintf(w, "    %s\n", formatTerminator(&bb.Terminator))
	}
	return nil
}

func formatStatement(stmt *Statement) string {
	switch stmt.Kind {
	case StmtAssign:
		return fmt.Sprintf("%s = %s", formatPlace(stmt.Assign.Place), formatRvalue(&stmt.Assign.Rvalue))
	case StmtNop:
		return "nop"
	default:
		return "<stmt?>"
	}
}

func formatRvalue(rv *Rvalue) string {
	switch rv.Kind {
	case RvalueUse:
		return formatOperand(&rv.Use)
	case RvalueRef:
		mut := ""
		if rv.Ref.Borrow.Kind == BorrowMut {
			mut = "mut "
		}
		return fmt.Sprintf("&%s%s", mut, formatPlace(rv.Ref.Place))
	case RvalueThreadLocalRef:
		return fmt.Sprintf("thread_local item#%d", rv.ThreadLocalRef.ID)
	case RvalueAddressOf:
		mut := "const"
		if rv.AddressOf.Mut == MutMut {
			mut = "mut"
		}
		return fmt.Sprintf("&raw %s %s", mut, formatPlace(rv.AddressOf.Place))
	case RvalueLen:
		return fmt.Sprintf("len(%s)", formatPlace(rv.Len))
	case RvalueCast:
		return fmt.Sprintf("%s as ty#%d", formatOperand(&rv.Cast.Operand), rv.Cast.Ty)
	case RvalueBinaryOp:
		return fmt.Sprintf("%s(%s, %s)", binOpStr(rv.Binary.Op),
			formatOperand(&rv.Binary.Left), formatOperand(&rv.Binary.Right))
	case RvalueCheckedBinaryOp:
		return fmt.Sprintf("checked %s(%s, %s)", binOpStr(rv.Binary.Op),
			formatOperand(&rv.Binary.Left), formatOperand(&rv.Binary.Right))
	case RvalueNullaryOp:
		return fmt.Sprintf("%s(ty#%d)", nullOpStr(rv.Nullary.Op), rv.Nullary.Ty)
	case RvalueUnaryOp:
		return fmt.Sprintf("%s(%s)", unOpStr(rv.Unary.Op), formatOperand(&rv.Unary.Operand))
	case RvalueDiscriminant:
		return fmt.Sprintf("discriminant(%s)", formatPlace(rv.Discriminant))
	case RvalueCopyForDeref:
		return fmt.Sprintf("deref_copy %s", formatPlace(rv.CopyForDeref))
	default:
		return "<rvalue?>"
	}
}

func formatOperand(op *Operand) string {
	switch op.Kind {
	case OperandCopy:
		return "copy " + formatPlace(op.Place)
	case OperandMove:
		return "move " + formatPlace(op.Place)
	case OperandConstant:
		return "const " + op.Const
	default:
		return "<operand?>"
	}
}

func formatPlace(p Place) string {
	if p.Projection == "[]" || p.Projection == "" {
		return fmt.Sprintf("_%d", p.Local)
	}
	return fmt.Sprintf("_%d %s", p.Local, p.Projection)
}

func formatTerminator(term *Terminator) string {
	switch term.Kind {
	case TermGoto:
		return fmt.Sprintf("goto bb%d", term.Goto.Target)
	case TermSwitchInt:
		arms := make([]string, 0, len(term.SwitchInt.Targets)+1)
		for _, tgt := range term.SwitchInt.Targets {
			arms = append(arms, fmt.Sprintf("%d: bb%d", tgt.Value, tgt.Target))
		}
		arms = append(arms, fmt.Sprintf("otherwise: bb%d", term.SwitchInt.Otherwise))
		return fmt.Sprintf("switch %s [%s]", formatOperand(&term.SwitchInt.Discr), strings.Join(arms, ", "))
	case TermResume:
		return "resume"
	case TermAbort:
		return "abort"
	case TermReturn:
		return "return"
	case TermUnreachable:
		return "unreachable"
	case TermDrop:
		return fmt.Sprintf("drop %s -> bb%d%s", formatPlace(term.Drop.Place),
			term.Drop.Target, formatUnwind(term.Drop.Unwind))
	case TermCall:
		args := make([]string, 0, len(term.Call.Args))
		for i := range term.Call.Args {
			args = append(args, formatOperand(&term.Call.Args[i]))
		}
		dest := formatPlace(term.Call.Destination)
		target := ""
		if term.Call.HasTarget {
			target = fmt.Sprintf(" -> bb%d", term.Call.Target)
		}
		return fmt.Sprintf("%s = call %s(%s)%s%s", dest, formatOperand(&term.Call.Func),
			strings.Join(args, ", "), target, formatUnwind(term.Call.Unwind))
	case TermAssert:
		expected := "true"
		if !term.Assert.Expected {
			expected = "false"
		}
		return fmt.Sprintf("assert(%s == %s, %s) -> bb%d%s",
			formatOperand(&term.Assert.Cond), expected,
			assertKindStr(term.Assert.Msg.Kind),
			term.Assert.Target, formatUnwind(term.Assert.Unwind))
	case TermInlineAsm:
		dest := ""
		if term.InlineAsm.HasDest {
			dest = fmt.Sprintf(" -> bb%d", term.InlineAsm.Dest)
		}
		return fmt.Sprintf("asm %q%s%s", term.InlineAsm.Template, dest, formatUnwind(term.InlineAsm.Unwind))
	default:
		return "<term?>"
	}
}

func formatUnwind(u UnwindAction) string {
	switch u.Kind {
	case UnwindContinue:
		return ""
	case UnwindUnreachable:
		return " unwind unreachable"
	case UnwindTerminate:
		return " unwind terminate"
	case UnwindCleanup:
		return fmt.Sprintf(" unwind bb%d", u.Cleanup)
	default:
		return " unwind <?>"
	}
}

func binOpStr(op BinOp) string {
	switch op {
	case BinAdd:
		return "Add"
	case BinAddUnchecked:
		return "AddUnchecked"
	case BinSub:
		return "Sub"
	case BinSubUnchecked:
		return "SubUnchecked"
	case BinMul:
		return "Mul"
	case BinMulUnchecked:
		return "MulUnchecked"
	case BinDiv:
		return "Div"
	case BinRem:
		return "Rem"
	case BinBitXor:
		return "BitXor"
	case BinBitAnd:
		return "BitAnd"
	case BinBitOr:
		return "BitOr"
	case BinShl:
		return "Shl"
	case BinShlUnchecked:
		return "ShlUnchecked"
	case BinShr:
		return "Shr"
	case BinShrUnchecked:
		return "ShrUnchecked"
	case BinEq:
		return "Eq"
	case BinLt:
		return "Lt"
	case BinLe:
		return "Le"
	case BinNe:
		return "Ne"
	case BinGe:
		return "Ge"
	case BinGt:
		return "Gt"
	case BinOffset:
		return "Offset"
	default:
		return "<binop?>"
	}
}

func unOpStr(op UnOp) string {
	switch op {
	case UnNot:
		return "Not"
	case UnNeg:
		return "Neg"
	default:
		return "<unop?>"
	}
}

func nullOpStr(op NullOp) string {
	switch op.Kind {
	case NullOpSizeOf:
		return "size_of"
	case NullOpAlignOf:
		return "align_of"
	case NullOpOffsetOf:
		parts := make([]string, 0, len(op.Indices))
		for _, idx := range op.Indices {
			parts = append(parts, fmt.Sprintf("%d", idx))
		}
		return fmt.Sprintf("offset_of[%s]", strings.Join(parts, "."))
	default:
		return "<nullop?>"
	}
}

func assertKindStr(k AssertKind) string {
	switch k {
	case AssertBoundsCheck:
		return "bounds_check"
	case AssertOverflow:
		return "overflow"
	case AssertOverflowNeg:
		return "overflow_neg"
	case AssertDivisionByZero:
		return "division_by_zero"
	case AssertRemainderByZero:
		return "remainder_by_zero"
	case AssertResumedAfterReturn:
		return "resumed_after_return"
	case AssertResumedAfterPanic:
		return "resumed_after_panic"
	case AssertMisalignedPointerDereference:
		return "misaligned_pointer_dereference"
	default:
		return "<assert?>"
	}
}
