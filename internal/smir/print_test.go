package smir

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpBodyRendering(t *testing.T) {
	body := &Body{
		Locals: []Ty{0, 1},
		Blocks: []BasicBlock{
			{
				Statements: []Statement{
					{
						Kind: StmtAssign,
						Assign: AssignStmt{
							Place: Place{Local: 0},
							Rvalue: Rvalue{
								Kind: RvalueBinaryOp,
								Binary: BinaryRvalue{
									Op:    BinAdd,
									Left:  Operand{Kind: OperandCopy, Place: Place{Local: 1}},
									Right: Operand{Kind: OperandConstant, Const: "2"},
								},
							},
						},
					},
					{Kind: StmtNop},
				},
				Terminator: Terminator{Kind: TermGoto, Goto: GotoTerm{Target: 1}},
			},
			{
				Terminator: Terminator{Kind: TermReturn},
			},
		},
	}

	var buf bytes.Buffer
	if err := DumpBody(&buf, body, DumpOptions{}); err != nil {
		t.Fatalf("DumpBody failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"locals:",
		"_0: ty#0",
		"_1: ty#1",
		"bb0:",
		"_0 = Add(copy _1, const 2)",
		"nop",
		"goto bb1",
		"bb1:",
		"return",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in dump:\n%s", want, output)
		}
	}
}

func TestDumpBodyTerminators(t *testing.T) {
	cases := []struct {
		term Terminator
		want string
	}{
		{
			Terminator{Kind: TermSwitchInt, SwitchInt: SwitchIntTerm{
				Discr:     Operand{Kind: OperandMove, Place: Place{Local: 0}},
				Targets:   []SwitchTarget{{Value: 0, Target: 1}},
				Otherwise: 2,
			}},
			"switch move _0 [0: bb1, otherwise: bb2]",
		},
		{
			Terminator{Kind: TermDrop, Drop: DropTerm{
				Place:  Place{Local: 0},
				Target: 1,
				Unwind: UnwindAction{Kind: UnwindCleanup, Cleanup: 2},
			}},
			"drop _0 -> bb1 unwind bb2",
		},
		{
			Terminator{Kind: TermCall, Call: CallTerm{
				Func:        Operand{Kind: OperandConstant, Const: "helper"},
				Args:        []Operand{{Kind: OperandMove, Place: Place{Local: 1}}},
				Destination: Place{Local: 0},
				HasTarget:   true,
				Target:      1,
			}},
			"_0 = call const helper(move _1) -> bb1",
		},
		{
			Terminator{Kind: TermAssert, Assert: AssertTerm{
				Cond:   Operand{Kind: OperandCopy, Place: Place{Local: 2}},
				Msg:    AssertMessage{Kind: AssertOverflow},
				Target: 1,
			}},
			"assert(copy _2 == false, overflow) -> bb1",
		},
		{Terminator{Kind: TermAbort}, "abort"},
		{Terminator{Kind: TermUnreachable}, "unreachable"},
	}

	for _, tc := range cases {
		body := &Body{
			Locals: []Ty{0, 1, 2},
			Blocks: []BasicBlock{{Terminator: tc.term}, {Terminator: Terminator{Kind: TermReturn}}, {Terminator: Terminator{Kind: TermResume}}},
		}
		var buf bytes.Buffer
		if err := DumpBody(&buf, body, DumpOptions{}); err != nil {
			t.Fatalf("DumpBody failed: %v", err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("missing %q in dump:\n%s", tc.want, buf.String())
		}
	}
}

func TestFormatPlaceProjection(t *testing.T) {
	if got := formatPlace(Place{Local: 3}); got != "_3" {
		t.Errorf("bare place = %q", got)
	}
	if got := formatPlace(Place{Local: 3, Projection: "[]"}); got != "_3" {
		t.Errorf("empty projection = %q", got)
	}
	if got := formatPlace(Place{Local: 3, Projection: "[*, .1]"}); got != "_3 [*, .1]" {
		t.Errorf("projected place = %q", got)
	}
}
