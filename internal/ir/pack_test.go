package ir

import (
	"bytes"
	"testing"

	"smir/internal/hir"
)

// buildFixtureContext assembles a tiny compilation: one local fn with a
// body, one dependency crate, one static without a body.
func buildFixtureContext() (*Context, DefID) {
	cx := NewContext("demo")
	cx.AddCrate("std")

	i32 := cx.InternType(MakeInt(IntI32))

	mainDef := cx.Define(LocalCrate, DefKindFn, "main")
	cx.Define(LocalCrate, DefKindStatic, "COUNTER")

	body := &Body{
		Locals: []LocalDecl{
			{Ty: i32, Mut: MutMut},
			{Ty: i32, Mut: MutNot},
		},
		Blocks: []BasicBlock{{
			Statements: []Statement{{
				Kind: StmtAssign,
				Assign: AssignStmt{
					Place: Place{Local: 0},
					Rvalue: Rvalue{
						Kind: RvalueBinaryOp,
						Binary: BinaryRvalue{
							Op:    BinAdd,
							Left:  ConstOperand(Const{Kind: ConstInt, Ty: i32, IntValue: 1}),
							Right: ConstOperand(Const{Kind: ConstInt, Ty: i32, IntValue: 2}),
						},
					},
				},
			}},
			Terminator: Terminator{Kind: TermReturn},
		}},
	}
	cx.SetBody(mainDef, body)
	cx.SetEntry(mainDef)
	return cx, mainDef
}

func TestPackRoundTrip(t *testing.T) {
	cx, mainDef := buildFixtureContext()
	files := []FilePayload{{Path: "src/main.rs", Content: []byte("fn main() {}\n")}}
	blocks := []hir.Block{{}}

	m := NewModule(cx, files, blocks)

	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	rebuilt, err := decoded.Context()
	if err != nil {
		t.Fatalf("context rebuild failed: %v", err)
	}

	if rebuilt.CrateName(LocalCrate) != "demo" {
		t.Errorf("local crate = %q, want demo", rebuilt.CrateName(LocalCrate))
	}
	deps := rebuilt.Crates()
	if len(deps) != 1 || rebuilt.CrateName(deps[0]) != "std" {
		t.Errorf("dependency crates = %v", deps)
	}

	if got := rebuilt.Def(mainDef); got.Name != "main" || got.Kind != DefKindFn {
		t.Errorf("def round trip = %+v", got)
	}

	entry, hasEntry := rebuilt.EntryFn()
	if !hasEntry || entry != mainDef {
		t.Errorf("entry = (%d, %v), want (%d, true)", entry, hasEntry, mainDef)
	}

	keys := rebuilt.MirKeys()
	if len(keys) != 1 || keys[0] != mainDef {
		t.Fatalf("mir keys = %v", keys)
	}
	body, ok := rebuilt.OptimizedMir(mainDef)
	if !ok {
		t.Fatalf("body missing after round trip")
	}
	if len(body.Blocks) != 1 || len(body.Locals) != 2 {
		t.Fatalf("body shape changed: %d blocks, %d locals", len(body.Blocks), len(body.Locals))
	}
	stmt := body.Blocks[0].Statements[0]
	if stmt.Kind != StmtAssign || stmt.Assign.Rvalue.Binary.Op != BinAdd {
		t.Errorf("statement payload changed: %+v", stmt)
	}

	// Ty indices recorded in the body must still resolve in the rebuilt
	// interner.
	ty := rebuilt.TypeOf(body.Locals[0].Ty)
	if ty.Kind != TyInt || ty.Int != IntI32 {
		t.Errorf("local type = %+v, want i32", ty)
	}

	if len(decoded.Files) != 1 || decoded.Files[0].Path != "src/main.rs" {
		t.Errorf("files payload = %+v", decoded.Files)
	}
	if len(decoded.Blocks) != 1 {
		t.Errorf("blocks payload length = %d", len(decoded.Blocks))
	}
}

func TestPackRejectsWrongSchema(t *testing.T) {
	cx, _ := buildFixtureContext()
	m := NewModule(cx, nil, nil)
	m.Schema = PackSchemaVersion + 1

	if _, err := m.Context(); err == nil {
		t.Fatalf("expected schema mismatch error")
	}
}

func TestPackRejectsDanglingBody(t *testing.T) {
	cx, _ := buildFixtureContext()
	m := NewModule(cx, nil, nil)
	m.Bodies = append(m.Bodies, BodyPayload{Def: DefID(42), Body: &Body{}})

	if _, err := m.Context(); err == nil {
		t.Fatalf("expected dangling body error")
	}
}

func TestPackRejectsDanglingEntry(t *testing.T) {
	cx, _ := buildFixtureContext()
	m := NewModule(cx, nil, nil)
	m.Entry = DefID(42)

	if _, err := m.Context(); err == nil {
		t.Fatalf("expected dangling entry error")
	}
}
