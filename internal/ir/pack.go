package ir

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"smir/internal/hir"
)

// PackSchemaVersion is bumped whenever the Module payload layout changes.
// Readers reject packs with a different schema instead of guessing.
const PackSchemaVersion uint16 = 1

// FilePayload embeds one source file so downstream tooling can render
// snippets without access to the original tree.
type FilePayload struct {
	Path    string
	Content []byte
}

// BodyPayload attaches an optimized body to its definition.
type BodyPayload struct {
	Def  DefID
	Body *Body
}

// Module is the serialized form of one compilation: everything the
// snapshot layer and the lint passes need, emitted by the compiler as a
// single msgpack document.
type Module struct {
	Schema       uint16
	LocalCrate   string
	ExternCrates []string
	Defs         []Def
	Types        []Type
	Bodies       []BodyPayload
	HasEntry     bool
	Entry        DefID
	Files        []FilePayload
	Blocks       []hir.Block
}

// NewModule snapshots a context into a serializable module. Surface blocks
// and files are optional extras for the lint passes.
func NewModule(cx *Context, files []FilePayload, blocks []hir.Block) *Module {
	m := &Module{
		Schema:     PackSchemaVersion,
		LocalCrate: cx.crates[0],
		Defs:       append([]Def(nil), cx.defs...),
		Types:      append([]Type(nil), cx.interner.types...),
		HasEntry:   cx.hasEntry,
		Entry:      cx.entry,
		Files:      files,
		Blocks:     blocks,
	}
	if len(cx.crates) > 1 {
		m.ExternCrates = append([]string(nil), cx.crates[1:]...)
	}
	for _, def := range cx.MirKeys() {
		body := cx.bodies[def]
		m.Bodies = append(m.Bodies, BodyPayload{Def: def, Body: body})
	}
	return m
}

// Context rebuilds the query-side view from a decoded module.
func (m *Module) Context() (*Context, error) {
	if m.Schema != PackSchemaVersion {
		return nil, fmt.Errorf("ir: pack schema %d, want %d", m.Schema, PackSchemaVersion)
	}
	cx := NewContext(m.LocalCrate)
	for _, name := range m.ExternCrates {
		cx.AddCrate(name)
	}
	cx.defs = append(cx.defs, m.Defs...)
	// The type table is the interner's backing storage; restoring it verbatim
	// keeps every Ty index valid.
	cx.interner.types = append(cx.interner.types, m.Types...)
	for _, bp := range m.Bodies {
		if int(bp.Def) >= len(cx.defs) {
			return nil, fmt.Errorf("ir: body for unknown def %d", bp.Def)
		}
		cx.bodies[bp.Def] = bp.Body
	}
	if m.HasEntry {
		if int(m.Entry) >= len(cx.defs) {
			return nil, fmt.Errorf("ir: entry points at unknown def %d", m.Entry)
		}
		cx.SetEntry(m.Entry)
	}
	return cx, nil
}

// Encode writes the module as msgpack.
func (m *Module) Encode(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("ir: encode pack: %w", err)
	}
	return nil
}

// Decode reads a msgpack module.
func Decode(r io.Reader) (*Module, error) {
	var m Module
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("ir: decode pack: %w", err)
	}
	return &m, nil
}

// WritePackFile serializes the module to disk.
func WritePackFile(path string, m *Module) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Encode(f)
}

// ReadPackFile loads a module from disk.
func ReadPackFile(path string) (*Module, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
