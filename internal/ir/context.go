package ir

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Context is the query-side view of one compilation: crate and definition
// tables, the type interner, and the optimized body of every definition
// that has one. It stands where the compiler's in-memory state would be;
// packs deserialize into it and tests build it directly.
type Context struct {
	crates  []string // index = CrateNum, 0 = local crate
	defs    []Def
	interner *Interner
	bodies  map[DefID]*Body
	entry   DefID
	hasEntry bool
}

// NewContext creates a context for a compilation of the named local crate.
func NewContext(localCrateName string) *Context {
	return &Context{
		crates:   []string{localCrateName},
		interner: NewInterner(),
		bodies:   make(map[DefID]*Body),
	}
}

// AddCrate registers a dependency crate and returns its number.
func (cx *Context) AddCrate(name string) CrateNum {
	lenCrates, err := safecast.Conv[uint32](len(cx.crates))
	if err != nil {
		panic(fmt.Errorf("len(crates) overflow: %w", err))
	}
	num := CrateNum(lenCrates)
	cx.crates = append(cx.crates, name)
	return num
}

// Define registers a definition and returns its DefID.
func (cx *Context) Define(crate CrateNum, kind DefKind, name string) DefID {
	lenDefs, err := safecast.Conv[uint32](len(cx.defs))
	if err != nil {
		panic(fmt.Errorf("len(defs) overflow: %w", err))
	}
	id := DefID(lenDefs)
	cx.defs = append(cx.defs, Def{Name: name, Kind: kind, Crate: crate})
	return id
}

// SetBody attaches the optimized body of a definition.
func (cx *Context) SetBody(def DefID, body *Body) {
	cx.bodies[def] = body
}

// SetEntry marks the program entry point.
func (cx *Context) SetEntry(def DefID) {
	cx.entry = def
	cx.hasEntry = true
}

// Interner exposes the internal type interner.
func (cx *Context) Interner() *Interner {
	return cx.interner
}

// InternType is shorthand for cx.Interner().Intern.
func (cx *Context) InternType(t Type) Ty {
	return cx.interner.Intern(t)
}

// CrateName returns the name of a crate.
func (cx *Context) CrateName(num CrateNum) string {
	return cx.crates[num]
}

// Crates lists the dependency crates, excluding the local one.
func (cx *Context) Crates() []CrateNum {
	out := make([]CrateNum, 0, len(cx.crates)-1)
	for i := 1; i < len(cx.crates); i++ {
		out = append(out, CrateNum(uint32(i)))
	}
	return out
}

// Def returns the definition record for an id.
func (cx *Context) Def(id DefID) Def {
	return cx.defs[id]
}

// EntryFn returns the entry point definition, when the crate has one.
func (cx *Context) EntryFn() (DefID, bool) {
	return cx.entry, cx.hasEntry
}

// MirKeys lists every definition with a body, in ascending DefID order.
func (cx *Context) MirKeys() []DefID {
	out := make([]DefID, 0, len(cx.bodies))
	for id := range cx.bodies {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OptimizedMir returns the body attached to a definition.
func (cx *Context) OptimizedMir(def DefID) (*Body, bool) {
	b, ok := cx.bodies[def]
	return b, ok
}

// TypeOf resolves an interned Ty back to its descriptor. The Ty must have
// been minted by this context's interner.
func (cx *Context) TypeOf(ty Ty) Type {
	return cx.interner.MustLookup(ty)
}
