package smir

import (
	"smir/internal/ir"
)

// Session is the query surface over one compilation. It owns the identity
// tables; every operation takes the session by pointer because interning
// may grow the tables as a side effect of an otherwise read-only query.
// Sessions are single-caller state: no locking, no concurrent use.
type Session struct {
	tables Tables
}

// NewSession opens a query session over a compilation context. Handles
// minted by the session are valid until it is dropped.
func NewSession(ctx *ir.Context) *Session {
	return &Session{tables: Tables{Ctx: ctx}}
}

// LocalCrate returns the snapshot of the crate being compiled.
func (s *Session) LocalCrate() Crate {
	return s.crateSnapshot(ir.LocalCrate)
}

// ExternalCrates returns one snapshot per dependency crate. Callers should
// treat the order as insignificant.
func (s *Session) ExternalCrates() []Crate {
	nums := s.tables.Ctx.Crates()
	out := make([]Crate, 0, len(nums))
	for _, num := range nums {
		out = append(out, s.crateSnapshot(num))
	}
	return out
}

// FindCrate looks up a crate by exact name, local crate first. When two
// crates share a name the first match wins; callers needing disambiguation
// must use the id.
func (s *Session) FindCrate(name string) (Crate, bool) {
	if c := s.crateSnapshot(ir.LocalCrate); c.Name == name {
		return c, true
	}
	for _, num := range s.tables.Ctx.Crates() {
		if c := s.crateSnapshot(num); c.Name == name {
			return c, true
		}
	}
	return Crate{}, false
}

// AllLocalItems returns a handle for every body-bearing definition in the
// local crate. Order follows the underlying definition enumeration and is
// not stable across sessions.
func (s *Session) AllLocalItems() []CrateItem {
	keys := s.tables.Ctx.MirKeys()
	out := make([]CrateItem, 0, len(keys))
	for _, def := range keys {
		out = append(out, s.tables.CrateItemOf(def))
	}
	return out
}

// EntryFn returns the program entry point, when the crate defines one.
func (s *Session) EntryFn() (CrateItem, bool) {
	def, ok := s.tables.Ctx.EntryFn()
	if !ok {
		return CrateItem{}, false
	}
	return s.tables.CrateItemOf(def), true
}

// MirBody materializes the stable body of an item, converting every block,
// statement and terminator and interning every referenced type. Computed
// on demand per call, never cached. The returned body is fully owned by
// the caller; only its Ty handles tie back to the session.
func (s *Session) MirBody(item CrateItem) (Body, error) {
	var body Body
	err := catch(func() {
		def := s.tables.ItemDefID(item)
		mir, ok := s.tables.Ctx.OptimizedMir(def)
		if !ok {
			violated("item %d has no body", item.ID)
		}
		body = s.tables.stableBody(mir)
	})
	if err != nil {
		return Body{}, err
	}
	return body, nil
}

// TyKind resolves a type handle back into its stable structural kind.
// Handles not minted by this session are a programming error.
func (s *Session) TyKind(ty Ty) (TyKind, error) {
	var kind TyKind
	err := catch(func() {
		internal := s.tables.resolveTy(ty)
		kind = s.tables.stableTyKind(s.tables.Ctx.TypeOf(internal))
	})
	if err != nil {
		return TyKind{}, err
	}
	return kind, nil
}

// WithTables grants f exclusive scoped access to the session's raw tables.
// Privileged escape hatch for trusted extensions only; ordinary callers
// stay on the stable operations above.
func (s *Session) WithTables(f func(*Tables)) {
	f(&s.tables)
}

func (s *Session) crateSnapshot(num ir.CrateNum) Crate {
	return Crate{
		ID:      uint32(num),
		Name:    s.tables.Ctx.CrateName(num),
		IsLocal: num == ir.LocalCrate,
	}
}
