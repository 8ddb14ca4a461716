package smir

// Crate is the stable snapshot of one compiled crate. Snapshots with equal
// ID are structurally equal within a session.
type Crate struct {
	ID      uint32
	Name    string
	IsLocal bool
}

// DefID is a stable definition handle minted by a session's tables. It is
// valid only while that session lives.
type DefID uint32

// CrateItem is a stable reference to a body-bearing definition; the key
// callers pass to Session.MirBody.
type CrateItem struct {
	ID DefID
}

// Typed definition wrappers. Each names the role the definition plays at
// its use site while sharing the session-scoped DefID space.
type (
	AdtDef       struct{ ID DefID }
	ForeignDef   struct{ ID DefID }
	FnDef        struct{ ID DefID }
	ClosureDef   struct{ ID DefID }
	GeneratorDef struct{ ID DefID }
	ParamDef     struct{ ID DefID }
	BrNamedDef   struct{ ID DefID }
	StaticDef    struct{ ID DefID }
)
