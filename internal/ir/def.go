package ir

// DefID identifies a definition (function, static, type, ...) inside a
// compilation session. Like CrateNum, it is unstable across runs.
type DefID uint32

// DefKind enumerates definition kinds the IR tracks.
type DefKind uint8

const (
	DefKindFn DefKind = iota
	DefKindStatic
	DefKindAdt
	DefKindForeignTy
	DefKindClosure
	DefKindGenerator
	DefKindTypeParam
	DefKindLifetimeParam
)

func (k DefKind) String() string {
	switch k {
	case DefKindFn:
		return "fn"
	case DefKindStatic:
		return "static"
	case DefKindAdt:
		return "adt"
	case DefKindForeignTy:
		return "foreign"
	case DefKindClosure:
		return "closure"
	case DefKindGenerator:
		return "generator"
	case DefKindTypeParam:
		return "type-param"
	case DefKindLifetimeParam:
		return "lifetime-param"
	default:
		return "unknown"
	}
}

// Def describes one definition.
type Def struct {
	Name  string
	Kind  DefKind
	Crate CrateNum
}
