package ir

import (
	"fmt"
	"strconv"
)

// RegionKind enumerates lifetime representations. Regions have no stable
// structural counterpart; the snapshot layer renders them opaquely.
type RegionKind uint8

const (
	RegionErased RegionKind = iota
	RegionStatic
	RegionNamed
	RegionAnon
)

// Region is an internal lifetime value.
type Region struct {
	Kind RegionKind
	Name string // for RegionNamed
	ID   uint32 // for RegionAnon
}

func (r Region) String() string {
	switch r.Kind {
	case RegionErased:
		return "'_"
	case RegionStatic:
		return "'static"
	case RegionNamed:
		return r.Name
	case RegionAnon:
		return fmt.Sprintf("'%d", r.ID)
	default:
		return "'?"
	}
}

// ConstKind enumerates internal constant representations.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstUint
	ConstBool
	ConstStr
	ConstParam
	ConstUnevaluated
)

// Const is an internal constant value. Constants have no stable structural
// counterpart yet; the snapshot layer keeps only their textual rendering.
type Const struct {
	Kind ConstKind
	Ty   Ty

	IntValue  int64
	UintValue uint64
	BoolValue bool
	// Text holds the raw form for ConstStr, ConstParam and ConstUnevaluated.
	Text string
}

func (c Const) String() string {
	switch c.Kind {
	case ConstInt:
		return strconv.FormatInt(c.IntValue, 10)
	case ConstUint:
		return strconv.FormatUint(c.UintValue, 10)
	case ConstBool:
		return strconv.FormatBool(c.BoolValue)
	case ConstStr:
		return strconv.Quote(c.Text)
	case ConstParam:
		return c.Text
	case ConstUnevaluated:
		return fmt.Sprintf("const{%s}", c.Text)
	default:
		return "const{?}"
	}
}
