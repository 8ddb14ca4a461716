package smir

import (
	"fmt"
)

// Opaque is a display-only stand-in for an internal value that has no
// stable structural form yet (regions, constants, bound-variable spans).
// Two opaque values are comparable only through their rendered text; do
// not build structure on top of it.
type Opaque struct {
	Repr string
}

func (o Opaque) String() string {
	return o.Repr
}

// OpaqueOf renders any internal value into its opaque token.
func OpaqueOf(v any) Opaque {
	return Opaque{Repr: fmt.Sprint(v)}
}
