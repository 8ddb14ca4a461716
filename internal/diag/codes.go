package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the catch-all for uncategorized diagnostics.
	UnknownCode Code = 0

	// Pack loading and validation.
	PackInfo          Code = 1000
	PackBadSchema     Code = 1001
	PackTruncated     Code = 1002
	PackUnknownTarget Code = 1003

	// Lint passes over surface bodies.
	LintInfo            Code = 5000
	LintReadZeroByteVec Code = 5001
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "SMIR0000"
	default:
		return fmt.Sprintf("SMIR%04d", uint16(c))
	}
}
