package lint

import (
	"smir/internal/diag"
	"smir/internal/hir"
	"smir/internal/source"
)

// Context carries everything a pass needs for one compilation unit.
type Context struct {
	Files    *source.FileSet
	Reporter diag.Reporter
}

// Pass inspects surface blocks and reports findings through the context
// reporter. Passes are stateless; one instance may serve many contexts.
type Pass interface {
	Name() string
	CheckBlock(cx *Context, block *hir.Block)
}

// Passes returns every registered pass, in run order.
func Passes() []Pass {
	return []Pass{
		ReadZeroByteVec{},
	}
}

// Run applies every registered pass to every block.
func Run(cx *Context, blocks []hir.Block) {
	for _, pass := range Passes() {
		for i := range blocks {
			pass.CheckBlock(cx, &blocks[i])
		}
	}
}
