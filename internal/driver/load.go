package driver

import (
	"fmt"

	"smir/internal/hir"
	"smir/internal/ir"
	"smir/internal/smir"
	"smir/internal/source"
)

// Unit is one loaded pack: the rebuilt compilation context, an open query
// session over it, and the surface payload for the lint passes.
type Unit struct {
	Path    string
	Module  *ir.Module
	Ctx     *ir.Context
	Session *smir.Session
	Files   *source.FileSet
	Blocks  []hir.Block
}

// LoadPack reads a pack file and rebuilds the query-side view. Embedded
// source files are registered in pack order so the span file ids recorded
// at pack time stay valid.
func LoadPack(path string) (*Unit, error) {
	m, err := ir.ReadPackFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read pack %s: %w", path, err)
	}
	cx, err := m.Context()
	if err != nil {
		return nil, fmt.Errorf("driver: load pack %s: %w", path, err)
	}

	fileSet := source.NewFileSet()
	for _, fp := range m.Files {
		fileSet.AddVirtual(fp.Path, fp.Content)
	}

	return &Unit{
		Path:    path,
		Module:  m,
		Ctx:     cx,
		Session: smir.NewSession(cx),
		Files:   fileSet,
		Blocks:  m.Blocks,
	}, nil
}
