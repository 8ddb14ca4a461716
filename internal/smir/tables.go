package smir

import (
	"fmt"

	"fortio.org/safecast"

	"smir/internal/ir"
)

// Tables owns the session's identity mappings: internal definition ids and
// internal type handles to their stable counterparts. Both mappings are
// append-only for the lifetime of the session; handles are positions in
// the backing slices and are never reused or invalidated.
type Tables struct {
	Ctx    *ir.Context
	DefIDs []ir.DefID
	Types  []ir.Ty
}

// InternTy deduplicates by value: equal internal types yield the same
// handle, distinct ones always differ. The scan is linear, which is fine
// at the scale of one query at a time; a structural-hash bucket index is
// the known upgrade if sessions grow.
func (t *Tables) InternTy(ty ir.Ty) Ty {
	for i, existing := range t.Types {
		if existing == ty {
			return Ty(uint32(i))
		}
	}
	lenTypes, err := safecast.Conv[uint32](len(t.Types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := Ty(lenTypes)
	t.Types = append(t.Types, ty)
	return id
}

// internDefID derives the stable id for an internal definition identity.
// Deterministic within a session: the same ir.DefID always maps to the
// same DefID, and the mapping round-trips through ItemDefID.
func (t *Tables) internDefID(def ir.DefID) DefID {
	for i, existing := range t.DefIDs {
		if existing == def {
			return DefID(uint32(i))
		}
	}
	lenDefs, err := safecast.Conv[uint32](len(t.DefIDs))
	if err != nil {
		panic(fmt.Errorf("len(def_ids) overflow: %w", err))
	}
	id := DefID(lenDefs)
	t.DefIDs = append(t.DefIDs, def)
	return id
}

// CrateItemOf mints the stable item handle for an internal definition.
func (t *Tables) CrateItemOf(def ir.DefID) CrateItem {
	return CrateItem{ID: t.internDefID(def)}
}

// ItemDefID recovers the internal identity behind a stable item handle.
// Handles from another session are a programming error.
func (t *Tables) ItemDefID(item CrateItem) ir.DefID {
	if int(item.ID) >= len(t.DefIDs) {
		violated("item handle %d not minted by this session", item.ID)
	}
	return t.DefIDs[item.ID]
}

// resolveTy maps a stable handle back to the interned internal type.
func (t *Tables) resolveTy(ty Ty) ir.Ty {
	if int(ty) >= len(t.Types) {
		violated("type handle %d not minted by this session", ty)
	}
	return t.Types[ty]
}

func (t *Tables) adtDef(def ir.DefID) AdtDef             { return AdtDef{ID: t.internDefID(def)} }
func (t *Tables) foreignDef(def ir.DefID) ForeignDef     { return ForeignDef{ID: t.internDefID(def)} }
func (t *Tables) fnDef(def ir.DefID) FnDef               { return FnDef{ID: t.internDefID(def)} }
func (t *Tables) closureDef(def ir.DefID) ClosureDef     { return ClosureDef{ID: t.internDefID(def)} }
func (t *Tables) generatorDef(def ir.DefID) GeneratorDef { return GeneratorDef{ID: t.internDefID(def)} }
func (t *Tables) paramDef(def ir.DefID) ParamDef         { return ParamDef{ID: t.internDefID(def)} }
func (t *Tables) brNamedDef(def ir.DefID) BrNamedDef     { return BrNamedDef{ID: t.internDefID(def)} }
