package smir

import (
	"smir/internal/ir"
)

// stableTyKind converts one internal type descriptor into its stable
// structural kind. Nested types come out as freshly interned Ty handles,
// so walking a type tree through TyKind terminates at leaves.
func (t *Tables) stableTyKind(ty ir.Type) TyKind {
	switch ty.Kind {
	case ir.TyBool:
		return rigid(RigidTy{Kind: RigidBool})
	case ir.TyChar:
		return rigid(RigidTy{Kind: RigidChar})
	case ir.TyInt:
		return rigid(RigidTy{Kind: RigidInt, Int: t.stableIntTy(ty.Int)})
	case ir.TyUint:
		return rigid(RigidTy{Kind: RigidUint, Uint: t.stableUintTy(ty.Uint)})
	case ir.TyFloat:
		return rigid(RigidTy{Kind: RigidFloat, Float: t.stableFloatTy(ty.Float)})
	case ir.TyAdt:
		return rigid(RigidTy{Kind: RigidAdt, Adt: AdtTy{
			Def:  t.adtDef(ty.Def),
			Args: t.stableGenericArgs(ty.Args),
		}})
	case ir.TyForeign:
		return rigid(RigidTy{Kind: RigidForeign, Foreign: t.foreignDef(ty.Def)})
	case ir.TyStr:
		return rigid(RigidTy{Kind: RigidStr})
	case ir.TyArray:
		return rigid(RigidTy{Kind: RigidArray, Array: ArrayTy{
			Elem: t.InternTy(ty.Elem),
			Len:  OpaqueOf(ty.Len),
		}})
	case ir.TySlice:
		return rigid(RigidTy{Kind: RigidSlice, Elem: t.InternTy(ty.Elem)})
	case ir.TyRawPtr:
		return rigid(RigidTy{Kind: RigidRawPtr, RawPtr: PtrTy{
			Elem: t.InternTy(ty.Elem),
			Mut:  t.stableMutability(ty.Mut),
		}})
	case ir.TyRef:
		return rigid(RigidTy{Kind: RigidRef, Ref: RefTy{
			Region: OpaqueOf(ty.Region),
			Elem:   t.InternTy(ty.Elem),
			Mut:    t.stableMutability(ty.Mut),
		}})
	case ir.TyFnDef:
		return rigid(RigidTy{Kind: RigidFnDef, FnDef: FnDefTy{
			Def:  t.fnDef(ty.Def),
			Args: t.stableGenericArgs(ty.Args),
		}})
	case ir.TyFnPtr:
		return rigid(RigidTy{Kind: RigidFnPtr, FnPtr: t.stablePolyFnSig(&ty.FnSig)})
	case ir.TyClosure:
		return rigid(RigidTy{Kind: RigidClosure, Closure: ClosureTy{
			Def:  t.closureDef(ty.Def),
			Args: t.stableGenericArgs(ty.Args),
		}})
	case ir.TyGenerator:
		return rigid(RigidTy{Kind: RigidGenerator, Generator: GeneratorTy{
			Def:        t.generatorDef(ty.Def),
			Args:       t.stableGenericArgs(ty.Args),
			Movability: t.stableMovability(ty.Movable),
		}})
	case ir.TyNever:
		return rigid(RigidTy{Kind: RigidNever})
	case ir.TyTuple:
		fields := make([]Ty, 0, len(ty.Fields))
		for _, f := range ty.Fields {
			fields = append(fields, t.InternTy(f))
		}
		return rigid(RigidTy{Kind: RigidTuple, Tuple: TupleTy{Fields: fields}})
	case ir.TyDynamic, ir.TyAlias, ir.TyParam, ir.TyBound:
		unsupported("type kind %d", ty.Kind)
	case ir.TyPlaceholder, ir.TyGeneratorWitness, ir.TyInfer, ir.TyError:
		// Inference artifacts and error types never survive to the bodies
		// this layer consumes.
		violated("type kind %d escaped the producing layer", ty.Kind)
	default:
		violated("unknown type kind %d", ty.Kind)
	}
	panic("unreachable")
}

func rigid(r RigidTy) TyKind {
	return TyKind{Kind: TyKindRigid, Rigid: r}
}

func (t *Tables) stableIntTy(it ir.IntTy) IntTy {
	switch it {
	case ir.IntIsize:
		return IntIsize
	case ir.IntI8:
		return IntI8
	case ir.IntI16:
		return IntI16
	case ir.IntI32:
		return IntI32
	case ir.IntI64:
		return IntI64
	case ir.IntI128:
		return IntI128
	default:
		violated("unknown int width %d", it)
	}
	panic("unreachable")
}

func (t *Tables) stableUintTy(ut ir.UintTy) UintTy {
	switch ut {
	case ir.UintUsize:
		return UintUsize
	case ir.UintU8:
		return UintU8
	case ir.UintU16:
		return UintU16
	case ir.UintU32:
		return UintU32
	case ir.UintU64:
		return UintU64
	case ir.UintU128:
		return UintU128
	default:
		violated("unknown uint width %d", ut)
	}
	panic("unreachable")
}

func (t *Tables) stableFloatTy(ft ir.FloatTy) FloatTy {
	switch ft {
	case ir.FloatF32:
		return FloatF32
	case ir.FloatF64:
		return FloatF64
	default:
		violated("unknown float width %d", ft)
	}
	panic("unreachable")
}

func (t *Tables) stableMovability(m ir.Movability) Movability {
	switch m {
	case ir.MovabilityStatic:
		return MovabilityStatic
	case ir.MovabilityMovable:
		return MovabilityMovable
	default:
		violated("unknown movability %d", m)
	}
	panic("unreachable")
}

func (t *Tables) stableGenericArgs(args ir.GenericArgs) GenericArgs {
	out := make(GenericArgs, 0, len(args))
	for _, arg := range args {
		switch arg.Kind {
		case ir.GenericArgLifetime:
			out = append(out, GenericArg{Kind: GenericArgLifetime, Lifetime: OpaqueOf(arg.Region)})
		case ir.GenericArgType:
			out = append(out, GenericArg{Kind: GenericArgType, Ty: t.InternTy(arg.Ty)})
		case ir.GenericArgConst:
			out = append(out, GenericArg{Kind: GenericArgConst, Const: OpaqueOf(arg.Const)})
		default:
			violated("unknown generic arg kind %d", arg.Kind)
		}
	}
	return out
}

func (t *Tables) stablePolyFnSig(sig *ir.PolyFnSig) PolyFnSig {
	bound := make([]BoundVariableKind, 0, len(sig.BoundVars))
	for i := range sig.BoundVars {
		bound = append(bound, t.stableBoundVariableKind(&sig.BoundVars[i]))
	}
	return PolyFnSig{
		Value:     t.stableFnSig(&sig.Sig),
		BoundVars: bound,
	}
}

func (t *Tables) stableFnSig(sig *ir.FnSig) FnSig {
	tys := make([]Ty, 0, len(sig.InputsAndOutput))
	for _, ty := range sig.InputsAndOutput {
		tys = append(tys, t.InternTy(ty))
	}
	return FnSig{
		InputsAndOutput: tys,
		CVariadic:       sig.CVariadic,
		Unsafety:        t.stableSafety(sig.Unsafety),
		Abi:             t.stableAbi(sig.Abi),
	}
}

func (t *Tables) stableAbi(abi ir.Abi) Abi {
	stable := Abi{Unwind: abi.Unwind}
	switch abi.Kind {
	case ir.AbiRust:
		stable.Kind = AbiRust
	case ir.AbiC:
		stable.Kind = AbiC
	case ir.AbiCdecl:
		stable.Kind = AbiCdecl
	case ir.AbiStdcall:
		stable.Kind = AbiStdcall
	case ir.AbiFastcall:
		stable.Kind = AbiFastcall
	case ir.AbiVectorcall:
		stable.Kind = AbiVectorcall
	case ir.AbiThiscall:
		stable.Kind = AbiThiscall
	case ir.AbiAapcs:
		stable.Kind = AbiAapcs
	case ir.AbiWin64:
		stable.Kind = AbiWin64
	case ir.AbiSysV64:
		stable.Kind = AbiSysV64
	case ir.AbiPtxKernel:
		stable.Kind = AbiPtxKernel
	case ir.AbiMsp430Interrupt:
		stable.Kind = AbiMsp430Interrupt
	case ir.AbiX86Interrupt:
		stable.Kind = AbiX86Interrupt
	case ir.AbiAmdGpuKernel:
		stable.Kind = AbiAmdGpuKernel
	case ir.AbiEfiApi:
		stable.Kind = AbiEfiApi
	case ir.AbiAvrInterrupt:
		stable.Kind = AbiAvrInterrupt
	case ir.AbiAvrNonBlockingInterrupt:
		stable.Kind = AbiAvrNonBlockingInterrupt
	case ir.AbiCCmseNonSecureCall:
		stable.Kind = AbiCCmseNonSecureCall
	case ir.AbiWasm:
		stable.Kind = AbiWasm
	case ir.AbiSystem:
		stable.Kind = AbiSystem
	case ir.AbiRustIntrinsic:
		stable.Kind = AbiRustIntrinsic
	case ir.AbiRustCall:
		stable.Kind = AbiRustCall
	case ir.AbiPlatformIntrinsic:
		stable.Kind = AbiPlatformIntrinsic
	case ir.AbiUnadjusted:
		stable.Kind = AbiUnadjusted
	case ir.AbiRustCold:
		stable.Kind = AbiRustCold
	default:
		violated("unknown abi %d", abi.Kind)
	}
	return stable
}

func (t *Tables) stableBoundVariableKind(bv *ir.BoundVariableKind) BoundVariableKind {
	switch bv.Kind {
	case ir.BoundVarTy:
		stable := BoundVariableKind{Kind: BoundVarTy}
		switch bv.TyKind {
		case ir.BoundTyAnon:
			stable.Ty = BoundTyKind{Kind: BoundTyAnon}
		case ir.BoundTyParam:
			stable.Ty = BoundTyKind{
				Kind: BoundTyParam,
				Def:  t.paramDef(bv.Def),
				Name: bv.Name,
			}
		default:
			violated("unknown bound ty kind %d", bv.TyKind)
		}
		return stable
	case ir.BoundVarRegion:
		stable := BoundVariableKind{Kind: BoundVarRegion}
		switch bv.RegionKind {
		case ir.BoundRegionAnon:
			stable.Region = BoundRegionKind{Kind: BrAnon}
			if bv.HasSpan {
				stable.Region.HasSpan = true
				stable.Region.Span = OpaqueOf(bv.Span)
			}
		case ir.BoundRegionNamed:
			stable.Region = BoundRegionKind{
				Kind: BrNamed,
				Def:  t.brNamedDef(bv.Def),
				Name: bv.Name,
			}
		case ir.BoundRegionEnv:
			stable.Region = BoundRegionKind{Kind: BrEnv}
		default:
			violated("unknown bound region kind %d", bv.RegionKind)
		}
		return stable
	case ir.BoundVarConst:
		unsupported("bound const variables")
	default:
		violated("unknown bound variable kind %d", bv.Kind)
	}
	panic("unreachable")
}
