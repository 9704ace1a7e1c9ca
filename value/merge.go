// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import "fmt"

// Merge combines two Values of the same conceptual slot, right-biased.
//
// Compatible containers (Map/Map, Struct/Struct with equal names,
// StructVariant/StructVariant with matching identity) are merged key by key,
// r winning where a key appears on both sides. Everything else returns r
// verbatim: r always takes the slot when recursion cannot proceed.
func Merge(l, r Value) Value {
	switch lv := l.(type) {
	case *Map:
		if rv, ok := r.(*Map); ok {
			return mergeMap(lv, rv)
		}
	case Struct:
		if rv, ok := r.(Struct); ok && lv.Name == rv.Name {
			return Struct{Name: lv.Name, Fields: mergeFields(lv.Fields, rv.Fields)}
		}
	case StructVariant:
		if rv, ok := r.(StructVariant); ok &&
			sameVariant(lv.Name, lv.VariantIndex, lv.Variant, rv.Name, rv.VariantIndex, rv.Variant) {
			return StructVariant{
				Name:         lv.Name,
				VariantIndex: lv.VariantIndex,
				Variant:      lv.Variant,
				Fields:       mergeFields(lv.Fields, rv.Fields),
			}
		}
	}
	return r
}

func mergeMap(l, r *Map) *Map {
	out := NewMap(l.Entries()...)
	for _, e := range r.Entries() {
		if lv, ok := out.Get(e.Key); ok {
			out.Set(e.Key, Merge(lv, e.Value))
		} else {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}

func mergeFields(l, r *Fields) *Fields {
	out := NewFields()
	for _, k := range l.Keys() {
		lv, _ := l.Get(k)
		out.Set(k, lv)
	}
	for _, k := range r.Keys() {
		rv, _ := r.Get(k)
		if lv, ok := out.Get(k); ok {
			out.Set(k, Merge(lv, rv))
		} else {
			out.Set(k, rv)
		}
	}
	return out
}

// MergeWithDefault normalizes a raw source snapshot against a default
// snapshot. The result carries exactly v's keys: where def has a same-named
// compatible substructure the two are combined recursively, otherwise v's
// value is taken as-is.
//
// The point is shape alignment, not precedence: a source may produce a
// structurally different (but compatible) layout than the canonical default,
// and this walk brings it in line before [Merge3] runs. No default-vs-actual
// discrimination happens here.
func MergeWithDefault(def, v Value) Value {
	switch dv := def.(type) {
	case *Map:
		if vv, ok := v.(*Map); ok {
			out := NewMap()
			for _, e := range vv.Entries() {
				if d, ok := dv.Get(e.Key); ok {
					out.Set(e.Key, MergeWithDefault(d, e.Value))
				} else {
					out.Set(e.Key, e.Value)
				}
			}
			return out
		}
	case Struct:
		if vv, ok := v.(Struct); ok && dv.Name == vv.Name {
			return Struct{Name: dv.Name, Fields: fieldsWithDefault(dv.Fields, vv.Fields)}
		}
	case StructVariant:
		if vv, ok := v.(StructVariant); ok &&
			sameVariant(dv.Name, dv.VariantIndex, dv.Variant, vv.Name, vv.VariantIndex, vv.Variant) {
			return StructVariant{
				Name:         dv.Name,
				VariantIndex: dv.VariantIndex,
				Variant:      dv.Variant,
				Fields:       fieldsWithDefault(dv.Fields, vv.Fields),
			}
		}
	}
	return v
}

func fieldsWithDefault(def, v *Fields) *Fields {
	out := NewFields()
	for _, k := range v.Keys() {
		vv, _ := v.Get(k)
		if d, ok := def.Get(k); ok {
			out.Set(k, MergeWithDefault(d, vv))
		} else {
			out.Set(k, vv)
		}
	}
	return out
}

// Merge3 is the default-aware three-way merge implementing the layering
// precedence policy. def is the snapshot of the caller's default instance,
// acc the running accumulated value, cand the incoming layer (already
// normalized with [MergeWithDefault]).
//
// Compatible container triples recurse key by key; cand keys absent from acc
// are adopted directly, acc keys absent from cand are carried through. For
// everything else the decision is made by comparing both sides against def
// with deep structural equality (never [IsDefault]):
//
//   - both equal def: keep def — neither layer actually set the slot;
//   - only acc equals def: adopt cand — first real assignment wins;
//   - only cand equals def: keep acc — a later layer's unset value must not
//     clobber an earlier explicit setting;
//   - neither equals def: fall back to [Merge], cand winning at leaves.
//
// A cand key with no counterpart in def is an internal consistency violation
// (the default must be a structural superset of every candidate) and is
// reported as [ErrDefaultMissingKey]; no meaningful precedence decision is
// possible without a default reference.
func Merge3(def, acc, cand Value) (Value, error) {
	switch dv := def.(type) {
	case *Map:
		av, aok := acc.(*Map)
		cv, cok := cand.(*Map)
		if aok && cok {
			return merge3Map(dv, av, cv)
		}
	case Struct:
		av, aok := acc.(Struct)
		cv, cok := cand.(Struct)
		if aok && cok && dv.Name == av.Name && dv.Name == cv.Name {
			fields, err := merge3Fields(dv.Fields, av.Fields, cv.Fields)
			if err != nil {
				return nil, fmt.Errorf("struct %s: %w", dv.Name, err)
			}
			return Struct{Name: dv.Name, Fields: fields}, nil
		}
	case StructVariant:
		av, aok := acc.(StructVariant)
		cv, cok := cand.(StructVariant)
		if aok && cok &&
			sameVariant(dv.Name, dv.VariantIndex, dv.Variant, av.Name, av.VariantIndex, av.Variant) &&
			sameVariant(dv.Name, dv.VariantIndex, dv.Variant, cv.Name, cv.VariantIndex, cv.Variant) {
			fields, err := merge3Fields(dv.Fields, av.Fields, cv.Fields)
			if err != nil {
				return nil, fmt.Errorf("variant %s::%s: %w", dv.Name, dv.Variant, err)
			}
			return StructVariant{
				Name:         dv.Name,
				VariantIndex: dv.VariantIndex,
				Variant:      dv.Variant,
				Fields:       fields,
			}, nil
		}
	}

	accDefault := Equal(acc, def)
	candDefault := Equal(cand, def)
	switch {
	case accDefault && candDefault:
		return def, nil
	case accDefault:
		return cand, nil
	case candDefault:
		return acc, nil
	default:
		return Merge(acc, cand), nil
	}
}

func merge3Map(def, acc, cand *Map) (*Map, error) {
	out := NewMap(acc.Entries()...)
	for _, e := range cand.Entries() {
		d, ok := def.Get(e.Key)
		if !ok {
			return nil, fmt.Errorf("%w: map key %v", ErrDefaultMissingKey, e.Key)
		}
		a, ok := out.Get(e.Key)
		if !ok {
			out.Set(e.Key, e.Value)
			continue
		}
		merged, err := Merge3(d, a, e.Value)
		if err != nil {
			return nil, err
		}
		out.Set(e.Key, merged)
	}
	return out, nil
}

func merge3Fields(def, acc, cand *Fields) (*Fields, error) {
	out := NewFields()
	for _, k := range acc.Keys() {
		av, _ := acc.Get(k)
		out.Set(k, av)
	}
	for _, k := range cand.Keys() {
		cv, _ := cand.Get(k)
		d, ok := def.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrDefaultMissingKey, k)
		}
		a, ok := out.Get(k)
		if !ok {
			out.Set(k, cv)
			continue
		}
		merged, err := Merge3(d, a, cv)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out.Set(k, merged)
	}
	return out, nil
}
