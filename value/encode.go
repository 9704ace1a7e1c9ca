// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import (
	"fmt"
	"reflect"
	"sort"
)

// Marshaler lets a type control its own Value representation. It is the
// route by which enum-like Go types produce variant shapes (UnitVariant,
// NewtypeVariant, ...) that plain reflection never emits.
//
// The method must be declared on the value receiver to be honored for
// struct fields encoded by value.
type Marshaler interface {
	MarshalValue() (Value, error)
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

// Encode converts a typed Go value into its generic Value snapshot.
//
// Mapping: booleans, integers and floats map to the scalar variant of the
// same width (plain int/uint map to I64/U64); string to Str; []byte to
// Bytes; nil pointers to None and non-nil pointers to Some; slices to Seq;
// arrays to Tuple; maps to Map with entries sorted by key for a
// deterministic snapshot; structs to Struct named after the Go type, field
// names taken from the `config:"..."` tag when present and the Go field name
// otherwise (`config:"-"` and unexported fields are skipped).
//
// Types implementing [Marshaler] are encoded by their own method.
func Encode(v any) (Value, error) {
	if v == nil {
		return Unit{}, nil
	}
	return encode(reflect.ValueOf(v))
}

func encode(rv reflect.Value) (Value, error) {
	if rv.IsValid() && rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return None{}, nil
		}
		return rv.Interface().(Marshaler).MarshalValue()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int8:
		return I8(rv.Int()), nil
	case reflect.Int16:
		return I16(rv.Int()), nil
	case reflect.Int32:
		return I32(rv.Int()), nil
	case reflect.Int, reflect.Int64:
		return I64(rv.Int()), nil
	case reflect.Uint8:
		return U8(rv.Uint()), nil
	case reflect.Uint16:
		return U16(rv.Uint()), nil
	case reflect.Uint32:
		return U32(rv.Uint()), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return U64(rv.Uint()), nil
	case reflect.Float32:
		return F32(rv.Float()), nil
	case reflect.Float64:
		return F64(rv.Float()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return None{}, nil
		}
		inner, err := encode(rv.Elem())
		if err != nil {
			return nil, err
		}
		return Some{Value: inner}, nil
	case reflect.Interface:
		if rv.IsNil() {
			return Unit{}, nil
		}
		return encode(rv.Elem())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
		return encodeList(rv, func(vs []Value) Value { return Seq(vs) })
	case reflect.Array:
		return encodeList(rv, func(vs []Value) Value { return Tuple(vs) })
	case reflect.Map:
		return encodeMap(rv)
	case reflect.Struct:
		return encodeStruct(rv)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

func encodeList(rv reflect.Value, wrap func([]Value) Value) (Value, error) {
	vs := make([]Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := encode(rv.Index(i))
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return wrap(vs), nil
}

func encodeMap(rv reflect.Value) (Value, error) {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	out := NewMap()
	for _, k := range keys {
		kv, err := encode(k)
		if err != nil {
			return nil, err
		}
		vv, err := encode(rv.MapIndex(k))
		if err != nil {
			return nil, err
		}
		out.Set(kv, vv)
	}
	return out, nil
}

// lessKey orders map keys so that a snapshot of the same Go map is always
// identical. The order itself carries no merge meaning.
func lessKey(l, r reflect.Value) bool {
	switch l.Kind() {
	case reflect.String:
		return l.String() < r.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return l.Int() < r.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return l.Uint() < r.Uint()
	case reflect.Float32, reflect.Float64:
		return l.Float() < r.Float()
	default:
		return fmt.Sprint(l.Interface()) < fmt.Sprint(r.Interface())
	}
}

func encodeStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	fields := NewFields()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		v, err := encode(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), f.Name, err)
		}
		fields.Set(name, v)
	}
	if fields.Len() == 0 {
		return UnitStruct{Name: t.Name()}, nil
	}
	return Struct{Name: t.Name(), Fields: fields}, nil
}

// fieldName resolves the Value field name for a struct field: the config
// tag when present, the Go field name otherwise. Returns "" for skipped
// fields.
func fieldName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("config")
	if !ok {
		return f.Name
	}
	if tag == "-" {
		return ""
	}
	return tag
}
