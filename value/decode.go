// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import (
	"fmt"
	"math"
	"reflect"
)

// Unmarshaler lets a type control how a Value is interpreted as itself.
// It is the inverse of [Marshaler] and the only way to decode variant
// shapes back into Go types.
type Unmarshaler interface {
	UnmarshalValue(Value) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

// DecodeOption configures a single Decode call.
type DecodeOption func(*decoder)

// WithUnknownFieldObserver registers fn to be called once per field present
// in the Value but absent from the target struct's schema. The field is
// reported as a dotted path from the root. This is a diagnostics side
// channel only; it never affects the decoded result.
func WithUnknownFieldObserver(fn func(field string)) DecodeOption {
	return func(d *decoder) { d.observer = fn }
}

// Decode interprets v as the Go shape pointed to by target. target must be
// a non-nil pointer. A shape or range mismatch is reported as a recoverable
// error wrapping [ErrDecode].
func Decode(v Value, target any, opts ...DecodeOption) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrDecode, target)
	}
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d.decode(v, rv.Elem(), "")
}

type decoder struct {
	observer func(field string)
}

func (d *decoder) decode(v Value, rv reflect.Value, path string) error {
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		return rv.Addr().Interface().(Unmarshaler).UnmarshalValue(v)
	}

	// Untyped targets receive a native Go rendering of the Value.
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		if n := native(v); n != nil {
			rv.Set(reflect.ValueOf(n))
		} else {
			rv.SetZero()
		}
		return nil
	}

	switch v := v.(type) {
	case Unit, None:
		rv.SetZero()
		return nil
	case Some:
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				rv.Set(reflect.New(rv.Type().Elem()))
			}
			return d.decode(v.Value, rv.Elem(), path)
		}
		return d.decode(v.Value, rv, path)
	case Bool:
		if rv.Kind() == reflect.Bool {
			rv.SetBool(bool(v))
			return nil
		}
	case I8:
		return d.setInt(int64(v), rv, path)
	case I16:
		return d.setInt(int64(v), rv, path)
	case I32:
		return d.setInt(int64(v), rv, path)
	case I64:
		return d.setInt(int64(v), rv, path)
	case Char:
		return d.setInt(int64(v), rv, path)
	case U8:
		return d.setUint(uint64(v), rv, path)
	case U16:
		return d.setUint(uint64(v), rv, path)
	case U32:
		return d.setUint(uint64(v), rv, path)
	case U64:
		return d.setUint(uint64(v), rv, path)
	case F32:
		if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
			rv.SetFloat(float64(v))
			return nil
		}
	case F64:
		if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
			if rv.OverflowFloat(float64(v)) {
				return d.mismatch(v, rv, path)
			}
			rv.SetFloat(float64(v))
			return nil
		}
	case Str:
		if rv.Kind() == reflect.String {
			rv.SetString(string(v))
			return nil
		}
	case Bytes:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			rv.SetBytes(append([]byte(nil), v...))
			return nil
		}
		if rv.Kind() == reflect.String {
			rv.SetString(string(v))
			return nil
		}
	case Seq:
		return d.decodeList([]Value(v), rv, path)
	case Tuple:
		return d.decodeList([]Value(v), rv, path)
	case TupleStruct:
		return d.decodeList(v.Values, rv, path)
	case NewtypeStruct:
		return d.decode(v.Value, rv, path)
	case UnitStruct:
		if rv.Kind() == reflect.Struct {
			rv.SetZero()
			return nil
		}
	case *Map:
		return d.decodeMap(v, rv, path)
	case Struct:
		return d.decodeStruct(v.Fields, rv, path)
	case StructVariant, UnitVariant, NewtypeVariant, TupleVariant:
		return fmt.Errorf("%s: %w: variant shapes require an Unmarshaler on %s",
			pathOrRoot(path), ErrDecode, rv.Type())
	}
	return d.mismatch(v, rv, path)
}

func (d *decoder) setInt(n int64, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(n) {
			return fmt.Errorf("%s: %w: %d overflows %s", pathOrRoot(path), ErrDecode, n, rv.Type())
		}
		rv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return fmt.Errorf("%s: %w: %d does not fit %s", pathOrRoot(path), ErrDecode, n, rv.Type())
		}
		rv.SetUint(uint64(n))
		return nil
	}
	return fmt.Errorf("%s: %w: integer into %s", pathOrRoot(path), ErrDecode, rv.Type())
}

func (d *decoder) setUint(n uint64, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.OverflowUint(n) {
			return fmt.Errorf("%s: %w: %d overflows %s", pathOrRoot(path), ErrDecode, n, rv.Type())
		}
		rv.SetUint(n)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n > math.MaxInt64 || rv.OverflowInt(int64(n)) {
			return fmt.Errorf("%s: %w: %d does not fit %s", pathOrRoot(path), ErrDecode, n, rv.Type())
		}
		rv.SetInt(int64(n))
		return nil
	}
	return fmt.Errorf("%s: %w: integer into %s", pathOrRoot(path), ErrDecode, rv.Type())
}

func (d *decoder) decodeList(vs []Value, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), len(vs), len(vs))
		for i, v := range vs {
			if err := d.decode(v, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Array:
		if rv.Len() != len(vs) {
			return fmt.Errorf("%s: %w: %d elements into [%d]%s",
				pathOrRoot(path), ErrDecode, len(vs), rv.Len(), rv.Type().Elem())
		}
		for i, v := range vs {
			if err := d.decode(v, rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%s: %w: sequence into %s", pathOrRoot(path), ErrDecode, rv.Type())
}

func (d *decoder) decodeMap(m *Map, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), m.Len())
		for _, e := range m.Entries() {
			key := reflect.New(rv.Type().Key()).Elem()
			if err := d.decode(e.Key, key, path); err != nil {
				return err
			}
			val := reflect.New(rv.Type().Elem()).Elem()
			if err := d.decode(e.Value, val, joinPath(path, fmt.Sprint(key.Interface()))); err != nil {
				return err
			}
			out.SetMapIndex(key, val)
		}
		rv.Set(out)
		return nil
	case reflect.Struct:
		fields := NewFields()
		for _, e := range m.Entries() {
			k, ok := e.Key.(Str)
			if !ok {
				return fmt.Errorf("%s: %w: non-string map key into struct %s",
					pathOrRoot(path), ErrDecode, rv.Type())
			}
			fields.Set(string(k), e.Value)
		}
		return d.decodeStruct(fields, rv, path)
	}
	return fmt.Errorf("%s: %w: map into %s", pathOrRoot(path), ErrDecode, rv.Type())
}

func (d *decoder) decodeStruct(fields *Fields, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		byName := make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if name := fieldName(f); name != "" {
				byName[name] = i
			}
		}
		for _, k := range fields.Keys() {
			v, _ := fields.Get(k)
			i, ok := byName[k]
			if !ok {
				if d.observer != nil {
					d.observer(joinPath(path, k))
				}
				continue
			}
			if err := d.decode(v, rv.Field(i), joinPath(path, k)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%s: %w: struct into %s", pathOrRoot(path), ErrDecode, rv.Type())
		}
		out := reflect.MakeMapWithSize(rv.Type(), fields.Len())
		for _, k := range fields.Keys() {
			v, _ := fields.Get(k)
			val := reflect.New(rv.Type().Elem()).Elem()
			if err := d.decode(v, val, joinPath(path, k)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), val)
		}
		rv.Set(out)
		return nil
	}
	return fmt.Errorf("%s: %w: struct into %s", pathOrRoot(path), ErrDecode, rv.Type())
}

func (d *decoder) mismatch(v Value, rv reflect.Value, path string) error {
	return fmt.Errorf("%s: %w: %T into %s", pathOrRoot(path), ErrDecode, v, rv.Type())
}

// native renders a Value as plain Go data for decoding into an untyped
// interface target: scalars as themselves, containers as []any and
// map[string]any, variants as their variant name (unit) or payload.
func native(v Value) any {
	switch v := v.(type) {
	case Unit, None:
		return nil
	case Bool:
		return bool(v)
	case I8:
		return int8(v)
	case I16:
		return int16(v)
	case I32:
		return int32(v)
	case I64:
		return int64(v)
	case U8:
		return uint8(v)
	case U16:
		return uint16(v)
	case U32:
		return uint32(v)
	case U64:
		return uint64(v)
	case F32:
		return float32(v)
	case F64:
		return float64(v)
	case Char:
		return rune(v)
	case Str:
		return string(v)
	case Bytes:
		return []byte(v)
	case Some:
		return native(v.Value)
	case UnitStruct:
		return map[string]any{}
	case UnitVariant:
		return v.Variant
	case NewtypeStruct:
		return native(v.Value)
	case NewtypeVariant:
		return map[string]any{v.Variant: native(v.Value)}
	case Seq:
		return nativeList(v)
	case Tuple:
		return nativeList(v)
	case TupleStruct:
		return nativeList(v.Values)
	case TupleVariant:
		return map[string]any{v.Variant: nativeList(v.Values)}
	case *Map:
		out := make(map[string]any, v.Len())
		for _, e := range v.Entries() {
			out[fmt.Sprint(native(e.Key))] = native(e.Value)
		}
		return out
	case Struct:
		return nativeFields(v.Fields)
	case StructVariant:
		return map[string]any{v.Variant: nativeFields(v.Fields)}
	}
	return nil
}

func nativeList(vs []Value) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = native(v)
	}
	return out
}

func nativeFields(f *Fields) map[string]any {
	out := make(map[string]any, f.Len())
	for _, k := range f.Keys() {
		v, _ := f.Get(k)
		out[k] = native(v)
	}
	return out
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func pathOrRoot(path string) string {
	if path == "" {
		return "value"
	}
	return path
}
