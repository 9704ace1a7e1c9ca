// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

// Value is the generic representation of a serializable datum. It is a
// closed union: the set of implementations is fixed to the types in this
// package, one per shape category.
//
// A Value produced by a source is a complete, self-contained snapshot.
// Merge operations never mutate their operands in place; containers are
// rebuilt on every merge step.
type Value interface {
	isValue()
}

// ── scalars ───────────────────────────────────────────────────────────────────

// Unit is the absence marker. It carries no data.
type Unit struct{}

// Bool is a boolean scalar.
type Bool bool

// I8 is a signed 8-bit integer scalar.
type I8 int8

// I16 is a signed 16-bit integer scalar.
type I16 int16

// I32 is a signed 32-bit integer scalar.
type I32 int32

// I64 is a signed 64-bit integer scalar. Plain Go int values encode as I64.
type I64 int64

// U8 is an unsigned 8-bit integer scalar.
type U8 uint8

// U16 is an unsigned 16-bit integer scalar.
type U16 uint16

// U32 is an unsigned 32-bit integer scalar.
type U32 uint32

// U64 is an unsigned 64-bit integer scalar. Plain Go uint values encode as U64.
type U64 uint64

// F32 is a 32-bit floating point scalar.
type F32 float32

// F64 is a 64-bit floating point scalar.
type F64 float64

// Char is a single character.
type Char rune

// Str is a text string.
type Str string

// Bytes is an opaque byte string.
type Bytes []byte

// ── optionality ───────────────────────────────────────────────────────────────

// None is the empty optional. A nil Go pointer encodes as None.
type None struct{}

// Some wraps a present optional value.
type Some struct {
	Value Value
}

// ── named unit markers and wrappers ───────────────────────────────────────────

// UnitStruct is a named struct with no fields.
type UnitStruct struct {
	Name string
}

// UnitVariant is a bare enum case with no payload.
type UnitVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
}

// NewtypeStruct is a named single-field wrapper around an inner Value.
type NewtypeStruct struct {
	Name  string
	Value Value
}

// NewtypeVariant is an enum case wrapping a single inner Value.
type NewtypeVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Value        Value
}

// ── sequences ─────────────────────────────────────────────────────────────────

// Seq is an ordered, variable-length list of Values.
type Seq []Value

// Tuple is an ordered, fixed-arity list of Values.
type Tuple []Value

// TupleStruct is a named fixed-arity list of Values.
type TupleStruct struct {
	Name   string
	Values []Value
}

// TupleVariant is an enum case carrying a fixed-arity list of Values.
type TupleVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Values       []Value
}

// ── keyed collections ─────────────────────────────────────────────────────────

// MapEntry is a single key/value pair of a [Map].
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an ordered mapping of Value to Value with unique keys. Keys are
// compared by structural equality. Insertion order is preserved so that a
// Value round-tripped to text stays deterministic; merge semantics do not
// depend on it.
type Map struct {
	entries []MapEntry
}

// NewMap returns a Map holding the given entries in order. A later entry
// whose key structurally equals an earlier one replaces it.
func NewMap(entries ...MapEntry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set inserts or replaces the entry for k. Replacement keeps the original
// position; a new key is appended.
func (m *Map) Set(k, v Value) {
	for i := range m.entries {
		if Equal(m.entries[i].Key, k) {
			m.entries[i].Value = v
			return
		}
	}
	m.entries = append(m.entries, MapEntry{Key: k, Value: v})
}

// Get returns the value stored under a key structurally equal to k.
func (m *Map) Get(k Value) (Value, bool) {
	for i := range m.entries {
		if Equal(m.entries[i].Key, k) {
			return m.entries[i].Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns the entries in insertion order. The returned slice must
// not be modified.
func (m *Map) Entries() []MapEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Fields is an ordered mapping of field name to Value, used by [Struct] and
// [StructVariant]. Like [Map] it preserves insertion order without giving it
// merge significance.
type Fields struct {
	keys []string
	vals map[string]Value
}

// NewFields returns an empty Fields container.
func NewFields() *Fields {
	return &Fields{vals: make(map[string]Value)}
}

// Set inserts or replaces the value for name, keeping first-insertion order.
func (f *Fields) Set(name string, v Value) {
	if f.vals == nil {
		f.vals = make(map[string]Value)
	}
	if _, ok := f.vals[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.vals[name] = v
}

// Get returns the value stored under name.
func (f *Fields) Get(name string) (Value, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.vals[name]
	return v, ok
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Keys returns the field names in insertion order. The returned slice must
// not be modified.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return f.keys
}

// Struct is a named record with ordered string-keyed fields.
type Struct struct {
	Name   string
	Fields *Fields
}

// StructVariant is an enum case carrying named fields. Two StructVariants
// are merge-compatible only if Name, VariantIndex and Variant all match.
type StructVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Fields       *Fields
}

func (Unit) isValue()           {}
func (Bool) isValue()           {}
func (I8) isValue()             {}
func (I16) isValue()            {}
func (I32) isValue()            {}
func (I64) isValue()            {}
func (U8) isValue()             {}
func (U16) isValue()            {}
func (U32) isValue()            {}
func (U64) isValue()            {}
func (F32) isValue()            {}
func (F64) isValue()            {}
func (Char) isValue()           {}
func (Str) isValue()            {}
func (Bytes) isValue()          {}
func (None) isValue()           {}
func (Some) isValue()           {}
func (UnitStruct) isValue()     {}
func (UnitVariant) isValue()    {}
func (NewtypeStruct) isValue()  {}
func (NewtypeVariant) isValue() {}
func (Seq) isValue()            {}
func (Tuple) isValue()          {}
func (TupleStruct) isValue()    {}
func (TupleVariant) isValue()   {}
func (*Map) isValue()           {}
func (Struct) isValue()         {}
func (StructVariant) isValue()  {}

// Equal reports deep structural equality of two Values.
//
// Equality is per-variant: an I64(0) never equals a U64(0). Map and Fields
// comparison ignores insertion order; only the key/value pairs matter.
func Equal(l, r Value) bool {
	switch lv := l.(type) {
	case Unit:
		_, ok := r.(Unit)
		return ok
	case Bool:
		rv, ok := r.(Bool)
		return ok && lv == rv
	case I8:
		rv, ok := r.(I8)
		return ok && lv == rv
	case I16:
		rv, ok := r.(I16)
		return ok && lv == rv
	case I32:
		rv, ok := r.(I32)
		return ok && lv == rv
	case I64:
		rv, ok := r.(I64)
		return ok && lv == rv
	case U8:
		rv, ok := r.(U8)
		return ok && lv == rv
	case U16:
		rv, ok := r.(U16)
		return ok && lv == rv
	case U32:
		rv, ok := r.(U32)
		return ok && lv == rv
	case U64:
		rv, ok := r.(U64)
		return ok && lv == rv
	case F32:
		rv, ok := r.(F32)
		return ok && lv == rv
	case F64:
		rv, ok := r.(F64)
		return ok && lv == rv
	case Char:
		rv, ok := r.(Char)
		return ok && lv == rv
	case Str:
		rv, ok := r.(Str)
		return ok && lv == rv
	case Bytes:
		rv, ok := r.(Bytes)
		return ok && bytesEqual(lv, rv)
	case None:
		_, ok := r.(None)
		return ok
	case Some:
		rv, ok := r.(Some)
		return ok && Equal(lv.Value, rv.Value)
	case UnitStruct:
		rv, ok := r.(UnitStruct)
		return ok && lv.Name == rv.Name
	case UnitVariant:
		rv, ok := r.(UnitVariant)
		return ok && lv == rv
	case NewtypeStruct:
		rv, ok := r.(NewtypeStruct)
		return ok && lv.Name == rv.Name && Equal(lv.Value, rv.Value)
	case NewtypeVariant:
		rv, ok := r.(NewtypeVariant)
		return ok && sameVariant(lv.Name, lv.VariantIndex, lv.Variant, rv.Name, rv.VariantIndex, rv.Variant) &&
			Equal(lv.Value, rv.Value)
	case Seq:
		rv, ok := r.(Seq)
		return ok && listEqual(lv, rv)
	case Tuple:
		rv, ok := r.(Tuple)
		return ok && listEqual(lv, rv)
	case TupleStruct:
		rv, ok := r.(TupleStruct)
		return ok && lv.Name == rv.Name && listEqual(lv.Values, rv.Values)
	case TupleVariant:
		rv, ok := r.(TupleVariant)
		return ok && sameVariant(lv.Name, lv.VariantIndex, lv.Variant, rv.Name, rv.VariantIndex, rv.Variant) &&
			listEqual(lv.Values, rv.Values)
	case *Map:
		rv, ok := r.(*Map)
		return ok && mapEqual(lv, rv)
	case Struct:
		rv, ok := r.(Struct)
		return ok && lv.Name == rv.Name && fieldsEqual(lv.Fields, rv.Fields)
	case StructVariant:
		rv, ok := r.(StructVariant)
		return ok && sameVariant(lv.Name, lv.VariantIndex, lv.Variant, rv.Name, rv.VariantIndex, rv.Variant) &&
			fieldsEqual(lv.Fields, rv.Fields)
	case nil:
		return r == nil
	}
	return false
}

func sameVariant(ln string, li uint32, lv string, rn string, ri uint32, rv string) bool {
	return ln == rn && li == ri && lv == rv
}

func bytesEqual(l, r Bytes) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	return true
}

func listEqual(l, r []Value) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if !Equal(l[i], r[i]) {
			return false
		}
	}
	return true
}

func mapEqual(l, r *Map) bool {
	if l.Len() != r.Len() {
		return false
	}
	for _, e := range l.Entries() {
		rv, ok := r.Get(e.Key)
		if !ok || !Equal(e.Value, rv) {
			return false
		}
	}
	return true
}

func fieldsEqual(l, r *Fields) bool {
	if l.Len() != r.Len() {
		return false
	}
	for _, k := range l.Keys() {
		lv, _ := l.Get(k)
		rv, ok := r.Get(k)
		if !ok || !Equal(lv, rv) {
			return false
		}
	}
	return true
}
