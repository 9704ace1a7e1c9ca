// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

// IsDefault reports whether v is equivalent to the zero value for its shape.
// It is the predicate used to infer whether a source actually set a field,
// given that serialization does not preserve "field was absent".
//
// Enum variant shapes (UnitVariant, NewtypeVariant, TupleVariant,
// StructVariant) are always classified as non-default: there is no way to
// know which variant a schema treats as its zero case, so the predicate is
// conservative for them. This is a documented imprecision, not a bug; an
// enum-valued field set by any layer can only be replaced wholesale by later
// layers, never filled in field by field.
func IsDefault(v Value) bool {
	switch v := v.(type) {
	case Unit, None, UnitStruct:
		return true
	case Bool:
		return !bool(v)
	case I8:
		return v == 0
	case I16:
		return v == 0
	case I32:
		return v == 0
	case I64:
		return v == 0
	case U8:
		return v == 0
	case U16:
		return v == 0
	case U32:
		return v == 0
	case U64:
		return v == 0
	case F32:
		return v == 0
	case F64:
		return v == 0
	case Char:
		return v == 0
	case Str:
		return v == ""
	case Bytes:
		return len(v) == 0
	case Some:
		return IsDefault(v.Value)
	case NewtypeStruct:
		return IsDefault(v.Value)
	case Seq:
		return len(v) == 0
	case Tuple:
		return len(v) == 0
	case TupleStruct:
		return len(v.Values) == 0
	case *Map:
		return v.Len() == 0
	case Struct:
		return v.Fields.Len() == 0
	case UnitVariant, NewtypeVariant, TupleVariant, StructVariant:
		return false
	}
	return false
}
