// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type dbConfig struct {
	DSN  string `config:"dsn"`
	Pool int    `config:"pool"`
}

type serverConfig struct {
	Addr    string         `config:"addr"`
	Debug   bool           `config:"debug"`
	Timeout time.Duration  `config:"timeout"`
	DB      dbConfig       `config:"db"`
	Tags    []string       `config:"tags"`
	Weights map[string]int `config:"weights"`
	Alias   *string        `config:"alias"`
	Ignored string         `config:"-"`
}

// logLevel is an enum-like type that round-trips through unit variants via
// the Marshaler/Unmarshaler hooks.
type logLevel int

const (
	levelInfo logLevel = iota
	levelDebug
)

func (l logLevel) MarshalValue() (Value, error) {
	switch l {
	case levelDebug:
		return UnitVariant{Name: "logLevel", VariantIndex: 1, Variant: "debug"}, nil
	default:
		return UnitVariant{Name: "logLevel", VariantIndex: 0, Variant: "info"}, nil
	}
}

func (l *logLevel) UnmarshalValue(v Value) error {
	uv, ok := v.(UnitVariant)
	if !ok {
		return fmt.Errorf("logLevel: expected unit variant, got %T", v)
	}
	switch uv.Variant {
	case "info":
		*l = levelInfo
	case "debug":
		*l = levelDebug
	default:
		return fmt.Errorf("logLevel: unknown variant %q", uv.Variant)
	}
	return nil
}

// ── Encode ────────────────────────────────────────────────────────────────────

// TestEncode_StructShape verifies the struct mapping: type name, tag-driven
// field names, skipped fields, nested structs, and scalar variants.
func TestEncode_StructShape(t *testing.T) {
	alias := "srv1"
	cfg := serverConfig{
		Addr:    ":8080",
		Debug:   true,
		Timeout: 30 * time.Second,
		DB:      dbConfig{DSN: "postgres://x", Pool: 4},
		Tags:    []string{"a", "b"},
		Weights: map[string]int{"b": 2, "a": 1},
		Alias:   &alias,
		Ignored: "must not appear",
	}

	v, err := Encode(cfg)
	require.NoError(t, err)

	s, ok := v.(Struct)
	require.True(t, ok)
	assert.Equal(t, "serverConfig", s.Name)
	assert.Equal(t, []string{"addr", "debug", "timeout", "db", "tags", "weights", "alias"}, s.Fields.Keys())

	addr, _ := s.Fields.Get("addr")
	assert.True(t, Equal(Str(":8080"), addr))
	timeout, _ := s.Fields.Get("timeout")
	assert.True(t, Equal(I64(30*time.Second), timeout), "time.Duration encodes as its underlying int64")

	db, _ := s.Fields.Get("db")
	dbs, ok := db.(Struct)
	require.True(t, ok)
	assert.Equal(t, "dbConfig", dbs.Name)

	al, _ := s.Fields.Get("alias")
	assert.True(t, Equal(Some{Value: Str("srv1")}, al))

	_, hasIgnored := s.Fields.Get("Ignored")
	assert.False(t, hasIgnored)
}

// TestEncode_MapKeysSorted verifies that snapshots of the same Go map are
// deterministic: entries come out sorted by key.
func TestEncode_MapKeysSorted(t *testing.T) {
	v, err := Encode(map[string]int{"z": 26, "a": 1, "m": 13})
	require.NoError(t, err)

	m, ok := v.(*Map)
	require.True(t, ok)
	var keys []Value
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []Value{Str("a"), Str("m"), Str("z")}, keys)
}

// TestEncode_NilPointerIsNone verifies the optionality mapping.
func TestEncode_NilPointerIsNone(t *testing.T) {
	var p *string
	v, err := Encode(p)
	require.NoError(t, err)
	assert.True(t, Equal(None{}, v))
}

// TestEncode_MarshalerProducesVariant verifies that a Marshaler
// implementation fully controls its representation.
func TestEncode_MarshalerProducesVariant(t *testing.T) {
	v, err := Encode(levelDebug)
	require.NoError(t, err)
	assert.True(t, Equal(UnitVariant{Name: "logLevel", VariantIndex: 1, Variant: "debug"}, v))
}

// TestEncode_UnsupportedType verifies that shapes with no Value
// representation are rejected.
func TestEncode_UnsupportedType(t *testing.T) {
	_, err := Encode(make(chan int))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ── Decode ────────────────────────────────────────────────────────────────────

// TestDecode_RoundTrip verifies that a typed value survives
// Encode → Decode unchanged.
func TestDecode_RoundTrip(t *testing.T) {
	alias := "srv1"
	in := serverConfig{
		Addr:    ":8080",
		Debug:   true,
		Timeout: time.Minute,
		DB:      dbConfig{DSN: "postgres://x", Pool: 4},
		Tags:    []string{"a", "b"},
		Weights: map[string]int{"a": 1, "b": 2},
		Alias:   &alias,
	}

	v, err := Encode(in)
	require.NoError(t, err)

	var out serverConfig
	require.NoError(t, Decode(v, &out))
	assert.Equal(t, in, out)
}

// TestDecode_EnumRoundTrip verifies the Unmarshaler hook on an enum-like
// type.
func TestDecode_EnumRoundTrip(t *testing.T) {
	v, err := Encode(levelDebug)
	require.NoError(t, err)

	var out logLevel
	require.NoError(t, Decode(v, &out))
	assert.Equal(t, levelDebug, out)
}

// TestDecode_VariantWithoutUnmarshalerFails verifies that variant shapes are
// not decodable into plain types.
func TestDecode_VariantWithoutUnmarshalerFails(t *testing.T) {
	var out int
	err := Decode(UnitVariant{Name: "Mode", Variant: "Local"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

// TestDecode_IntegerOverflow verifies that a value outside the target's
// range is a recoverable decode error, not a silent truncation.
func TestDecode_IntegerOverflow(t *testing.T) {
	var out int8
	err := Decode(I64(300), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	var u uint16
	err = Decode(I64(-1), &u)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

// TestDecode_UnknownFieldObserver verifies that fields present in the Value
// but absent from the target schema are reported once each, by dotted path,
// and do not affect the decoded result.
func TestDecode_UnknownFieldObserver(t *testing.T) {
	v := strukt("serverConfig",
		"addr", Str(":9090"),
		"legacy_knob", Str("on"),
		"db", strukt("dbConfig",
			"dsn", Str("postgres://x"),
			"replica", Str("r1"),
		),
	)

	var unknown []string
	var out serverConfig
	require.NoError(t, Decode(v, &out, WithUnknownFieldObserver(func(field string) {
		unknown = append(unknown, field)
	})))

	assert.Equal(t, ":9090", out.Addr)
	assert.Equal(t, "postgres://x", out.DB.DSN)
	assert.Equal(t, []string{"legacy_knob", "db.replica"}, unknown)
}

// TestDecode_IntoUntypedMap verifies the native rendering used by untyped
// targets such as map[string]any.
func TestDecode_IntoUntypedMap(t *testing.T) {
	v := strukt("Cfg",
		"name", Str("svc"),
		"port", I64(8080),
		"tags", Seq{Str("a"), Str("b")},
	)

	var out map[string]any
	require.NoError(t, Decode(v, &out))
	assert.Equal(t, map[string]any{
		"name": "svc",
		"port": int64(8080),
		"tags": []any{"a", "b"},
	}, out)
}

// TestDecode_RequiresPointerTarget verifies the target contract.
func TestDecode_RequiresPointerTarget(t *testing.T) {
	var out serverConfig
	err := Decode(Str("x"), out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}
