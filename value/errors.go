// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import "errors"

var (
	// ErrDefaultMissingKey indicates that a candidate layer produced a key
	// the default snapshot structurally lacks. The default instance must be
	// a structural superset of everything a source can produce; this is a
	// schema mismatch in the calling program, not a recoverable per-layer
	// condition.
	ErrDefaultMissingKey = errors.New("default snapshot missing key present in candidate")

	// ErrUnsupportedType indicates that Encode was given a Go value with no
	// Value representation (e.g. a channel or function).
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDecode indicates that a Value could not be interpreted as the
	// target Go shape. It is recoverable: a later layer may still produce a
	// decodable accumulated value.
	ErrDecode = errors.New("cannot decode value")
)
