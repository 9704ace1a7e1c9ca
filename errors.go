// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflayer

import "errors"

// ErrNoValidValue indicates that no layer ever produced a successfully
// decoded result: every collector failed, or every intermediate accumulated
// value failed to decode into the target type. The error returned by
// [Builder.Build] wraps this sentinel together with each recovered per-layer
// error, so callers can match it with errors.Is and still inspect the
// individual causes.
var ErrNoValidValue = errors.New("no valid configuration could be built")
