// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflayer

import (
	"fmt"

	"dario.cat/mergo"
)

// MergeDefaults composes several typed default instances into one, later
// overrides winning for non-zero fields. It is a convenience for callers
// that assemble their default from multiple partial presets (for example a
// library baseline plus an application override) before handing it to
// [Builder.WithDefault].
//
// Unlike the Value merge engine this operates on typed structs directly and
// has no presence detection beyond mergo's non-zero rule; use it for
// defaults composition only, not for layering live sources.
func MergeDefaults[T any](base T, overrides ...T) (T, error) {
	out := base
	for i, o := range overrides {
		if err := mergo.Merge(&out, o, mergo.WithOverride); err != nil {
			return out, fmt.Errorf("error merging default override %d: %w", i, err)
		}
	}
	return out, nil
}
