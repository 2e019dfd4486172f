// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package invariants provides assertions that are compiled in only when the
// "invariants" or "race" build tags are set. Production builds pay nothing
// for them.
package invariants

import (
	"math/rand/v2"

	"github.com/shaledb/shale/internal/buildtags"
)

// Enabled is true if we were built with the "invariants" or "race" build
// tags.
const Enabled = buildtags.Invariants || buildtags.Race

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race

// Sometimes returns true percent% of the time if invariants are Enabled.
// Otherwise, always returns false.
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}
