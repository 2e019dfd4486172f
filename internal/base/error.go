// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import "github.com/cockroachdb/errors"

// ErrCorruption is a marker error for database corruption. Errors returned
// for malformed persisted state are marked with it and can be detected with
// errors.Is(err, ErrCorruption).
var ErrCorruption = errors.New("shale: corruption")

// CorruptionErrorf formats an error marked as an ErrCorruption.
func CorruptionErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrCorruption)
}
