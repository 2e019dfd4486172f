// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package shale is the foundation of an ordered, versioned key-value storage
// engine in the LSM-tree family. It currently provides the engine's
// substrate: the versioned internal key format and its total ordering
// (internal/base) and the growth-only memory arena backing in-memory sorted
// structures (internal/arena). The capability types a user of the engine
// configures are re-exported here.
package shale

import "github.com/shaledb/shale/internal/base"

// Exported aliases for the configuration-surface capability types.
type (
	// Compare returns -1, 0, or +1 depending on whether a is 'less than',
	// 'equal to' or 'greater than' b. See base.Compare.
	Compare = base.Compare
	// Equal returns true if a and b are equivalent. See base.Equal.
	Equal = base.Equal
	// Separator appends a shortened key separating two keys. See
	// base.Separator.
	Separator = base.Separator
	// Successor appends a shortened upper bound for a key. See
	// base.Successor.
	Successor = base.Successor
	// Comparer defines a total ordering over the space of []byte keys.
	Comparer = base.Comparer
	// FilterPolicy is an algorithm for probabilistically encoding a set of
	// keys.
	FilterPolicy = base.FilterPolicy
	// FilterWriter creates filter blocks.
	FilterWriter = base.FilterWriter
	// FilterType is the level at which to apply a filter.
	FilterType = base.FilterType
	// SeqNum is a sequence number defining precedence among identical user
	// keys.
	SeqNum = base.SeqNum
)

// TableFilter applies a filter to an entire table's keys.
const TableFilter = base.TableFilter

// DefaultComparer uses the natural byte ordering, consistent with
// bytes.Compare.
var DefaultComparer = base.DefaultComparer

// ErrCorruption is a marker error for database corruption.
var ErrCorruption = base.ErrCorruption
