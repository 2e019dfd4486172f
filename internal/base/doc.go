// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package base defines the fundamental types shared by the layers of the
// storage engine: the versioned internal key format, the comparer capability
// that fixes the engine-wide key ordering, and the filter-policy contract.
//
// Every subsystem above this package (memtable, sstable, compaction, reads
// at a snapshot) depends on the exact byte layout and comparison semantics
// defined here. The encodings are persisted-format contracts and must not
// change.
package base
