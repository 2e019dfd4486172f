// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package arena provides a growth-only, block-based bump allocator for
// short-lived, arena-scoped allocations such as memtable nodes. Individual
// spans are never freed; every block is released together when the Arena
// itself becomes unreachable.
package arena

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/crlib/crbytes"
	"github.com/cockroachdb/errors"
	"github.com/shaledb/shale/internal/invariants"
)

const (
	// blockSize is the standard block size.
	blockSize = 4096

	// dedicatedBlockThreshold is the size above which a request gets a block
	// of its own, leaving the tail of the current block usable for small
	// allocations.
	dedicatedBlockThreshold = blockSize / 4

	// align is the alignment guaranteed by AllocAligned: at least pointer
	// size, so structures carved from the arena can hold fields accessed
	// with atomic operations.
	align = 8

	// blockOverhead is the accounting overhead charged per block, mirroring
	// the pointer each block costs in the block list.
	blockOverhead = unsafe.Sizeof(uintptr(0))
)

// Arena is a growth-only bump allocator. Allocation calls must be serialized
// by the caller, e.g. under the lock of the structure that owns the Arena;
// the arena performs no internal locking. MemoryUsage is the one exception
// and may be called from any goroutine.
type Arena struct {
	// cur is the unused tail of the current block.
	cur []byte
	// blocks pins every block for the lifetime of the arena, so no span
	// handed out can outlive its backing block.
	blocks [][]byte

	memoryUsage atomic.Uint64
}

// New constructs an empty Arena. The first allocation obtains the first
// block.
func New() *Arena {
	return &Arena{}
}

// Alloc returns a new n-byte span with no alignment guarantee. The span's
// capacity is clipped to n, so appends through it cannot bleed into
// neighboring allocations.
func (a *Arena) Alloc(n int) []byte {
	if invariants.Enabled && n <= 0 {
		panic(errors.AssertionFailedf("invalid allocation size %d", n))
	}
	if n <= len(a.cur) {
		p := a.cur[:n:n]
		a.cur = a.cur[n:]
		return p
	}
	return a.allocFallback(n)
}

// AllocAligned returns a new n-byte span whose address is a multiple of the
// pointer-size alignment.
func (a *Arena) AllocAligned(n int) []byte {
	if invariants.Enabled && n <= 0 {
		panic(errors.AssertionFailedf("invalid allocation size %d", n))
	}
	var slop int
	if len(a.cur) > 0 {
		if mod := int(uintptr(unsafe.Pointer(&a.cur[0])) & (align - 1)); mod != 0 {
			slop = align - mod
		}
	}
	if needed := n + slop; needed <= len(a.cur) {
		p := a.cur[slop:needed:needed]
		a.cur = a.cur[needed:]
		if invariants.Enabled && uintptr(unsafe.Pointer(&p[0]))&(align-1) != 0 {
			panic(errors.AssertionFailedf("misaligned allocation"))
		}
		return p
	}
	// Fresh blocks are cache-line aligned, so the fallback path needs no
	// padding.
	return a.allocFallback(n)
}

func (a *Arena) allocFallback(n int) []byte {
	if n > dedicatedBlockThreshold {
		// The request is more than a quarter of the standard block size.
		// Give it a block of its own to avoid wasting too much space in
		// leftover bytes; the current block's cursor is untouched.
		b := a.newBlock(n)
		return b[:n:n]
	}
	// The remainder of the current block is abandoned.
	b := a.newBlock(blockSize)
	a.cur = b[n:]
	return b[:n:n]
}

func (a *Arena) newBlock(n int) []byte {
	b := crbytes.AllocAligned(n)
	a.blocks = append(a.blocks, b)
	a.memoryUsage.Add(uint64(n) + uint64(blockOverhead))
	return b
}

// MemoryUsage returns an estimate of the total memory obtained from the
// allocator. It is a monitoring statistic only: observing a particular value
// implies nothing about the contents of any allocated span.
func (a *Arena) MemoryUsage() uint64 {
	return a.memoryUsage.Load()
}
