// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// FilterType is the level at which to apply a filter: block or table.
type FilterType int

// The available filter types.
const (
	TableFilter FilterType = iota
)

func (t FilterType) String() string {
	switch t {
	case TableFilter:
		return "table"
	}
	return "unknown"
}

// FilterWriter provides an interface for creating filter blocks. See
// FilterPolicy for more details about filters.
type FilterWriter interface {
	// AddKey adds a key to the current filter block.
	AddKey(key []byte)

	// Finish appends to dst an encoded filter that holds the current set of
	// keys. The writer state is reset after the call to Finish allowing the
	// writer to be reused for the creation of additional filters.
	Finish(dst []byte) []byte
}

// FilterPolicy is an algorithm for probabilistically encoding a set of keys.
// The canonical implementation is a Bloom filter.
//
// Every FilterPolicy has a name. This names the algorithm itself, not any
// one particular instance. Aspects specific to a particular instance, such
// as the set of keys or any other parameters, will be encoded in the []byte
// filter returned by NewWriter.
//
// The name may be written to files on disk, along with the filter data. To
// use these filters, the FilterPolicy name at the time of writing must equal
// the name at the time of reading. If they do not match, the filters will be
// ignored, which will not affect correctness but may affect performance.
type FilterPolicy interface {
	// Name names the filter policy.
	Name() string

	// MayContain returns whether the encoded filter may contain given key.
	// False positives are possible, where it returns true for keys not in
	// the original set.
	MayContain(ftype FilterType, filter, key []byte) bool

	// NewWriter creates a new FilterWriter.
	NewWriter(ftype FilterType) FilterWriter
}

// NewInternalFilterPolicy wraps a user filter policy so that it can be fed
// encoded internal keys: the 8-byte trailer is stripped before delegating,
// both when building a filter and when probing one. The kind byte is never
// inspected.
func NewInternalFilterPolicy(p FilterPolicy) FilterPolicy {
	return internalFilterPolicy{userPolicy: p}
}

type internalFilterPolicy struct {
	userPolicy FilterPolicy
}

// Name returns the user policy's name: filters built through this adapter
// hold user keys, so they remain readable under the user policy's name.
func (p internalFilterPolicy) Name() string {
	return p.userPolicy.Name()
}

// MayContain implements the FilterPolicy interface.
func (p internalFilterPolicy) MayContain(ftype FilterType, filter, key []byte) bool {
	return p.userPolicy.MayContain(ftype, filter, ExtractUserKey(key))
}

// NewWriter implements the FilterPolicy interface.
func (p internalFilterPolicy) NewWriter(ftype FilterType) FilterWriter {
	return internalFilterWriter{userWriter: p.userPolicy.NewWriter(ftype)}
}

type internalFilterWriter struct {
	userWriter FilterWriter
}

// AddKey implements the FilterWriter interface. key must be an encoded
// internal key.
func (w internalFilterWriter) AddKey(key []byte) {
	w.userWriter.AddKey(ExtractUserKey(key))
}

// Finish implements the FilterWriter interface.
func (w internalFilterWriter) Finish(dst []byte) []byte {
	return w.userWriter.Finish(dst)
}
