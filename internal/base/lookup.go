// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import "encoding/binary"

// lookupKeyInlineLen is the inline storage threshold. Lookups for keys that
// encode within it perform no heap allocation.
const lookupKeyInlineLen = 200

// LookupKey materializes, from a single buffer, the three key views needed
// to look up a user key as of a snapshot sequence number. The buffer layout
// is
//
//	klength  varint32            <-- MemtableKey
//	userkey  byte[klength-8]     <-- InternalKey, UserKey
//	trailer  uint64
//
// The full buffer is a memtable search key; the suffix starting at the user
// key is an encoded internal key. All three views alias the LookupKey's
// buffer and share its lifetime.
//
// A LookupKey is owned and used by a single goroutine at a time.
type LookupKey struct {
	kstart int
	end    int
	heap   []byte // nil while the inline space suffices
	space  [lookupKeyInlineLen]byte
}

// NewLookupKey returns a LookupKey for looking up userKey at a snapshot with
// the specified sequence number.
func NewLookupKey(userKey []byte, seqNum SeqNum) *LookupKey {
	lk := &LookupKey{}
	lk.Init(userKey, seqNum)
	return lk
}

// Init initializes the receiver for looking up userKey at a snapshot with
// the specified sequence number, reusing the inline space when possible.
func (lk *LookupKey) Init(userKey []byte, seqNum SeqNum) {
	// Reserve the worst-case 5-byte varint; neither branch can reallocate
	// during the appends below.
	needed := 5 + len(userKey) + InternalTrailerLen
	var buf []byte
	if needed <= len(lk.space) {
		lk.heap = nil
		buf = lk.space[:0]
	} else {
		lk.heap = make([]byte, 0, needed)
		buf = lk.heap
	}
	buf = binary.AppendUvarint(buf, uint64(len(userKey)+InternalTrailerLen))
	lk.kstart = len(buf)
	buf = append(buf, userKey...)
	buf = binary.LittleEndian.AppendUint64(
		buf, uint64(MakeTrailer(seqNum, InternalKeyKindSeek)))
	lk.end = len(buf)
	if lk.heap != nil {
		lk.heap = buf
	}
}

func (lk *LookupKey) data() []byte {
	if lk.heap != nil {
		return lk.heap
	}
	return lk.space[:lk.end]
}

// MemtableKey returns a key suitable for searching a memtable.
func (lk *LookupKey) MemtableKey() []byte {
	return lk.data()[:lk.end]
}

// InternalKey returns an encoded internal key, suitable for passing to an
// internal iterator.
func (lk *LookupKey) InternalKey() []byte {
	return lk.data()[lk.kstart:lk.end]
}

// UserKey returns the user key.
func (lk *LookupKey) UserKey() []byte {
	return lk.data()[lk.kstart : lk.end-InternalTrailerLen]
}
