// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"cmp"
	"encoding/binary"
	"fmt"
)

// MakeInternalComparer constructs a Comparer over encoded internal keys from
// a Comparer over user keys. Internal keys order by user key first (per
// ucmp) and by descending trailer on ties, so for a given user key the most
// recent write sorts first.
//
// Separator and Successor operate on the user key portions only. If the user
// key portion shortened, the result is re-tagged with the maximal trailer so
// that it remains a valid internal key sorting correctly relative to every
// real internal key sharing the shortened user key. If the user key did not
// shorten, the input key is returned unchanged.
func MakeInternalComparer(ucmp *Comparer) *Comparer {
	ucmp = ucmp.EnsureDefaults()
	c := &Comparer{
		Compare: func(a, b []byte) int {
			if x := ucmp.Compare(ExtractUserKey(a), ExtractUserKey(b)); x != 0 {
				return x
			}
			// Reverse order for trailer comparison.
			ta := binary.LittleEndian.Uint64(a[len(a)-InternalTrailerLen:])
			tb := binary.LittleEndian.Uint64(b[len(b)-InternalTrailerLen:])
			return cmp.Compare(tb, ta)
		},

		AbbreviatedKey: func(key []byte) uint64 {
			return ucmp.AbbreviatedKey(ExtractUserKey(key))
		},

		Separator: func(dst, a, b []byte) []byte {
			ua, ub := ExtractUserKey(a), ExtractUserKey(b)
			n := len(dst)
			dst = ucmp.Separator(dst, ua, ub)
			if len(dst)-n < len(ua) && ucmp.Compare(ua, dst[n:]) < 0 {
				// The separator user key is physically shorter than ua but
				// logically after it. Tack on the maximal trailer.
				return binary.LittleEndian.AppendUint64(
					dst, uint64(MakeTrailer(SeqNumMax, InternalKeyKindSeek)))
			}
			return append(dst[:n], a...)
		},

		Successor: func(dst, a []byte) []byte {
			ua := ExtractUserKey(a)
			n := len(dst)
			dst = ucmp.Successor(dst, ua)
			if len(dst)-n < len(ua) && ucmp.Compare(ua, dst[n:]) < 0 {
				return binary.LittleEndian.AppendUint64(
					dst, uint64(MakeTrailer(SeqNumMax, InternalKeyKindSeek)))
			}
			return append(dst[:n], a...)
		},

		FormatKey: func(key []byte) fmt.Formatter {
			return DecodeInternalKey(key).Pretty(ucmp.FormatKey)
		},

		// This name is part of the C++ LevelDB implementation's file format,
		// and should not be changed.
		Name: "leveldb.InternalKeyComparator",
	}
	c.Equal = func(a, b []byte) bool {
		return c.Compare(a, b) == 0
	}
	return c
}
