// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/shaledb/shale/internal/invariants"
)

// SeqNum is a sequence number defining precedence among identical user keys.
// A key with a higher sequence number takes precedence over a key with an
// equal user key of a lower sequence number. Sequence numbers are stored
// durably within the internal key "trailer" as a 7-byte (uint56) uint, and
// the maximum sequence number is 2^56-1. As keys are committed to the
// database, they're assigned increasing sequence numbers. Readers use
// sequence numbers to read a consistent database state, ignoring keys with
// sequence numbers larger than the readers' "visible sequence number".
//
// The write path maintains the invariant that no two point keys with equal
// user keys have equal sequence numbers.
type SeqNum uint64

const (
	// SeqNumZero is the zero sequence number.
	SeqNumZero SeqNum = 0
	// SeqNumMax is the largest valid sequence number.
	SeqNumMax SeqNum = 1<<56 - 1
)

func (s SeqNum) String() string {
	if s == SeqNumMax {
		return "inf"
	}
	return strconv.FormatUint(uint64(s), 10)
}

// SafeFormat implements redact.SafeFormatter.
func (s SeqNum) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(s.String()))
}

// InternalKeyKind enumerates the kind of key: a deletion tombstone or a set
// value.
type InternalKeyKind uint8

// These constants are part of the file format, and should not be changed.
const (
	InternalKeyKindDelete InternalKeyKind = 0
	InternalKeyKindSet    InternalKeyKind = 1

	// InternalKeyKindMax is the largest valid key kind. A trailer whose low
	// byte exceeds it does not decode.
	InternalKeyKindMax InternalKeyKind = InternalKeyKindSet

	// InternalKeyKindSeek is the kind to use when constructing an internal
	// key to seek to a particular sequence number. Trailers for equal user
	// keys compare in descending order, so the seek kind must be the
	// highest-numbered kind.
	InternalKeyKindSeek InternalKeyKind = InternalKeyKindSet
)

var internalKeyKindNames = []string{
	InternalKeyKindDelete: "DEL",
	InternalKeyKindSet:    "SET",
}

func (k InternalKeyKind) String() string {
	if int(k) < len(internalKeyKindNames) {
		return internalKeyKindNames[k]
	}
	return fmt.Sprintf("UNKNOWN:%d", k)
}

// SafeFormat implements redact.SafeFormatter.
func (k InternalKeyKind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(k.String()))
}

// ParseKind parses the string representation of an internal key kind.
func ParseKind(s string) InternalKeyKind {
	switch s {
	case "DEL":
		return InternalKeyKindDelete
	case "SET":
		return InternalKeyKindSet
	}
	panic(fmt.Sprintf("unknown kind: %q", s))
}

// InternalKeyTrailer encodes a SeqNum and an InternalKeyKind as
// seqNum<<8 | kind. It is the only place the two are combined; the packed
// form is always derived, never independently stored.
type InternalKeyTrailer uint64

// MakeTrailer constructs an internal key trailer from the specified sequence
// number and kind. It panics if seqNum exceeds SeqNumMax: the overflow bits
// would bleed into the kind byte, silently corrupting both the ordering and
// the kind.
func MakeTrailer(seqNum SeqNum, kind InternalKeyKind) InternalKeyTrailer {
	if seqNum > SeqNumMax {
		panic(errors.AssertionFailedf(
			"sequence number %d exceeds the maximum %d", uint64(seqNum), uint64(SeqNumMax)))
	}
	return InternalKeyTrailer(seqNum)<<8 | InternalKeyTrailer(kind)
}

// String implements the fmt.Stringer interface.
func (t InternalKeyTrailer) String() string {
	return fmt.Sprintf("%s,%s", t.SeqNum(), t.Kind())
}

// SeqNum returns the sequence number component of the trailer.
func (t InternalKeyTrailer) SeqNum() SeqNum {
	return SeqNum(t >> 8)
}

// Kind returns the key kind component of the trailer.
func (t InternalKeyTrailer) Kind() InternalKeyKind {
	return InternalKeyKind(t & 0xff)
}

// InternalTrailerLen is the number of bytes used to encode
// InternalKey.Trailer.
const InternalTrailerLen = 8

// InternalKey is a key used for the in-memory and on-disk partial DBs that
// make up the engine.
//
// It consists of the user key (as given by the caller) followed by 8 bytes
// of metadata:
//   - 1 byte for the kind of internal key: delete or set,
//   - 7 bytes for a uint56 sequence number, in little-endian format.
//
// InternalKey is a transient view: UserKey aliases a caller-owned buffer and
// must not outlive it. Use Clone to obtain an owned copy.
type InternalKey struct {
	UserKey []byte
	Trailer InternalKeyTrailer
}

// MakeInternalKey constructs an internal key from a specified user key,
// sequence number and kind.
func MakeInternalKey(userKey []byte, seqNum SeqNum, kind InternalKeyKind) InternalKey {
	return InternalKey{
		UserKey: userKey,
		Trailer: MakeTrailer(seqNum, kind),
	}
}

// MakeSearchKey constructs an internal key that is appropriate for searching
// for the specified user key. The search key contains the maximal sequence
// number and kind, ensuring that it sorts before any other internal key for
// the same user key.
func MakeSearchKey(userKey []byte) InternalKey {
	return MakeInternalKey(userKey, SeqNumMax, InternalKeyKindSeek)
}

// AppendInternalKey appends the encoding of k to dst and returns the
// extended slice: the user key bytes followed by the fixed 8-byte
// little-endian trailer.
func AppendInternalKey(dst []byte, k InternalKey) []byte {
	dst = append(dst, k.UserKey...)
	return binary.LittleEndian.AppendUint64(dst, uint64(k.Trailer))
}

// ParseInternalKey parses an encoded internal key. It returns an error
// marked as ErrCorruption if the encoding is shorter than the trailer or if
// the kind byte is invalid. On success the returned key's UserKey aliases
// encoded; the caller must keep encoded alive as long as the result is in
// use.
func ParseInternalKey(encoded []byte) (InternalKey, error) {
	n := len(encoded) - InternalTrailerLen
	if n < 0 {
		return InternalKey{}, CorruptionErrorf("invalid internal key: %d bytes", len(encoded))
	}
	trailer := InternalKeyTrailer(binary.LittleEndian.Uint64(encoded[n:]))
	if trailer.Kind() > InternalKeyKindMax {
		return InternalKey{}, CorruptionErrorf("invalid internal key kind: %d", uint8(trailer.Kind()))
	}
	return InternalKey{
		UserKey: encoded[:n:n],
		Trailer: trailer,
	}, nil
}

// DecodeInternalKey decodes an encoded internal key that is known to be well
// formed. See InternalKey.Encode. The encoding must be at least
// InternalTrailerLen bytes long.
func DecodeInternalKey(encoded []byte) InternalKey {
	if invariants.Enabled && len(encoded) < InternalTrailerLen {
		panic(errors.AssertionFailedf("invalid internal key: %d bytes", len(encoded)))
	}
	n := len(encoded) - InternalTrailerLen
	return InternalKey{
		UserKey: encoded[:n:n],
		Trailer: InternalKeyTrailer(binary.LittleEndian.Uint64(encoded[n:])),
	}
}

// ExtractUserKey returns the user key portion of an encoded internal key.
// The encoding must be at least InternalTrailerLen bytes long.
func ExtractUserKey(encoded []byte) []byte {
	if invariants.Enabled && len(encoded) < InternalTrailerLen {
		panic(errors.AssertionFailedf("invalid internal key: %d bytes", len(encoded)))
	}
	n := len(encoded) - InternalTrailerLen
	return encoded[:n:n]
}

// InternalCompare compares two internal keys using the specified user key
// comparison function. For equal user keys, internal keys compare in
// descending trailer order, i.e. descending sequence number order.
func InternalCompare(userCmp Compare, a, b InternalKey) int {
	if x := userCmp(a.UserKey, b.UserKey); x != 0 {
		return x
	}
	// Reverse order for trailer comparison.
	return cmp.Compare(b.Trailer, a.Trailer)
}

// Encode encodes the receiver into the buffer. The buffer must be large
// enough to hold the encoded data. See InternalKey.Size.
func (k InternalKey) Encode(buf []byte) {
	i := copy(buf, k.UserKey)
	binary.LittleEndian.PutUint64(buf[i:], uint64(k.Trailer))
}

// EncodeTrailer returns the trailer encoded to an 8-byte array.
func (k InternalKey) EncodeTrailer() [8]byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.Trailer))
	return buf
}

// Size returns the encoded size of the key.
func (k InternalKey) Size() int {
	return len(k.UserKey) + InternalTrailerLen
}

// SetSeqNum sets the sequence number component of the key.
func (k *InternalKey) SetSeqNum(seqNum SeqNum) {
	k.Trailer = InternalKeyTrailer(seqNum)<<8 | (k.Trailer & 0xff)
}

// SeqNum returns the sequence number component of the key.
func (k InternalKey) SeqNum() SeqNum {
	return k.Trailer.SeqNum()
}

// SetKind sets the kind component of the key.
func (k *InternalKey) SetKind(kind InternalKeyKind) {
	k.Trailer = (k.Trailer &^ 0xff) | InternalKeyTrailer(kind)
}

// Kind returns the kind component of the key.
func (k InternalKey) Kind() InternalKeyKind {
	return k.Trailer.Kind()
}

// Valid returns true if the key has a valid kind.
func (k InternalKey) Valid() bool {
	return k.Kind() <= InternalKeyKindMax
}

// Clone clones the storage for the UserKey component of the key.
func (k InternalKey) Clone() InternalKey {
	if len(k.UserKey) == 0 {
		return k
	}
	return InternalKey{
		UserKey: append([]byte(nil), k.UserKey...),
		Trailer: k.Trailer,
	}
}

// String returns a string representation of the key.
func (k InternalKey) String() string {
	return fmt.Sprintf("%s#%s,%s", FormatBytes(k.UserKey), k.SeqNum(), k.Kind())
}

// Pretty returns a formatter for the key.
func (k InternalKey) Pretty(f FormatKey) fmt.Formatter {
	return prettyInternalKey{k, f}
}

type prettyInternalKey struct {
	InternalKey
	formatKey FormatKey
}

func (k prettyInternalKey) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%s#%s,%s", k.formatKey(k.UserKey), k.SeqNum(), k.Kind())
}

// ParseInternalKeyString parses the string representation of an internal
// key, `<user-key>#<seq-num>,<kind>`. Intended for tests; panics on
// malformed input.
func ParseInternalKeyString(s string) InternalKey {
	sep1 := strings.Index(s, "#")
	sep2 := strings.Index(s, ",")
	if sep1 == -1 || sep2 == -1 || sep2 < sep1 {
		panic(fmt.Sprintf("invalid internal key %q", s))
	}
	seqNum, err := strconv.ParseUint(s[sep1+1:sep2], 10, 64)
	if err != nil {
		if s[sep1+1:sep2] != "inf" {
			panic(fmt.Sprintf("invalid internal key %q: %s", s, err))
		}
		seqNum = uint64(SeqNumMax)
	}
	return MakeInternalKey([]byte(s[:sep1]), SeqNum(seqNum), ParseKind(s[sep2+1:]))
}
