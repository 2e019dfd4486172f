// Copyright 2026 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestInternalComparer(t *testing.T) {
	icmp := MakeInternalComparer(DefaultComparer)
	encode := func(s string) []byte {
		return AppendInternalKey(nil, ParseInternalKeyString(s))
	}

	datadriven.RunTest(t, "testdata/internal_comparer",
		func(t *testing.T, d *datadriven.TestData) string {
			var buf strings.Builder
			for _, line := range strings.Split(d.Input, "\n") {
				fields := strings.Fields(line)
				switch d.Cmd {
				case "compare":
					if len(fields) != 2 {
						d.Fatalf(t, "compare expects 2 keys per line")
					}
					fmt.Fprintf(&buf, "%d\n", icmp.Compare(encode(fields[0]), encode(fields[1])))

				case "separator":
					if len(fields) != 2 {
						d.Fatalf(t, "separator expects 2 keys per line")
					}
					sep := icmp.Separator(nil, encode(fields[0]), encode(fields[1]))
					fmt.Fprintf(&buf, "%s\n", DecodeInternalKey(sep))

				case "successor":
					if len(fields) != 1 {
						d.Fatalf(t, "successor expects 1 key per line")
					}
					succ := icmp.Successor(nil, encode(fields[0]))
					fmt.Fprintf(&buf, "%s\n", DecodeInternalKey(succ))

				default:
					d.Fatalf(t, "unknown command: %s", d.Cmd)
				}
			}
			return buf.String()
		})
}

func TestInternalComparerSeparatorBound(t *testing.T) {
	// A separator must sort in [a, b) under the internal comparer itself.
	icmp := MakeInternalComparer(DefaultComparer)
	cases := [][2]string{
		{"foo#5,SET", "hello#3,DEL"},
		{"abc1#7,SET", "abc4#2,SET"},
		{"abc#9,SET", "abc#3,SET"},
		{"a#1,DEL", "ab#1,SET"},
		{"black#12,SET", "blue#1,DEL"},
	}
	for _, tc := range cases {
		a := AppendInternalKey(nil, ParseInternalKeyString(tc[0]))
		b := AppendInternalKey(nil, ParseInternalKeyString(tc[1]))
		require.Negative(t, icmp.Compare(a, b), "test case is not ordered: %v", tc)

		sep := icmp.Separator(nil, a, b)
		require.LessOrEqual(t, icmp.Compare(a, sep), 0,
			"Separator(%s, %s) = %s", tc[0], tc[1], DecodeInternalKey(sep))
		require.Negative(t, icmp.Compare(sep, b),
			"Separator(%s, %s) = %s", tc[0], tc[1], DecodeInternalKey(sep))
	}
}

func TestInternalComparerSuccessorBound(t *testing.T) {
	icmp := MakeInternalComparer(DefaultComparer)
	for _, s := range []string{"foo#5,SET", "a\xffb#3,DEL", "\xff\xff#9,SET"} {
		a := AppendInternalKey(nil, ParseInternalKeyString(s))
		succ := icmp.Successor(nil, a)
		require.LessOrEqual(t, icmp.Compare(a, succ), 0,
			"Successor(%s) = %s", DecodeInternalKey(a), DecodeInternalKey(succ))
	}
}

func TestInternalComparerAbbreviatedKey(t *testing.T) {
	icmp := MakeInternalComparer(DefaultComparer)
	a := AppendInternalKey(nil, MakeInternalKey([]byte("abc"), 1, InternalKeyKindSet))
	require.Equal(t, DefaultComparer.AbbreviatedKey([]byte("abc")), icmp.AbbreviatedKey(a))
}

func TestInternalComparerEqual(t *testing.T) {
	icmp := MakeInternalComparer(DefaultComparer)
	a := AppendInternalKey(nil, MakeInternalKey([]byte("abc"), 7, InternalKeyKindSet))
	b := AppendInternalKey(nil, MakeInternalKey([]byte("abc"), 7, InternalKeyKindSet))
	c := AppendInternalKey(nil, MakeInternalKey([]byte("abc"), 8, InternalKeyKindSet))
	require.True(t, icmp.Equal(a, b))
	require.False(t, icmp.Equal(a, c))
}
