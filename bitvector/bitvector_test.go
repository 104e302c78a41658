// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bitvector

import "testing"

func TestFromASCII(t *testing.T) {
	v, ok := FromASCII([]byte("1010"))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if v.Width() != 4 {
		t.Fatalf("width = %d, want 4", v.Width())
	}
	if got := v.String(); got != "1010" {
		t.Fatalf("String() = %q, want %q", got, "1010")
	}
	if v.FourState() {
		t.Fatal("two-state vector reported FourState() = true")
	}
}

func TestFromASCIIFourState(t *testing.T) {
	v, ok := FromASCIIFourState([]byte("10xz"))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := []Bit{One, Zero, X, Z}
	for i, b := range want {
		if got := v.Bit(i); got != b {
			t.Fatalf("Bit(%d) = %v, want %v", i, got, b)
		}
	}
	if got := v.String(); got != "10xz" {
		t.Fatalf("String() = %q, want %q", got, "10xz")
	}
}

func TestFromASCIIRejectsFourStateCharsInTwoState(t *testing.T) {
	if _, ok := FromASCII([]byte("10x1")); ok {
		t.Fatal("two-state parse unexpectedly accepted an 'x' bit")
	}
}

func TestScalar(t *testing.T) {
	for _, tc := range []struct {
		in   byte
		want Bit
	}{
		{'0', Zero}, {'1', One}, {'x', X}, {'X', X}, {'z', Z}, {'Z', Z},
	} {
		v, ok := Scalar(tc.in)
		if !ok {
			t.Fatalf("Scalar(%q) failed", tc.in)
		}
		if v.Width() != 1 {
			t.Fatalf("Scalar(%q) width = %d, want 1", tc.in, v.Width())
		}
		if got := v.Bit(0); got != tc.want {
			t.Fatalf("Scalar(%q).Bit(0) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, ok := Scalar('q'); ok {
		t.Fatal("Scalar('q') unexpectedly succeeded")
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromASCIIFourState([]byte("10xz"))
	b, _ := FromASCIIFourState([]byte("10xz"))
	c, _ := FromASCIIFourState([]byte("10x0"))
	if !a.Equal(b) {
		t.Fatal("identical vectors compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("distinct vectors compared equal")
	}
}

func TestWideVectorCrossesWordBoundary(t *testing.T) {
	raw := make([]byte, 130)
	for i := range raw {
		if i%2 == 0 {
			raw[i] = '1'
		} else {
			raw[i] = '0'
		}
	}
	v, ok := FromASCII(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	for i := range raw {
		want := Zero
		if raw[i] == '1' {
			want = One
		}
		if got := v.Bit(i); got != want {
			t.Fatalf("Bit(%d) = %v, want %v", i, got, want)
		}
	}
}
