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

package token

import (
	"bytes"
	"testing"

	"github.com/dagronlund/vcdio/bytestore"
)

func TestIdcodeRoundTripInline(t *testing.T) {
	store := bytestore.New()
	for _, s := range []string{"!", "\"", "#$", "!\"#$%&'"} {
		id := EncodeIdcode(store, []byte(s))
		got := id.Bytes(store)
		if !bytes.Equal(got, []byte(s)) {
			t.Fatalf("round trip of %q = %q", s, got)
		}
	}
}

func TestIdcodeRoundTripSpilled(t *testing.T) {
	store := bytestore.New()
	long := []byte("averylongidentifiercode123")
	id := EncodeIdcode(store, long)
	if id&spillTag == 0 {
		t.Fatal("expected long identifier to set the spill tag")
	}
	got := id.Bytes(store)
	if !bytes.Equal(got, long) {
		t.Fatalf("round trip = %q, want %q", got, long)
	}
}

func TestIdcodeInjective(t *testing.T) {
	store := bytestore.New()
	seen := map[Idcode]string{}
	for _, s := range []string{"!", "\"", "#", "$a", "ab", "!!", "averylongidentifiercode123", "anotherlongidentifiercodeXY"} {
		id := EncodeIdcode(store, []byte(s))
		if prev, ok := seen[id]; ok && prev != s {
			t.Fatalf("idcode collision between %q and %q", prev, s)
		}
		seen[id] = s
	}
}

func TestIdcodeEqualityIsIntegerEquality(t *testing.T) {
	store := bytestore.New()
	a := EncodeIdcode(store, []byte("!"))
	b := EncodeIdcode(store, []byte("!"))
	if a != b {
		t.Fatalf("encoding the same bytes twice produced different ids: %v != %v", a, b)
	}
}
