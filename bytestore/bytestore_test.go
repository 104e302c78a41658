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

package bytestore

import "testing"

func TestInsertGet(t *testing.T) {
	s := New()
	id1 := s.Insert([]byte("hello"))
	id2 := s.Insert([]byte("world"))

	if got := string(s.Get(id1)); got != "hello" {
		t.Fatalf("Get(id1) = %q, want %q", got, "hello")
	}
	if got := string(s.Get(id2)); got != "world" {
		t.Fatalf("Get(id2) = %q, want %q", got, "world")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestIdsStableAcrossGrowth(t *testing.T) {
	s := New()
	ids := make([]ID, 0, 1000)
	for i := 0; i < 1000; i++ {
		ids = append(ids, s.Insert([]byte{byte(i), byte(i >> 8)}))
	}
	for i, id := range ids {
		got := s.Get(id)
		if got[0] != byte(i) || got[1] != byte(i>>8) {
			t.Fatalf("Get(%d) corrupted after growth: %v", i, got)
		}
	}
}

func TestEmptyInsert(t *testing.T) {
	s := New()
	id := s.Insert(nil)
	if got := s.Get(id); len(got) != 0 {
		t.Fatalf("Get of empty insert = %v, want empty", got)
	}
}
