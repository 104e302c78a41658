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

// Package bytestore implements the append-only interning arena shared by the
// lexer-adjacent tokenizer and the header it builds. It plays the same role
// ion.Symtab plays for ion: a single growing buffer addressed by dense,
// stable, opaque ids, rather than one allocation per interned value.
package bytestore

// ID is an opaque, dense, stable handle into a Store. The zero value is a
// valid id referring to the first interned payload once one exists; callers
// should not construct an ID except by way of Insert.
type ID int

// Store is an append-only byte arena. It is not safe for concurrent use: the
// orchestrator confines all mutation to a single tokenizer goroutine (see
// orchestrator.LoadMultiThreaded).
type Store struct {
	buf   []byte
	spans []span
}

type span struct {
	off, len int
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Insert copies b into the arena and returns a stable id for it.
func (s *Store) Insert(b []byte) ID {
	off := len(s.buf)
	s.buf = append(s.buf, b...)
	id := ID(len(s.spans))
	s.spans = append(s.spans, span{off: off, len: len(b)})
	return id
}

// Get returns the bytes previously interned under id. The returned slice
// must not be mutated or retained past the next Insert call that could
// trigger reallocation of the underlying buffer if aliasing is a concern;
// in practice the arena is append-only so previously returned slices remain
// valid, just potentially backed by a stale (but byte-identical) array.
func (s *Store) Get(id ID) []byte {
	sp := s.spans[id]
	return s.buf[sp.off : sp.off+sp.len]
}

// Len returns the number of interned payloads.
func (s *Store) Len() int {
	return len(s.spans)
}
