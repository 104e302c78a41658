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

import "bytes"

// ScopeKind is the closed set of $scope container kinds.
type ScopeKind int

const (
	ScopeModule ScopeKind = iota
	ScopeTask
	ScopeFunction
	ScopeBegin
	ScopeFork
	ScopeStruct
	ScopeUnion
	ScopeInterface
)

var scopeKindBytes = []struct {
	b []byte
	k ScopeKind
}{
	{[]byte("module"), ScopeModule},
	{[]byte("task"), ScopeTask},
	{[]byte("function"), ScopeFunction},
	{[]byte("begin"), ScopeBegin},
	{[]byte("fork"), ScopeFork},
	{[]byte("struct"), ScopeStruct},
	{[]byte("union"), ScopeUnion},
	{[]byte("interface"), ScopeInterface},
}

// ParseScopeKind matches b against the closed $scope kind set.
func ParseScopeKind(b []byte) (ScopeKind, bool) {
	for _, e := range scopeKindBytes {
		if bytes.Equal(e.b, b) {
			return e.k, true
		}
	}
	return 0, false
}

func (k ScopeKind) String() string {
	for _, e := range scopeKindBytes {
		if e.k == k {
			return string(e.b)
		}
	}
	return "unknown"
}

// NetKind is the closed set of $var net types.
type NetKind int

const (
	NetEvent NetKind = iota
	NetInteger
	NetParameter
	NetReal
	NetRealtime
	NetReg
	NetSupply0
	NetSupply1
	NetTime
	NetTri
	NetTriand
	NetTrior
	NetTrireg
	NetTri0
	NetTri1
	NetWand
	NetWire
	NetWor
)

var netKindBytes = []struct {
	b []byte
	k NetKind
}{
	{[]byte("event"), NetEvent},
	{[]byte("integer"), NetInteger},
	{[]byte("parameter"), NetParameter},
	{[]byte("real"), NetReal},
	{[]byte("realtime"), NetRealtime},
	{[]byte("reg"), NetReg},
	{[]byte("supply0"), NetSupply0},
	{[]byte("supply1"), NetSupply1},
	{[]byte("time"), NetTime},
	{[]byte("tri"), NetTri},
	{[]byte("triand"), NetTriand},
	{[]byte("trior"), NetTrior},
	{[]byte("trireg"), NetTrireg},
	{[]byte("tri0"), NetTri0},
	{[]byte("tri1"), NetTri1},
	{[]byte("wand"), NetWand},
	{[]byte("wire"), NetWire},
	{[]byte("wor"), NetWor},
}

// ParseNetKind matches b against the closed $var net-type set by exact
// equality (not prefix), so "tri" and "tri0" never collide regardless of
// scan order.
func ParseNetKind(b []byte) (NetKind, bool) {
	for _, e := range netKindBytes {
		if bytes.Equal(e.b, b) {
			return e.k, true
		}
	}
	return 0, false
}

// IsReal reports whether k is one of the real-valued net kinds.
func (k NetKind) IsReal() bool {
	return k == NetReal || k == NetRealtime
}

func (k NetKind) String() string {
	for _, e := range netKindBytes {
		if e.k == k {
			return string(e.b)
		}
	}
	return "unknown"
}
