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

// Package header holds the design-hierarchy data model (scopes, variables,
// timescale) and the state machine that folds declaration tokens into it
// (spec §3, §4.4). It depends on token, bytestore and bitvector, and on the
// lexer only for the lexer.Position its errors carry; it has no knowledge of
// waveform storage.
package header

import (
	"golang.org/x/exp/slices"

	"github.com/dagronlund/vcdio/token"
)

// Width describes a variable's value representation: either a vector of N
// bits, or a 64-bit real.
type Width struct {
	Real bool
	N    int
}

// Variable is an immutable $var declaration, attached to the scope it was
// declared under.
type Variable struct {
	Name        string
	Description token.Description
	Width       Width
	NetKind     token.NetKind
	Idcode      token.Idcode
}

// Scope is one node of the design hierarchy. Children and Variables preserve
// declaration order, which is observable through GetScope/GetVariable.
type Scope struct {
	Name      string
	Kind      token.ScopeKind
	Children  []*Scope
	Variables []*Variable
}

// Header is the fully-parsed design-hierarchy artifact: version/date/
// timescale metadata, the idcode→width map enforced consistent across every
// declaration, and the ordered root scopes.
type Header struct {
	Version   string
	Date      string
	HasVersion bool
	HasDate    bool

	// TimescaleExponent is e such that the declared unit is 10^-e seconds.
	// HasTimescale is false if the file never declared one.
	TimescaleExponent int
	HasTimescale       bool

	IdcodeMap map[token.Idcode]Width
	Roots     []*Scope
}

// GetScope splits path on '.' and descends roots, then children, matching
// each segment against a node's Name. It returns the first match, or
// (nil, false) if any segment fails to match.
func (h *Header) GetScope(path string) (*Scope, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, false
	}
	return descendScope(h.Roots, segments)
}

// GetVariable behaves like GetScope but the final path segment matches a
// variable name within the scope named by the preceding segments. A path
// with fewer than two segments never matches.
func (h *Header) GetVariable(path string) (*Variable, bool) {
	segments := splitPath(path)
	if len(segments) < 2 {
		return nil, false
	}
	scope, ok := descendScope(h.Roots, segments[:len(segments)-1])
	if !ok {
		return nil, false
	}
	last := segments[len(segments)-1]
	i := slices.IndexFunc(scope.Variables, func(v *Variable) bool { return v.Name == last })
	if i < 0 {
		return nil, false
	}
	return scope.Variables[i], true
}

// GetIdcodeMap returns the header's idcode→width map directly; callers must
// not mutate it.
func (h *Header) GetIdcodeMap() map[token.Idcode]Width {
	return h.IdcodeMap
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segments []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segments = append(segments, path[start:i])
			start = i + 1
		}
	}
	segments = append(segments, path[start:])
	return segments
}

func descendScope(roots []*Scope, segments []string) (*Scope, bool) {
	var current *Scope
	children := roots
	for _, seg := range segments {
		i := slices.IndexFunc(children, func(c *Scope) bool { return c.Name == seg })
		if i < 0 {
			return nil, false
		}
		current = children[i]
		children = current.Children
	}
	return current, true
}
