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

package header

import (
	"fmt"

	"github.com/dagronlund/vcdio/lexer"
)

// UnexpectedVariableError reports a $var token seen at scope depth 0.
type UnexpectedVariableError struct {
	Pos lexer.Position
}

func (e *UnexpectedVariableError) Error() string {
	return fmt.Sprintf("vcdio: header: $var outside any $scope at line %d", e.Pos.Line)
}

// UnexpectedUpscopeError reports a $upscope token seen at scope depth 0.
type UnexpectedUpscopeError struct {
	Pos lexer.Position
}

func (e *UnexpectedUpscopeError) Error() string {
	return fmt.Sprintf("vcdio: header: $upscope with no matching $scope at line %d", e.Pos.Line)
}

// UnexpectedEndDefinitionsError reports $enddefinitions reached while still
// inside one or more open scopes.
type UnexpectedEndDefinitionsError struct {
	Pos   lexer.Position
	Depth int
}

func (e *UnexpectedEndDefinitionsError) Error() string {
	return fmt.Sprintf("vcdio: header: $enddefinitions at depth %d (expected 0) at line %d", e.Depth, e.Pos.Line)
}

// UnexpectedTokenError reports a header-phase token of a kind the state
// machine never accepts in its current state.
type UnexpectedTokenError struct {
	Pos  lexer.Position
	Kind string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("vcdio: header: unexpected %s at line %d", e.Kind, e.Pos.Line)
}

// UnexpectedTerminationError reports end-of-stream reached before
// $enddefinitions.
type UnexpectedTerminationError struct{}

func (e *UnexpectedTerminationError) Error() string {
	return "vcdio: header: input ended before $enddefinitions"
}

// UnmatchedIdcodeError reports a value-change entry whose idcode was never
// declared by any $var.
type UnmatchedIdcodeError struct {
	Pos lexer.Position
}

func (e *UnmatchedIdcodeError) Error() string {
	return fmt.Sprintf("vcdio: header: value change for undeclared idcode at line %d", e.Pos.Line)
}

// MismatchedWidthError reports a $var re-declaring an idcode already present
// in the idcode map with a different width, or a value change whose
// bitvector width disagrees with the declared width.
type MismatchedWidthError struct {
	Pos      lexer.Position
	Declared int
	Actual   int
}

func (e *MismatchedWidthError) Error() string {
	return fmt.Sprintf("vcdio: header: width mismatch (declared %d, got %d) at line %d", e.Declared, e.Actual, e.Pos.Line)
}
