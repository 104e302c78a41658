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

package tokenizer

import (
	"fmt"

	"github.com/dagronlund/vcdio/lexer"
)

// IntegerParseError wraps a failure to parse a base-10 integer payload
// (timestamp, width, msb/lsb).
type IntegerParseError struct {
	Pos lexer.Position
	Err error
}

func (e *IntegerParseError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: integer parse error at line %d: %v", e.Pos.Line, e.Err)
}

func (e *IntegerParseError) Unwrap() error { return e.Err }

// ScalarParseError reports an unrecognized scalar value byte.
type ScalarParseError struct {
	Pos lexer.Position
}

func (e *ScalarParseError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: invalid scalar value at line %d", e.Pos.Line)
}

// VectorParseError reports a malformed vector value bit run.
type VectorParseError struct {
	Pos lexer.Position
}

func (e *VectorParseError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: invalid vector value at line %d", e.Pos.Line)
}

// RealParseError wraps a failure to parse an IEEE-754 double.
type RealParseError struct {
	Pos lexer.Position
	Err error
}

func (e *RealParseError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: real parse error at line %d: %v", e.Pos.Line, e.Err)
}

func (e *RealParseError) Unwrap() error { return e.Err }

// IncorrectVariableWidthError reports a $var whose bracketed reference-name
// width disagrees with its declared width.
type IncorrectVariableWidthError struct {
	Pos      lexer.Position
	Declared int
	Actual   int
}

func (e *IncorrectVariableWidthError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: declared width %d does not match reference width %d at line %d", e.Declared, e.Actual, e.Pos.Line)
}

// IncorrectRealWidthError reports a real/realtime $var whose declared width
// is not 64.
type IncorrectRealWidthError struct {
	Pos lexer.Position
}

func (e *IncorrectRealWidthError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: real/realtime variable must declare width 64 at line %d", e.Pos.Line)
}

// SpanError reports that a lexical span's internal structure did not match
// what its Kind requires (a closed-set keyword, or a bracket suffix shape)
// even though the lexer's coarse grammar accepted it.
type SpanError struct {
	Pos lexer.Position
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("vcdio: tokenizer: malformed span at line %d", e.Pos.Line)
}
