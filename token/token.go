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

// Package token defines the typed tokens the tokenizer produces from
// lexical spans, the closed enumerations their payloads draw from, the
// Idcode encoding, and the writer that serializes a Token back to canonical
// VCD bytes (the §4.2 inverse operation).
package token

import (
	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/lexer"
)

// Kind discriminates the payload fields a Token carries.
type Kind int

const (
	Comment Kind = iota
	Date
	Version
	Scope
	Timescale
	Var
	UpScope
	EndDefinitions
	DumpAll
	DumpOff
	DumpOn
	DumpVars
	End
	Timestamp
	VectorValue
	RealValue
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "$comment"
	case Date:
		return "$date"
	case Version:
		return "$version"
	case Scope:
		return "$scope"
	case Timescale:
		return "$timescale"
	case Var:
		return "$var"
	case UpScope:
		return "$upscope"
	case EndDefinitions:
		return "$enddefinitions"
	case DumpAll:
		return "$dumpall"
	case DumpOff:
		return "$dumpoff"
	case DumpOn:
		return "$dumpon"
	case DumpVars:
		return "$dumpvars"
	case End:
		return "$end"
	case Timestamp:
		return "timestamp"
	case VectorValue:
		return "vector value"
	case RealValue:
		return "real value"
	default:
		return "unknown token"
	}
}

// DescKind is the closed set of $var reference-name description shapes.
type DescKind int

const (
	Unspecified DescKind = iota
	VectorDesc
	VectorSelectDesc
)

// Description is a $var's parsed reference-name suffix.
type Description struct {
	Kind     DescKind
	Width    int // valid when Kind == VectorDesc or VectorSelectDesc (msb-lsb+1)
	MSB, LSB int // valid when Kind == VectorSelectDesc
}

// Token is a parsed lexical span. Only the fields relevant to Kind are
// populated; this mirrors a tagged union without requiring an interface
// allocation per token, matching the throughput goals of the pipeline.
type Token struct {
	Kind Kind
	Pos  lexer.Position

	TextID bytestore.ID // ByteStore id: Comment/Date/Version body, Scope name, Var reference name

	ScopeKind ScopeKind

	TimescaleExponent int
	TimescaleOffset   int

	NetKind     NetKind
	Width       int
	Idcode      Idcode
	Description Description

	Timestamp uint64
	Vector    bitvector.Vector
	Real      float64
}

// TimescaleTotal returns Exponent+Offset, the signed power-of-ten exponent e
// such that the declared unit is 10^-e seconds.
func (t Token) TimescaleTotal() int {
	return t.TimescaleExponent + t.TimescaleOffset
}
