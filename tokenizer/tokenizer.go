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

// Package tokenizer parses lexical span bodies into typed tokens, interning
// variable-length payloads (comment/date/version text, scope names,
// variable reference names) into the shared ByteStore. It is the stage
// described in spec §4.2; body-phase value tokens (Timestamp, VectorValue,
// RealValue) carry only Idcode/bitvector/numeric payloads and touch the
// ByteStore only to spill an idcode too long to pack inline. The Tokenizer
// is the only writer to the store, which is what lets multi-threaded mode
// confine the store to a single goroutine.
package tokenizer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/lexer"
	"github.com/dagronlund/vcdio/token"
)

// Tokenizer converts lexical spans into tokens. It carries no state of its
// own; the type exists so call sites read the same way as Lexer/Tokenizer
// pairs do throughout the pipeline.
type Tokenizer struct{}

// New returns a Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\n'
}

func trimSpace(b []byte) []byte {
	return bytes.TrimFunc(b, func(r rune) bool { return isSpace(byte(r)) })
}

// splitOnWhitespace splits b at the first run of whitespace, mirroring the
// reference tokenizer's split_bytes: head is everything before the first
// whitespace byte, tail is everything after the whitespace run (tail is nil
// if there is no whitespace in b).
func splitOnWhitespace(b []byte) (head, tail []byte) {
	i := bytes.IndexAny(b, " \t\f\n")
	if i < 0 {
		return b, nil
	}
	j := i
	for j < len(b) && isSpace(b[j]) {
		j++
	}
	return b[:i], b[j:]
}

// Next converts one lexical span into a token, interning into store as
// needed.
func (tz *Tokenizer) Next(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	switch span.Kind {
	case lexer.Comment:
		return token.Token{Kind: token.Comment, Pos: span.Pos, TextID: store.Insert(span.Body)}, nil
	case lexer.Date:
		return token.Token{Kind: token.Date, Pos: span.Pos, TextID: store.Insert(span.Body)}, nil
	case lexer.Version:
		return token.Token{Kind: token.Version, Pos: span.Pos, TextID: store.Insert(span.Body)}, nil

	case lexer.Scope:
		return tz.tokenizeScope(span, store)
	case lexer.Timescale:
		return tz.tokenizeTimescale(span, store)
	case lexer.Var:
		return tz.tokenizeVar(span, store)

	case lexer.UpScope:
		return token.Token{Kind: token.UpScope, Pos: span.Pos}, nil
	case lexer.EndDefinitions:
		return token.Token{Kind: token.EndDefinitions, Pos: span.Pos}, nil
	case lexer.DumpAll:
		return token.Token{Kind: token.DumpAll, Pos: span.Pos}, nil
	case lexer.DumpOff:
		return token.Token{Kind: token.DumpOff, Pos: span.Pos}, nil
	case lexer.DumpOn:
		return token.Token{Kind: token.DumpOn, Pos: span.Pos}, nil
	case lexer.DumpVars:
		return token.Token{Kind: token.DumpVars, Pos: span.Pos}, nil
	case lexer.End:
		return token.Token{Kind: token.End, Pos: span.Pos}, nil

	case lexer.Timestamp:
		return tz.tokenizeTimestamp(span)

	case lexer.ScalarZero, lexer.ScalarOne, lexer.ScalarUnknown, lexer.ScalarHighImpedance:
		return tz.tokenizeScalar(span, store)

	case lexer.VectorValue:
		return tz.tokenizeVector(span, store, false)
	case lexer.VectorValueFourState:
		return tz.tokenizeVector(span, store, true)

	case lexer.RealValue:
		return tz.tokenizeReal(span, store)

	default:
		return token.Token{}, &SpanError{Pos: span.Pos}
	}
}

func (tz *Tokenizer) tokenizeScope(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	body := trimSpace(span.Body)
	kindBytes, rest := splitOnWhitespace(body)
	kind, ok := token.ParseScopeKind(kindBytes)
	if !ok {
		return token.Token{}, &SpanError{Pos: span.Pos}
	}
	name := trimSpace(rest)
	return token.Token{Kind: token.Scope, Pos: span.Pos, ScopeKind: kind, TextID: store.Insert(name)}, nil
}

func (tz *Tokenizer) tokenizeTimescale(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	body := trimSpace(span.Body)
	multBytes, rest := splitOnWhitespace(body)
	offset, ok := token.ParseMultiplierOffset(multBytes)
	if !ok {
		return token.Token{}, &SpanError{Pos: span.Pos}
	}
	unitBytes := trimSpace(rest)
	exponent := token.UnitExponent(unitBytes)
	return token.Token{Kind: token.Timescale, Pos: span.Pos, TimescaleExponent: exponent, TimescaleOffset: offset}, nil
}

func (tz *Tokenizer) tokenizeVar(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	body := trimSpace(span.Body)

	netKindBytes, rest := splitOnWhitespace(body)
	netKind, ok := token.ParseNetKind(netKindBytes)
	if !ok {
		return token.Token{}, &SpanError{Pos: span.Pos}
	}

	rest = trimSpace(rest)
	widthBytes, rest := splitOnWhitespace(rest)
	width, err := strconv.Atoi(string(widthBytes))
	if err != nil {
		return token.Token{}, &IntegerParseError{Pos: span.Pos, Err: err}
	}

	rest = trimSpace(rest)
	idcodeBytes, rest := splitOnWhitespace(rest)
	idcode := token.EncodeIdcode(store, idcodeBytes)

	rest = trimSpace(rest)
	desc, nameID, err := tz.tokenizeDescription(span.Pos, store, rest)
	if err != nil {
		return token.Token{}, err
	}

	if desc.Kind != token.Unspecified && desc.Width != width {
		return token.Token{}, &IncorrectVariableWidthError{Pos: span.Pos, Declared: width, Actual: desc.Width}
	}
	if netKind.IsReal() && width != 64 {
		return token.Token{}, &IncorrectRealWidthError{Pos: span.Pos}
	}

	return token.Token{
		Kind:        token.Var,
		Pos:         span.Pos,
		NetKind:     netKind,
		Width:       width,
		Idcode:      idcode,
		Description: desc,
		TextID:      nameID,
	}, nil
}

func (tz *Tokenizer) tokenizeDescription(pos lexer.Position, store *bytestore.Store, b []byte) (token.Description, bytestore.ID, error) {
	head, tail := splitOnWhitespace(b)
	if len(tail) == 0 {
		return token.Description{Kind: token.Unspecified}, store.Insert(b), nil
	}
	nameID := store.Insert(head)
	bracket := trimSpace(tail)
	if len(bracket) < 2 || bracket[0] != '[' || bracket[len(bracket)-1] != ']' {
		return token.Description{}, 0, &SpanError{Pos: pos}
	}
	inner := bracket[1 : len(bracket)-1]
	if idx := bytes.IndexByte(inner, ':'); idx >= 0 {
		msb, err := strconv.Atoi(strings.TrimSpace(string(inner[:idx])))
		if err != nil {
			return token.Description{}, 0, &IntegerParseError{Pos: pos, Err: err}
		}
		lsb, err := strconv.Atoi(strings.TrimSpace(string(inner[idx+1:])))
		if err != nil {
			return token.Description{}, 0, &IntegerParseError{Pos: pos, Err: err}
		}
		return token.Description{Kind: token.VectorSelectDesc, MSB: msb, LSB: lsb, Width: msb - lsb + 1}, nameID, nil
	}
	w, err := strconv.Atoi(strings.TrimSpace(string(inner)))
	if err != nil {
		return token.Description{}, 0, &IntegerParseError{Pos: pos, Err: err}
	}
	return token.Description{Kind: token.VectorDesc, Width: w}, nameID, nil
}

func (tz *Tokenizer) tokenizeTimestamp(span lexer.Span) (token.Token, error) {
	body := bytes.TrimLeft(span.Body[1:], " \t\f")
	v, err := strconv.ParseUint(string(body), 10, 64)
	if err != nil {
		return token.Token{}, &IntegerParseError{Pos: span.Pos, Err: err}
	}
	return token.Token{Kind: token.Timestamp, Pos: span.Pos, Timestamp: v}, nil
}

func (tz *Tokenizer) tokenizeScalar(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	bv, ok := bitvector.Scalar(span.Body[0])
	if !ok {
		return token.Token{}, &ScalarParseError{Pos: span.Pos}
	}
	idcode := token.EncodeIdcode(store, span.Body[1:])
	return token.Token{Kind: token.VectorValue, Pos: span.Pos, Vector: bv, Idcode: idcode}, nil
}

func (tz *Tokenizer) tokenizeVector(span lexer.Span, store *bytestore.Store, fourState bool) (token.Token, error) {
	head, tail := splitOnWhitespace(span.Body)
	bits := head[1:]
	var bv bitvector.Vector
	var ok bool
	if fourState {
		bv, ok = bitvector.FromASCIIFourState(bits)
	} else {
		bv, ok = bitvector.FromASCII(bits)
	}
	if !ok {
		return token.Token{}, &VectorParseError{Pos: span.Pos}
	}
	idcode := token.EncodeIdcode(store, trimSpace(tail))
	return token.Token{Kind: token.VectorValue, Pos: span.Pos, Vector: bv, Idcode: idcode}, nil
}

func (tz *Tokenizer) tokenizeReal(span lexer.Span, store *bytestore.Store) (token.Token, error) {
	head, tail := splitOnWhitespace(span.Body)
	f, err := strconv.ParseFloat(string(head[1:]), 64)
	if err != nil {
		return token.Token{}, &RealParseError{Pos: span.Pos, Err: err}
	}
	idcode := token.EncodeIdcode(store, trimSpace(tail))
	return token.Token{Kind: token.RealValue, Pos: span.Pos, Real: f, Idcode: idcode}, nil
}
