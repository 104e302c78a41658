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

// Package bitvector implements the MSB-first two-state and four-state bit
// vectors that flow through tokens, waveform storage and the writer's
// inverse operation.
package bitvector

import (
	"fmt"
	"strings"

	"github.com/dagronlund/vcdio/internal/bitops"
)

// Bit is one position of a Vector. Zero and One are valid in both two-state
// and four-state vectors; X and Z only appear in four-state vectors.
type Bit uint8

const (
	Zero Bit = iota
	One
	X
	Z
)

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	case X:
		return "x"
	case Z:
		return "z"
	default:
		return "?"
	}
}

// Vector is an immutable, MSB-first sequence of bits. Two-state vectors only
// ever hold Zero/One; four-state vectors may additionally hold X/Z.
type Vector struct {
	width     int
	fourState bool
	val       []uint64 // bit i (MSB-first index) lives at word i/64, position i%64
	unknown   []uint64 // set bit means position holds X or Z (nil when !fourState)
}

const wordBits = 64

func newWords(width int) []uint64 {
	return make([]uint64, bitops.ChunkCount(uint(width), uint(wordBits)))
}

// New builds a two-state vector from bits supplied MSB-first.
func New(bits []Bit) Vector {
	return build(bits, false)
}

// NewFourState builds a four-state vector from bits supplied MSB-first.
func NewFourState(bits []Bit) Vector {
	return build(bits, true)
}

func build(bits []Bit, fourState bool) Vector {
	v := Vector{width: len(bits), fourState: fourState, val: newWords(len(bits))}
	if fourState {
		v.unknown = newWords(len(bits))
	}
	for i, b := range bits {
		switch b {
		case One:
			bitops.SetBit(v.val, i)
		case X:
			bitops.SetBit(v.unknown, i)
		case Z:
			bitops.SetBit(v.unknown, i)
			bitops.SetBit(v.val, i)
		}
	}
	return v
}

// Scalar builds a single-bit vector from one value byte ('0','1','x','X','z','Z').
func Scalar(c byte) (Vector, bool) {
	b, ok := byteToBit(c)
	if !ok {
		return Vector{}, false
	}
	return build([]Bit{b}, b == X || b == Z), true
}

func byteToBit(c byte) (Bit, bool) {
	switch c {
	case '0':
		return Zero, true
	case '1':
		return One, true
	case 'x', 'X':
		return X, true
	case 'z', 'Z':
		return Z, true
	default:
		return 0, false
	}
}

// FromASCII parses a two-state bit run (only '0'/'1') into a Vector, MSB-first.
func FromASCII(raw []byte) (Vector, bool) {
	bits := make([]Bit, len(raw))
	for i, c := range raw {
		switch c {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return Vector{}, false
		}
	}
	return New(bits), true
}

// FromASCIIFourState parses a four-state bit run ('0','1','x','X','z','Z') into a Vector, MSB-first.
func FromASCIIFourState(raw []byte) (Vector, bool) {
	bits := make([]Bit, len(raw))
	for i, c := range raw {
		b, ok := byteToBit(c)
		if !ok {
			return Vector{}, false
		}
		bits[i] = b
	}
	return NewFourState(bits), true
}

// Width returns the number of bits in v.
func (v Vector) Width() int { return v.width }

// FourState reports whether v may hold X/Z bits.
func (v Vector) FourState() bool { return v.fourState }

// Bit returns the i-th bit, MSB-first (i == 0 is the most significant bit).
func (v Vector) Bit(i int) Bit {
	if v.fourState && bitops.TestBit(v.unknown, i) {
		if bitops.TestBit(v.val, i) {
			return Z
		}
		return X
	}
	if bitops.TestBit(v.val, i) {
		return One
	}
	return Zero
}

// Equal reports whether v and other have the same width and the same bit sequence.
func (v Vector) Equal(other Vector) bool {
	if v.width != other.width {
		return false
	}
	for i := 0; i < v.width; i++ {
		if v.Bit(i) != other.Bit(i) {
			return false
		}
	}
	return true
}

// String renders the vector MSB-first, e.g. "1010" or "10xz".
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.width)
	for i := 0; i < v.width; i++ {
		sb.WriteString(v.Bit(i).String())
	}
	return sb.String()
}

// GoString gives a debug-friendly representation for test failure messages.
func (v Vector) GoString() string {
	return fmt.Sprintf("bitvector.Vector{width:%d, fourState:%v, bits:%q}", v.width, v.fourState, v.String())
}
