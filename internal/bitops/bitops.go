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

// Package bitops provides generic word-packed bit operations over slices of
// unsigned integers, trimmed to a small set of operations: the bitvector
// package calls ChunkCount/TestBit/SetBit, and the waveform and orchestrator
// packages call Max.
package bitops

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ChunkCount returns the number of chunkSize-bit chunks needed to store n bits.
func ChunkCount[T constraints.Unsigned](n, chunkSize T) T {
	return (n + chunkSize - 1) / chunkSize
}

// TestBit reports whether the k-th bit is set in in.
func TestBit[T constraints.Unsigned, K constraints.Integer](in []T, k K) bool {
	return (in[uintptr(k)/(unsafe.Sizeof(in[0])*8)] & (T(1) << (uintptr(k) % (unsafe.Sizeof(in[0]) * 8)))) != 0
}

// SetBit sets the k-th bit in in.
func SetBit[T constraints.Unsigned, K constraints.Integer](in []T, k K) {
	in[uintptr(k)/(unsafe.Sizeof(in[0])*8)] |= T(1) << (uintptr(k) % (unsafe.Sizeof(in[0]) * 8))
}

// ClearBit clears the k-th bit in in.
func ClearBit[T constraints.Unsigned, K constraints.Integer](in []T, k K) {
	in[uintptr(k)/(unsafe.Sizeof(in[0])*8)] &^= T(1) << (uintptr(k) % (unsafe.Sizeof(in[0]) * 8))
}

// Min returns the smaller of x and y.
func Min[T constraints.Integer](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Max returns the greater of x and y.
func Max[T constraints.Integer](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// Clamp returns x bounded to [lo, hi].
func Clamp[T constraints.Integer](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}
