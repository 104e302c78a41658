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

import (
	"math/bits"

	"github.com/dagronlund/vcdio/bytestore"
)

// Idcode is the compressed representation of a VCD identifier code. An
// identifier of up to pointerBytes-1 bytes is packed inline, little-endian,
// into the low bits of the integer with the top bit left clear. A longer
// identifier is interned into the ByteStore and the returned id is tagged by
// setting the top bit. Equality of two Idcodes is equality of the
// underlying integers, and decoding is total given the same store.
type Idcode uint

const pointerBytes = bits.UintSize / 8

const spillTag = Idcode(1) << (bits.UintSize - 1)

// EncodeIdcode interns raw (if needed) and returns its Idcode. raw must be
// non-empty printable ASCII (0x21-0x7E), which the lexer/tokenizer grammar
// already guarantees for every idcode-chars run.
func EncodeIdcode(store *bytestore.Store, raw []byte) Idcode {
	// Every byte of raw is printable ASCII (<= 0x7E), so its top bit is
	// always clear; an inline pack of pointerBytes bytes would therefore
	// never actually collide with spillTag, but the reference design spills
	// at exactly pointerBytes bytes regardless, keeping the inline/spill
	// cutoff a simple, uniform length check.
	if len(raw) >= pointerBytes {
		id := store.Insert(raw)
		return Idcode(id) | spillTag
	}
	var v uint
	for i := len(raw) - 1; i >= 0; i-- {
		v <<= 8
		v |= uint(raw[i])
	}
	return Idcode(v)
}

// Bytes recovers the original identifier bytes. store must be the same
// store (or a store sharing the same ids) used to encode c, if c was
// spilled.
func (c Idcode) Bytes(store *bytestore.Store) []byte {
	if c&spillTag != 0 {
		return store.Get(bytestore.ID(c &^ spillTag))
	}
	var buf [pointerBytes]byte
	v := uint(c)
	n := 0
	for i := 0; i < pointerBytes; i++ {
		b := byte(v & 0xff)
		if b == 0 {
			break
		}
		buf[n] = b
		n++
		v >>= 8
	}
	return buf[:n]
}
