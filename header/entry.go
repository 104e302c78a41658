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
	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/token"
)

// Entry is the sum type of value-change stream items the parser yields once
// it has left header mode: a TimestampEntry, a VectorEntry or a RealEntry.
// Go has no tagged union, so the three concrete types share a marker method
// instead of a common field set.
type Entry interface {
	isEntry()
}

// TimestampEntry advances simulation time.
type TimestampEntry struct {
	Value uint64
}

func (TimestampEntry) isEntry() {}

// VectorEntry records a new value for a vector (or scalar) signal.
type VectorEntry struct {
	Idcode token.Idcode
	Value  bitvector.Vector
}

func (VectorEntry) isEntry() {}

// RealEntry records a new value for a real-valued signal.
type RealEntry struct {
	Idcode token.Idcode
	Value  float64
}

func (RealEntry) isEntry() {}
