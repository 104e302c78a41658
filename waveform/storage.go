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

// Package waveform holds the time-indexed signal-value storage the
// WaveformAssembler and Dispatcher fold value-change entries into (spec
// §4.5, §6). The package exposes a narrow Storage interface plus one
// concrete, in-memory implementation; consumers that want a different
// backing representation only need to satisfy Storage.
package waveform

import (
	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/token"
)

// VectorSample is one (timestamp, value) pair in a vector signal's change
// log.
type VectorSample struct {
	Timestamp uint64
	Value     bitvector.Vector
}

// RealSample is one (timestamp, value) pair in a real signal's change log.
type RealSample struct {
	Timestamp uint64
	Value     float64
}

// SearchMode selects which sample SearchValue returns relative to a probe
// timestamp.
type SearchMode int

const (
	// Before returns the last sample strictly before t.
	Before SearchMode = iota
	// After returns the first sample strictly after t.
	After
	// AtOrBefore returns the last sample at or before t.
	AtOrBefore
	// AtOrAfter returns the first sample at or after t.
	AtOrAfter
)

// Storage is the interface the core folds value-change entries into. The
// reference implementation is *Waveform; tests may substitute a fake.
type Storage interface {
	InitializeVector(idcode token.Idcode, width int)
	InitializeReal(idcode token.Idcode)

	InsertTimestamp(ts uint64) error
	UpdateVector(idcode token.Idcode, v bitvector.Vector) error
	UpdateReal(idcode token.Idcode, v float64) error

	Shard(n int) []Storage
	Unshard(shards []Storage) (Storage, error)

	GetTimestamps() []uint64
	GetVectorSignal(idcode token.Idcode) []VectorSample
	GetRealSignal(idcode token.Idcode) []RealSample
	SearchValue(idcode token.Idcode, t uint64, mode SearchMode) (VectorSample, bool)
}
