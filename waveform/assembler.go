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

package waveform

import (
	"fmt"

	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/token"
)

// StorageError wraps any error a Storage implementation returns: storage
// failures are opaque to the core and simply forwarded with this wrapper
// attached.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("vcdio: waveform: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Assembler feeds header.Entry values into a Storage. It is the
// single-shard mode of §4.5: every entry is applied directly.
type Assembler struct {
	storage Storage
}

// NewAssembler returns an Assembler writing into storage.
func NewAssembler(storage Storage) *Assembler {
	return &Assembler{storage: storage}
}

// InitializeFromHeader initializes one signal per idcode declared in h,
// before any entries are applied. The orchestrator calls this once, right
// after header parsing completes.
func (a *Assembler) InitializeFromHeader(h *header.Header) {
	initializeStorage(a.storage, h)
}

// Apply folds one entry into the storage.
func (a *Assembler) Apply(entry header.Entry) error {
	return applyEntry(a.storage, entry)
}

func initializeStorage(s Storage, h *header.Header) {
	for idcode, w := range h.IdcodeMap {
		if w.Real {
			s.InitializeReal(idcode)
		} else {
			s.InitializeVector(idcode, w.N)
		}
	}
}

func applyEntry(s Storage, entry header.Entry) error {
	var err error
	switch e := entry.(type) {
	case header.TimestampEntry:
		err = s.InsertTimestamp(e.Value)
	case header.VectorEntry:
		err = s.UpdateVector(e.Idcode, e.Value)
	case header.RealEntry:
		err = s.UpdateReal(e.Idcode, e.Value)
	}
	if err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

// Dispatcher is the sharded mode of §4.5: Timestamp entries are broadcast
// to every shard so they stay time-aligned; Vector/Real entries are routed
// to exactly one shard by idcode mod len(shards). The broadcast-before-route
// order (guaranteed by the caller feeding entries in source order through a
// single Dispatcher) is what keeps shard-local timestamp indexing correct.
type Dispatcher struct {
	shards []Storage
}

// NewDispatcher returns a Dispatcher routing across shards.
func NewDispatcher(shards []Storage) *Dispatcher {
	return &Dispatcher{shards: shards}
}

// InitializeFromHeader initializes every declared idcode on the shard it
// will be routed to.
func (d *Dispatcher) InitializeFromHeader(h *header.Header) {
	for idcode, w := range h.IdcodeMap {
		shard := d.shards[shardRoute(idcode, len(d.shards))]
		if w.Real {
			shard.InitializeReal(idcode)
		} else {
			shard.InitializeVector(idcode, w.N)
		}
	}
}

// Apply routes one entry to the shard(s) it belongs on.
func (d *Dispatcher) Apply(entry header.Entry) error {
	switch e := entry.(type) {
	case header.TimestampEntry:
		for _, shard := range d.shards {
			if err := shard.InsertTimestamp(e.Value); err != nil {
				return &StorageError{Err: err}
			}
		}
	case header.VectorEntry:
		shard := d.shards[shardRoute(e.Idcode, len(d.shards))]
		if err := shard.UpdateVector(e.Idcode, e.Value); err != nil {
			return &StorageError{Err: err}
		}
	case header.RealEntry:
		shard := d.shards[shardRoute(e.Idcode, len(d.shards))]
		if err := shard.UpdateReal(e.Idcode, e.Value); err != nil {
			return &StorageError{Err: err}
		}
	}
	return nil
}

// Shards returns the underlying per-shard storages, for handing off to N
// shard-threads.
func (d *Dispatcher) Shards() []Storage {
	return d.shards
}

func shardRoute(idcode token.Idcode, n int) int {
	return int(idcode % token.Idcode(n))
}
