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

// Package orchestrator provides the two top-level entry points a caller
// loads a VCD file through: a single-threaded loader, and a multi-threaded
// pipeline of bounded, batched channels (spec §4.6). It is the only
// package that wires lexer, tokenizer, header, and waveform together.
package orchestrator

import "sync"

// Progress is a shared (done, total) byte-count pair, updated from whatever
// goroutine is consuming the input and read from any goroutine (typically a
// UI). Guarded by a mutex; contention is negligible at the update rate this
// package produces (~200 updates per file).
type Progress struct {
	mu          sync.Mutex
	done, total uint64
}

// NewProgress returns a zeroed Progress.
func NewProgress() *Progress {
	return &Progress{}
}

func (p *Progress) set(done, total uint64) {
	p.mu.Lock()
	p.done, p.total = done, total
	p.mu.Unlock()
}

// Get returns the current (done, total) pair.
func (p *Progress) Get() (done, total uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done, p.total
}
