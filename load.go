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

package vcdio

import (
	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/orchestrator"
	"github.com/dagronlund/vcdio/waveform"
)

// Header describes a parsed VCD design hierarchy: declared scopes,
// variables, and the idcode-to-width mapping used to validate the body.
type Header = header.Header

// Waveform holds every signal's time-indexed value changes.
type Waveform = waveform.Waveform

// Progress reports bytes-consumed/total-bytes during a LoadMultiThreaded
// run. Safe for concurrent use; read with Get.
type Progress = orchestrator.Progress

// Handle is returned by LoadMultiThreaded; Join blocks for the result.
type Handle = orchestrator.Handle

// NewProgress returns a zeroed Progress tracker.
func NewProgress() *Progress {
	return orchestrator.NewProgress()
}

// LoadSingleThreaded parses data as a VCD file on the calling goroutine,
// reporting progress through onProgress if non-nil.
func LoadSingleThreaded(data []byte, onProgress func(done, total uint64)) (*Header, *Waveform, error) {
	return orchestrator.LoadSingleThreaded(data, onProgress)
}

// LoadMultiThreaded parses data as a VCD file across a pipeline of
// goroutines, sharding the waveform assembly shardCount ways. It returns
// immediately; call Join on the returned Handle to wait for the result.
// progress, if non-nil, is updated as the load proceeds.
func LoadMultiThreaded(data []byte, shardCount int, progress *Progress) *Handle {
	return orchestrator.LoadMultiThreaded(data, shardCount, progress)
}
