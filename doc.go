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

// Package vcdio ingests Value Change Dump (VCD) files, the textual
// simulation-trace format produced by digital-hardware simulators, and
// materializes a Header describing the design hierarchy and a Waveform
// holding every time-indexed signal value change.
//
// LoadSingleThreaded runs the full pipeline on the calling goroutine.
// LoadMultiThreaded pipelines the lexer, tokenizer, and a sharded waveform
// assembler across goroutines connected by bounded, batched channels, and
// returns a Handle to join on.
package vcdio
