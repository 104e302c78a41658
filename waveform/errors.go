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

	"github.com/dagronlund/vcdio/token"
)

// UninitializedSignalError reports a value change routed to an idcode the
// waveform was never told to initialize.
type UninitializedSignalError struct {
	Idcode token.Idcode
}

func (e *UninitializedSignalError) Error() string {
	return fmt.Sprintf("vcdio: waveform: value change for uninitialized idcode %d", e.Idcode)
}

// WidthError reports a vector value whose width disagrees with the width
// the signal was initialized with.
type WidthError struct {
	Idcode   token.Idcode
	Declared int
	Actual   int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("vcdio: waveform: idcode %d expected width %d, got %d", e.Idcode, e.Declared, e.Actual)
}

// ShardCountError reports an Unshard call that was given no shards, or a
// shard that is not a *Waveform. Unshard does not compare the shard count
// with how the waveform was originally split.
type ShardCountError struct {
	Want int
	Got  int
}

func (e *ShardCountError) Error() string {
	return fmt.Sprintf("vcdio: waveform: unshard got %d shards, want %d", e.Got, e.Want)
}
