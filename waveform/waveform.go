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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/internal/bitops"
	"github.com/dagronlund/vcdio/token"
)

type vectorSignal struct {
	width   int
	samples []VectorSample
}

type realSignal struct {
	samples []RealSample
}

// Waveform is the reference in-memory Storage implementation: a shared
// timestamp timeline plus one append-only change log per idcode.
type Waveform struct {
	timestamps []uint64
	vectors    map[token.Idcode]*vectorSignal
	reals      map[token.Idcode]*realSignal
}

// New returns an empty Waveform ready to be initialized and fed entries.
func New() *Waveform {
	return &Waveform{
		vectors: make(map[token.Idcode]*vectorSignal),
		reals:   make(map[token.Idcode]*realSignal),
	}
}

func (w *Waveform) InitializeVector(idcode token.Idcode, width int) {
	if _, ok := w.vectors[idcode]; !ok {
		w.vectors[idcode] = &vectorSignal{width: width}
	}
}

func (w *Waveform) InitializeReal(idcode token.Idcode) {
	if _, ok := w.reals[idcode]; !ok {
		w.reals[idcode] = &realSignal{}
	}
}

func (w *Waveform) currentTimestamp() uint64 {
	if len(w.timestamps) == 0 {
		return 0
	}
	return w.timestamps[len(w.timestamps)-1]
}

func (w *Waveform) InsertTimestamp(ts uint64) error {
	w.timestamps = append(w.timestamps, ts)
	return nil
}

func (w *Waveform) UpdateVector(idcode token.Idcode, v bitvector.Vector) error {
	sig, ok := w.vectors[idcode]
	if !ok {
		return &UninitializedSignalError{Idcode: idcode}
	}
	if v.Width() != sig.width {
		return &WidthError{Idcode: idcode, Declared: sig.width, Actual: v.Width()}
	}
	sig.samples = append(sig.samples, VectorSample{Timestamp: w.currentTimestamp(), Value: v})
	return nil
}

func (w *Waveform) UpdateReal(idcode token.Idcode, v float64) error {
	sig, ok := w.reals[idcode]
	if !ok {
		return &UninitializedSignalError{Idcode: idcode}
	}
	sig.samples = append(sig.samples, RealSample{Timestamp: w.currentTimestamp(), Value: v})
	return nil
}

// Shard partitions the waveform into n disjoint shards, each carrying the
// full timestamp timeline but only the vector/real signals whose idcode
// routes to it (idcode mod n), matching how the Dispatcher routes entries.
func (w *Waveform) Shard(n int) []Storage {
	n = bitops.Max(1, n)
	shards := make([]*Waveform, n)
	for i := range shards {
		shards[i] = New()
		shards[i].timestamps = append([]uint64(nil), w.timestamps...)
	}
	for _, idcode := range w.VectorIdcodes() {
		sig := w.vectors[idcode]
		dst := shards[shardRoute(idcode, n)]
		dst.vectors[idcode] = &vectorSignal{width: sig.width, samples: append([]VectorSample(nil), sig.samples...)}
	}
	for idcode, sig := range w.reals {
		dst := shards[shardRoute(idcode, n)]
		dst.reals[idcode] = &realSignal{samples: append([]RealSample(nil), sig.samples...)}
	}
	out := make([]Storage, n)
	for i, s := range shards {
		out[i] = s
	}
	return out
}

// Unshard recombines shards produced by Shard (or routed to independently
// by a Dispatcher) into a single waveform. All shards must carry an
// identical timestamp timeline, per the broadcast-before-route ordering
// contract; Unshard takes the first shard's timeline as canonical.
func (w *Waveform) Unshard(shards []Storage) (Storage, error) {
	if len(shards) == 0 {
		return nil, &ShardCountError{Want: 1, Got: 0}
	}
	out := New()
	for i, s := range shards {
		wf, ok := s.(*Waveform)
		if !ok {
			return nil, &ShardCountError{Want: 1, Got: 0}
		}
		if i == 0 {
			out.timestamps = append([]uint64(nil), wf.timestamps...)
		}
		for idcode, sig := range wf.vectors {
			out.vectors[idcode] = sig
		}
		for idcode, sig := range wf.reals {
			out.reals[idcode] = sig
		}
	}
	return out, nil
}

func (w *Waveform) GetTimestamps() []uint64 {
	return w.timestamps
}

func (w *Waveform) GetVectorSignal(idcode token.Idcode) []VectorSample {
	sig, ok := w.vectors[idcode]
	if !ok {
		return nil
	}
	return sig.samples
}

func (w *Waveform) GetRealSignal(idcode token.Idcode) []RealSample {
	sig, ok := w.reals[idcode]
	if !ok {
		return nil
	}
	return sig.samples
}

// SearchValue binary-searches a vector signal's change log for the sample
// selected by mode relative to probe timestamp t.
func (w *Waveform) SearchValue(idcode token.Idcode, t uint64, mode SearchMode) (VectorSample, bool) {
	sig, ok := w.vectors[idcode]
	if !ok || len(sig.samples) == 0 {
		return VectorSample{}, false
	}
	samples := sig.samples
	switch mode {
	case Before:
		i := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp >= t })
		if i == 0 {
			return VectorSample{}, false
		}
		return samples[i-1], true
	case AtOrBefore:
		i := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp > t })
		if i == 0 {
			return VectorSample{}, false
		}
		return samples[i-1], true
	case After:
		i := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp > t })
		if i == len(samples) {
			return VectorSample{}, false
		}
		return samples[i], true
	case AtOrAfter:
		i := sort.Search(len(samples), func(i int) bool { return samples[i].Timestamp >= t })
		if i == len(samples) {
			return VectorSample{}, false
		}
		return samples[i], true
	default:
		return VectorSample{}, false
	}
}

// VectorIdcodes returns the set of idcodes this waveform carries vector
// signals for, in no particular order.
func (w *Waveform) VectorIdcodes() []token.Idcode {
	return maps.Keys(w.vectors)
}
