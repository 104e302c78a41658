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

package orchestrator

import (
	"testing"

	"github.com/dagronlund/vcdio/header"
)

const fullVCD = "$date today $end\n" +
	"$version 1.0 $end\n" +
	"$timescale 10 ns $end\n" +
	"$scope module top $end\n" +
	"$var wire 1 ! clk $end\n" +
	"$var wire 4 \" nib $end\n" +
	"$var real 64 # pi $end\n" +
	"$upscope $end\n" +
	"$enddefinitions $end\n" +
	"#0\n0!\nb0000 \"\nr3.14159 #\n" +
	"#10\n1!\nb1111 \"\n" +
	"#20\n0!\nb1010 \"\nr2.71828 #\n"

func TestLoadSingleThreadedScenarioA(t *testing.T) {
	var updates [][2]uint64
	hdr, wave, err := LoadSingleThreaded([]byte(fullVCD), func(done, total uint64) {
		updates = append(updates, [2]uint64{done, total})
	})
	if err != nil {
		t.Fatalf("LoadSingleThreaded: %v", err)
	}
	if hdr.Date != "today" || hdr.Version != "1.0" {
		t.Fatalf("header metadata = %+v", hdr)
	}
	if hdr.TimescaleExponent != 8 {
		t.Fatalf("TimescaleExponent = %d, want 8", hdr.TimescaleExponent)
	}
	clk, ok := hdr.GetVariable("top.clk")
	if !ok {
		t.Fatalf("GetVariable(top.clk) missing")
	}
	samples := wave.GetVectorSignal(clk.Idcode)
	if len(samples) != 3 {
		t.Fatalf("clk samples = %+v", samples)
	}
	if len(updates) == 0 {
		t.Fatalf("expected at least one progress update")
	}
	last := updates[len(updates)-1]
	if last[0] != last[1] {
		t.Fatalf("final progress = %v, want done==total", last)
	}
	for i := 1; i < len(updates); i++ {
		if updates[i][0] < updates[i-1][0] {
			t.Fatalf("progress regressed: %v then %v", updates[i-1], updates[i])
		}
	}
}

func TestLoadSingleThreadedPropagatesHeaderError(t *testing.T) {
	var sawFinal bool
	_, _, err := LoadSingleThreaded([]byte("$var wire 1 ! clk $end\n"), func(done, total uint64) {
		if done == total {
			sawFinal = true
		}
	})
	if _, ok := err.(*header.UnexpectedVariableError); !ok {
		t.Fatalf("err = %v (%T), want *UnexpectedVariableError", err, err)
	}
	if !sawFinal {
		t.Fatalf("expected a final (total,total) progress update even on error")
	}
}

func TestLoadMultiThreadedMatchesSingleThreaded(t *testing.T) {
	wantHdr, wantWave, err := LoadSingleThreaded([]byte(fullVCD), nil)
	if err != nil {
		t.Fatalf("LoadSingleThreaded: %v", err)
	}

	progress := NewProgress()
	handle := LoadMultiThreaded([]byte(fullVCD), 3, progress)
	gotHdr, gotWave, err := handle.Join()
	if err != nil {
		t.Fatalf("LoadMultiThreaded: %v", err)
	}

	if gotHdr.Date != wantHdr.Date || gotHdr.Version != wantHdr.Version {
		t.Fatalf("headers differ: %+v vs %+v", gotHdr, wantHdr)
	}
	if len(gotWave.GetTimestamps()) != len(wantWave.GetTimestamps()) {
		t.Fatalf("timestamps differ: %v vs %v", gotWave.GetTimestamps(), wantWave.GetTimestamps())
	}
	for _, path := range []string{"top.clk", "top.nib"} {
		wantVar, _ := wantHdr.GetVariable(path)
		gotVar, ok := gotHdr.GetVariable(path)
		if !ok {
			t.Fatalf("GetVariable(%s) missing from multi-threaded header", path)
		}
		wantSamples := wantWave.GetVectorSignal(wantVar.Idcode)
		gotSamples := gotWave.GetVectorSignal(gotVar.Idcode)
		if len(wantSamples) != len(gotSamples) {
			t.Fatalf("%s: sample count differs: %d vs %d", path, len(gotSamples), len(wantSamples))
		}
		for i := range wantSamples {
			if wantSamples[i].Timestamp != gotSamples[i].Timestamp || !wantSamples[i].Value.Equal(gotSamples[i].Value) {
				t.Fatalf("%s sample[%d] differs: %+v vs %+v", path, i, gotSamples[i], wantSamples[i])
			}
		}
	}

	piVar, _ := gotHdr.GetVariable("top.pi")
	gotReal := gotWave.GetRealSignal(piVar.Idcode)
	if len(gotReal) != 2 {
		t.Fatalf("pi real samples = %+v", gotReal)
	}

	done, total := progress.Get()
	if done != total {
		t.Fatalf("final progress = (%d,%d), want done==total", done, total)
	}
}

func TestLoadMultiThreadedPropagatesError(t *testing.T) {
	handle := LoadMultiThreaded([]byte("$var wire 1 ! clk $end\n"), 2, nil)
	_, _, err := handle.Join()
	if _, ok := err.(*header.UnexpectedVariableError); !ok {
		t.Fatalf("err = %v (%T), want *UnexpectedVariableError", err, err)
	}
}
