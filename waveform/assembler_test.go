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
	"testing"

	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/lexer"
	"github.com/dagronlund/vcdio/token"
	"github.com/dagronlund/vcdio/tokenizer"
)

// loadHeaderAndEntries drives lexer+tokenizer+header.Parser over input and
// returns the parsed header plus every waveform entry in source order.
func loadHeaderAndEntries(t *testing.T, input string) (*header.Header, []header.Entry) {
	t.Helper()
	l := lexer.New([]byte(input))
	store := bytestore.New()
	tz := tokenizer.New()

	var produced []token.Token
	for {
		span, ok, err := l.Next()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		if !ok {
			break
		}
		tok, err := tz.Next(span, store)
		if err != nil {
			t.Fatalf("tokenize error: %v", err)
		}
		produced = append(produced, tok)
	}
	i := 0
	next := header.TokenSource(func(s *bytestore.Store) (token.Token, bool, error) {
		if i >= len(produced) {
			return token.Token{}, false, nil
		}
		tok := produced[i]
		i++
		return tok, true, nil
	})

	p := header.NewParser()
	h, err := p.ParseHeader(store, next)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	var entries []header.Entry
	for {
		e, ok, err := p.NextEntry(store, next)
		if err != nil {
			t.Fatalf("NextEntry: %v", err)
		}
		if !ok {
			break
		}
		entries = append(entries, e)
	}
	return h, entries
}

func applyAll(t *testing.T, apply func(header.Entry) error, entries []header.Entry) {
	t.Helper()
	for _, e := range entries {
		if err := apply(e); err != nil {
			t.Fatalf("apply(%+v): %v", e, err)
		}
	}
}

const testVCD = "$scope module top $end\n" +
	"$var wire 1 ! clk $end\n" +
	"$var wire 4 \" nib $end\n" +
	"$upscope $end\n" +
	"$enddefinitions $end\n" +
	"#0\n0!\nb0000 \"\n" +
	"#10\n1!\nb1111 \"\n" +
	"#20\n0!\n"

func TestAssemblerSingleShard(t *testing.T) {
	h, entries := loadHeaderAndEntries(t, testVCD)

	w := New()
	a := NewAssembler(w)
	a.InitializeFromHeader(h)
	applyAll(t, a.Apply, entries)

	clkVar, ok := h.GetVariable("top.clk")
	if !ok {
		t.Fatalf("GetVariable(top.clk) not found")
	}
	samples := w.GetVectorSignal(clkVar.Idcode)
	if len(samples) != 3 {
		t.Fatalf("len(clk samples) = %d, want 3", len(samples))
	}
	if samples[0].Timestamp != 0 || samples[1].Timestamp != 10 || samples[2].Timestamp != 20 {
		t.Fatalf("clk samples = %+v", samples)
	}
	if len(w.GetTimestamps()) != 3 {
		t.Fatalf("timestamps = %v", w.GetTimestamps())
	}
}

func TestAssemblerShardedMatchesSingleShard(t *testing.T) {
	h, entries := loadHeaderAndEntries(t, testVCD)

	single := New()
	sa := NewAssembler(single)
	sa.InitializeFromHeader(h)
	applyAll(t, sa.Apply, entries)

	sharded := New()
	shards := sharded.Shard(3)
	d := NewDispatcher(shards)
	d.InitializeFromHeader(h)
	for _, e := range entries {
		if err := d.Apply(e); err != nil {
			t.Fatalf("Dispatcher.Apply(%+v): %v", e, err)
		}
	}
	merged, err := sharded.Unshard(d.Shards())
	if err != nil {
		t.Fatalf("Unshard: %v", err)
	}
	mw := merged.(*Waveform)

	clkVar, _ := h.GetVariable("top.clk")
	nibVar, _ := h.GetVariable("top.nib")

	if len(mw.GetTimestamps()) != len(single.GetTimestamps()) {
		t.Fatalf("timestamps differ: %v vs %v", mw.GetTimestamps(), single.GetTimestamps())
	}
	for i, ts := range single.GetTimestamps() {
		if mw.GetTimestamps()[i] != ts {
			t.Fatalf("timestamp[%d] = %d, want %d", i, mw.GetTimestamps()[i], ts)
		}
	}

	wantClk := single.GetVectorSignal(clkVar.Idcode)
	gotClk := mw.GetVectorSignal(clkVar.Idcode)
	if len(wantClk) != len(gotClk) {
		t.Fatalf("clk sample count differs: %d vs %d", len(gotClk), len(wantClk))
	}
	for i := range wantClk {
		if wantClk[i].Timestamp != gotClk[i].Timestamp || !wantClk[i].Value.Equal(gotClk[i].Value) {
			t.Fatalf("clk sample[%d] differs: %+v vs %+v", i, gotClk[i], wantClk[i])
		}
	}

	wantNib := single.GetVectorSignal(nibVar.Idcode)
	gotNib := mw.GetVectorSignal(nibVar.Idcode)
	if len(wantNib) != len(gotNib) {
		t.Fatalf("nib sample count differs: %d vs %d", len(gotNib), len(wantNib))
	}
}
