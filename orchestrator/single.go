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
	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/lexer"
	"github.com/dagronlund/vcdio/token"
	"github.com/dagronlund/vcdio/tokenizer"
	"github.com/dagronlund/vcdio/waveform"
)

// LoadSingleThreaded pulls lexical spans, tokenizes, feeds the header
// parser, then the waveform assembler in single-shard mode, all on the
// calling goroutine. onProgress (if non-nil) is called with (bytes
// consumed, total bytes) at roughly 0.5% granularity (spec §4.6:
// Δindex·200 > total_bytes), and always with (total, total) once, whether
// or not loading succeeds.
func LoadSingleThreaded(data []byte, onProgress func(done, total uint64)) (*header.Header, *waveform.Waveform, error) {
	total := uint64(len(data))
	l := lexer.New(data)
	store := bytestore.New()
	tz := tokenizer.New()

	var lastIndex uint64
	next := header.TokenSource(func(s *bytestore.Store) (token.Token, bool, error) {
		span, ok, err := l.Next()
		if err != nil {
			return token.Token{}, false, err
		}
		if !ok {
			return token.Token{}, false, nil
		}
		tok, err := tz.Next(span, s)
		if err != nil {
			return token.Token{}, false, err
		}
		if onProgress != nil && total > 0 {
			idx := uint64(span.Pos.Index + span.Pos.Length)
			if (idx-lastIndex)*200 > total {
				onProgress(idx, total)
				lastIndex = idx
			}
		}
		return tok, true, nil
	})

	fail := func(err error) (*header.Header, *waveform.Waveform, error) {
		if onProgress != nil {
			onProgress(total, total)
		}
		return nil, nil, err
	}

	p := header.NewParser()
	hdr, err := p.ParseHeader(store, next)
	if err != nil {
		return fail(err)
	}

	w := waveform.New()
	assembler := waveform.NewAssembler(w)
	assembler.InitializeFromHeader(hdr)

	for {
		entry, ok, err := p.NextEntry(store, next)
		if err != nil {
			return fail(err)
		}
		if !ok {
			break
		}
		if err := assembler.Apply(entry); err != nil {
			return fail(err)
		}
	}

	if onProgress != nil {
		onProgress(total, total)
	}
	return hdr, w, nil
}
