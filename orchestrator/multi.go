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
	"sync"

	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/internal/bitops"
	"github.com/dagronlund/vcdio/lexer"
	"github.com/dagronlund/vcdio/token"
	"github.com/dagronlund/vcdio/tokenizer"
	"github.com/dagronlund/vcdio/waveform"
)

// Handle is returned by LoadMultiThreaded immediately; Join blocks until
// the load completes (successfully or not).
type Handle struct {
	Header *header.Header

	done     chan struct{}
	waveform *waveform.Waveform
	err      error
}

// Join blocks until the load finishes and returns its result.
func (h *Handle) Join() (*header.Header, *waveform.Waveform, error) {
	<-h.done
	return h.Header, h.waveform, h.err
}

// LoadMultiThreaded parses the header synchronously on the calling
// goroutine (cheap, sequential, no ordering risk per spec §4.6), then
// spawns the body pipeline: one goroutine running the Lexer, one running
// the Tokenizer and the header parser's body-entry classification, one
// Dispatcher goroutine broadcasting Timestamp entries to every shard and
// routing Vector/Real entries by idcode mod shardCount, and shardCount
// shard-assembler goroutines. Stages are connected by bounded, batched
// channels (channelLimit batches of up to queueLimit items each).
// progress, if non-nil, is updated as the lexer goroutine advances and is
// always left at (total, total) once the load finishes.
func LoadMultiThreaded(data []byte, shardCount int, progress *Progress) *Handle {
	total := uint64(len(data))
	l := lexer.New(data)
	store := bytestore.New()
	tz := tokenizer.New()

	headerNext := header.TokenSource(func(s *bytestore.Store) (token.Token, bool, error) {
		span, ok, err := l.Next()
		if err != nil {
			return token.Token{}, false, err
		}
		if !ok {
			return token.Token{}, false, nil
		}
		return tz.Next(span, s)
	})

	p := header.NewParser()
	hdr, err := p.ParseHeader(store, headerNext)

	h := &Handle{done: make(chan struct{})}
	if err != nil {
		h.err = err
		if progress != nil {
			progress.set(total, total)
		}
		close(h.done)
		return h
	}
	h.Header = hdr

	shardCount = bitops.Max(1, shardCount)
	base := waveform.New()
	shards := base.Shard(shardCount)
	init := waveform.NewDispatcher(shards)
	init.InitializeFromHeader(hdr)

	qLexer := newBatchChannel[lexer.Span]()
	qEntries := newBatchChannel[header.Entry]()
	qShards := make([]chan []header.Entry, shardCount)
	for i := range qShards {
		qShards[i] = newBatchChannel[header.Entry]()
	}

	fail := &pipelineError{}
	var wg sync.WaitGroup
	wg.Add(3 + shardCount)

	go func() {
		defer wg.Done()
		runLexer(l, qLexer, fail, progress, total)
	}()
	go func() {
		defer wg.Done()
		runTokenizeAndClassify(qLexer, qEntries, store, tz, p, fail)
	}()
	go func() {
		defer wg.Done()
		runDispatch(qEntries, qShards, fail)
	}()
	for i := 0; i < shardCount; i++ {
		i := i
		go func() {
			defer wg.Done()
			runShardAssembler(qShards[i], shards[i], fail)
		}()
	}

	go func() {
		wg.Wait()
		if err := fail.get(); err != nil {
			h.err = err
		} else if merged, err := base.Unshard(shards); err != nil {
			h.err = err
		} else {
			h.waveform = merged.(*waveform.Waveform)
		}
		if progress != nil {
			progress.set(total, total)
		}
		close(h.done)
	}()

	return h
}

func runLexer(l *lexer.Lexer, out chan []lexer.Span, fail *pipelineError, progress *Progress, total uint64) {
	w := newBatchWriter[lexer.Span](out)
	defer w.finish()
	var lastIndex uint64
	for {
		if fail.get() != nil {
			return
		}
		span, ok, err := l.Next()
		if err != nil {
			fail.setFirst(err)
			return
		}
		if !ok {
			return
		}
		w.push(span)
		if progress != nil && total > 0 {
			idx := uint64(span.Pos.Index + span.Pos.Length)
			if (idx-lastIndex)*200 > total {
				progress.set(idx, total)
				lastIndex = idx
			}
		}
	}
}

func runTokenizeAndClassify(in chan []lexer.Span, out chan []header.Entry, store *bytestore.Store, tz *tokenizer.Tokenizer, p *header.Parser, fail *pipelineError) {
	w := newBatchWriter[header.Entry](out)
	defer w.finish()
	for batch := range in {
		if fail.get() != nil {
			continue
		}
		for _, span := range batch {
			tok, err := tz.Next(span, store)
			if err != nil {
				fail.setFirst(err)
				break
			}
			entry, isEntry, err := p.ClassifyEntry(tok)
			if err != nil {
				fail.setFirst(err)
				break
			}
			if isEntry {
				w.push(entry)
			}
		}
	}
}

func runDispatch(in chan []header.Entry, outs []chan []header.Entry, fail *pipelineError) {
	writers := make([]*batchWriter[header.Entry], len(outs))
	for i, ch := range outs {
		writers[i] = newBatchWriter[header.Entry](ch)
	}
	defer func() {
		for _, w := range writers {
			w.finish()
		}
	}()
	for batch := range in {
		if fail.get() != nil {
			continue
		}
		for _, e := range batch {
			switch v := e.(type) {
			case header.TimestampEntry:
				for _, w := range writers {
					w.push(e)
				}
			case header.VectorEntry:
				writers[shardFor(v.Idcode, len(writers))].push(e)
			case header.RealEntry:
				writers[shardFor(v.Idcode, len(writers))].push(e)
			}
		}
	}
}

func runShardAssembler(in chan []header.Entry, storage waveform.Storage, fail *pipelineError) {
	a := waveform.NewAssembler(storage)
	for batch := range in {
		if fail.get() != nil {
			continue
		}
		for _, e := range batch {
			if err := a.Apply(e); err != nil {
				fail.setFirst(err)
				break
			}
		}
	}
}

func shardFor(idcode token.Idcode, n int) int {
	return int(idcode % token.Idcode(n))
}
