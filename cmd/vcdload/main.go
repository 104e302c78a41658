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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/header"
	"github.com/dagronlund/vcdio/lexer"
	"github.com/dagronlund/vcdio/orchestrator"
	"github.com/dagronlund/vcdio/token"
	"github.com/dagronlund/vcdio/tokenizer"
)

func main() {
	shards := flag.Int("shards", 1, "number of waveform shards; 1 disables the multi-threaded pipeline")
	dumpTokens := flag.Bool("dump-tokens", false, "lex and tokenize the input, write it back out, and report any token-kind divergence on re-tokenization")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: vcdload [-shards N] [-dump-tokens] <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't open %q: %s\n", args[0], err)
		os.Exit(1)
	}

	if *dumpTokens {
		if err := dumpTokenRoundTrip(os.Stdout, data); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		return
	}

	if *shards > 1 {
		handle := orchestrator.LoadMultiThreaded(data, *shards, nil)
		h, _, err := handle.Join()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		printSummary(os.Stdout, h)
		return
	}

	h, _, err := orchestrator.LoadSingleThreaded(data, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, h)
}

func printSummary(w *os.File, h *header.Header) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if h.HasDate {
		fmt.Fprintf(bw, "date: %s\n", h.Date)
	}
	if h.HasVersion {
		fmt.Fprintf(bw, "version: %s\n", h.Version)
	}
	if h.HasTimescale {
		fmt.Fprintf(bw, "timescale exponent: %d\n", h.TimescaleExponent)
	}

	var scopeCount, varCount int
	var walk func(scopes []*header.Scope)
	walk = func(scopes []*header.Scope) {
		for _, s := range scopes {
			scopeCount++
			varCount += len(s.Variables)
			walk(s.Children)
		}
	}
	walk(h.Roots)
	fmt.Fprintf(bw, "scopes: %d\n", scopeCount)
	fmt.Fprintf(bw, "variables: %d\n", varCount)
	fmt.Fprintf(bw, "idcodes: %d\n", len(h.IdcodeMap))
}

// dumpTokenRoundTrip lexes and tokenizes data, writes every token's bytes
// back out through WriteTo, then re-lexes and re-tokenizes the rewritten
// bytes, reporting the index of the first token-kind divergence, or a
// differing token count (the round-trip fidelity check that
// tokenizer/roundtrip_test.go also performs).
func dumpTokenRoundTrip(w *os.File, data []byte) error {
	kinds, rewritten, err := lexAndRewrite(data)
	if err != nil {
		return fmt.Errorf("initial pass: %w", err)
	}
	w.Write(rewritten)

	replayKinds, _, err := lexAndRewrite(rewritten)
	if err != nil {
		return fmt.Errorf("round-trip pass: %w", err)
	}

	if len(kinds) != len(replayKinds) {
		return fmt.Errorf("round-trip divergence: %d tokens became %d", len(kinds), len(replayKinds))
	}
	for i := range kinds {
		if kinds[i] != replayKinds[i] {
			return fmt.Errorf("round-trip divergence at token %d: %s became %s", i, kinds[i], replayKinds[i])
		}
	}
	return nil
}

func lexAndRewrite(data []byte) ([]token.Kind, []byte, error) {
	l := lexer.New(data)
	store := bytestore.New()
	tz := tokenizer.New()

	var kinds []token.Kind
	var out []byte
	for {
		span, ok, err := l.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
		tok, err := tz.Next(span, store)
		if err != nil {
			return nil, nil, err
		}
		kinds = append(kinds, tok.Kind)
		out = append(out, tok.WriteTo(store)...)
	}
	return kinds, out, nil
}
