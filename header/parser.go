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

package header

import (
	"strings"

	"github.com/dagronlund/vcdio/bytestore"
	"github.com/dagronlund/vcdio/token"
)

// TokenSource is the caller-supplied pull function a Parser drives itself
// with: ok is false at a clean end of stream, err is non-nil on any
// upstream lexer/tokenizer failure.
type TokenSource func(store *bytestore.Store) (tok token.Token, ok bool, err error)

type state int

const (
	stateAtRoot state = iota
	stateInScope
	stateDone
)

// Parser folds declaration tokens into a Header (§4.4), then switches to
// pulling waveform Entry values from the same token stream. A Parser is
// single-use: once ParseHeader returns successfully it must only be driven
// through NextEntry or ClassifyEntry.
type Parser struct {
	state      state
	depth      int
	scopeStack []*Scope
	header     *Header
}

// NewParser returns a Parser ready to accept header tokens starting at
// scope depth 0.
func NewParser() *Parser {
	return &Parser{
		state:  stateAtRoot,
		header: &Header{IdcodeMap: make(map[token.Idcode]Width)},
	}
}

// ParseHeader pulls tokens from next until $enddefinitions completes at
// depth 0, returning the assembled Header. It fails fast on the first
// malformed transition.
func (p *Parser) ParseHeader(store *bytestore.Store, next TokenSource) (*Header, error) {
	for {
		tok, ok, err := next(store)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnexpectedTerminationError{}
		}
		switch tok.Kind {
		case token.Comment:
			// discard
		case token.Date:
			p.header.Date = strings.TrimSpace(string(store.Get(tok.TextID)))
			p.header.HasDate = true
		case token.Version:
			p.header.Version = strings.TrimSpace(string(store.Get(tok.TextID)))
			p.header.HasVersion = true
		case token.Timescale:
			p.header.TimescaleExponent = tok.TimescaleTotal()
			p.header.HasTimescale = true
		case token.Scope:
			p.pushScope(store, tok)
		case token.Var:
			if p.state == stateAtRoot {
				return nil, &UnexpectedVariableError{Pos: tok.Pos}
			}
			if err := p.addVariable(store, tok); err != nil {
				return nil, err
			}
		case token.UpScope:
			if p.state == stateAtRoot {
				return nil, &UnexpectedUpscopeError{Pos: tok.Pos}
			}
			p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
			p.depth--
			if p.depth == 0 {
				p.state = stateAtRoot
			}
		case token.EndDefinitions:
			if p.state == stateInScope {
				return nil, &UnexpectedEndDefinitionsError{Pos: tok.Pos, Depth: p.depth}
			}
			p.state = stateDone
			return p.header, nil
		default:
			return nil, &UnexpectedTokenError{Pos: tok.Pos, Kind: tok.Kind.String()}
		}
	}
}

func (p *Parser) pushScope(store *bytestore.Store, tok token.Token) {
	s := &Scope{Name: string(store.Get(tok.TextID)), Kind: tok.ScopeKind}
	if len(p.scopeStack) == 0 {
		p.header.Roots = append(p.header.Roots, s)
	} else {
		parent := p.scopeStack[len(p.scopeStack)-1]
		parent.Children = append(parent.Children, s)
	}
	p.scopeStack = append(p.scopeStack, s)
	p.depth++
	p.state = stateInScope
}

func (p *Parser) addVariable(store *bytestore.Store, tok token.Token) error {
	w := Width{Real: tok.NetKind.IsReal(), N: tok.Width}
	if existing, ok := p.header.IdcodeMap[tok.Idcode]; ok {
		if existing != w {
			return &MismatchedWidthError{Pos: tok.Pos, Declared: existing.N, Actual: w.N}
		}
	} else {
		p.header.IdcodeMap[tok.Idcode] = w
	}
	v := &Variable{
		Name:        string(store.Get(tok.TextID)),
		Description: tok.Description,
		Width:       w,
		NetKind:     tok.NetKind,
		Idcode:      tok.Idcode,
	}
	current := p.scopeStack[len(p.scopeStack)-1]
	current.Variables = append(current.Variables, v)
	return nil
}

// NextEntry pulls tokens from next until it finds the next waveform Entry,
// skipping Comment/DumpAll/DumpOff/DumpOn/DumpVars/End along the way. A
// clean end of stream returns (nil, false, nil); any other token kind, or
// a value change for an idcode the header never declared or declared with
// a different width, is an error.
func (p *Parser) NextEntry(store *bytestore.Store, next TokenSource) (Entry, bool, error) {
	for {
		tok, ok, err := next(store)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		entry, isEntry, err := p.ClassifyEntry(tok)
		if err != nil {
			return nil, false, err
		}
		if !isEntry {
			continue
		}
		return entry, true, nil
	}
}

// ClassifyEntry converts one already-tokenized body-phase token into an
// Entry. isEntry is false (with a nil error) for tokens NextEntry's callers
// should skip over (Comment, DumpAll/Off/On/Vars, End); it is factored out
// of NextEntry so a push-style caller (the multi-threaded orchestrator's
// tokenizer-thread, which receives tokens off a channel rather than pulling
// them) can classify tokens one at a time without going through a
// TokenSource.
func (p *Parser) ClassifyEntry(tok token.Token) (Entry, bool, error) {
	switch tok.Kind {
	case token.Comment, token.DumpAll, token.DumpOff, token.DumpOn, token.DumpVars, token.End:
		return nil, false, nil
	case token.Timestamp:
		return TimestampEntry{Value: tok.Timestamp}, true, nil
	case token.VectorValue:
		w, ok := p.header.IdcodeMap[tok.Idcode]
		if !ok {
			return nil, false, &UnmatchedIdcodeError{Pos: tok.Pos}
		}
		if tok.Vector.Width() != w.N {
			return nil, false, &MismatchedWidthError{Pos: tok.Pos, Declared: w.N, Actual: tok.Vector.Width()}
		}
		return VectorEntry{Idcode: tok.Idcode, Value: tok.Vector}, true, nil
	case token.RealValue:
		if _, ok := p.header.IdcodeMap[tok.Idcode]; !ok {
			return nil, false, &UnmatchedIdcodeError{Pos: tok.Pos}
		}
		return RealEntry{Idcode: tok.Idcode, Value: tok.Real}, true, nil
	default:
		return nil, false, &UnexpectedTokenError{Pos: tok.Pos, Kind: tok.Kind.String()}
	}
}
