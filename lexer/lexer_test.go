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

package lexer

import "testing"

func collect(t *testing.T, input string) []Span {
	t.Helper()
	l := New([]byte(input))
	var spans []Span
	for {
		span, ok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if !ok {
			break
		}
		spans = append(spans, span)
	}
	return spans
}

func TestScenarioAHeader(t *testing.T) {
	input := "$date today $end\n" +
		"$version 1.0 $end\n" +
		"$timescale 10 ns $end\n" +
		"$scope module top $end\n" +
		"$var wire 1 ! clk $end\n" +
		"$upscope $end\n" +
		"$enddefinitions $end\n"

	spans := collect(t, input)
	wantKinds := []Kind{Date, Version, Timescale, Scope, Var, UpScope, EndDefinitions}
	if len(spans) != len(wantKinds) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(wantKinds), spans)
	}
	for i, k := range wantKinds {
		if spans[i].Kind != k {
			t.Fatalf("span[%d].Kind = %v, want %v", i, spans[i].Kind, k)
		}
	}
	if got := string(spans[0].Body); got != " today " {
		t.Fatalf("Date body = %q", got)
	}
}

func TestScenarioBVectorAndFourState(t *testing.T) {
	input := "#10\nb1010 \"\n#20\nb10xz \"\n"
	spans := collect(t, input)
	want := []Kind{Timestamp, VectorValue, Timestamp, VectorValueFourState}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i, k := range want {
		if spans[i].Kind != k {
			t.Fatalf("span[%d].Kind = %v, want %v", i, spans[i].Kind, k)
		}
	}
}

func TestScenarioCScalarShorthand(t *testing.T) {
	input := "#0\n0!\n1!\nx!\nz!\n"
	spans := collect(t, input)
	want := []Kind{Timestamp, ScalarZero, ScalarOne, ScalarUnknown, ScalarHighImpedance}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i, k := range want {
		if spans[i].Kind != k {
			t.Fatalf("span[%d].Kind = %v, want %v", i, spans[i].Kind, k)
		}
	}
}

func TestRealValue(t *testing.T) {
	spans := collect(t, "r3.14159 #\n")
	if len(spans) != 1 || spans[0].Kind != RealValue {
		t.Fatalf("spans = %+v, want single RealValue", spans)
	}
}

func TestCommentAllowsEmbeddedDollar(t *testing.T) {
	spans := collect(t, "$comment price is $5 not $env $end\n")
	if len(spans) != 1 || spans[0].Kind != Comment {
		t.Fatalf("spans = %+v, want single Comment", spans)
	}
	if got := string(spans[0].Body); got != " price is $5 not $env " {
		t.Fatalf("Comment body = %q", got)
	}
}

func TestUnterminatedCommentIsLexError(t *testing.T) {
	l := New([]byte("$comment no terminator"))
	_, ok, err := l.Next()
	if ok || err == nil {
		t.Fatalf("expected lex error, got ok=%v err=%v", ok, err)
	}
}

func TestUnrecognizedByteIsLexError(t *testing.T) {
	l := New([]byte("@garbage"))
	_, ok, err := l.Next()
	if ok || err == nil {
		t.Fatalf("expected lex error, got ok=%v err=%v", ok, err)
	}
	var lexErr *Error
	if e, isLex := err.(*Error); isLex {
		lexErr = e
	} else {
		t.Fatalf("error is not *lexer.Error: %T", err)
	}
	if lexErr.Pos.Line != 1 || lexErr.Pos.Column != 1 {
		t.Fatalf("error position = %+v, want line 1 column 1", lexErr.Pos)
	}
}

func TestLineColumnTracking(t *testing.T) {
	l := New([]byte("$upscope $end\n$upscope $end\n"))
	span, _, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if span.Pos.Line != 1 {
		t.Fatalf("first span line = %d, want 1", span.Pos.Line)
	}
	span2, _, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if span2.Pos.Line != 2 {
		t.Fatalf("second span line = %d, want 2", span2.Pos.Line)
	}
}

func TestEndDefinitionsNotTruncatedToEnd(t *testing.T) {
	spans := collect(t, "$enddefinitions $end\n")
	if len(spans) != 1 || spans[0].Kind != EndDefinitions {
		t.Fatalf("spans = %+v, want single EndDefinitions", spans)
	}
}
