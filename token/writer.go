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

package token

import (
	"fmt"
	"strings"

	"github.com/dagronlund/vcdio/bitvector"
	"github.com/dagronlund/vcdio/bytestore"
)

// WriteTo serializes t back to canonical VCD bytes (§4.2's inverse
// operation). The result is not guaranteed byte-identical to any original
// input (whitespace is normalized), but re-lexing/re-tokenizing it yields a
// semantically equal token.
func (t Token) WriteTo(store *bytestore.Store) []byte {
	switch t.Kind {
	case Comment:
		return unformattedBlock("comment", store.Get(t.TextID))
	case Date:
		return unformattedBlock("date", store.Get(t.TextID))
	case Version:
		return unformattedBlock("version", store.Get(t.TextID))
	case Scope:
		return []byte(fmt.Sprintf("$scope %s %s $end\n", t.ScopeKind, store.Get(t.TextID)))
	case Timescale:
		return []byte(fmt.Sprintf("$timescale %s %s $end\n", multiplierFromOffset(t.TimescaleOffset), unitFromExponent(t.TimescaleExponent)))
	case Var:
		return []byte(fmt.Sprintf("$var %s %d %s %s%s $end\n",
			t.NetKind, t.Width, string(t.Idcode.Bytes(store)), store.Get(t.TextID), descriptionSuffix(t.Description)))
	case UpScope:
		return []byte("$upscope $end\n")
	case EndDefinitions:
		return []byte("$enddefinitions $end\n")
	case DumpAll:
		return []byte("$dumpall\n")
	case DumpOff:
		return []byte("$dumpoff\n")
	case DumpOn:
		return []byte("$dumpon\n")
	case DumpVars:
		return []byte("$dumpvars\n")
	case End:
		return []byte("$end\n")
	case Timestamp:
		return []byte(fmt.Sprintf("#%d\n", t.Timestamp))
	case VectorValue:
		return writeVectorValue(t.Vector, t.Idcode, store)
	case RealValue:
		return []byte(fmt.Sprintf("r%.16f %s\n", t.Real, string(t.Idcode.Bytes(store))))
	default:
		return nil
	}
}

func unformattedBlock(keyword string, body []byte) []byte {
	return []byte(fmt.Sprintf("$%s%s$end\n", keyword, body))
}

func descriptionSuffix(d Description) string {
	switch d.Kind {
	case VectorDesc:
		return fmt.Sprintf(" [%d]", d.Width)
	case VectorSelectDesc:
		return fmt.Sprintf(" [%d:%d]", d.MSB, d.LSB)
	default:
		return ""
	}
}

func writeVectorValue(v bitvector.Vector, idcode Idcode, store *bytestore.Store) []byte {
	s := v.String()
	idb := string(idcode.Bytes(store))
	if len(s) == 1 {
		return []byte(s + idb + "\n")
	}
	var sb strings.Builder
	sb.WriteByte('b')
	sb.WriteString(s)
	sb.WriteByte(' ')
	sb.WriteString(idb)
	sb.WriteByte('\n')
	return []byte(sb.String())
}
