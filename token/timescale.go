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

// TimescaleExponent and TimescaleOffset together encode a $timescale
// declaration: the final exponent e (unit = 10^-e seconds) is
// Exponent+Offset. They are kept separate on the token so a writer can
// reconstruct the original "<1|10|100> <unit>" text.
//
// ParseMultiplierOffset maps the leading "1"/"10"/"100" bytes to its offset.
func ParseMultiplierOffset(b []byte) (int, bool) {
	return offsetFromMultiplier(b)
}

// UnitExponent determines the unit's base exponent from its second-to-last
// letter, per exponentFromUnit.
func UnitExponent(b []byte) int {
	return exponentFromUnit(b)
}

func offsetFromMultiplier(b []byte) (int, bool) {
	switch string(b) {
	case "1":
		return 0, true
	case "10":
		return -1, true
	case "100":
		return -2, true
	default:
		return 0, false
	}
}

// exponentFromUnit determines the unit's base exponent from its
// second-to-last letter ('f'=fs=15, 'p'=ps=12, 'n'=ns=9, 'u'=us=6, 'm'=ms=3,
// anything else (including the single-letter "s") = s = 0).
func exponentFromUnit(b []byte) int {
	if len(b) < 2 {
		return 0
	}
	switch b[len(b)-2] {
	case 'f':
		return 15
	case 'p':
		return 12
	case 'n':
		return 9
	case 'u':
		return 6
	case 'm':
		return 3
	default:
		return 0
	}
}

// multiplierFromOffset and unitFromExponent invert the above, for the
// writer's inverse operation.
func multiplierFromOffset(offset int) string {
	switch offset {
	case 0:
		return "1"
	case -1:
		return "10"
	case -2:
		return "100"
	default:
		return "1"
	}
}

func unitFromExponent(exp int) string {
	switch exp {
	case 15:
		return "fs"
	case 12:
		return "ps"
	case 9:
		return "ns"
	case 6:
		return "us"
	case 3:
		return "ms"
	default:
		return "s"
	}
}
