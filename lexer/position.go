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

// Position locates a lexical span in the original byte slab. Lines and
// columns are 1-based; Index is the 0-based byte offset of the span's first
// byte, and Length is the span's byte length (the raw matched text,
// including any keyword/terminator the span's Kind trims from Body).
type Position struct {
	Index  int
	Line   int
	Column int
	Length int
}
