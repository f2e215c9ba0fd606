// Copyright 2025 The go-slip44 Authors
// This file is part of the go-slip44 library.
//
// The go-slip44 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-slip44 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-slip44 library. If not, see <http://www.gnu.org/licenses/>.

package slip44

// Symbol identifies a ticker symbol. Symbols exist only for coins that
// define one, so the Symbol set is a strict subset of the Coin set. A
// Symbol's value is the primary id of its coin, which makes the
// Symbol-to-Coin direction total.
type Symbol uint32

// ID returns the primary SLIP-0044 id of the symbol's coin.
func (s Symbol) ID() uint32 {
	return uint32(s)
}

// Name returns the ticker, e.g. "BTC", or "" if s was not produced by this
// package.
func (s Symbol) Name() string {
	if i, ok := coinIndexByID[uint32(s)]; ok {
		return coinEntries[i].symbol
	}
	return ""
}

// String implements fmt.Stringer, rendering the symbol as its ticker.
func (s Symbol) String() string {
	return s.Name()
}

// Coin returns the coin behind the symbol. Every symbol is backed by
// exactly one coin, so this conversion cannot fail.
func (s Symbol) Coin() Coin {
	return Coin(s)
}

// SymbolFromID resolves a coin's primary id to its ticker symbol. Alias ids
// do not resolve; ErrNotFound also reports coins without a ticker.
func SymbolFromID(id uint32) (Symbol, error) {
	i, ok := coinIndexByID[id]
	if !ok || coinEntries[i].symbol == "" || coinEntries[i].ids[0] != id {
		return 0, ErrNotFound
	}
	return Symbol(id), nil
}

// SymbolFromName resolves a ticker to its symbol. The match is exact and
// case sensitive.
func SymbolFromName(name string) (Symbol, error) {
	i, ok := coinIndexBySymbol[name]
	if !ok {
		return 0, ErrNotFound
	}
	return Symbol(coinEntries[i].ids[0]), nil
}
