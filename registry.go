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

// Lookup indexes over coinEntries, built once at startup and never mutated.
// slip44gen guarantees the table is free of id, name and ticker collisions,
// so the registry resolves every key to at most one entry.
var (
	coinIndexByID     map[uint32]int
	coinIndexByName   map[string]int
	coinIndexBySymbol map[string]int
)

func init() {
	coinIndexByID = make(map[uint32]int, len(coinEntries))
	coinIndexByName = make(map[string]int, len(coinEntries))
	coinIndexBySymbol = make(map[string]int, len(coinEntries))
	for i, e := range coinEntries {
		for _, id := range e.ids {
			coinIndexByID[id] = i
		}
		coinIndexByName[e.name] = i
		if e.symbol != "" {
			coinIndexBySymbol[e.symbol] = i
		}
	}
}

// Coins returns every registered coin in ascending primary-id order.
func Coins() []Coin {
	coins := make([]Coin, len(coinEntries))
	for i, e := range coinEntries {
		coins[i] = Coin(e.ids[0])
	}
	return coins
}

// Symbols returns every registered ticker symbol in ascending coin-id order.
func Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(coinEntries))
	for _, e := range coinEntries {
		if e.symbol != "" {
			symbols = append(symbols, Symbol(e.ids[0]))
		}
	}
	return symbols
}
