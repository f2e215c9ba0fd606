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

// Package slip44 maps SLIP-0044 coin-type identifiers to coin metadata.
//
// The registry is a fixed table compiled into the package from the upstream
// SLIP-0044 list (see cmd/slip44gen). All lookups are pure reads over that
// table and are safe for concurrent use.
package slip44

import "errors"

// ErrNotFound is returned by all lookups when no registry entry matches.
// Absence is an ordinary outcome, not an error condition worth
// distinguishing: an unregistered id, an unknown name and a coin without a
// ticker all report it.
var ErrNotFound = errors.New("not found")

// Coin identifies a single registered coin type. Its value is the coin's
// primary SLIP-0044 id, so coins compare directly against the generated
// constants (Bitcoin, Stacks, ...).
type Coin uint32

// coinEntry is one row of the generated registry table.
type coinEntry struct {
	ids    []uint32 // primary id first, historical aliases after
	name   string
	symbol string // "" when the coin has no ticker
}

// ID returns the coin's primary SLIP-0044 id.
func (c Coin) ID() uint32 {
	return uint32(c)
}

// IDs returns every id registered for the coin, primary id first. A handful
// of entries carry historical aliases merged from upstream duplicates.
// The returned slice must not be modified.
func (c Coin) IDs() []uint32 {
	if i, ok := coinIndexByID[uint32(c)]; ok {
		return coinEntries[i].ids
	}
	return nil
}

// Name returns the coin's canonical display name, or "" if c was not
// produced by this package.
func (c Coin) Name() string {
	if i, ok := coinIndexByID[uint32(c)]; ok {
		return coinEntries[i].name
	}
	return ""
}

// String implements fmt.Stringer, rendering the coin as its Name.
func (c Coin) String() string {
	return c.Name()
}

// Symbol returns the coin's ticker symbol. Not every coin defines one;
// ErrNotFound reports absence.
func (c Coin) Symbol() (Symbol, error) {
	i, ok := coinIndexByID[uint32(c)]
	if !ok || coinEntries[i].symbol == "" {
		return 0, ErrNotFound
	}
	return Symbol(coinEntries[i].ids[0]), nil
}

// CoinFromID resolves a SLIP-0044 id, primary or alias, to its coin.
func CoinFromID(id uint32) (Coin, error) {
	i, ok := coinIndexByID[id]
	if !ok {
		return 0, ErrNotFound
	}
	return Coin(coinEntries[i].ids[0]), nil
}

// CoinFromName resolves a canonical coin name to its coin. The match is
// exact and case sensitive.
func CoinFromName(name string) (Coin, error) {
	i, ok := coinIndexByName[name]
	if !ok {
		return 0, ErrNotFound
	}
	return Coin(coinEntries[i].ids[0]), nil
}
