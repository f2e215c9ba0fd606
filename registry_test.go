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

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integrity of the generated table. slip44gen enforces these at generation
// time; a failure here means the snapshot was edited by hand.
func TestTableIntegrity(t *testing.T) {
	ids := make(map[uint32]string)
	names := make(map[string]bool)
	symbols := make(map[string]string)
	for _, e := range coinEntries {
		require.NotEmpty(t, e.ids)
		require.NotEmpty(t, e.name)
		for _, id := range e.ids {
			prev, dup := ids[id]
			assert.False(t, dup, "id %d claimed by both %q and %q", id, prev, e.name)
			ids[id] = e.name
		}
		assert.False(t, names[e.name], "duplicate name %q", e.name)
		names[e.name] = true
		if e.symbol != "" {
			prev, dup := symbols[e.symbol]
			assert.False(t, dup, "ticker %q claimed by both %q and %q", e.symbol, prev, e.name)
			symbols[e.symbol] = e.name
		}
	}
}

func TestTableSorted(t *testing.T) {
	sorted := sort.SliceIsSorted(coinEntries, func(i, j int) bool {
		return coinEntries[i].ids[0] < coinEntries[j].ids[0]
	})
	assert.True(t, sorted, "entries must be sorted by primary id")
}

func TestCoinsEnumeration(t *testing.T) {
	coins := Coins()
	require.Equal(t, len(coinEntries), len(coins))
	assert.Equal(t, Bitcoin, coins[0])

	symbols := Symbols()
	require.NotEmpty(t, symbols)
	for _, sym := range symbols {
		assert.NotEmpty(t, sym.Name())
	}
}

func TestUnknownValues(t *testing.T) {
	// Values not produced by the package render empty rather than panic.
	assert.Equal(t, "", Coin(402).Name())
	assert.Nil(t, Coin(402).IDs())
	assert.Equal(t, "", Symbol(402).Name())
}
