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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolFromID(t *testing.T) {
	sym, err := SymbolFromID(0)
	require.NoError(t, err)
	assert.Equal(t, "BTC", sym.Name())
	assert.Equal(t, uint32(0), sym.ID())
	assert.Equal(t, Bitcoin, sym.Coin())

	// Stacks has no ticker in the registry snapshot.
	_, err = SymbolFromID(5757)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = SymbolFromID(1000000000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSymbolFromName(t *testing.T) {
	sym, err := SymbolFromName("BTC")
	require.NoError(t, err)
	assert.Equal(t, Bitcoin, sym.Coin())

	coin, err := CoinFromID(0)
	require.NoError(t, err)
	assert.Equal(t, coin, sym.Coin())

	_, err = SymbolFromName("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)

	// Matching is case sensitive.
	_, err = SymbolFromName("btc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSymbolString(t *testing.T) {
	sym, err := SymbolFromName("ETH")
	require.NoError(t, err)
	assert.Equal(t, "ETH", sym.String())
	assert.Equal(t, Ethereum, sym.Coin())
}

func TestCoinSymbol(t *testing.T) {
	sym, err := Bitcoin.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "BTC", sym.Name())

	// Coins without a ticker report absence, not an error condition.
	for _, coin := range []Coin{Testnet, Stacks} {
		_, err := coin.Symbol()
		assert.ErrorIs(t, err, ErrNotFound, "coin %s", coin)
	}
}

// Symbol -> Coin is total; Coin -> Symbol round-trips whenever a symbol
// exists.
func TestSymbolRoundTrip(t *testing.T) {
	for _, sym := range Symbols() {
		coin := sym.Coin()
		require.NotEmpty(t, coin.Name(), "symbol %s", sym)

		got, err := coin.Symbol()
		require.NoError(t, err, "coin %s", coin)
		assert.Equal(t, sym, got)

		byName, err := SymbolFromName(sym.Name())
		require.NoError(t, err)
		assert.Equal(t, sym, byName)

		byID, err := SymbolFromID(coin.ID())
		require.NoError(t, err)
		assert.Equal(t, sym, byID)
	}
}

func TestCoinsWithoutSymbol(t *testing.T) {
	withSymbol := len(Symbols())
	total := len(Coins())
	require.Greater(t, total, withSymbol, "snapshot must contain ticker-less coins")

	missing := 0
	for _, coin := range Coins() {
		if _, err := coin.Symbol(); err != nil {
			assert.ErrorIs(t, err, ErrNotFound)
			missing++
		}
	}
	assert.Equal(t, total-withSymbol, missing)
}
