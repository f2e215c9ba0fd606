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

func TestCoinFromID(t *testing.T) {
	tests := []struct {
		id   uint32
		coin Coin
		name string
	}{
		{0, Bitcoin, "Bitcoin"},
		{2, Litecoin, "Litecoin"},
		{60, Ethereum, "Ether"},
		{5757, Stacks, "Stacks"},
	}
	for _, tt := range tests {
		coin, err := CoinFromID(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.coin, coin)
		assert.Equal(t, tt.name, coin.Name())
		assert.Equal(t, tt.id, coin.ID())
	}
}

func TestCoinFromIDNotFound(t *testing.T) {
	for _, id := range []uint32{1000000000, 4294967295, 402} {
		_, err := CoinFromID(id)
		assert.ErrorIs(t, err, ErrNotFound, "id %d", id)
	}
}

func TestCoinFromName(t *testing.T) {
	coin, err := CoinFromName("Bitcoin")
	require.NoError(t, err)
	assert.Equal(t, Bitcoin, coin)

	coin, err = CoinFromName("Stacks")
	require.NoError(t, err)
	assert.Equal(t, Stacks, coin)
	assert.Equal(t, []uint32{5757}, coin.IDs())

	_, err = CoinFromName("NoSuchCoin")
	assert.ErrorIs(t, err, ErrNotFound)

	// Matching is case sensitive.
	_, err = CoinFromName("bitcoin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "Bitcoin", Bitcoin.String())
	assert.Equal(t, "Testnet", Testnet.String())
	for _, coin := range Coins() {
		assert.Equal(t, coin.Name(), coin.String())
	}
}

func TestCoinIDs(t *testing.T) {
	require.Equal(t, []uint32{0}, Bitcoin.IDs())
	for _, coin := range Coins() {
		ids := coin.IDs()
		require.NotEmpty(t, ids)
		assert.Equal(t, coin.ID(), ids[0], "primary id must come first")
	}
}

// Every id, primary or alias, must resolve back to the coin that claims it.
func TestCoinIDRoundTrip(t *testing.T) {
	for _, coin := range Coins() {
		for _, id := range coin.IDs() {
			got, err := CoinFromID(id)
			require.NoError(t, err, "id %d", id)
			assert.Equal(t, coin, got, "id %d", id)
		}
	}
}

func TestCoinNameRoundTrip(t *testing.T) {
	for _, coin := range Coins() {
		got, err := CoinFromName(coin.Name())
		require.NoError(t, err, "coin %s", coin)
		assert.Equal(t, coin, got)
	}
}
