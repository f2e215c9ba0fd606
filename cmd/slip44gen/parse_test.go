// Copyright 2025 The go-slip44 Authors
// This file is part of go-slip44.
//
// go-slip44 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-slip44 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-slip44. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixture(rows ...string) string {
	lines := []string{
		"# SLIP-0044 : Registered coin types",
		"",
		registryHeader,
		"|------------|-------------------------------|---------|-----------------------------------|",
	}
	lines = append(lines, rows...)
	return strings.Join(lines, "\n")
}

func TestParseRegistry(t *testing.T) {
	markdown := fixture(
		"| 0 | 0x80000000 | BTC | Bitcoin |",
		"| 1 | 0x80000001 |  | Testnet (all coins) |",
		"| 2 | 0x80000002 |  | reserved |",
		"| banana | 0x80000000 | XXX | Badid |",
		"| 3 | 0x80000003 | $DAG | Constellation |",
		"| 5 | 0x80000005 | DUP | Duplicated |",
		"| 6 | 0x80000006 | DUP | Duplicated |",
		"| 7 | 0x80000007 | TWA | Twin |",
		"| 8 | 0x80000008 | TWB | Twin |",
		"| 9 | 0x80000009 | SAME | First |",
		"| 10 | 0x8000000a | SAME | Second |",
		"| 11 | 0x8000000b | LNK | [Linked](https://example.com) |",
		"This line is prose after the table.",
	)

	coins, stats, err := parseRegistry(markdown, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, coins, 9)

	// Sorted by primary id, duplicates merged, collisions reconciled.
	assert.Equal(t, &coinType{ids: []uint32{0}, name: "Bitcoin", symbol: "BTC", ident: "Bitcoin"}, coins[0])
	assert.Equal(t, &coinType{ids: []uint32{1}, name: "Testnet", ident: "Testnet"}, coins[1])
	assert.Equal(t, &coinType{ids: []uint32{3}, name: "Constellation", symbol: "DAG", ident: "Constellation"}, coins[2])
	assert.Equal(t, &coinType{ids: []uint32{5, 6}, name: "Duplicated", symbol: "DUP", ident: "Duplicated"}, coins[3])
	assert.Equal(t, &coinType{ids: []uint32{7}, name: "Twin TWA", symbol: "TWA", ident: "TwinTWA"}, coins[4])
	assert.Equal(t, &coinType{ids: []uint32{8}, name: "Twin TWB", symbol: "TWB", ident: "TwinTWB"}, coins[5])
	assert.Equal(t, &coinType{ids: []uint32{9}, name: "First", symbol: "SAME", ident: "First"}, coins[6])
	assert.Equal(t, &coinType{ids: []uint32{10}, name: "Second", ident: "Second"}, coins[7])
	assert.Equal(t, &coinType{ids: []uint32{11}, name: "Linked", symbol: "LNK", ident: "Linked"}, coins[8])

	assert.Equal(t, 13, stats.rows)
	assert.Equal(t, 3, stats.skipped) // reserved, bad id, trailing prose
	assert.Equal(t, 9, stats.coins)
	assert.Equal(t, 7, stats.withTicker)
	assert.Equal(t, 1, stats.merged)
	assert.Equal(t, 2, stats.renamed)
	assert.Equal(t, 1, stats.tickerCleared)
	assert.Equal(t, []string{"SAME (Second)"}, stats.clearedTickers)
}

func TestParseRegistryNoHeader(t *testing.T) {
	_, _, err := parseRegistry("# SLIP-0044\n\nNo table here.\n", zap.NewNop())
	assert.Error(t, err)
}

func TestParseRegistryIDCollision(t *testing.T) {
	// The same id under two different names survives reconciliation and
	// must abort the run rather than emit an ambiguous table.
	markdown := fixture(
		"| 7 | 0x80000007 | AAA | Alpha |",
		"| 7 | 0x80000007 | BBB | Beta |",
	)
	_, _, err := parseRegistry(markdown, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claimed by both")
}

func TestIdentFor(t *testing.T) {
	tests := []struct {
		name  string
		ident string
	}{
		{"Bitcoin", "Bitcoin"},
		{"Bitcoin Cash", "BitcoinCash"},
		{"Ether", "Ethereum"},
		{"Pl^g", "Plug"},
		{"æternity", "Aeternity"},
		{"HARMONY-ONE", "HarmonyOne"},
		{"8Bit", "EightBit"},
		{"01coin", "ZeroOneCoin"},
		{"x42", "X42"},
		{"cruzbit", "Cruzbit"},
		{"kUSD", "KUSD"},
		{"Crypto.com Chain", "CryptoComChain"},
	}
	for _, tt := range tests {
		ident, err := identFor(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.ident, ident, tt.name)
	}

	// Digit-leading names without an override must fail, not emit an
	// unexportable constant.
	_, err := identFor("42coin")
	assert.Error(t, err)
	_, err = identFor("$$$")
	assert.Error(t, err)
}

func TestNormalizationHelpers(t *testing.T) {
	assert.Equal(t, "Linked", unwrapLink("[Linked](https://example.com)"))
	assert.Equal(t, "Plain", unwrapLink("Plain"))
	assert.Equal(t, "Dash", stripParen("Dash (ex Darkcoin)"))
	assert.Equal(t, "Global Currency Reserve", stripParen("Global Currency Reserve (GCRcoin)"))
	assert.Equal(t, "DAG", sanitize("$DAG"))
	assert.Equal(t, "æternity", sanitize("æternity"))
	assert.Equal(t, "Bitcoin Matteo's Vision", sanitize("Bitcoin Matteo's Vision"))
	assert.Equal(t, "Pl^g", sanitize("Pl^g"))
}
