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
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	coins := []*coinType{
		{ids: []uint32{0}, name: "Bitcoin", symbol: "BTC", ident: "Bitcoin"},
		{ids: []uint32{1}, name: "Testnet", ident: "Testnet"},
		{ids: []uint32{5, 6}, name: "Duplicated", symbol: "DUP", ident: "Duplicated"},
		{ids: []uint32{457}, name: "æternity", symbol: "AE", ident: "Aeternity"},
	}
	src, err := renderTable("https://example.com/slip-0044.md", coins)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by slip44gen. DO NOT EDIT.")
	assert.Contains(t, out, "// Source: https://example.com/slip-0044.md")
	assert.Contains(t, out, "package slip44")
	assert.Contains(t, out, "Bitcoin Coin = 0")
	assert.Contains(t, out, "// Bitcoin (BTC).")
	assert.Contains(t, out, "// Testnet.")
	assert.Contains(t, out, "Aeternity Coin = 457")
	assert.Contains(t, out, `{ids: []uint32{5, 6}, name: "Duplicated", symbol: "DUP"}`)
	assert.Contains(t, out, `{ids: []uint32{1}, name: "Testnet"}`)
	assert.Contains(t, out, `name: "æternity"`)

	// The emitter's output must already be canonically formatted.
	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, src, formatted)
}

func TestRenderTableRoundTripsThroughParser(t *testing.T) {
	// A rendered table fed back through the fixture format keeps constants
	// and entries in the same order the parser produced them.
	coins := []*coinType{
		{ids: []uint32{0}, name: "Bitcoin", symbol: "BTC", ident: "Bitcoin"},
		{ids: []uint32{5757}, name: "Stacks", ident: "Stacks"},
	}
	src, err := renderTable("https://example.com/slip-0044.md", coins)
	require.NoError(t, err)
	assert.Contains(t, string(src), "Stacks Coin = 5757")
}
