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
	"bytes"
	"fmt"
	"go/format"
	"strconv"
)

// renderTable emits the generated source for the slip44 package: one typed
// constant per coin and the backing entry table, both in primary-id order.
// The output is gofmt-formatted; a table that fails to format is a bug in
// the emitter, reported rather than written.
func renderTable(source string, coins []*coinType) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by slip44gen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "//\n// Source: %s\n\n", source)
	fmt.Fprintf(&buf, "package slip44\n\n")

	fmt.Fprintf(&buf, "// Registered coin types. The value of each constant is the coin's primary\n")
	fmt.Fprintf(&buf, "// SLIP-0044 id.\n")
	fmt.Fprintf(&buf, "const (\n")
	for _, c := range coins {
		if c.symbol != "" {
			fmt.Fprintf(&buf, "\t// %s (%s).\n", c.name, c.symbol)
		} else {
			fmt.Fprintf(&buf, "\t// %s.\n", c.name)
		}
		fmt.Fprintf(&buf, "\t%s Coin = %d\n", c.ident, c.ids[0])
	}
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "var coinEntries = []coinEntry{\n")
	for _, c := range coins {
		fmt.Fprintf(&buf, "\t{ids: []uint32{%s}, name: %s", joinIDs(c.ids, ", "), strconv.Quote(c.name))
		if c.symbol != "" {
			fmt.Fprintf(&buf, ", symbol: %s", strconv.Quote(c.symbol))
		}
		fmt.Fprintf(&buf, "},\n")
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated table: %w", err)
	}
	return src, nil
}
