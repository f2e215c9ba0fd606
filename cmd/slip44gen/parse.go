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
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// registryHeader is the sentinel line that opens the coin-type table in the
// upstream markdown. Rows are parsed from the line after the separator that
// follows it.
const registryHeader = "| Coin type  | Path component (`coin_type'`) | Symbol  | Coin                              |"

// coinType is one reconciled registry entry.
type coinType struct {
	ids    []uint32 // primary id first, upstream duplicates after
	name   string   // canonical display name
	symbol string   // ticker, "" when the coin has none
	ident  string   // Go constant identifier derived from name
}

type parseStats struct {
	rows          int
	skipped       int
	coins         int
	withTicker    int
	merged        int
	renamed       int
	tickerCleared int

	renamedNames   []string
	clearedTickers []string
}

// identOverrides maps display names whose mechanical identifier would be
// wrong, ambiguous or unexportable. Residual digit-leading names abort
// generation so the table never silently loses an entry.
var identOverrides = map[string]string{
	"Ether":                   "Ethereum",
	"Ether Classic":           "EthereumClassic",
	"Pl^g":                    "Plug",
	"æternity":                "Aeternity",
	"θ":                       "Theta",
	"HARMONY-ONE":             "HarmonyOne",
	"Unit-e":                  "UnitE",
	"Ether-1":                 "EtherOne",
	"Bitcoin Matteo's Vision": "BitcoinMatteosVision",
	"Crypto.com Chain":        "CryptoComChain",
	"Crypto.org Chain":        "CryptoOrgChain",
	"Capricoin+":              "CapricoinPlus",
	"evan.network":            "EvanNetwork",
	"ThePower.io":             "ThePower",
	"8Bit":                    "EightBit",
	"01coin":                  "ZeroOneCoin",
}

// parseRegistry turns the upstream markdown into a reconciled, sorted coin
// table. Any collision that survives reconciliation is a hard error: the
// registry offers no runtime tie-break, so bad data must never be emitted.
func parseRegistry(markdown string, logger *zap.Logger) ([]*coinType, *parseStats, error) {
	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		if line == registryHeader {
			start = i + 2 // skip the header and the |---| separator
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return nil, nil, fmt.Errorf("registry table header not found")
	}

	stats := &parseStats{}
	var (
		coins []*coinType
		byKey = make(map[string]*coinType)
	)
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.rows++
		columns := strings.Split(line, "|")
		if len(columns) != 6 {
			logger.Warn("Skipping row with unexpected column count", zap.String("row", line))
			stats.skipped++
			continue
		}
		rawName := strings.TrimSpace(columns[4])
		if rawName == "" || rawName == "reserved" {
			stats.skipped++
			continue
		}
		id64, err := strconv.ParseUint(strings.TrimSpace(columns[1]), 10, 32)
		if err != nil {
			logger.Warn("Skipping row with invalid coin type", zap.String("value", strings.TrimSpace(columns[1])))
			stats.skipped++
			continue
		}

		name := sanitize(stripParen(unwrapLink(rawName)))
		if name == "" {
			logger.Warn("Skipping row with empty name after normalization", zap.String("row", line))
			stats.skipped++
			continue
		}
		symbol := sanitize(unwrapLink(strings.TrimSpace(columns[3])))

		// Rows sharing a name and ticker are the same coin listed under
		// several ids; merge them, first id seen becomes the primary.
		key := name + "\x00" + symbol
		if existing, ok := byKey[key]; ok {
			existing.ids = append(existing.ids, uint32(id64))
			continue
		}
		coin := &coinType{ids: []uint32{uint32(id64)}, name: name, symbol: symbol}
		byKey[key] = coin
		coins = append(coins, coin)
	}

	reconcileNames(coins, stats)
	sort.Slice(coins, func(i, j int) bool { return coins[i].ids[0] < coins[j].ids[0] })
	reconcileTickers(coins, stats)

	if err := assignIdents(coins); err != nil {
		return nil, nil, err
	}
	if err := checkIntegrity(coins); err != nil {
		return nil, nil, err
	}

	stats.coins = len(coins)
	for _, c := range coins {
		if c.symbol != "" {
			stats.withTicker++
		}
		if len(c.ids) > 1 {
			stats.merged++
		}
	}
	return coins, stats, nil
}

// reconcileNames disambiguates distinct coins that share a display name by
// appending the ticker, or the id list when there is no ticker.
func reconcileNames(coins []*coinType, stats *parseStats) {
	byName := make(map[string][]*coinType)
	for _, c := range coins {
		byName[c.name] = append(byName[c.name], c)
	}
	for _, group := range byName {
		if len(group) < 2 {
			continue
		}
		for _, c := range group {
			if c.symbol != "" {
				c.name = c.name + " " + c.symbol
			} else {
				c.name = c.name + " " + joinIDs(c.ids, "_")
			}
			stats.renamed++
			stats.renamedNames = append(stats.renamedNames, c.name)
		}
	}
}

// reconcileTickers keeps each ticker on the lowest-id coin claiming it and
// clears it from the rest, so ticker lookups stay single-valued. Coins must
// already be sorted by primary id.
func reconcileTickers(coins []*coinType, stats *parseStats) {
	seen := make(map[string]bool)
	for _, c := range coins {
		if c.symbol == "" {
			continue
		}
		if seen[c.symbol] {
			stats.tickerCleared++
			stats.clearedTickers = append(stats.clearedTickers, c.symbol+" ("+c.name+")")
			c.symbol = ""
			continue
		}
		seen[c.symbol] = true
	}
}

func assignIdents(coins []*coinType) error {
	used := make(map[string]string)
	for _, c := range coins {
		ident, err := identFor(c.name)
		if err != nil {
			return err
		}
		if prev, ok := used[ident]; ok {
			return fmt.Errorf("identifier %s generated for both %q and %q", ident, prev, c.name)
		}
		used[ident] = c.name
		c.ident = ident
	}
	return nil
}

func identFor(name string) (string, error) {
	if ident, ok := identOverrides[name]; ok {
		return ident, nil
	}
	var b strings.Builder
	for _, r := range name {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	ident := b.String()
	if ident == "" {
		return "", fmt.Errorf("no identifier derivable from name %q", name)
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		return "", fmt.Errorf("identifier for %q starts with a digit, add an override", name)
	}
	return strings.ToUpper(ident[:1]) + ident[1:], nil
}

func checkIntegrity(coins []*coinType) error {
	ids := make(map[uint32]string)
	for _, c := range coins {
		for _, id := range c.ids {
			if prev, ok := ids[id]; ok {
				return fmt.Errorf("coin type %d claimed by both %q and %q", id, prev, c.name)
			}
			ids[id] = c.name
		}
	}
	return nil
}

// unwrapLink reduces a markdown link [text](url) to its text.
func unwrapLink(s string) string {
	if !strings.HasPrefix(s, "[") {
		return s
	}
	if i := strings.Index(s, "]"); i > 0 {
		return s[1:i]
	}
	return s
}

// stripParen drops a parenthesized qualifier, e.g. "Dash (ex Darkcoin)".
func stripParen(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// sanitize drops characters that have no place in a name or ticker ("$DAG"
// becomes "DAG"), keeping letters and digits in any script plus the
// punctuation that occurs in legitimate upstream names.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case strings.ContainsRune("_ -+.^'", r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func joinIDs(ids []uint32, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, sep)
}
