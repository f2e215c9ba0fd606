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

// slip44gen fetches the upstream SLIP-0044 registry and regenerates the
// coin table consumed by the slip44 package. It is a maintenance tool, not
// part of the library's runtime: a failed run leaves the committed table
// untouched.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"
)

const defaultRegistryURL = "https://raw.githubusercontent.com/satoshilabs/slips/master/slip-0044.md"

var (
	// Git information set by linker when building with ci.go.
	gitCommit string
	gitDate   string

	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "regenerate the SLIP-0044 coin registry table",
		Version: versionWithCommit(gitCommit, gitDate),
		Writer:  os.Stdout,
	}

	urlFlag = cli.StringFlag{
		Name:  "url",
		Usage: "upstream SLIP-0044 registry markdown",
		Value: defaultRegistryURL,
	}
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "generated Go source file to overwrite",
		Value: "coins_gen.go",
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "per-request timeout for the upstream fetch",
		Value: 30 * time.Second,
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (debug, info, warn, error)",
		Value: "info",
	}
)

func init() {
	app.Flags = []cli.Flag{urlFlag, outputFlag, timeoutFlag, verbosityFlag}
	app.Action = generate
}

func main() {
	exit(app.Run(os.Args))
}

func exit(err interface{}) {
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func generate(ctx *cli.Context) error {
	logger, err := newLogger(ctx.String("verbosity"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	url := ctx.String("url")
	output := ctx.String("output")

	f := &fetcher{
		url:        url,
		client:     &http.Client{Timeout: ctx.Duration("timeout")},
		maxElapsed: 2 * time.Minute,
		logger:     logger,
	}
	logger.Info("Fetching SLIP-0044 registry", zap.String("url", url))
	markdown, err := f.fetch(context.Background())
	if err != nil {
		return err
	}
	logger.Info("Fetched registry markdown", zap.Int("bytes", len(markdown)))

	coins, stats, err := parseRegistry(markdown, logger)
	if err != nil {
		return err
	}
	logger.Info("Parsed registry", zap.Int("coins", len(coins)))

	src, err := renderTable(url, coins)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	for _, name := range stats.renamedNames {
		color.Yellow("Renamed colliding coin: %s", name)
	}
	for _, ticker := range stats.clearedTickers {
		color.Yellow("Duplicate ticker cleared from: %s", ticker)
	}
	printSummary(os.Stdout, stats)
	color.Green("Wrote %d coins to %s", len(coins), output)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return config.Build()
}

func printSummary(w *os.File, stats *parseStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rows", "Skipped", "Coins", "With ticker", "Merged ids", "Renamed", "Ticker cleared"})
	table.Append([]string{
		strconv.Itoa(stats.rows),
		strconv.Itoa(stats.skipped),
		strconv.Itoa(stats.coins),
		strconv.Itoa(stats.withTicker),
		strconv.Itoa(stats.merged),
		strconv.Itoa(stats.renamed),
		strconv.Itoa(stats.tickerCleared),
	})
	table.Render()
}

func versionWithCommit(gitCommit, gitDate string) string {
	vsn := "1.0.0"
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if gitDate != "" {
		vsn += "-" + gitDate
	}
	return vsn
}
