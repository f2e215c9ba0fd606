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
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// fetcher downloads the registry markdown, retrying transient failures with
// exponential backoff. Client errors (4xx) are permanent: retrying a bad
// URL will not fix it.
type fetcher struct {
	url        string
	client     *http.Client
	maxElapsed time.Duration
	logger     *zap.Logger
}

func (f *fetcher) fetch(ctx context.Context) (string, error) {
	var body string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := f.client.Do(req)
		if err != nil {
			f.logger.Warn("Fetch attempt failed", zap.Error(err))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("upstream returned status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			f.logger.Warn("Fetch attempt failed", zap.Int("status", resp.StatusCode))
			return err
		}
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		body = string(b)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = f.maxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("fetching %s: %w", f.url, err)
	}
	return body, nil
}
