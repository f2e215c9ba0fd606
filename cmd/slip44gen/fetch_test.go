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
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher(url string) *fetcher {
	return &fetcher{
		url:        url,
		client:     &http.Client{Timeout: 5 * time.Second},
		maxElapsed: 10 * time.Second,
		logger:     zap.NewNop(),
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("markdown body"))
	}))
	defer srv.Close()

	body, err := newTestFetcher(srv.URL).fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "markdown body", body)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("eventually"))
	}))
	defer srv.Close()

	body, err := newTestFetcher(srv.URL).fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eventually", body)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestFetchClientErrorIsPermanent(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestFetcher(srv.URL).fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.EqualValues(t, 1, atomic.LoadInt32(&attempts), "4xx must not be retried")
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	f := newTestFetcher(srv.URL)
	_, err := f.fetch(ctx)
	assert.Error(t, err)
}
