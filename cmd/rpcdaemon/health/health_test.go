// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	peers hexutil.Uint
	err   error
}

func (f *fakeBackend) PeerCount(context.Context) (hexutil.Uint, error) { return f.peers, f.err }

func (f *fakeBackend) ClientVersion(context.Context) (string, error) { return "erigon/mock", f.err }

func TestHealthCheck(t *testing.T) {
	backend := &fakeBackend{peers: 2}
	h := New(backend, backend, log.New())

	require.NoError(t, h.Check(httptest.NewRequest(http.MethodGet, "/health", nil)))
	require.NoError(t, h.Check(httptest.NewRequest(http.MethodGet, "/health?min_peer_count2", nil)))

	err := h.Check(httptest.NewRequest(http.MethodGet, "/health?min_peer_count3", nil))
	require.ErrorIs(t, err, errNotEnoughPeers)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Add(healthHeader, "min_peer_count5")
	require.ErrorIs(t, h.Check(req), errNotEnoughPeers)

	err = h.Check(httptest.NewRequest(http.MethodGet, "/health?synced", nil))
	assert.ErrorContains(t, err, `unknown health check "synced"`)
}

func TestHealthBackendDown(t *testing.T) {
	down := errors.New("connection refused")
	backend := &fakeBackend{err: down}
	h := New(backend, backend, log.New())

	err := h.Check(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.ErrorIs(t, err, down)
	assert.ErrorContains(t, err, "backend unreachable")
}

func TestHealthWithoutNet(t *testing.T) {
	h := New(nil, nil, log.New())
	require.NoError(t, h.Check(httptest.NewRequest(http.MethodGet, "/health", nil)))
	assert.Error(t, h.Check(httptest.NewRequest(http.MethodGet, "/health?min_peer_count1", nil)))
}
