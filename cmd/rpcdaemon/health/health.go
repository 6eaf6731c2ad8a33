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
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ledgerwatch/log/v3"
)

const (
	healthHeader      = "X-ERIGON-HEALTHCHECK"
	minPeerCountQuery = "min_peer_count"
	defaultTimeout    = 5 * time.Second
)

type Health struct {
	net     NetAPI
	web3    Web3API
	timeout time.Duration
	logger  log.Logger
}

func New(net NetAPI, web3 Web3API, logger log.Logger) *Health {
	return &Health{net: net, web3: web3, timeout: defaultTimeout, logger: logger}
}

// Check always asks the backend for its client version. Extra checks come from
// X-ERIGON-HEALTHCHECK headers or the query string, e.g. "min_peer_count3".
func (h *Health) Check(r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	errs := []error{checkBackend(ctx, h.web3)}
	for _, query := range requestedChecks(r) {
		switch {
		case strings.HasPrefix(query, minPeerCountQuery):
			peers, err := strconv.ParseUint(strings.TrimPrefix(query, minPeerCountQuery), 10, 32)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", query, err))
				continue
			}
			errs = append(errs, checkMinPeers(ctx, uint(peers), h.net))
		default:
			errs = append(errs, fmt.Errorf("unknown health check %q", query))
		}
	}
	if err := errors.Join(errs...); err != nil {
		h.logger.Debug("health check failed", "err", err)
		return err
	}
	return nil
}

func requestedChecks(r *http.Request) []string {
	checks := r.Header.Values(healthHeader)
	for key := range r.URL.Query() {
		checks = append(checks, key)
	}
	return checks
}
