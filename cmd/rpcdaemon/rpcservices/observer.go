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

package rpcservices

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/erigontech/rpcgateway/metrics"
)

// CallObserver receives the outcome of every backend call.
type CallObserver interface {
	ObserveCall(method string, took time.Duration, err error)
}

type NoopObserver struct{}

func (NoopObserver) ObserveCall(string, time.Duration, error) {}

type metricsObserver struct {
	durations *prometheus.HistogramVec
}

// NewMetricsObserver exports backend_call_duration_seconds{method,success}.
func NewMetricsObserver() CallObserver {
	return &metricsObserver{
		durations: metrics.GetOrCreateHistogramVec("backend_call_duration_seconds", []string{"method", "success"}, "ETHBACKEND call latency"),
	}
}

func (o *metricsObserver) ObserveCall(method string, took time.Duration, err error) {
	o.durations.WithLabelValues(method, strconv.FormatBool(err == nil)).Observe(took.Seconds())
}
