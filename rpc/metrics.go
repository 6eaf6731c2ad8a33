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

package rpc

import (
	"strconv"
	"time"

	"github.com/erigontech/rpcgateway/metrics"
)

var (
	rpcRequestGauge    = metrics.GetOrCreateCounter("rpc_total")
	failedRequestGauge = metrics.GetOrCreateCounter("rpc_failure")
	rpcServingTimer    = metrics.GetOrCreateHistogramVec("rpc_duration_seconds", []string{"method", "success"}, "rpc request serving time")
)

// PreAllocateRPCMetricLabels creates the series of every registered method so
// they are exported before the first call.
func PreAllocateRPCMetricLabels(methods []string) {
	for _, method := range methods {
		rpcServingTimer.WithLabelValues(method, "true")
		rpcServingTimer.WithLabelValues(method, "false")
	}
}

func observeRPC(method string, success bool, start time.Time) {
	rpcRequestGauge.Inc()
	if !success {
		failedRequestGauge.Inc()
	}
	metrics.ObserveDuration(rpcServingTimer.WithLabelValues(method, strconv.FormatBool(success)), start)
}
