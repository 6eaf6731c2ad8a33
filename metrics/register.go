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

// Package metrics keeps the process-wide prometheus registry and the
// constructors used by the rpc server and the backend client.
package metrics

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ledgerwatch/log/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	defaultRegistry = prometheus.NewRegistry()

	mu         sync.Mutex
	counters   = map[string]Counter{}
	histograms = map[string]*prometheus.HistogramVec{}
)

func init() {
	defaultRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the default registry, mostly for tests.
func Registry() *prometheus.Registry { return defaultRegistry }

// GetOrCreateCounter returns registered counter with the given name
// or creates new counter if the registry doesn't contain counter with
// the given name.
func GetOrCreateCounter(name string, help ...string) Counter {
	mu.Lock()
	defer mu.Unlock()
	if c, ok := counters[name]; ok {
		return c
	}
	c := &counter{prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: helpOf(name, help)})}
	if err := defaultRegistry.Register(c.Counter); err != nil {
		panic(fmt.Errorf("could not create new counter: %w", err))
	}
	counters[name] = c
	return c
}

// GetOrCreateHistogramVec returns the histogram vector registered under name.
// Later calls must use the same label names.
func GetOrCreateHistogramVec(name string, labels []string, help ...string) *prometheus.HistogramVec {
	mu.Lock()
	defer mu.Unlock()
	if h, ok := histograms[name]; ok {
		return h
	}
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    helpOf(name, help),
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
	}, labels)
	if err := defaultRegistry.Register(h); err != nil {
		panic(fmt.Errorf("could not create new histogram: %w", err))
	}
	histograms[name] = h
	return h
}

func helpOf(name string, help []string) string {
	if len(help) > 0 {
		return help[0]
	}
	return name
}

// ObserveDuration records the time elapsed since start in seconds.
func ObserveDuration(o prometheus.Observer, start time.Time) {
	o.Observe(time.Since(start).Seconds())
}

func Handler() http.Handler {
	return promhttp.HandlerFor(defaultRegistry, promhttp.HandlerOpts{})
}

// Setup starts the exposition endpoint on address, serving /debug/metrics/prometheus.
func Setup(address string, logger log.Logger) (*http.Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/debug/metrics/prometheus", Handler())
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			logger.Error("Failure in running metrics server", "err", err)
		}
	}()
	logger.Info("Starting metrics server", "addr", fmt.Sprintf("http://%s/debug/metrics/prometheus", lis.Addr()))
	return srv, nil
}
