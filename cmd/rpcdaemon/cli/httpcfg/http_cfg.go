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

package httpcfg

import (
	"time"

	"github.com/c2h5oh/datasize"
)

const (
	DefaultHTTPHost       = "localhost"
	DefaultHTTPPort       = 8545
	DefaultEngineHTTPPort = 8551
	DefaultMetricsPort    = 6060
)

type HttpCfg struct {
	PrivateApiAddr          string
	HttpListenAddress       string
	HttpPort                int
	EngineHTTPListenAddress string
	EnginePort              int
	TLSCertfile             string
	TLSCACert               string
	TLSKeyFile              string
	HttpCORSDomain          []string
	HttpVirtualHost         []string
	HttpCompression         bool
	API                     []string
	RpcAllowListFilePath    string
	RpcBatchConcurrency     uint
	RpcBatchLimit           int
	TraceRequests           bool // Print requests to the log at INFO level
	GRPCMaxRecvSize         datasize.ByteSize
	Chaindata               string // empty disables debug_traceCall
	TraceWorkers            int
	StateCache              int    // entries in the point-in-time read cache
	JWTSecretPath           string // Engine API Authentication
	MetricsEnabled          bool
	MetricsHTTP             string
	MetricsPort             int
	HandshakeTimeout        time.Duration
	ShutdownTimeout         time.Duration
}

// Default is the configuration used when no flag or config file overrides a field.
func Default() HttpCfg {
	return HttpCfg{
		PrivateApiAddr:          "127.0.0.1:9090",
		HttpListenAddress:       DefaultHTTPHost,
		HttpPort:                DefaultHTTPPort,
		EngineHTTPListenAddress: DefaultHTTPHost,
		EnginePort:              DefaultEngineHTTPPort,
		HttpVirtualHost:         []string{"localhost"},
		HttpCompression:         true,
		API:                     []string{"eth", "net", "web3", "engine"},
		RpcBatchConcurrency:     2,
		RpcBatchLimit:           100,
		TraceWorkers:            4,
		StateCache:              100_000,
		GRPCMaxRecvSize:         200 * datasize.MB,
		MetricsHTTP:             "127.0.0.1",
		MetricsPort:             DefaultMetricsPort,
		HandshakeTimeout:        time.Minute,
		ShutdownTimeout:         5 * time.Second,
	}
}
