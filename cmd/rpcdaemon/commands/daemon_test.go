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

package commands

import (
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/cli/httpcfg"
	"github.com/erigontech/rpcgateway/kv/memdb"
	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
	"github.com/erigontech/rpcgateway/turbo/transactions"
)

func namespaces(list []rpc.API) []string {
	out := make([]string, 0, len(list))
	for _, api := range list {
		out = append(out, api.Namespace)
	}
	return out
}

func TestAPIList(t *testing.T) {
	backend := rpchelper.NewMockApiBackend(gomock.NewController(t))
	cfg := httpcfg.Default()
	cfg.API = []string{"eth", "net", "web3", "debug", "engine", "unknown"}

	assert.Equal(t, []string{"eth", "net", "web3", "engine"}, namespaces(APIList(backend, nil, nil, cfg)))

	db := memdb.NewTestDB(t)
	tracer := transactions.NewTraceExecutor(db, 1, nil, log.New())
	assert.Equal(t, []string{"eth", "net", "web3", "debug", "engine"}, namespaces(APIList(backend, db, tracer, cfg)))

	cfg.API = []string{"web3"}
	list := APIList(backend, db, tracer, cfg)
	assert.Equal(t, []string{"web3"}, namespaces(list))
	assert.Contains(t, list[0].Service.Methods(), "web3_clientVersion")
}
