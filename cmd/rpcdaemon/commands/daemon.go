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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/cli/httpcfg"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
	"github.com/erigontech/rpcgateway/turbo/transactions"
)

const EngineNamespace = "engine"

// APIList describes the list of available RPC apis. The debug namespace needs
// chaindata and is left out when db or tracer is nil.
func APIList(eth rpchelper.ApiBackend, db kv.DatabaseReader, tracer *transactions.TraceExecutor, cfg httpcfg.HttpCfg) (list []rpc.API) {
	enabled := mapset.NewSet[string](cfg.API...)

	if enabled.Contains("eth") {
		list = append(list, rpc.API{
			Namespace: "eth",
			Public:    true,
			Service:   NewEthAPI(eth),
			Version:   "1.0",
		})
	}
	if enabled.Contains("net") {
		list = append(list, rpc.API{
			Namespace: "net",
			Public:    true,
			Service:   NewNetAPIImpl(eth),
			Version:   "1.0",
		})
	}
	if enabled.Contains("web3") {
		list = append(list, rpc.API{
			Namespace: "web3",
			Public:    true,
			Service:   NewWeb3APIImpl(eth),
			Version:   "1.0",
		})
	}
	if enabled.Contains("debug") && db != nil && tracer != nil {
		list = append(list, rpc.API{
			Namespace: "debug",
			Public:    true,
			Service:   NewPrivateDebugAPI(db, tracer),
			Version:   "1.0",
		})
	}
	if enabled.Contains(EngineNamespace) {
		list = append(list, rpc.API{
			Namespace: EngineNamespace,
			Public:    true,
			Service:   NewEngineAPI(eth),
			Version:   "1.0",
		})
	}
	return list
}
