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
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
)

// EthAPI is the eth namespace subset answered by the backend.
type EthAPI interface {
	Coinbase(ctx context.Context) (common.Address, error)
	ProtocolVersion(ctx context.Context) (hexutil.Uint, error)
}

// APIImpl is implementation of the EthAPI interface
type APIImpl struct {
	ethBackend rpchelper.ApiBackend
}

// NewEthAPI returns APIImpl instance
func NewEthAPI(eth rpchelper.ApiBackend) *APIImpl {
	return &APIImpl{ethBackend: eth}
}

// Coinbase implements eth_coinbase. Returns the current client coinbase address.
func (api *APIImpl) Coinbase(ctx context.Context) (common.Address, error) {
	return api.ethBackend.Etherbase(ctx)
}

// ProtocolVersion implements eth_protocolVersion. Returns the current ethereum protocol version.
func (api *APIImpl) ProtocolVersion(ctx context.Context) (hexutil.Uint, error) {
	ver, err := api.ethBackend.ProtocolVersion(ctx)
	if err != nil {
		return 0, err
	}
	return hexutil.Uint(ver), nil
}

func (api *APIImpl) Methods() map[string]rpc.Handler {
	return map[string]rpc.Handler{
		"eth_coinbase":        noParams(api.Coinbase),
		"eth_protocolVersion": noParams(api.ProtocolVersion),
	}
}
