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
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
)

// NetAPI the interface for the net_ RPC commands
type NetAPI interface {
	Version(ctx context.Context) (string, error)
	PeerCount(ctx context.Context) (hexutil.Uint, error)
}

// NetAPIImpl data structure to store things needed for net_ commands
type NetAPIImpl struct {
	ethBackend rpchelper.ApiBackend
}

// NewNetAPIImpl returns NetAPIImplImpl instance
func NewNetAPIImpl(eth rpchelper.ApiBackend) *NetAPIImpl {
	return &NetAPIImpl{ethBackend: eth}
}

// Version implements net_version. Returns the current network id as a decimal string.
func (api *NetAPIImpl) Version(ctx context.Context) (string, error) {
	res, err := api.ethBackend.NetVersion(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(res, 10), nil
}

// PeerCount implements net_peerCount. Returns number of peers currently connected to the backend.
func (api *NetAPIImpl) PeerCount(ctx context.Context) (hexutil.Uint, error) {
	res, err := api.ethBackend.NetPeerCount(ctx)
	if err != nil {
		return 0, err
	}
	return hexutil.Uint(res), nil
}

func (api *NetAPIImpl) Methods() map[string]rpc.Handler {
	return map[string]rpc.Handler{
		"net_version":   noParams(api.Version),
		"net_peerCount": noParams(api.PeerCount),
	}
}
