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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/rpcgateway/gointerfaces"
	"github.com/erigontech/rpcgateway/gointerfaces/grpcutil"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	"github.com/erigontech/rpcgateway/gointerfaces/types"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
)

// EthBackendAPIVersion is the ETHBACKEND interface version this client speaks.
var EthBackendAPIVersion = gointerfaces.Version{Major: 3, Minor: 0, Patch: 0}

var ErrIncompatibleVersion = errors.New("incompatible interface versions")

var _ rpchelper.ApiBackend = (*RemoteBackend)(nil)

// RemoteBackend implements rpchelper.ApiBackend over the ETHBACKEND gRPC service.
// Every call is a fresh UnaryCall; failures come back as *grpcutil.RPCError.
type RemoteBackend struct {
	remoteEthBackend remote.ETHBACKENDClient
	log              log.Logger
	version          gointerfaces.Version
	observer         CallObserver
}

func NewRemoteBackend(client remote.ETHBACKENDClient, logger log.Logger, observer CallObserver) *RemoteBackend {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &RemoteBackend{
		remoteEthBackend: client,
		version:          EthBackendAPIVersion,
		log:              logger.New("remote_service", "eth_backend"),
		observer:         observer,
	}
}

// finish records the call duration and logs it with the decoded result.
func (back *RemoteBackend) finish(method string, start time.Time, err error, ctx ...any) {
	took := time.Since(start)
	back.observer.ObserveCall(method, took, err)
	if err != nil {
		if grpcutil.IsEndOfStream(err) {
			back.log.Trace(method+" cancelled", "t", took)
			return
		}
		back.log.Debug(method, "t", took, "err", err)
		return
	}
	back.log.Debug(method, append(ctx, "t", took)...)
}

func call[Req, Reply any](ctx context.Context, method string, fn grpcutil.UnaryFunc[Req, Reply], req *Req) (*Reply, error) {
	return grpcutil.NewUnaryCall(method, fn).Call(ctx, req)
}

func (back *RemoteBackend) Version(ctx context.Context) (gointerfaces.Version, error) {
	start := time.Now()
	reply, err := call(ctx, remote.ETHBACKEND_Version_FullMethodName, back.remoteEthBackend.Version, &emptypb.Empty{})
	if err != nil {
		back.finish("Version", start, err)
		return gointerfaces.Version{}, err
	}
	v := gointerfaces.VersionFromProto(reply)
	back.finish("Version", start, nil, "version", v.String())
	return v, nil
}

// EnsureVersionCompatibility fails unless the backend differs from us at most in the patch number.
func (back *RemoteBackend) EnsureVersionCompatibility(ctx context.Context) error {
	versionReply, err := call(ctx, remote.ETHBACKEND_Version_FullMethodName,
		func(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*types.VersionReply, error) {
			return back.remoteEthBackend.Version(ctx, in, append(opts, grpc.WaitForReady(true))...)
		}, &emptypb.Empty{})
	if err != nil {
		back.log.Error("getting Version", "err", err)
		return err
	}
	server := fmt.Sprintf("%d.%d.%d", versionReply.Major, versionReply.Minor, versionReply.Patch)
	if !gointerfaces.EnsureVersion(back.version, versionReply) {
		back.log.Error("incompatible interface versions", "client", back.version.String(), "server", server)
		return fmt.Errorf("%w: client %s, server %s", ErrIncompatibleVersion, back.version, server)
	}
	back.log.Info("interfaces compatible", "client", back.version.String(), "server", server)
	return nil
}

// Etherbase returns the zero address when the backend has none configured.
func (back *RemoteBackend) Etherbase(ctx context.Context) (common.Address, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_Etherbase_FullMethodName, back.remoteEthBackend.Etherbase, &remote.EtherbaseRequest{})
	if err != nil {
		back.finish("Etherbase", start, err)
		return common.Address{}, err
	}
	var address common.Address
	if res.Address != nil {
		address = gointerfaces.ConvertH160toAddress(res.Address)
	}
	back.finish("Etherbase", start, nil, "address", address)
	return address, nil
}

func (back *RemoteBackend) NetVersion(ctx context.Context) (uint64, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_NetVersion_FullMethodName, back.remoteEthBackend.NetVersion, &remote.NetVersionRequest{})
	if err != nil {
		back.finish("NetVersion", start, err)
		return 0, err
	}
	back.finish("NetVersion", start, nil, "id", res.Id)
	return res.Id, nil
}

func (back *RemoteBackend) NetPeerCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_NetPeerCount_FullMethodName, back.remoteEthBackend.NetPeerCount, &remote.NetPeerCountRequest{})
	if err != nil {
		back.finish("NetPeerCount", start, err)
		return 0, err
	}
	back.finish("NetPeerCount", start, nil, "count", res.Count)
	return res.Count, nil
}

func (back *RemoteBackend) ProtocolVersion(ctx context.Context) (uint64, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_ProtocolVersion_FullMethodName, back.remoteEthBackend.ProtocolVersion, &remote.ProtocolVersionRequest{})
	if err != nil {
		back.finish("ProtocolVersion", start, err)
		return 0, err
	}
	back.finish("ProtocolVersion", start, nil, "id", res.Id)
	return res.Id, nil
}

func (back *RemoteBackend) ClientVersion(ctx context.Context) (string, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_ClientVersion_FullMethodName, back.remoteEthBackend.ClientVersion, &remote.ClientVersionRequest{})
	if err != nil {
		back.finish("ClientVersion", start, err)
		return "", err
	}
	back.finish("ClientVersion", start, nil, "node_name", res.NodeName)
	return res.NodeName, nil
}

func (back *RemoteBackend) EngineGetPayloadV1(ctx context.Context, payloadID uint64) (*engine_types.ExecutionPayload, error) {
	start := time.Now()
	res, err := call(ctx, remote.ETHBACKEND_EngineGetPayloadV1_FullMethodName, back.remoteEthBackend.EngineGetPayloadV1, &remote.EngineGetPayloadRequest{PayloadId: payloadID})
	if err != nil {
		if grpcutil.ErrIs(err, engine_types.ErrUnknownPayload) {
			err = fmt.Errorf("%w: %w", engine_types.ErrUnknownPayload, err)
		}
		back.finish("EngineGetPayloadV1", start, err)
		return nil, err
	}
	payload := engine_types.ConvertPayloadFromRpc(res)
	back.finish("EngineGetPayloadV1", start, nil, "number", uint64(payload.BlockNumber), "hash", payload.BlockHash, "txs", len(payload.Transactions))
	return payload, nil
}

func (back *RemoteBackend) EngineNewPayloadV1(ctx context.Context, payload *engine_types.ExecutionPayload) (*engine_types.PayloadStatus, error) {
	start := time.Now()
	req, err := engine_types.ConvertPayloadToRpc(payload)
	if err != nil {
		back.finish("EngineNewPayloadV1", start, err)
		return nil, err
	}
	res, err := call(ctx, remote.ETHBACKEND_EngineNewPayloadV1_FullMethodName, back.remoteEthBackend.EngineNewPayloadV1, req)
	if err != nil {
		back.finish("EngineNewPayloadV1", start, err)
		return nil, err
	}
	status := engine_types.ConvertPayloadStatus(res)
	back.finish("EngineNewPayloadV1", start, nil, "number", uint64(payload.BlockNumber), "status", status.Status)
	return status, nil
}
