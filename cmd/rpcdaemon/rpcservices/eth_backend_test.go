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
	"math/big"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/rpcgateway/ethdb/privateapi"
	"github.com/erigontech/rpcgateway/gointerfaces"
	"github.com/erigontech/rpcgateway/gointerfaces/grpcutil"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	"github.com/erigontech/rpcgateway/gointerfaces/types"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]error
}

func (o *recordingObserver) ObserveCall(method string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls[method] = err
}

func serve(t *testing.T, srv remote.ETHBACKENDServer) remote.ETHBACKENDClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpcutil.NewServer(100, nil)
	remote.RegisterETHBACKENDServer(server, srv)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpcutil.Connect(nil, "passthrough:///bufnet", 0, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return remote.NewETHBACKENDClient(conn)
}

func newMockBackend(t *testing.T) (*RemoteBackend, *privateapi.EthBackendServer, *recordingObserver) {
	logger := log.New()
	srv := privateapi.NewEthBackendServer(&privateapi.StaticBackend{
		Coinbase:  common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"),
		NetworkID: 5,
		Peers:     7,
		Name:      "erigon/mock",
	}, logger)
	observer := &recordingObserver{calls: map[string]error{}}
	return NewRemoteBackend(serve(t, srv), logger, observer), srv, observer
}

func TestRemoteBackendQueries(t *testing.T) {
	back, _, observer := newMockBackend(t)
	ctx := context.Background()

	eb, err := back.Etherbase(ctx)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"), eb)

	nv, err := back.NetVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(5), nv)

	pc, err := back.NetPeerCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(7), pc)

	pv, err := back.ProtocolVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(66), pv)

	cv, err := back.ClientVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, "erigon/mock", cv)

	v, err := back.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, gointerfaces.Version{Major: 3}, v)
	require.NoError(t, back.EnsureVersionCompatibility(ctx))

	require.Len(t, observer.calls, 6)
	for method, err := range observer.calls {
		require.NoError(t, err, method)
	}
}

func TestRemoteBackendEngine(t *testing.T) {
	back, srv, _ := newMockBackend(t)
	ctx := context.Background()

	payload := &engine_types.ExecutionPayload{
		ParentHash:    common.HexToHash("0x3b8fb240d288781d4aac94d3fd16809ee413bc99294a085798a589dae51ddd4a"),
		FeeRecipient:  common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"),
		BlockNumber:   1,
		GasLimit:      0x1c9c380,
		Timestamp:     5,
		ExtraData:     []byte{},
		BaseFeePerGas: (*hexutil.Big)(big.NewInt(7)),
		Transactions:  []hexutil.Bytes{{0xf9, 0x2e}},
	}
	payload.BlockHash = privateapi.PayloadHeader(payload).Hash()

	st, err := back.EngineNewPayloadV1(ctx, payload)
	require.NoError(t, err)
	require.Equal(t, "VALID", st.Status)
	require.Equal(t, payload.BlockHash, *st.LatestValidHash)
	require.Nil(t, st.ValidationError)

	got, err := back.EngineGetPayloadV1(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	payload.BlockHash = common.Hash{1}
	st, err = back.EngineNewPayloadV1(ctx, payload)
	require.NoError(t, err)
	require.Equal(t, "INVALID_BLOCK_HASH", st.Status)
	require.Nil(t, st.LatestValidHash)
	require.Equal(t, "invalid block hash", *st.ValidationError)

	wire, err := engine_types.ConvertPayloadToRpc(payload)
	require.NoError(t, err)
	_, err = back.EngineGetPayloadV1(ctx, srv.AddPendingPayload(wire)+1)
	var rpcErr *grpcutil.RPCError
	require.True(t, errors.As(err, &rpcErr))
	require.Equal(t, remote.ETHBACKEND_EngineGetPayloadV1_FullMethodName, rpcErr.Method)
	require.ErrorIs(t, err, engine_types.ErrUnknownPayload)
}

type oddBackend struct {
	remote.UnimplementedETHBACKENDServer
}

func (oddBackend) Etherbase(context.Context, *remote.EtherbaseRequest) (*remote.EtherbaseReply, error) {
	return &remote.EtherbaseReply{}, nil
}

func (oddBackend) Version(context.Context, *emptypb.Empty) (*types.VersionReply, error) {
	return &types.VersionReply{Major: 3, Minor: 1}, nil
}

func (oddBackend) NetVersion(context.Context, *remote.NetVersionRequest) (*remote.NetVersionReply, error) {
	return nil, status.Error(codes.Unavailable, "syncing")
}

func TestRemoteBackendEdgeCases(t *testing.T) {
	observer := &recordingObserver{calls: map[string]error{}}
	back := NewRemoteBackend(serve(t, oddBackend{}), log.New(), observer)
	ctx := context.Background()

	eb, err := back.Etherbase(ctx)
	require.NoError(t, err)
	require.Equal(t, common.Address{}, eb)

	require.ErrorIs(t, back.EnsureVersionCompatibility(ctx), ErrIncompatibleVersion)

	_, err = back.NetVersion(ctx)
	require.Equal(t, codes.Unavailable, status.Code(err))
	require.True(t, grpcutil.IsRetryLater(err))
	require.Error(t, observer.calls["NetVersion"])
}

func TestRemoteBackendCancelledCall(t *testing.T) {
	var mu sync.Mutex
	var records []*log.Record
	logger := log.New()
	logger.SetHandler(log.FuncHandler(func(r *log.Record) error {
		mu.Lock()
		defer mu.Unlock()
		records = append(records, r)
		return nil
	}))
	observer := &recordingObserver{calls: map[string]error{}}
	back := NewRemoteBackend(serve(t, oddBackend{}), logger, observer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := back.ClientVersion(ctx)
	require.Error(t, err)
	require.True(t, grpcutil.IsEndOfStream(err))
	require.Error(t, observer.calls["ClientVersion"])

	_, err = back.NetVersion(context.Background())
	require.False(t, grpcutil.IsEndOfStream(err))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, records, 2)
	require.Equal(t, "ClientVersion cancelled", records[0].Msg)
	require.Equal(t, log.LvlTrace, records[0].Lvl)
	require.Equal(t, "NetVersion", records[1].Msg)
	require.Equal(t, log.LvlDebug, records[1].Lvl)
}
