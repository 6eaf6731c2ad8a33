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

package privateapi

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/rpcgateway/gointerfaces"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	types2 "github.com/erigontech/rpcgateway/gointerfaces/types"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
)

func newTestServer() *EthBackendServer {
	return NewEthBackendServer(&StaticBackend{
		Coinbase:  common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"),
		NetworkID: 5,
		Peers:     3,
		Name:      "erigon/mock",
	}, log.New())
}

func testPayload() *engine_types.ExecutionPayload {
	return &engine_types.ExecutionPayload{
		ParentHash:    common.HexToHash("0x3b8fb240d288781d4aac94d3fd16809ee413bc99294a085798a589dae51ddd4a"),
		FeeRecipient:  common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"),
		StateRoot:     common.HexToHash("0xca3149fa9e37db08d1cd49c9061db1002ef1cd58db2210f2115c8c989b2bdf45"),
		ReceiptsRoot:  common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421"),
		PrevRandao:    common.HexToHash("0x01"),
		BlockNumber:   1,
		GasLimit:      0x1c9c380,
		Timestamp:     5,
		ExtraData:     []byte{},
		BaseFeePerGas: (*hexutil.Big)(big.NewInt(7)),
		Transactions:  []hexutil.Bytes{},
	}
}

func TestChainQueries(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	eb, err := s.Etherbase(ctx, &remote.EtherbaseRequest{})
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"), gointerfaces.ConvertH160toAddress(eb.Address))

	nv, err := s.NetVersion(ctx, &remote.NetVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(5), nv.Id)

	pc, err := s.NetPeerCount(ctx, &remote.NetPeerCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(3), pc.Count)

	pv, err := s.ProtocolVersion(ctx, &remote.ProtocolVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(66), pv.Id)

	cv, err := s.ClientVersion(ctx, &remote.ClientVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, "erigon/mock", cv.NodeName)

	v, err := s.Version(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, uint32(3), v.Major)
}

func wirePayload(t *testing.T, payload *engine_types.ExecutionPayload) *types2.ExecutionPayload {
	t.Helper()
	wire, err := engine_types.ConvertPayloadToRpc(payload)
	require.NoError(t, err)
	return wire
}

func TestNewPayloadBlockHash(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	payload := testPayload()
	payload.BlockHash = common.HexToHash("0x3559e851470f6e7bbed1db474980683e8c315bfce99b2a6ef47c057c04de7858")
	status, err := s.EngineNewPayloadV1(ctx, wirePayload(t, payload))
	require.NoError(t, err)
	require.Equal(t, remote.EngineStatus_INVALID_BLOCK_HASH, status.Status)
	require.Nil(t, status.LatestValidHash)

	payload.BlockHash = PayloadHeader(payload).Hash()
	status, err = s.EngineNewPayloadV1(ctx, wirePayload(t, payload))
	require.NoError(t, err)
	require.Equal(t, remote.EngineStatus_VALID, status.Status)
	require.Equal(t, payload.BlockHash, gointerfaces.ConvertH256ToHash(status.LatestValidHash))

	stored, err := s.EngineGetPayloadV1(ctx, &remote.EngineGetPayloadRequest{PayloadId: 1})
	require.NoError(t, err)
	require.Equal(t, payload, engine_types.ConvertPayloadFromRpc(stored))

	_, err = s.EngineGetPayloadV1(ctx, &remote.EngineGetPayloadRequest{PayloadId: 2})
	require.ErrorIs(t, err, engine_types.ErrUnknownPayload)
}

func TestPendingPayloadsBounded(t *testing.T) {
	s := newTestServer()
	wire := wirePayload(t, testPayload())
	for i := 0; i < MaxPendingPayloads+1; i++ {
		s.AddPendingPayload(wire)
	}
	_, err := s.EngineGetPayloadV1(context.Background(), &remote.EngineGetPayloadRequest{PayloadId: 1})
	require.ErrorIs(t, err, engine_types.ErrUnknownPayload)
	_, err = s.EngineGetPayloadV1(context.Background(), &remote.EngineGetPayloadRequest{PayloadId: MaxPendingPayloads + 1})
	require.NoError(t, err)
}
