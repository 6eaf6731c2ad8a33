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
	"bytes"
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/ledgerwatch/log/v3"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/rpcgateway/gointerfaces"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	types2 "github.com/erigontech/rpcgateway/gointerfaces/types"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
)

// EthBackendAPIVersion
// 2.0.0 - move all mining-related methods to 'txpool/mining' server
// 2.1.0 - add NetPeerCount function
// 2.2.0 - add NodesInfo function
// 3.0.0 - adding PoS interfaces
var EthBackendAPIVersion = &types2.VersionReply{Major: 3, Minor: 0, Patch: 0}

const MaxPendingPayloads = 128

// ProtocolVersion of the eth wire protocol reported to clients (ETH66).
const ProtocolVersion = 66

type EthBackend interface {
	Etherbase() (common.Address, error)
	NetVersion() (uint64, error)
	NetPeerCount() (uint64, error)
	NodeName() string
}

// EthBackendServer serves ETHBACKEND from memory: payloads handed to
// EngineNewPayloadV1 are checked against their block hash and kept for
// EngineGetPayloadV1.
type EthBackendServer struct {
	remote.UnimplementedETHBACKENDServer // must be embedded to have forward compatible implementations.

	eth             EthBackend
	logger          log.Logger
	mu              sync.Mutex
	payloadId       uint64
	pendingPayloads map[uint64]*types2.ExecutionPayload
}

func NewEthBackendServer(eth EthBackend, logger log.Logger) *EthBackendServer {
	return &EthBackendServer{eth: eth, logger: logger, pendingPayloads: make(map[uint64]*types2.ExecutionPayload)}
}

func (s *EthBackendServer) Version(context.Context, *emptypb.Empty) (*types2.VersionReply, error) {
	return EthBackendAPIVersion, nil
}

func (s *EthBackendServer) Etherbase(_ context.Context, _ *remote.EtherbaseRequest) (*remote.EtherbaseReply, error) {
	out := &remote.EtherbaseReply{Address: gointerfaces.ConvertAddressToH160(common.Address{})}

	base, err := s.eth.Etherbase()
	if err != nil {
		return out, err
	}

	out.Address = gointerfaces.ConvertAddressToH160(base)
	return out, nil
}

func (s *EthBackendServer) NetVersion(_ context.Context, _ *remote.NetVersionRequest) (*remote.NetVersionReply, error) {
	id, err := s.eth.NetVersion()
	if err != nil {
		return &remote.NetVersionReply{}, err
	}
	return &remote.NetVersionReply{Id: id}, nil
}

func (s *EthBackendServer) NetPeerCount(_ context.Context, _ *remote.NetPeerCountRequest) (*remote.NetPeerCountReply, error) {
	id, err := s.eth.NetPeerCount()
	if err != nil {
		return &remote.NetPeerCountReply{}, err
	}
	return &remote.NetPeerCountReply{Count: id}, nil
}

func (s *EthBackendServer) ProtocolVersion(_ context.Context, _ *remote.ProtocolVersionRequest) (*remote.ProtocolVersionReply, error) {
	return &remote.ProtocolVersionReply{Id: ProtocolVersion}, nil
}

func (s *EthBackendServer) ClientVersion(_ context.Context, _ *remote.ClientVersionRequest) (*remote.ClientVersionReply, error) {
	return &remote.ClientVersionReply{NodeName: s.eth.NodeName()}, nil
}

// AddPendingPayload makes payload available to EngineGetPayloadV1 and returns its id.
// The oldest payload is dropped once MaxPendingPayloads are held.
func (s *EthBackendServer) AddPendingPayload(payload *types2.ExecutionPayload) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloadId++
	s.pendingPayloads[s.payloadId] = payload
	if len(s.pendingPayloads) > MaxPendingPayloads {
		delete(s.pendingPayloads, s.payloadId-MaxPendingPayloads)
	}
	return s.payloadId
}

func (s *EthBackendServer) EngineGetPayloadV1(_ context.Context, req *remote.EngineGetPayloadRequest) (*types2.ExecutionPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.pendingPayloads[req.PayloadId]
	if !ok {
		return nil, engine_types.ErrUnknownPayload
	}
	return payload, nil
}

// EngineNewPayloadV1 validates the block hash of req and stores it as pending payload.
func (s *EthBackendServer) EngineNewPayloadV1(_ context.Context, req *types2.ExecutionPayload) (*remote.EnginePayloadStatus, error) {
	payload := engine_types.ConvertPayloadFromRpc(req)
	header := PayloadHeader(payload)
	blockHash := header.Hash()
	if blockHash != payload.BlockHash {
		s.logger.Warn("[NewPayload] invalid block hash", "stated", payload.BlockHash, "actual", blockHash)
		return &remote.EnginePayloadStatus{Status: remote.EngineStatus_INVALID_BLOCK_HASH, ValidationError: "invalid block hash"}, nil
	}
	id := s.AddPendingPayload(req)
	s.logger.Info("[NewPayload] accepted", "number", header.Number, "hash", blockHash, "payloadId", id)
	return &remote.EnginePayloadStatus{Status: remote.EngineStatus_VALID, LatestValidHash: gointerfaces.ConvertHashToH256(blockHash)}, nil
}

// PayloadHeader assembles the London header described by payload.
func PayloadHeader(payload *engine_types.ExecutionPayload) *types.Header {
	var baseFee *big.Int
	if payload.BaseFeePerGas != nil {
		baseFee = payload.BaseFeePerGas.ToInt()
	}
	txs := make(rawTransactions, len(payload.Transactions))
	for i, txn := range payload.Transactions {
		txs[i] = txn
	}
	return &types.Header{
		ParentHash:  payload.ParentHash,
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    payload.FeeRecipient,
		Root:        payload.StateRoot,
		TxHash:      types.DeriveSha(txs, trie.NewStackTrie(nil)),
		ReceiptHash: payload.ReceiptsRoot,
		Bloom:       payload.LogsBloom,
		Difficulty:  new(big.Int),
		Number:      new(big.Int).SetUint64(uint64(payload.BlockNumber)),
		GasLimit:    uint64(payload.GasLimit),
		GasUsed:     uint64(payload.GasUsed),
		Time:        uint64(payload.Timestamp),
		Extra:       payload.ExtraData,
		MixDigest:   payload.PrevRandao,
		BaseFee:     baseFee,
	}
}

// rawTransactions hashes already encoded transactions into the transactions trie.
type rawTransactions [][]byte

func (r rawTransactions) Len() int { return len(r) }

func (r rawTransactions) EncodeIndex(i int, w *bytes.Buffer) { w.Write(r[i]) }
