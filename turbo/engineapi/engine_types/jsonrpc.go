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

package engine_types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/erigontech/rpcgateway/gointerfaces"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	types2 "github.com/erigontech/rpcgateway/gointerfaces/types"
)

// ErrUnknownPayload is returned for a payload id the backend never handed out or already evicted.
var ErrUnknownPayload = errors.New("unknown payload")

// ExecutionPayload represents an execution payload (aka block)
type ExecutionPayload struct {
	ParentHash    common.Hash     `json:"parentHash"    gencodec:"required"`
	FeeRecipient  common.Address  `json:"suggestedFeeRecipient"  gencodec:"required"`
	StateRoot     common.Hash     `json:"stateRoot"     gencodec:"required"`
	ReceiptsRoot  common.Hash     `json:"receiptsRoot"  gencodec:"required"`
	LogsBloom     types.Bloom     `json:"logsBloom"     gencodec:"required"`
	PrevRandao    common.Hash     `json:"prevRandao"    gencodec:"required"`
	BlockNumber   hexutil.Uint64  `json:"blockNumber"   gencodec:"required"`
	GasLimit      hexutil.Uint64  `json:"gasLimit"      gencodec:"required"`
	GasUsed       hexutil.Uint64  `json:"gasUsed"       gencodec:"required"`
	Timestamp     hexutil.Uint64  `json:"timestamp"     gencodec:"required"`
	ExtraData     hexutil.Bytes   `json:"extraData"     gencodec:"required"`
	BaseFeePerGas *hexutil.Big    `json:"baseFeePerGas" gencodec:"required"`
	BlockHash     common.Hash     `json:"blockHash"     gencodec:"required"`
	Transactions  []hexutil.Bytes `json:"transactions"  gencodec:"required"`
}

// PayloadStatus as defined in the Engine API, optional fields are left out when unset.
type PayloadStatus struct {
	Status          string       `json:"status" gencodec:"required"`
	LatestValidHash *common.Hash `json:"latestValidHash,omitempty"`
	ValidationError *string      `json:"validationError,omitempty"`
}

// PayloadID is the 8 byte identifier handed out by forkchoiceUpdated.
type PayloadID hexutil.Bytes

func (p *PayloadID) UnmarshalJSON(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalJSON(input); err != nil {
		return err
	}
	if len(b) != 8 {
		return fmt.Errorf("invalid payload id: want 8 bytes, have %d", len(b))
	}
	*p = PayloadID(b)
	return nil
}

func (p PayloadID) MarshalText() ([]byte, error) { return hexutil.Bytes(p).MarshalText() }

func (p PayloadID) Uint64() uint64 { return binary.BigEndian.Uint64(p) }

func EncodePayloadID(id uint64) PayloadID {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return b[:]
}

// ConvertPayloadFromRpc decodes the backend wire payload.
func ConvertPayloadFromRpc(payload *types2.ExecutionPayload) *ExecutionPayload {
	res := &ExecutionPayload{
		ParentHash:   gointerfaces.ConvertH256ToHash(payload.ParentHash),
		FeeRecipient: gointerfaces.ConvertH160toAddress(payload.Coinbase),
		StateRoot:    gointerfaces.ConvertH256ToHash(payload.StateRoot),
		ReceiptsRoot: gointerfaces.ConvertH256ToHash(payload.ReceiptRoot),
		LogsBloom:    gointerfaces.ConvertH2048ToBloom(payload.LogsBloom),
		PrevRandao:   gointerfaces.ConvertH256ToHash(payload.PrevRandao),
		BlockNumber:  hexutil.Uint64(payload.BlockNumber),
		GasLimit:     hexutil.Uint64(payload.GasLimit),
		GasUsed:      hexutil.Uint64(payload.GasUsed),
		Timestamp:    hexutil.Uint64(payload.Timestamp),
		ExtraData:    payload.ExtraData,
		BlockHash:    gointerfaces.ConvertH256ToHash(payload.BlockHash),
		Transactions: make([]hexutil.Bytes, len(payload.Transactions)),
	}
	if res.ExtraData == nil {
		res.ExtraData = []byte{}
	}
	baseFee := new(big.Int)
	if payload.BaseFeePerGas != nil {
		baseFee = gointerfaces.ConvertH256ToUint256Int(payload.BaseFeePerGas).ToBig()
	}
	res.BaseFeePerGas = (*hexutil.Big)(baseFee)
	for i, txn := range payload.Transactions {
		res.Transactions[i] = txn
	}
	return res
}

// ConvertPayloadToRpc encodes every field, including the block hash, for the backend.
func ConvertPayloadToRpc(payload *ExecutionPayload) (*types2.ExecutionPayload, error) {
	baseFee := new(uint256.Int)
	if payload.BaseFeePerGas != nil {
		fee := payload.BaseFeePerGas.ToInt()
		if fee.Sign() < 0 {
			return nil, fmt.Errorf("invalid baseFeePerGas: negative value %s", fee)
		}
		var overflow bool
		if baseFee, overflow = uint256.FromBig(fee); overflow {
			return nil, fmt.Errorf("invalid baseFeePerGas: %s does not fit in 256 bits", fee)
		}
	}
	res := &types2.ExecutionPayload{
		ParentHash:    gointerfaces.ConvertHashToH256(payload.ParentHash),
		Coinbase:      gointerfaces.ConvertAddressToH160(payload.FeeRecipient),
		StateRoot:     gointerfaces.ConvertHashToH256(payload.StateRoot),
		ReceiptRoot:   gointerfaces.ConvertHashToH256(payload.ReceiptsRoot),
		LogsBloom:     gointerfaces.ConvertBloomToH2048(payload.LogsBloom),
		PrevRandao:    gointerfaces.ConvertHashToH256(payload.PrevRandao),
		BlockNumber:   uint64(payload.BlockNumber),
		GasLimit:      uint64(payload.GasLimit),
		GasUsed:       uint64(payload.GasUsed),
		Timestamp:     uint64(payload.Timestamp),
		ExtraData:     payload.ExtraData,
		BaseFeePerGas: gointerfaces.ConvertUint256IntToH256(baseFee),
		BlockHash:     gointerfaces.ConvertHashToH256(payload.BlockHash),
		Transactions:  make([][]byte, len(payload.Transactions)),
	}
	for i, txn := range payload.Transactions {
		res.Transactions[i] = txn
	}
	return res, nil
}

// ConvertPayloadStatus keeps latestValidHash only when the backend sent one
// and validationError only when it is non-empty.
func ConvertPayloadStatus(status *remote.EnginePayloadStatus) *PayloadStatus {
	res := &PayloadStatus{Status: remote.EngineStatus_INVALID.String()}
	if _, ok := remote.EngineStatus_name[int32(status.Status)]; ok {
		res.Status = status.Status.String()
	}
	if status.LatestValidHash != nil {
		h := gointerfaces.ConvertH256ToHash(status.LatestValidHash)
		res.LatestValidHash = &h
	}
	if status.ValidationError != "" {
		msg := status.ValidationError
		res.ValidationError = &msg
	}
	return res
}

// ConvertPayloadStatusToRpc is the inverse of ConvertPayloadStatus, used by backends.
func ConvertPayloadStatusToRpc(status *PayloadStatus) *remote.EnginePayloadStatus {
	res := &remote.EnginePayloadStatus{Status: remote.EngineStatus_INVALID}
	if code, ok := remote.EngineStatus_value[status.Status]; ok {
		res.Status = remote.EngineStatus(code)
	}
	if status.LatestValidHash != nil {
		res.LatestValidHash = gointerfaces.ConvertHashToH256(*status.LatestValidHash)
	}
	if status.ValidationError != nil {
		res.ValidationError = *status.ValidationError
	}
	return res
}
