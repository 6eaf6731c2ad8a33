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

package transactions

import (
	"context"
	"math/big"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/rpcgateway/core/rawdb"
	"github.com/erigontech/rpcgateway/core/state"
	"github.com/erigontech/rpcgateway/core/types/accounts"
	"github.com/erigontech/rpcgateway/eth/tracers/logger"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/kv/bitmapdb"
	"github.com/erigontech/rpcgateway/kv/dbutils"
	"github.com/erigontech/rpcgateway/kv/memdb"
)

var mergedGenesis = common.HexToHash("0x6d6572676564")

func mergedDB(t *testing.T) *memdb.MemoryDB {
	db := memdb.NewTestDB(t)
	require.NoError(t, rawdb.WriteCanonicalHash(db, mergedGenesis, 0))
	require.NoError(t, rawdb.WriteChainConfig(db, mergedGenesis, params.MergedTestChainConfig))
	return db
}

func mergedHeader(number uint64) *types.Header {
	return &types.Header{
		Number:     new(big.Int).SetUint64(number),
		Time:       1000,
		Difficulty: new(big.Int),
		MixDigest:  common.HexToHash("0x42"),
	}
}

func putContract(t *testing.T, db kv.Putter, addr common.Address, code []byte) {
	codeHash := crypto.Keccak256Hash(code)
	acc := accounts.Account{Initialised: true, Nonce: 1, Incarnation: state.DefaultIncarnation, CodeHash: codeHash}
	enc := make([]byte, acc.EncodingLengthForStorage())
	acc.EncodeForStorage(enc)
	require.NoError(t, db.Put(kv.PlainState, addr[:], enc))
	require.NoError(t, db.Put(kv.Code, codeHash[:], code))
}

func putSlot(t *testing.T, db kv.Putter, addr common.Address, location common.Hash, value byte) {
	prefix := dbutils.PlainGenerateStoragePrefix(addr[:], state.DefaultIncarnation)
	require.NoError(t, db.Put(kv.PlainState, prefix, append(location.Bytes(), value)))
}

func TestTracePostMergeRules(t *testing.T) {
	e := NewTraceExecutor(mergedDB(t), 1, nil, log.New())
	// PUSH0 STOP as init code
	data := hexutil.Bytes{0x5f, 0x00}
	gas := hexutil.Uint64(100_000)
	call := Call{From: common.HexToAddress("0xaa"), Gas: &gas, Data: &data}

	res, err := e.Trace(context.Background(), mergedHeader(10), call, logger.TraceConfig{})
	require.NoError(t, err)
	require.IsType(t, TraceResult{}, res)
	trace := res.(TraceResult).Trace

	assert.False(t, trace.Failed)
	require.Len(t, trace.StructLogs, 2)
	assert.Equal(t, "PUSH0", trace.StructLogs[0].Op)
	// 53000 + 16 + 4 + one initcode word
	assert.Equal(t, uint64(100_000-53_022), trace.StructLogs[0].Gas)
	assert.Equal(t, uint64(2), trace.StructLogs[0].GasCost)
	assert.Equal(t, "STOP", trace.StructLogs[1].Op)
	assert.Equal(t, uint64(53_024), trace.Gas)
}

func TestTracePostMergeInitCodeCharge(t *testing.T) {
	e := NewTraceExecutor(mergedDB(t), 1, nil, log.New())
	data := hexutil.Bytes{0x5f, 0x00}
	gas := hexutil.Uint64(53_021)
	call := Call{From: common.HexToAddress("0xaa"), Gas: &gas, Data: &data}

	res, err := e.Trace(context.Background(), mergedHeader(10), call, logger.TraceConfig{})
	require.NoError(t, err)
	require.IsType(t, PreCheckError{}, res)
	assert.Equal(t, "tracing failed: intrinsic gas too low: have 53021 want 53022", res.(PreCheckError).Message)
}

func TestTraceDependentStorageReads(t *testing.T) {
	const reads = 70
	db := mergedDB(t)
	contract := common.HexToAddress("0xcc")

	// PUSH1 0, then every SLOAD uses the previous value as the next slot
	code := []byte{0x60, 0x00}
	for i := 0; i < reads; i++ {
		code = append(code, 0x54)
	}
	code = append(code, 0x00)
	putContract(t, db, contract, code)
	for i := 1; i < reads; i++ {
		putSlot(t, db, contract, common.BigToHash(big.NewInt(int64(i))), byte(i+1))
	}
	// slot 0 changed at block 100, before that it pointed to slot 1
	slot0 := common.Hash{}
	putSlot(t, db, contract, slot0, 0x63)
	indexKey := append(contract.Bytes(), slot0.Bytes()...)
	require.NoError(t, bitmapdb.WriteShards64(db, kv.StorageHistory, indexKey, roaring64.BitmapOf(100), uint64(bitmapdb.ShardLimit)))
	require.NoError(t, db.Put(kv.StorageChangeSet, dbutils.StorageChangeSetKey(100, contract, state.DefaultIncarnation), append(slot0.Bytes(), 0x01)))

	e := NewTraceExecutor(db, 1, nil, log.New())
	gas := hexutil.Uint64(1_000_000)
	call := Call{From: common.HexToAddress("0xaa"), To: &contract, Gas: &gas}

	res, err := e.Trace(context.Background(), mergedHeader(99), call, logger.TraceConfig{})
	require.NoError(t, err)
	require.IsType(t, TraceResult{}, res)
	trace := res.(TraceResult).Trace

	assert.False(t, trace.Failed)
	require.Len(t, trace.StructLogs, reads+2)
	last := trace.StructLogs[len(trace.StructLogs)-1]
	assert.Equal(t, "STOP", last.Op)
	assert.Equal(t, []string{hexutil.EncodeUint64(reads)}, last.Stack)
	// cold reads only
	assert.Equal(t, uint64(21_000+3+reads*params.ColdSloadCostEIP2929), trace.Gas)
}

func TestHistoricalReaderAccount(t *testing.T) {
	db := mergedDB(t)
	contract := common.HexToAddress("0xcc")
	code := []byte{0x60, 0x00, 0x54, 0x00}
	putContract(t, db, contract, code)
	putSlot(t, db, contract, common.Hash{}, 0x07)

	r := newHistoricalReader(context.Background(), state.NewHistoryReader(db, 10, log.New()))
	acc, err := r.Account(contract)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, uint64(1), acc.Nonce)
	assert.Equal(t, types.EmptyRootHash, acc.Root)
	assert.Equal(t, crypto.Keccak256(code), acc.CodeHash)

	got, err := r.Code(contract, common.BytesToHash(acc.CodeHash))
	require.NoError(t, err)
	assert.Equal(t, code, got)
	size, err := r.CodeSize(contract, common.BytesToHash(acc.CodeHash))
	require.NoError(t, err)
	assert.Equal(t, len(code), size)

	v, err := r.Storage(contract, common.Hash{})
	require.NoError(t, err)
	assert.Equal(t, common.BigToHash(big.NewInt(7)), v)

	missing, err := r.Account(common.HexToAddress("0xdd"))
	require.NoError(t, err)
	assert.Nil(t, missing)
	v, err = r.Storage(common.HexToAddress("0xdd"), common.Hash{})
	require.NoError(t, err)
	assert.Equal(t, common.Hash{}, v)
	require.NoError(t, r.Err())
}
