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
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/consensus/misc/eip4844"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ledgerwatch/log/v3"
	"golang.org/x/sync/semaphore"

	"github.com/erigontech/rpcgateway/core/rawdb"
	"github.com/erigontech/rpcgateway/core/state"
	"github.com/erigontech/rpcgateway/eth/tracers/logger"
	"github.com/erigontech/rpcgateway/kv"
)

// DefaultCallGas is used when neither the call nor the block name a gas limit.
const DefaultCallGas = uint64(50_000_000)

var ErrGenesisNotFound = errors.New("genesis hash not found")

// Call describes the message to trace.
type Call struct {
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to"`
	Gas      *hexutil.Uint64 `json:"gas"`
	GasPrice *hexutil.Big    `json:"gasPrice"`
	Value    *hexutil.Big    `json:"value"`
	Data     *hexutil.Bytes  `json:"data"`
	Input    *hexutil.Bytes  `json:"input"`
}

func (c *Call) data() []byte {
	if c.Input != nil {
		return *c.Input
	}
	if c.Data != nil {
		return *c.Data
	}
	return nil
}

// ExecutionResult is either a PreCheckError or a TraceResult.
type ExecutionResult interface {
	isExecutionResult()
}

// PreCheckError reports a call rejected before any instruction was executed.
type PreCheckError struct {
	Message string
}

func (PreCheckError) isExecutionResult() {}

type TraceResult struct {
	Trace *logger.Trace
}

func (TraceResult) isExecutionResult() {}

// TraceExecutor replays calls on top of historical state. Interpretation runs on at
// most workers goroutines at a time.
type TraceExecutor struct {
	db      kv.DatabaseReader
	workers *semaphore.Weighted
	cache   *state.ReadCache
	logger  log.Logger
}

func NewTraceExecutor(db kv.DatabaseReader, workers int, cache *state.ReadCache, logger log.Logger) *TraceExecutor {
	if workers < 1 {
		workers = 1
	}
	return &TraceExecutor{
		db:      db,
		workers: semaphore.NewWeighted(int64(workers)),
		cache:   cache,
		logger:  logger,
	}
}

// Trace executes call on the state after header's block and records every instruction.
// Only header.Number is required.
func (e *TraceExecutor) Trace(ctx context.Context, header *types.Header, call Call, config logger.TraceConfig) (ExecutionResult, error) {
	if header == nil || header.Number == nil {
		return nil, errors.New("block number required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.workers.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.workers.Release(1)

	start := time.Now()
	blockNumber := header.Number.Uint64()

	genesis, err := rawdb.ReadCanonicalHash(ctx, e.db, 0)
	if err != nil {
		return nil, err
	}
	if genesis == (common.Hash{}) {
		return nil, ErrGenesisNotFound
	}
	chainConfig, err := rawdb.ReadChainConfig(ctx, e.db, genesis)
	if err != nil {
		return nil, err
	}

	reader := state.NewHistoryReader(e.db, blockNumber, e.logger)
	reader.SetCache(e.cache)
	historical := newHistoricalReader(ctx, reader)

	gas := callGas(header, call)
	data := call.data()
	blockCtx := e.blockContext(ctx, header, chainConfig, historical)
	rules := chainConfig.Rules(header.Number, blockCtx.Random != nil, header.Time)
	intrinsic, err := IntrinsicGas(data, call.To == nil, rules.IsHomestead, rules.IsIstanbul, rules.IsShanghai)
	if err != nil {
		return nil, err
	}
	if gas < intrinsic {
		return PreCheckError{Message: fmt.Sprintf("tracing failed: intrinsic gas too low: have %d want %d", gas, intrinsic)}, nil
	}

	msg := &core.Message{
		From:            call.From,
		To:              call.To,
		Value:           new(big.Int),
		GasLimit:        gas,
		GasPrice:        new(big.Int),
		Data:            data,
		SkipNonceChecks: true,
	}
	if call.Value != nil {
		msg.Value = call.Value.ToInt()
	}
	if call.GasPrice != nil {
		msg.GasPrice = call.GasPrice.ToInt()
	}
	msg.GasFeeCap, msg.GasTipCap = msg.GasPrice, msg.GasPrice
	if blockCtx.BaseFee.Cmp(msg.GasPrice) > 0 {
		blockCtx.BaseFee = new(big.Int)
	}

	ibs, err := newHistoricalState(historical)
	if err != nil {
		return nil, err
	}
	structLogger := logger.NewStructLogger(config)
	evm := vm.NewEVM(blockCtx, ibs, chainConfig, vm.Config{Tracer: structLogger.Hooks(), NoBaseFee: true})
	evm.SetTxContext(core.NewEVMTxContext(msg))
	result, applyErr := core.ApplyMessage(evm, msg, new(core.GasPool).AddGas(msg.GasLimit))
	if err := historical.Err(); err != nil {
		return nil, err
	}
	if err := ibs.Error(); err != nil {
		return nil, err
	}
	if applyErr != nil {
		return nil, fmt.Errorf("tracing failed: %w", applyErr)
	}
	e.logger.Debug("[debug_traceCall] traced", "block", blockNumber, "gas", result.UsedGas, "t", time.Since(start))
	return TraceResult{Trace: structLogger.Trace(result.Failed(), result.UsedGas, result.ReturnData)}, nil
}

func callGas(header *types.Header, call Call) uint64 {
	if call.Gas != nil {
		return uint64(*call.Gas)
	}
	if header.GasLimit > 0 {
		return header.GasLimit
	}
	return DefaultCallGas
}

// blockContext serves BLOCKHASH lazily from the canonical chain. Headers of a
// merged chain without difficulty carry PREVRANDAO in MixDigest; they enable the
// post-merge rules.
func (e *TraceExecutor) blockContext(ctx context.Context, header *types.Header, chainConfig *params.ChainConfig, historical *historicalReader) vm.BlockContext {
	baseFee := new(big.Int)
	if header.BaseFee != nil {
		baseFee.Set(header.BaseFee)
	}
	difficulty := new(big.Int)
	if header.Difficulty != nil {
		difficulty.Set(header.Difficulty)
	}
	var random *common.Hash
	if difficulty.Sign() == 0 && (header.Difficulty != nil || chainConfig.TerminalTotalDifficulty != nil) {
		mixDigest := header.MixDigest
		random = &mixDigest
	}
	blobBaseFee := new(big.Int)
	if header.ExcessBlobGas != nil {
		blobBaseFee = eip4844.CalcBlobFee(chainConfig, header)
	}
	gasLimit := header.GasLimit
	if gasLimit == 0 {
		gasLimit = params.MaxGasLimit
	}
	return vm.BlockContext{
		CanTransfer: core.CanTransfer,
		Transfer:    core.Transfer,
		GetHash: func(n uint64) common.Hash {
			hash, err := rawdb.ReadCanonicalHash(ctx, e.db, n)
			if err != nil {
				historical.fail(err)
			}
			return hash
		},
		Coinbase:    header.Coinbase,
		GasLimit:    gasLimit,
		BlockNumber: new(big.Int).Set(header.Number),
		Time:        header.Time,
		Difficulty:  difficulty,
		BaseFee:     baseFee,
		BlobBaseFee: blobBaseFee,
		Random:      random,
	}
}
