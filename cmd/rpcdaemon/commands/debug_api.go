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
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/erigontech/rpcgateway/core/rawdb"
	"github.com/erigontech/rpcgateway/eth/tracers/logger"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/transactions"
)

// PrivateDebugAPI
type PrivateDebugAPI interface {
	TraceCall(ctx context.Context, call transactions.Call, blockNumber rpc.DecimalOrHex, config *logger.TraceConfig) (*logger.Trace, error)
}

// PrivateDebugAPIImpl is implementation of the PrivateDebugAPI interface based on chaindata access
type PrivateDebugAPIImpl struct {
	db     kv.DatabaseReader
	tracer *transactions.TraceExecutor
}

// NewPrivateDebugAPI returns PrivateDebugAPIImpl instance
func NewPrivateDebugAPI(db kv.DatabaseReader, tracer *transactions.TraceExecutor) *PrivateDebugAPIImpl {
	return &PrivateDebugAPIImpl{db: db, tracer: tracer}
}

// TraceCall executes call on top of blockNumber and returns its instruction level trace.
// A call rejected before execution is reported as an error.
func (api *PrivateDebugAPIImpl) TraceCall(ctx context.Context, call transactions.Call, blockNumber rpc.DecimalOrHex, config *logger.TraceConfig) (*logger.Trace, error) {
	number := uint64(blockNumber)
	header, err := rawdb.ReadHeaderByNumber(ctx, api.db, number)
	if err != nil {
		return nil, err
	}
	if header == nil {
		header = &types.Header{Number: new(big.Int).SetUint64(number)}
	}
	var cfg logger.TraceConfig
	if config != nil {
		cfg = *config
	}
	res, err := api.tracer.Trace(ctx, header, call, cfg)
	if err != nil {
		return nil, err
	}
	switch res := res.(type) {
	case transactions.PreCheckError:
		return nil, errors.New(res.Message)
	case transactions.TraceResult:
		return res.Trace, nil
	default:
		return nil, fmt.Errorf("unexpected execution result %T", res)
	}
}

func (api *PrivateDebugAPIImpl) Methods() map[string]rpc.Handler {
	return map[string]rpc.Handler{
		"debug_traceCall": api.traceCall,
	}
}

func (api *PrivateDebugAPIImpl) traceCall(ctx context.Context, req *rpc.Message, reply *rpc.Message) {
	params, err := req.ParamsArray()
	if err != nil || len(params) < 2 || len(params) > 3 {
		reply.SetInvalidParams(req)
		return
	}
	var (
		call        transactions.Call
		blockNumber rpc.DecimalOrHex
		config      *logger.TraceConfig
	)
	if err := decodeParams(params, &call, &blockNumber, &config); err != nil {
		reply.SetInvalidParams(req)
		return
	}
	trace, err := api.TraceCall(ctx, call, blockNumber, config)
	if err != nil {
		reply.SetError(err)
		return
	}
	reply.SetResult(trace)
}
