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

	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
)

// EngineAPI is the part of the Engine API served by the gateway.
type EngineAPI interface {
	GetPayloadV1(ctx context.Context, payloadID engine_types.PayloadID) (*engine_types.ExecutionPayload, error)
	NewPayloadV1(ctx context.Context, payload *engine_types.ExecutionPayload) (*engine_types.PayloadStatus, error)
}

// EngineImpl is implementation of the EngineAPI interface
type EngineImpl struct {
	api rpchelper.ApiBackend
}

// NewEngineAPI returns EngineImpl instance
func NewEngineAPI(api rpchelper.ApiBackend) *EngineImpl {
	return &EngineImpl{api: api}
}

func (e *EngineImpl) GetPayloadV1(ctx context.Context, payloadID engine_types.PayloadID) (*engine_types.ExecutionPayload, error) {
	return e.api.EngineGetPayloadV1(ctx, payloadID.Uint64())
}

func (e *EngineImpl) NewPayloadV1(ctx context.Context, payload *engine_types.ExecutionPayload) (*engine_types.PayloadStatus, error) {
	return e.api.EngineNewPayloadV1(ctx, payload)
}

func (e *EngineImpl) Methods() map[string]rpc.Handler {
	return map[string]rpc.Handler{
		"engine_getPayloadV1": oneParam(e.GetPayloadV1),
		"engine_newPayloadV1": oneParam(func(ctx context.Context, payload engine_types.ExecutionPayload) (*engine_types.PayloadStatus, error) {
			return e.NewPayloadV1(ctx, &payload)
		}),
	}
}
