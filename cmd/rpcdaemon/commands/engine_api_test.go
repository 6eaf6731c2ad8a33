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
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/engineapi/engine_types"
	"github.com/erigontech/rpcgateway/turbo/rpchelper"
)

const testPayloadJSON = `{
	"parentHash":"0x3b8fb240d288781d4aac94d3fd16809ee413bc99294a085798a589dae51ddd4a",
	"suggestedFeeRecipient":"0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b",
	"stateRoot":"0xca3149fa9e37db08d1cd49c9061db1002ef1cd58db2210f2115c8c989b2bdf45",
	"receiptsRoot":"0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
	"logsBloom":"0x00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"prevRandao":"0x0000000000000000000000000000000000000000000000000000000000000001",
	"blockNumber":"0x1",
	"gasLimit":"0x1c9c380",
	"gasUsed":"0x0",
	"timestamp":"0x5",
	"extraData":"0x",
	"baseFeePerGas":"0x7",
	"blockHash":"0x3559e851470f6e7bbed1db474980683e8c315bfce99b2a6ef47c057c04de7858",
	"transactions":["0xf92ebdeab45d368f6354e8c5a8ac586c"]
}`

func newTestServer(t *testing.T, services map[string]rpc.Service) *rpc.Server {
	t.Helper()
	srv := rpc.NewServer(2, false, log.New())
	for name, service := range services {
		require.NoError(t, srv.RegisterName(name, service))
	}
	return srv
}

func call(t *testing.T, srv *rpc.Server, req string) *rpc.Message {
	t.Helper()
	resp, ok := srv.Handle(context.Background(), []byte(req)).(*rpc.Message)
	require.True(t, ok)
	return resp
}

func encode(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestEngineGetPayloadV1(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := rpchelper.NewMockApiBackend(ctrl)

	var payload engine_types.ExecutionPayload
	require.NoError(t, json.Unmarshal([]byte(testPayloadJSON), &payload))
	backend.EXPECT().EngineGetPayloadV1(gomock.Any(), uint64(1)).Return(&payload, nil)

	srv := newTestServer(t, map[string]rpc.Service{"engine": NewEngineAPI(backend)})
	resp := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_getPayloadV1","params":["0x0000000000000001"]}`)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, testPayloadJSON, string(resp.Result))
	assert.Equal(t, "1", string(resp.ID))
}

func TestEngineGetPayloadV1InvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no call expected
	backend := rpchelper.NewMockApiBackend(ctrl)
	srv := newTestServer(t, map[string]rpc.Service{"engine": NewEngineAPI(backend)})

	resp := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_getPayloadV1","params":[]}`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"error":{"code":100,"message":"invalid engine_getPayloadV1 params: []"}}`, encode(t, resp))

	resp = call(t, srv, `{"jsonrpc":"2.0","id":2,"method":"engine_getPayloadV1","params":["0x01", "0x02"]}`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":2,"error":{"code":100,"message":"invalid engine_getPayloadV1 params: [\"0x01\",\"0x02\"]"}}`, encode(t, resp))

	resp = call(t, srv, `{"jsonrpc":"2.0","id":3,"method":"engine_getPayloadV1","params":["0x01"]}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 100, resp.Error.ErrorCode())
}

func TestEngineGetPayloadV1BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := rpchelper.NewMockApiBackend(ctrl)
	backend.EXPECT().EngineGetPayloadV1(gomock.Any(), uint64(2)).Return(nil, errors.New("unknown payload"))

	srv := newTestServer(t, map[string]rpc.Service{"engine": NewEngineAPI(backend)})
	resp := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_getPayloadV1","params":["0x0000000000000002"]}`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"unknown payload"}}`, encode(t, resp))
}

func TestEngineNewPayloadV1(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := rpchelper.NewMockApiBackend(ctrl)

	latest := common.HexToHash("0x40")
	validationError := "some error"
	backend.EXPECT().EngineNewPayloadV1(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *engine_types.ExecutionPayload) (*engine_types.PayloadStatus, error) {
			assert.Equal(t, common.HexToHash("0x3559e851470f6e7bbed1db474980683e8c315bfce99b2a6ef47c057c04de7858"), payload.BlockHash)
			assert.Equal(t, big.NewInt(7), payload.BaseFeePerGas.ToInt())
			assert.Len(t, payload.Transactions, 1)
			return &engine_types.PayloadStatus{Status: "INVALID", LatestValidHash: &latest, ValidationError: &validationError}, nil
		})

	srv := newTestServer(t, map[string]rpc.Service{"engine": NewEngineAPI(backend)})
	resp := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_newPayloadV1","params":[`+testPayloadJSON+`]}`)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `{
		"status":"INVALID",
		"latestValidHash":"0x0000000000000000000000000000000000000000000000000000000000000040",
		"validationError":"some error"
	}`, string(resp.Result))
}

func TestEngineNewPayloadV1InvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := rpchelper.NewMockApiBackend(ctrl)
	srv := newTestServer(t, map[string]rpc.Service{"engine": NewEngineAPI(backend)})

	resp := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_newPayloadV1","params":[]}`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"error":{"code":100,"message":"invalid engine_newPayloadV1 params: []"}}`, encode(t, resp))

	resp = call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"engine_newPayloadV1"}`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"error":{"code":100,"message":"invalid engine_newPayloadV1 params: null"}}`, encode(t, resp))
}
