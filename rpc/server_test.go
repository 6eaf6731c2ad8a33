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

package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testService struct{}

func (testService) Methods() map[string]Handler {
	return map[string]Handler{
		"test_echo": func(_ context.Context, req *Message, reply *Message) {
			params, err := req.ParamsArray()
			if err != nil || len(params) != 1 {
				reply.SetInvalidParams(req)
				return
			}
			reply.Result = params[0]
		},
		"test_fail": func(_ context.Context, _ *Message, reply *Message) {
			reply.SetError(errors.New("backend down"))
		},
		"test_panic": func(context.Context, *Message, *Message) {
			panic("boom")
		},
		"test_nothing": func(context.Context, *Message, *Message) {},
		"other_hidden": func(_ context.Context, _ *Message, reply *Message) { reply.SetResult(1) },
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv := NewServer(4, false, log.New())
	require.NoError(t, srv.RegisterName("test", testService{}))
	return srv
}

func handle(t *testing.T, srv *Server, req string) string {
	t.Helper()
	resp := srv.Handle(context.Background(), []byte(req))
	if resp == nil {
		return ""
	}
	out, err := jsonAPI.Marshal(resp)
	require.NoError(t, err)
	return string(out)
}

func TestServerSingle(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":"x"}`, handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"test_echo","params":["x"]}`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"error":{"code":100,"message":"invalid test_echo params: []"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"test_echo","params":[]}`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":"a","error":{"code":-32000,"message":"backend down"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":"a","method":"test_fail"}`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":2,"error":{"code":-32603,"message":"method handler crashed"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":2,"method":"test_panic"}`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":3,"result":null}`, handle(t, srv, `{"jsonrpc":"2.0","id":3,"method":"test_nothing"}`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":4,"error":{"code":-32601,"message":"the method other_hidden does not exist/is not available"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":4,"method":"other_hidden"}`))
}

func TestServerInvalidInput(t *testing.T) {
	srv := newTestServer(t)
	assert.Contains(t, handle(t, srv, `{"jsonrpc":`), `"code":-32700`)
	assert.Equal(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"empty batch"}}`, handle(t, srv, `[]`))
	assert.Equal(t, `{"jsonrpc":"2.0","id":7,"error":{"code":-32600,"message":"invalid request"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":7}`))
}

func TestServerNotification(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, "", handle(t, srv, `{"jsonrpc":"2.0","method":"test_echo","params":["x"]}`))
	assert.Equal(t, "", handle(t, srv, `[{"jsonrpc":"2.0","method":"test_fail"}]`))
}

func TestServerBatch(t *testing.T) {
	srv := newTestServer(t)
	got := handle(t, srv, `[
		{"jsonrpc":"2.0","id":1,"method":"test_echo","params":[1]},
		{"jsonrpc":"2.0","method":"test_echo","params":[2]},
		{"jsonrpc":"2.0","id":3,"method":"test_echo","params":[3]},
		{"jsonrpc":"2.0","id":4,"method":"missing_method"}
	]`)
	assert.Equal(t, `[{"jsonrpc":"2.0","id":1,"result":1},{"jsonrpc":"2.0","id":3,"result":3},{"jsonrpc":"2.0","id":4,"error":{"code":-32601,"message":"the method missing_method does not exist/is not available"}}]`, got)

	srv.SetBatchLimit(1)
	got = handle(t, srv, `[{"jsonrpc":"2.0","id":1,"method":"test_nothing"},{"jsonrpc":"2.0","id":2,"method":"test_nothing"}]`)
	assert.Contains(t, got, "batch limit 1 exceeded")
}

func TestAllowList(t *testing.T) {
	srv := newTestServer(t)
	srv.SetAllowList(AllowList{"test_echo": {}})
	assert.Contains(t, handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"test_nothing"}`), `"code":-32601`)
	assert.Contains(t, handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"test_echo","params":[1]}`), `"result":1`)

	var a AllowList
	require.NoError(t, a.UnmarshalJSON([]byte(`["b","a"]`)))
	out, err := a.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(out))
}

func TestModules(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":{"rpc":"1.0","test":"1.0"}}`, handle(t, srv, `{"jsonrpc":"2.0","id":1,"method":"rpc_modules"}`))
	assert.Equal(t, []string{"rpc_modules", "test_echo", "test_fail", "test_nothing", "test_panic"}, srv.Methods())
	require.Error(t, srv.RegisterName("none", testService{}))
}

func TestServeHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"test_echo","params":["x"]}`))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":"x"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
