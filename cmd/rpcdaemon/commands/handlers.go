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

	"github.com/erigontech/rpcgateway/rpc"
)

// noParams adapts a method without arguments. Params, if any, are ignored.
func noParams[Res any](call func(context.Context) (Res, error)) rpc.Handler {
	return func(ctx context.Context, _ *rpc.Message, reply *rpc.Message) {
		res, err := call(ctx)
		if err != nil {
			reply.SetError(err)
			return
		}
		reply.SetResult(res)
	}
}

// oneParam adapts a method taking exactly one positional param. A wrong
// count or an undecodable param is answered without calling the method.
func oneParam[Arg, Res any](call func(context.Context, Arg) (Res, error)) rpc.Handler {
	return func(ctx context.Context, req *rpc.Message, reply *rpc.Message) {
		params, err := req.ParamsArray()
		if err != nil || len(params) != 1 {
			reply.SetInvalidParams(req)
			return
		}
		var arg Arg
		if err := json.Unmarshal(params[0], &arg); err != nil {
			reply.SetInvalidParams(req)
			return
		}
		res, err := call(ctx, arg)
		if err != nil {
			reply.SetError(err)
			return
		}
		reply.SetResult(res)
	}
}

// decodeParams decodes params positionally into args. Missing trailing
// params leave their targets untouched.
func decodeParams(params []json.RawMessage, args ...any) error {
	for i, raw := range params {
		if i >= len(args) {
			break
		}
		if err := json.Unmarshal(raw, args[i]); err != nil {
			return err
		}
	}
	return nil
}
