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

package grpcutil

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"google.golang.org/grpc"
)

var ErrCallReused = errors.New("unary call already started")

// UnaryFunc is the shape of a generated client method.
type UnaryFunc[Req, Reply any] func(ctx context.Context, in *Req, opts ...grpc.CallOption) (*Reply, error)

// RPCError marks a failure reported by the transport or the remote side, as opposed to a decoding problem.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string { return fmt.Sprintf("%s: %v", e.Method, e.Err) }
func (e *RPCError) Unwrap() error { return e.Err }

type UnaryResult[Reply any] struct {
	Reply *Reply
	Err   error
}

// UnaryCall issues exactly one request. Callers create a new instance per call;
// retry and deadlines are left to the ctx they pass.
type UnaryCall[Req, Reply any] struct {
	method  string
	fn      UnaryFunc[Req, Reply]
	opts    []grpc.CallOption
	started atomic.Bool
}

func NewUnaryCall[Req, Reply any](method string, fn UnaryFunc[Req, Reply], opts ...grpc.CallOption) *UnaryCall[Req, Reply] {
	return &UnaryCall[Req, Reply]{method: method, fn: fn, opts: opts}
}

// Start dispatches the request and returns at once. The channel delivers one result and is closed.
func (c *UnaryCall[Req, Reply]) Start(ctx context.Context, req *Req) (<-chan UnaryResult[Reply], error) {
	if !c.started.CompareAndSwap(false, true) {
		return nil, ErrCallReused
	}
	done := make(chan UnaryResult[Reply], 1)
	go func() {
		defer close(done)
		reply, err := c.fn(ctx, req, c.opts...)
		if err != nil {
			done <- UnaryResult[Reply]{Err: &RPCError{Method: c.method, Err: err}}
			return
		}
		done <- UnaryResult[Reply]{Reply: reply}
	}()
	return done, nil
}

// Call suspends the calling goroutine until the reply arrives or ctx is done.
func (c *UnaryCall[Req, Reply]) Call(ctx context.Context, req *Req) (*Reply, error) {
	done, err := c.Start(ctx, req)
	if err != nil {
		return nil, err
	}
	select {
	case res := <-done:
		return res.Reply, res.Err
	case <-ctx.Done():
		return nil, &RPCError{Method: c.method, Err: ctx.Err()}
	}
}
