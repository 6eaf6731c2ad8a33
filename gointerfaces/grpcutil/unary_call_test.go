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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type echoRequest struct{ N uint64 }
type echoReply struct{ N uint64 }

func echo(_ context.Context, in *echoRequest, _ ...grpc.CallOption) (*echoReply, error) {
	return &echoReply{N: in.N + 1}, nil
}

func TestUnaryCallReply(t *testing.T) {
	reply, err := NewUnaryCall("/test.Echo/Inc", echo).Call(context.Background(), &echoRequest{N: 41})
	require.NoError(t, err)
	require.Equal(t, uint64(42), reply.N)
}

func TestUnaryCallFailure(t *testing.T) {
	unavailable := status.Error(codes.Unavailable, "backend down")
	fail := func(context.Context, *echoRequest, ...grpc.CallOption) (*echoReply, error) {
		return nil, unavailable
	}
	_, err := NewUnaryCall("/test.Echo/Inc", fail).Call(context.Background(), &echoRequest{})
	require.Error(t, err)

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	require.Equal(t, "/test.Echo/Inc", rpcErr.Method)
	require.ErrorIs(t, err, unavailable)
	require.True(t, IsRetryLater(err))
}

func TestUnaryCallSingleUse(t *testing.T) {
	calls := 0
	counting := func(ctx context.Context, in *echoRequest, opts ...grpc.CallOption) (*echoReply, error) {
		calls++
		return echo(ctx, in, opts...)
	}
	call := NewUnaryCall("/test.Echo/Inc", counting)
	_, err := call.Call(context.Background(), &echoRequest{})
	require.NoError(t, err)

	_, err = call.Call(context.Background(), &echoRequest{})
	require.ErrorIs(t, err, ErrCallReused)
	require.Equal(t, 1, calls)
}

func TestUnaryCallStart(t *testing.T) {
	release := make(chan struct{})
	blocked := func(ctx context.Context, in *echoRequest, opts ...grpc.CallOption) (*echoReply, error) {
		<-release
		return echo(ctx, in, opts...)
	}
	done, err := NewUnaryCall("/test.Echo/Inc", blocked).Start(context.Background(), &echoRequest{N: 1})
	require.NoError(t, err)

	select {
	case <-done:
		t.Fatal("result before reply")
	default:
	}
	close(release)
	res, ok := <-done
	require.True(t, ok)
	require.NoError(t, res.Err)
	require.Equal(t, uint64(2), res.Reply.N)
	_, ok = <-done
	require.False(t, ok)
}

func TestUnaryCallContextDone(t *testing.T) {
	never := func(ctx context.Context, _ *echoRequest, _ ...grpc.CallOption) (*echoReply, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := NewUnaryCall("/test.Echo/Wait", never).Call(ctx, &echoRequest{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestErrHelpers(t *testing.T) {
	require.True(t, IsEndOfStream(context.Canceled))
	require.True(t, IsEndOfStream(status.Error(codes.Canceled, "x")))
	require.False(t, IsRetryLater(errors.New("plain")))

	target := errors.New("unknown payload")
	require.True(t, ErrIs(status.Error(codes.Unknown, "unknown payload"), target))
	require.True(t, ErrIs(target, target))
}
