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
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// handleMsg answers a single message. Notifications return nil.
func (s *Server) handleMsg(ctx context.Context, msg *Message) *Message {
	if msg.Error != nil {
		return errorMessage(msg.Error)
	}
	if !s.run.Load() {
		return s.reply(msg, &internalError{"server is shutting down"})
	}
	if !msg.isCall() && !msg.isNotification() {
		return s.reply(msg, &invalidRequestError{"invalid request"})
	}

	start := time.Now()
	reply := &Message{}
	reply.ReplyTo(msg)
	h, ok := s.handler(msg.Method)
	if !ok {
		reply.SetError(&methodNotFoundError{method: msg.Method})
	} else {
		s.call(ctx, h, msg, reply)
		observeRPC(msg.Method, reply.Error == nil, start)
	}
	if s.traceRequests {
		logCtx := []any{"method", msg.Method, "id", string(msg.ID), "t", time.Since(start)}
		if reply.Error != nil {
			logCtx = append(logCtx, "err", reply.Error.Message)
		}
		s.logger.Info("Served", logCtx...)
	} else {
		s.logger.Trace("Served", "method", msg.Method, "t", time.Since(start))
	}
	if msg.isNotification() {
		return nil
	}
	return reply
}

func (s *Server) call(ctx context.Context, h Handler, msg, reply *Message) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("RPC method " + msg.Method + " crashed: " + fmt.Sprint(r) + "\n" + string(debug.Stack()))
			reply.SetError(&internalError{"method handler crashed"})
		}
	}()
	h(ctx, msg, reply)
	if reply.Error == nil && reply.Result == nil {
		reply.Result = null
	}
}

func (s *Server) reply(msg *Message, err error) *Message {
	reply := &Message{}
	reply.ReplyTo(msg)
	reply.SetError(err)
	return reply
}

// handleBatch answers every call of the batch, running at most
// batchConcurrency handlers at a time. Order of replies follows the batch.
func (s *Server) handleBatch(ctx context.Context, msgs []*Message) any {
	if len(msgs) == 0 {
		return errorMessage(&invalidRequestError{"empty batch"})
	}
	if s.batchLimit > 0 && len(msgs) > s.batchLimit {
		return errorMessage(fmt.Errorf("batch limit %d exceeded (can increase by --rpc.batch.limit). Requested batch of size: %d", s.batchLimit, len(msgs)))
	}

	sem := semaphore.NewWeighted(int64(s.batchConcurrency))
	answers := make([]*Message, len(msgs))
	var wg sync.WaitGroup
	for i, msg := range msgs {
		if err := sem.Acquire(ctx, 1); err != nil {
			answers[i] = s.reply(msg, err)
			continue
		}
		wg.Add(1)
		go func(i int, msg *Message) {
			defer wg.Done()
			defer sem.Release(1)
			answers[i] = s.handleMsg(ctx, msg)
		}(i, msg)
	}
	wg.Wait()

	replies := make([]*Message, 0, len(answers))
	for _, a := range answers {
		if a != nil {
			replies = append(replies, a)
		}
	}
	if len(replies) == 0 {
		return nil
	}
	return replies
}
