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
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ledgerwatch/log/v3"
)

const MetadataApi = "rpc"

// Server is an RPC server.
type Server struct {
	mu              sync.RWMutex
	methods         map[string]Handler
	namespaces      mapset.Set[string]
	methodAllowList AllowList
	run             atomic.Bool
	logger          log.Logger

	batchConcurrency uint
	traceRequests    bool // Whether to print requests at INFO level
	batchLimit       int  // Maximum number of requests in a batch
}

// NewServer creates a new server instance with no registered handlers.
func NewServer(batchConcurrency uint, traceRequests bool, logger log.Logger) *Server {
	if batchConcurrency == 0 {
		batchConcurrency = 1
	}
	server := &Server{
		methods:          map[string]Handler{},
		namespaces:       mapset.NewSet[string](),
		logger:           logger,
		batchConcurrency: batchConcurrency,
		traceRequests:    traceRequests,
	}
	server.run.Store(true)
	// Register the default service providing meta information about the RPC service such
	// as the services and methods it offers.
	_ = server.RegisterName(MetadataApi, &RPCService{server: server})
	return server
}

// SetAllowList sets the allow list for methods that are handled by this server
func (s *Server) SetAllowList(allowList AllowList) {
	s.methodAllowList = allowList
}

// SetBatchLimit sets limit of number of requests in a batch
func (s *Server) SetBatchLimit(limit int) {
	s.batchLimit = limit
}

// RegisterName adds the methods of receiver that live in namespace name.
// It fails when receiver offers none of them.
func (s *Server) RegisterName(name string, receiver Service) error {
	prefix := name + "_"
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for method, h := range receiver.Methods() {
		if !strings.HasPrefix(method, prefix) {
			continue
		}
		s.methods[method] = h
		n++
	}
	if n == 0 {
		return fmt.Errorf("service %T doesn't have any suitable methods to expose in namespace %q", receiver, name)
	}
	s.namespaces.Add(name)
	return nil
}

// Methods returns the sorted names of all registered methods.
func (s *Server) Methods() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	methods := make([]string, 0, len(s.methods))
	for m := range s.methods {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Namespaces returns the sorted registered namespaces.
func (s *Server) Namespaces() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := s.namespaces.ToSlice()
	sort.Strings(names)
	return names
}

func (s *Server) handler(method string) (Handler, bool) {
	if !s.methodAllowList.allows(method) {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.methods[method]
	return h, ok
}

// Handle processes raw request bytes and returns the response value to encode,
// or nil when nothing must be sent back (notifications only).
func (s *Server) Handle(ctx context.Context, body []byte) any {
	msgs, batch, err := parseMessage(body)
	if err != nil {
		return errorMessage(err)
	}
	if !batch {
		if reply := s.handleMsg(ctx, msgs[0]); reply != nil {
			return reply
		}
		return nil
	}
	if replies := s.handleBatch(ctx, msgs); replies != nil {
		return replies
	}
	return nil
}

// Stop makes the server reject new requests.
func (s *Server) Stop() {
	if s.run.CompareAndSwap(true, false) {
		s.logger.Info("RPC server shutting down")
	}
}

// RPCService gives meta information about the server.
// e.g. gives information about the loaded modules.
type RPCService struct {
	server *Server
}

func (s *RPCService) Methods() map[string]Handler {
	return map[string]Handler{"rpc_modules": s.modules}
}

// modules returns the list of RPC services with their version number
func (s *RPCService) modules(_ context.Context, _ *Message, reply *Message) {
	modules := make(map[string]string)
	for _, name := range s.server.namespaces.ToSlice() {
		modules[name] = "1.0"
	}
	reply.SetResult(modules)
}
