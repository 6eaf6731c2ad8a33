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

package logger

import (
	"encoding/hex"
	"encoding/json"
	"maps"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/vm"
)

// TraceConfig selects the parts of the EVM state copied into every TraceLog.
// It does not change execution.
type TraceConfig struct {
	DisableStorage bool `json:"disableStorage"`
	DisableMemory  bool `json:"disableMemory"`
	DisableStack   bool `json:"disableStack"`
}

// Storage holds the slots written by a contract so far, hex encoded without prefix.
type Storage map[string]string

// TraceLog is the EVM state captured before one instruction executes.
type TraceLog struct {
	Pc      uint64
	Op      string
	Gas     uint64
	GasCost uint64
	Depth   int
	Error   bool
	Memory  []string // 32 byte words
	Stack   []string // bottom first
	Storage Storage  // on storage writes only
}

// Trace is the outcome of a traced call together with the config it was captured with.
type Trace struct {
	Failed      bool
	Gas         uint64
	ReturnValue string
	StructLogs  []TraceLog
	Config      TraceConfig
}

type traceLogJSON struct {
	Pc      uint64             `json:"pc"`
	Op      string             `json:"op"`
	Gas     uint64             `json:"gas"`
	GasCost uint64             `json:"gasCost"`
	Depth   int                `json:"depth"`
	Error   bool               `json:"error,omitempty"`
	Memory  *[]string          `json:"memory,omitempty"`
	Stack   *[]string          `json:"stack,omitempty"`
	Storage *map[string]string `json:"storage,omitempty"`
}

type traceJSON struct {
	Failed      bool           `json:"failed"`
	Gas         uint64         `json:"gas"`
	ReturnValue string         `json:"returnValue"`
	StructLogs  []traceLogJSON `json:"structLogs"`
}

// formatLog projects log through cfg. Disabled parts are left out entirely.
func formatLog(log *TraceLog, cfg TraceConfig) traceLogJSON {
	res := traceLogJSON{
		Pc:      log.Pc,
		Op:      log.Op,
		Gas:     log.Gas,
		GasCost: log.GasCost,
		Depth:   log.Depth,
		Error:   log.Error,
	}
	if !cfg.DisableMemory {
		memory := log.Memory
		if memory == nil {
			memory = []string{}
		}
		res.Memory = &memory
	}
	if !cfg.DisableStack {
		stack := log.Stack
		if stack == nil {
			stack = []string{}
		}
		res.Stack = &stack
	}
	if !cfg.DisableStorage && log.Storage != nil {
		storage := map[string]string(log.Storage)
		res.Storage = &storage
	}
	return res
}

func (t Trace) MarshalJSON() ([]byte, error) {
	res := traceJSON{
		Failed:      t.Failed,
		Gas:         t.Gas,
		ReturnValue: t.ReturnValue,
		StructLogs:  make([]traceLogJSON, len(t.StructLogs)),
	}
	for i := range t.StructLogs {
		res.StructLogs[i] = formatLog(&t.StructLogs[i], t.Config)
	}
	return json.Marshal(res)
}

// StructLogger records a TraceLog for every executed instruction, in execution order.
type StructLogger struct {
	cfg TraceConfig

	storage map[common.Address]Storage
	logs    []TraceLog
	output  []byte
	err     error
}

func NewStructLogger(cfg TraceConfig) *StructLogger {
	return &StructLogger{
		cfg:     cfg,
		storage: make(map[common.Address]Storage),
	}
}

func (l *StructLogger) Hooks() *tracing.Hooks {
	return &tracing.Hooks{
		OnOpcode: l.OnOpcode,
		OnExit:   l.OnExit,
	}
}

// OnOpcode also tracks SSTORE to report the storage written by the current contract.
func (l *StructLogger) OnOpcode(pc uint64, opcode byte, gas, cost uint64, scope tracing.OpContext, rData []byte, depth int, err error) {
	op := vm.OpCode(opcode)
	stack := scope.StackData()

	log := TraceLog{
		Pc:      pc,
		Op:      op.String(),
		Gas:     gas,
		GasCost: cost,
		Depth:   depth,
		Error:   err != nil,
	}
	if !l.cfg.DisableMemory {
		memory := scope.MemoryData()
		log.Memory = make([]string, 0, len(memory)/32)
		for i := 0; i+32 <= len(memory); i += 32 {
			log.Memory = append(log.Memory, hex.EncodeToString(memory[i:i+32]))
		}
	}
	if !l.cfg.DisableStack {
		log.Stack = make([]string, len(stack))
		for i := range stack {
			log.Stack[i] = stack[i].Hex()
		}
	}
	if !l.cfg.DisableStorage && op == vm.SSTORE && len(stack) >= 2 {
		contract := scope.Address()
		if l.storage[contract] == nil {
			l.storage[contract] = make(Storage)
		}
		var (
			location = common.Hash(stack[len(stack)-1].Bytes32())
			value    = common.Hash(stack[len(stack)-2].Bytes32())
		)
		l.storage[contract][hex.EncodeToString(location[:])] = hex.EncodeToString(value[:])
		log.Storage = maps.Clone(l.storage[contract])
	}
	l.logs = append(l.logs, log)
}

// OnExit keeps the result of the outermost frame.
func (l *StructLogger) OnExit(depth int, output []byte, gasUsed uint64, err error, reverted bool) {
	if depth != 0 {
		return
	}
	l.output = common.CopyBytes(output)
	l.err = err
}

func (l *StructLogger) StructLogs() []TraceLog { return l.logs }

// Error returns the VM error of the outermost frame.
func (l *StructLogger) Error() error { return l.err }

func (l *StructLogger) Output() []byte { return l.output }

// Trace assembles the captured logs with the overall result of the call.
func (l *StructLogger) Trace(failed bool, gasUsed uint64, returnValue []byte) *Trace {
	return &Trace{
		Failed:      failed,
		Gas:         gasUsed,
		ReturnValue: hex.EncodeToString(returnValue),
		StructLogs:  l.logs,
		Config:      l.cfg,
	}
}
