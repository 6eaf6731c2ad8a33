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

package transactions

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	gethrawdb "github.com/ethereum/go-ethereum/core/rawdb"
	gethstate "github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/holiman/uint256"

	"github.com/erigontech/rpcgateway/core/state"
	"github.com/erigontech/rpcgateway/core/types/accounts"
)

var _ gethstate.Reader = (*historicalReader)(nil)

// historicalReader serves the EVM state reads from the point-in-time view of
// chaindata, loading each account, slot and code on first use.
type historicalReader struct {
	ctx    context.Context
	reader *state.HistoryReader

	mu       sync.Mutex
	accounts map[common.Address]*accounts.Account
	err      error
}

func newHistoricalReader(ctx context.Context, reader *state.HistoryReader) *historicalReader {
	return &historicalReader{
		ctx:      ctx,
		reader:   reader,
		accounts: make(map[common.Address]*accounts.Account),
	}
}

// newHistoricalState builds an execution state whose committed values are the
// historical ones. Writes stay in memory.
func newHistoricalState(r *historicalReader) (*gethstate.StateDB, error) {
	db := gethstate.NewDatabase(triedb.NewDatabase(gethrawdb.NewMemoryDatabase(), nil), nil)
	return gethstate.NewWithReader(types.EmptyRootHash, db, r)
}

// fail keeps the first error. The StateDB only reports a formatted copy.
func (r *historicalReader) fail(err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
	return err
}

func (r *historicalReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *historicalReader) account(addr common.Address) (*accounts.Account, error) {
	r.mu.Lock()
	acc, ok := r.accounts[addr]
	r.mu.Unlock()
	if ok {
		return acc, nil
	}
	acc, err := r.reader.ReadAccountData(r.ctx, addr)
	if err != nil {
		return nil, r.fail(fmt.Errorf("reading account %x: %w", addr, err))
	}
	r.mu.Lock()
	r.accounts[addr] = acc
	r.mu.Unlock()
	return acc, nil
}

func (r *historicalReader) Account(addr common.Address) (*types.StateAccount, error) {
	acc, err := r.account(addr)
	if err != nil || acc == nil {
		return nil, err
	}
	codeHash := types.EmptyCodeHash
	if !acc.IsEmptyCodeHash() {
		codeHash = acc.CodeHash
	}
	return &types.StateAccount{
		Nonce:    acc.Nonce,
		Balance:  new(uint256.Int).Set(&acc.Balance),
		Root:     types.EmptyRootHash,
		CodeHash: codeHash.Bytes(),
	}, nil
}

func (r *historicalReader) Storage(addr common.Address, slot common.Hash) (common.Hash, error) {
	acc, err := r.account(addr)
	if err != nil || acc == nil || acc.Incarnation == 0 {
		return common.Hash{}, err
	}
	value, err := r.reader.ReadAccountStorage(r.ctx, addr, acc.Incarnation, slot)
	if err != nil {
		return common.Hash{}, r.fail(fmt.Errorf("reading storage %x of %x: %w", slot, addr, err))
	}
	return common.BytesToHash(value), nil
}

func (r *historicalReader) Code(addr common.Address, codeHash common.Hash) ([]byte, error) {
	if codeHash == types.EmptyCodeHash || codeHash == (common.Hash{}) {
		return nil, nil
	}
	acc, err := r.account(addr)
	if err != nil {
		return nil, err
	}
	var incarnation uint64
	if acc != nil {
		incarnation = acc.Incarnation
	}
	code, err := r.reader.ReadAccountCode(r.ctx, addr, incarnation, codeHash)
	if err != nil {
		return nil, r.fail(fmt.Errorf("reading code of %x: %w", addr, err))
	}
	return code, nil
}

func (r *historicalReader) CodeSize(addr common.Address, codeHash common.Hash) (int, error) {
	code, err := r.Code(addr, codeHash)
	return len(code), err
}
