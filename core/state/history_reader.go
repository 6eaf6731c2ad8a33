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

package state

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/rpcgateway/core/rawdb"
	"github.com/erigontech/rpcgateway/core/types/accounts"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/kv/bitmapdb"
	"github.com/erigontech/rpcgateway/kv/dbutils"
)

const DefaultIncarnation = uint64(1)

// ReadCache holds point-in-time reads. Keys carry the block number, so one cache
// can be shared by readers bound to different blocks.
type ReadCache = lru.Cache[string, []byte]

func NewReadCache(size int) (*ReadCache, error) {
	return lru.New[string, []byte](size)
}

// HistoryReader reads accounts and storage as they were after block blockNumber
// was applied. Values changed later are found in the changesets through the
// history indices; untouched values come from PlainState.
type HistoryReader struct {
	db          kv.DatabaseReader
	blockNumber uint64
	cache       *ReadCache
	logger      log.Logger
}

func NewHistoryReader(db kv.DatabaseReader, blockNumber uint64, logger log.Logger) *HistoryReader {
	return &HistoryReader{db: db, blockNumber: blockNumber, logger: logger}
}

// SetCache enables caching of raw reads. A nil cache disables it.
func (r *HistoryReader) SetCache(cache *ReadCache) {
	r.cache = cache
}

func (r *HistoryReader) BlockNumber() uint64 {
	return r.blockNumber
}

// ReadAccountData returns nil when the account did not exist.
func (r *HistoryReader) ReadAccountData(ctx context.Context, address common.Address) (*accounts.Account, error) {
	enc, err := r.cached(kv.PlainState, address[:], func() ([]byte, error) {
		return r.readAccountEncoded(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	if len(enc) == 0 {
		return nil, nil
	}
	var a accounts.Account
	if err := a.DecodeForStorage(enc); err != nil {
		return nil, fmt.Errorf("decoding account %x: %w", address, err)
	}
	return &a, nil
}

// ReadAccountStorage returns the raw (leading zeros trimmed) value of location, nil when unset.
func (r *HistoryReader) ReadAccountStorage(ctx context.Context, address common.Address, incarnation uint64, location common.Hash) ([]byte, error) {
	compositeKey := dbutils.PlainGenerateCompositeStorageKey(address[:], incarnation, location[:])
	return r.cached(kv.StorageChangeSet, compositeKey, func() ([]byte, error) {
		return r.readStorage(ctx, address, incarnation, location)
	})
}

func (r *HistoryReader) ReadAccountCode(ctx context.Context, address common.Address, incarnation uint64, codeHash common.Hash) ([]byte, error) {
	return rawdb.ReadCode(ctx, r.db, codeHash)
}

func (r *HistoryReader) readAccountEncoded(ctx context.Context, address common.Address) ([]byte, error) {
	data, found, err := r.findByHistory(ctx, kv.AccountsHistory, address[:], func(changeBlock uint64) ([]byte, error) {
		return r.db.GetBothRange(ctx, kv.AccountChangeSet, dbutils.EncodeBlockNumber(changeBlock), address[:])
	}, address[:])
	if err != nil {
		return nil, err
	}
	if !found {
		r.logger.Trace("account from plain state", "address", address, "block", r.blockNumber)
		return r.db.GetOne(ctx, kv.PlainState, address[:])
	}
	if len(data) == 0 {
		return nil, nil
	}

	// changesets may omit the code hash of contracts
	var acc accounts.Account
	if err := acc.DecodeForStorage(data); err != nil {
		return nil, fmt.Errorf("decoding account %x from changeset: %w", address, err)
	}
	if acc.Incarnation > 0 && acc.IsEmptyCodeHash() {
		codeHash, err := r.db.GetOne(ctx, kv.PlainContractCode, dbutils.PlainGenerateStoragePrefix(address[:], acc.Incarnation))
		if err != nil {
			return nil, err
		}
		if len(codeHash) > 0 {
			acc.CodeHash.SetBytes(codeHash)
		}
		data = make([]byte, acc.EncodingLengthForStorage())
		acc.EncodeForStorage(data)
	}
	return data, nil
}

func (r *HistoryReader) readStorage(ctx context.Context, address common.Address, incarnation uint64, location common.Hash) ([]byte, error) {
	indexKey := make([]byte, 0, len(address)+len(location))
	indexKey = append(append(indexKey, address[:]...), location[:]...)
	data, found, err := r.findByHistory(ctx, kv.StorageHistory, indexKey, func(changeBlock uint64) ([]byte, error) {
		return r.db.GetBothRange(ctx, kv.StorageChangeSet, dbutils.StorageChangeSetKey(changeBlock, address, incarnation), location[:])
	}, location[:])
	if err != nil {
		return nil, err
	}
	if found {
		return data, nil
	}
	v, err := r.db.GetBothRange(ctx, kv.PlainState, dbutils.PlainGenerateStoragePrefix(address[:], incarnation), location[:])
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(v, location[:]) {
		return nil, nil
	}
	return v[len(location):], nil
}

// findByHistory locates the first change of key after blockNumber and returns the
// value the changeset recorded for it, with the subkey prefix stripped.
func (r *HistoryReader) findByHistory(ctx context.Context, indexTable string, key []byte, changeSet func(uint64) ([]byte, error), subkey []byte) ([]byte, bool, error) {
	timestamp := r.blockNumber + 1
	seek := make([]byte, len(key)+dbutils.NumberLength)
	copy(seek, key)
	copy(seek[len(key):], dbutils.EncodeBlockNumber(timestamp))

	kvp, err := r.db.Get(ctx, indexTable, seek)
	if err != nil {
		return nil, false, err
	}
	if kvp.Key == nil || !bytes.HasPrefix(kvp.Key, key) {
		return nil, false, nil
	}
	index, err := bitmapdb.Read64(kvp.Value)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s shard %x: %w", indexTable, kvp.Key, err)
	}
	changeBlock, ok := bitmapdb.SeekInBitmap64(index, timestamp)
	if !ok {
		return nil, false, nil
	}
	v, err := changeSet(changeBlock)
	if err != nil {
		return nil, false, fmt.Errorf("finding %x in the changeset %d: %w", key, changeBlock, err)
	}
	if !bytes.HasPrefix(v, subkey) {
		return nil, false, nil
	}
	return v[len(subkey):], true, nil
}

func (r *HistoryReader) cached(table string, key []byte, read func() ([]byte, error)) ([]byte, error) {
	if r.cache == nil {
		return read()
	}
	cacheKey := string(dbutils.EncodeBlockNumber(r.blockNumber)) + table + string(key)
	if v, ok := r.cache.Get(cacheKey); ok {
		return v, nil
	}
	v, err := read()
	if err != nil {
		return nil, err
	}
	r.cache.Add(cacheKey, v)
	return v, nil
}
