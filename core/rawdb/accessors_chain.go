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

package rawdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/kv/dbutils"
)

var ErrChainConfigNotFound = errors.New("chain config not found")

// ReadCanonicalHash retrieves the hash assigned to a canonical block number.
// A missing entry gives the zero hash.
func ReadCanonicalHash(ctx context.Context, db kv.DatabaseReader, number uint64) (common.Hash, error) {
	data, err := db.GetOne(ctx, kv.HeaderCanonical, dbutils.EncodeBlockNumber(number))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed ReadCanonicalHash: %w, number=%d", err, number)
	}
	if len(data) == 0 {
		return common.Hash{}, nil
	}
	return common.BytesToHash(data), nil
}

// WriteCanonicalHash stores the hash assigned to a canonical block number.
func WriteCanonicalHash(db kv.Putter, hash common.Hash, number uint64) error {
	if err := db.Put(kv.HeaderCanonical, dbutils.EncodeBlockNumber(number), hash.Bytes()); err != nil {
		return fmt.Errorf("failed to store number to hash mapping: %w", err)
	}
	return nil
}

// ReadHeader retrieves the block header corresponding to the hash, nil if absent.
func ReadHeader(ctx context.Context, db kv.DatabaseReader, hash common.Hash, number uint64) (*types.Header, error) {
	data, err := db.GetOne(ctx, kv.Headers, dbutils.HeaderKey(number, hash))
	if err != nil {
		return nil, fmt.Errorf("ReadHeader: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	header := new(types.Header)
	if err := rlp.DecodeBytes(data, header); err != nil {
		return nil, fmt.Errorf("invalid block header RLP: hash=%x, %w", hash, err)
	}
	return header, nil
}

// ReadHeaderByNumber reads the canonical header at number.
func ReadHeaderByNumber(ctx context.Context, db kv.DatabaseReader, number uint64) (*types.Header, error) {
	hash, err := ReadCanonicalHash(ctx, db, number)
	if err != nil {
		return nil, err
	}
	if hash == (common.Hash{}) {
		return nil, nil
	}
	return ReadHeader(ctx, db, hash, number)
}

func WriteHeader(db kv.Putter, header *types.Header) error {
	data, err := rlp.EncodeToBytes(header)
	if err != nil {
		return fmt.Errorf("failed to RLP encode header: %w", err)
	}
	number := header.Number.Uint64()
	hash := header.Hash()
	if err := db.Put(kv.HeaderNumber, hash.Bytes(), dbutils.EncodeBlockNumber(number)); err != nil {
		return fmt.Errorf("failed to store hash to number mapping: %w", err)
	}
	if err := db.Put(kv.Headers, dbutils.HeaderKey(number, hash), data); err != nil {
		return fmt.Errorf("failed to store header: %w", err)
	}
	return nil
}

// ReadChainConfig retrieves the consensus settings stored under the genesis hash.
func ReadChainConfig(ctx context.Context, db kv.DatabaseReader, genesis common.Hash) (*params.ChainConfig, error) {
	data, err := db.GetOne(ctx, kv.ConfigTable, genesis[:])
	if err != nil {
		return nil, fmt.Errorf("ReadChainConfig: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: genesis=%x", ErrChainConfigNotFound, genesis)
	}
	var config params.ChainConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid chain config JSON: %x, %w", genesis, err)
	}
	return &config, nil
}

func WriteChainConfig(db kv.Putter, genesis common.Hash, config *params.ChainConfig) error {
	if config == nil {
		return nil
	}
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to JSON encode chain config: %w", err)
	}
	return db.Put(kv.ConfigTable, genesis[:], data)
}

// ReadCode returns the bytecode stored under codeHash.
func ReadCode(ctx context.Context, db kv.DatabaseReader, codeHash common.Hash) ([]byte, error) {
	if codeHash == types.EmptyCodeHash || codeHash == (common.Hash{}) {
		return nil, nil
	}
	code, err := db.GetOne(ctx, kv.Code, codeHash[:])
	if err != nil {
		return nil, fmt.Errorf("ReadCode: %w", err)
	}
	return code, nil
}
