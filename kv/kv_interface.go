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

package kv

import (
	"context"
	"errors"
)

var ErrUnknownTable = errors.New("unknown table")

// KeyValue is one entry returned by a seek. Key is nil when nothing was found.
type KeyValue struct {
	Key   []byte
	Value []byte
}

// Walker is called for every visited entry. Returning false stops the walk.
type Walker func(k, v []byte) (bool, error)

// DatabaseReader is the read-only chaindata access used by the historical state view.
// Returned slices must not be modified by callers.
type DatabaseReader interface {
	// Get seeks the first entry with key >= key. For DupSort tables it is the first duplicate.
	Get(ctx context.Context, table string, key []byte) (KeyValue, error)
	// GetOne is an exact point lookup. Missing keys give a nil value and no error.
	GetOne(ctx context.Context, table string, key []byte) ([]byte, error)
	// GetBothRange returns the first duplicate of key that is >= subkey, or nil.
	GetBothRange(ctx context.Context, table string, key, subkey []byte) ([]byte, error)
	// Walk visits entries from startKey while the first fixedBits bits of the key match startKey.
	Walk(ctx context.Context, table string, startKey []byte, fixedBits int, walker Walker) error
	// ForPrefix visits all entries whose key starts with prefix.
	ForPrefix(ctx context.Context, table string, prefix []byte, walker Walker) error
}

// Putter writes into a table. DupSort tables keep every distinct value of a key.
type Putter interface {
	Put(table string, key, value []byte) error
}

// RwDB is a database the gateway can both seed and read.
type RwDB interface {
	DatabaseReader
	Putter
	Close()
}

// Cursor is an ordered iterator over one table. Keys are nil when exhausted.
type Cursor interface {
	Seek(seek []byte) ([]byte, []byte, error)
	Next() ([]byte, []byte, error)
	Close()
}
