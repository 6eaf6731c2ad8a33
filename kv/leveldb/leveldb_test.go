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

package leveldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/kv/memdb"
)

func TestEscapeOrder(t *testing.T) {
	keys := [][]byte{{}, {0}, {0, 0}, {0, 1}, {1}, {1, 0}, {0xff}}
	for i := 1; i < len(keys); i++ {
		assert.Negative(t, compare(escape(keys[i-1]), escape(keys[i])), "%x < %x", keys[i-1], keys[i])
	}
	for _, k := range keys {
		dec, n, err := unescape(append(escape(k), 0xaa))
		require.NoError(t, err)
		assert.Equal(t, len(escape(k)), n)
		assert.Equal(t, string(k), string(dec))
	}
	_, _, err := unescape([]byte{1, 2})
	require.Error(t, err)
}

func compare(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// both stores must answer the same way
func seed(t *testing.T, db kv.Putter) {
	t.Helper()
	puts := []struct {
		table      string
		key, value []byte
	}{
		{kv.PlainState, []byte{0xe0, 0xa2}, []byte{3, 2, 3, 0x43}},
		{kv.PlainState, []byte{0xe0, 0xa2, 0, 0, 0, 1}, []byte{0, 1, 0x2a}},
		{kv.PlainState, []byte{0xe0, 0xa2, 0, 0, 0, 1}, []byte{0, 0, 0x01}},
		{kv.AccountChangeSet, []byte{0, 0, 0, 0, 0, 0x52, 0x79, 0xab}, []byte{0xe0, 0xa2, 3}},
		{kv.AccountChangeSet, []byte{0, 0, 0, 0, 0, 0x52, 0x79, 0xab}, []byte{0x52, 0x72, 1}},
		{kv.AccountsHistory, []byte{0xe0, 0xa2, 0xff}, []byte("shard")},
		{kv.Code, []byte{0xaa}, []byte{0x60}},
	}
	for _, p := range puts {
		require.NoError(t, db.Put(p.table, p.key, p.value))
	}
}

func checkReader(t *testing.T, db kv.DatabaseReader) {
	ctx := context.Background()

	v, err := db.GetOne(ctx, kv.PlainState, []byte{0xe0, 0xa2})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 3, 0x43}, v)

	v, err = db.GetOne(ctx, kv.PlainState, []byte{0xe0, 0xa2, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0x01}, v)

	v, err = db.GetBothRange(ctx, kv.PlainState, []byte{0xe0, 0xa2, 0, 0, 0, 1}, []byte{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0x2a}, v)

	v, err = db.GetBothRange(ctx, kv.AccountChangeSet, []byte{0, 0, 0, 0, 0, 0x52, 0x79, 0xab}, []byte{0xe0, 0xa2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe0, 0xa2, 3}, v)

	kvp, err := db.Get(ctx, kv.AccountsHistory, []byte{0xe0, 0xa2, 0x10})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe0, 0xa2, 0xff}, kvp.Key)
	assert.Equal(t, []byte("shard"), kvp.Value)

	v, err = db.GetOne(ctx, kv.Code, []byte{0xab})
	require.NoError(t, err)
	assert.Nil(t, v)

	var n int
	require.NoError(t, db.ForPrefix(ctx, kv.PlainState, []byte{0xe0, 0xa2}, func(k, v []byte) (bool, error) {
		n++
		return true, nil
	}))
	assert.Equal(t, 3, n)
}

func TestLevelDBMatchesMemDB(t *testing.T) {
	logger := log.New()
	ldb, err := NewMem(logger)
	require.NoError(t, err)
	defer ldb.Close()
	mdb := memdb.NewTestDB(t)

	seed(t, ldb)
	seed(t, mdb)
	checkReader(t, ldb)
	checkReader(t, mdb)
}

func TestOpenReadOnly(t *testing.T) {
	logger := log.New()
	dir := filepath.Join(t.TempDir(), "chaindata")

	_, err := Open(dir, true, logger)
	require.Error(t, err)

	db, err := Open(dir, false, logger)
	require.NoError(t, err)
	seed(t, db)
	db.Close()

	db, err = Open(dir, true, logger)
	require.NoError(t, err)
	defer db.Close()
	checkReader(t, db)
	require.Error(t, db.Put(kv.Code, []byte{1}, []byte{2}))
}
