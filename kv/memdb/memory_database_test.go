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

package memdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/rpcgateway/kv"
)

func TestGetSeeks(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Put(kv.AccountsHistory, []byte{1, 5}, []byte("a")))
	require.NoError(t, db.Put(kv.AccountsHistory, []byte{1, 9}, []byte("b")))

	kvp, err := db.Get(ctx, kv.AccountsHistory, []byte{1, 6})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 9}, kvp.Key)
	assert.Equal(t, []byte("b"), kvp.Value)

	kvp, err = db.Get(ctx, kv.AccountsHistory, []byte{2})
	require.NoError(t, err)
	assert.Nil(t, kvp.Key)

	v, err := db.GetOne(ctx, kv.AccountsHistory, []byte{1, 6})
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, db.Put(kv.AccountsHistory, []byte{1, 5}, []byte("c")))
	v, err = db.GetOne(ctx, kv.AccountsHistory, []byte{1, 5})
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), v)
}

func TestDupSort(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	key := []byte{0, 0, 0, 7}
	require.NoError(t, db.Put(kv.AccountChangeSet, key, []byte{0xbb, 2}))
	require.NoError(t, db.Put(kv.AccountChangeSet, key, []byte{0xaa, 1}))
	require.NoError(t, db.Put(kv.AccountChangeSet, []byte{0, 0, 0, 8}, []byte{0xaa, 3}))

	v, err := db.GetOne(ctx, kv.AccountChangeSet, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 1}, v)

	v, err = db.GetBothRange(ctx, kv.AccountChangeSet, key, []byte{0xab})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xbb, 2}, v)

	v, err = db.GetBothRange(ctx, kv.AccountChangeSet, key, []byte{0xbc})
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = db.GetBothRange(ctx, kv.Code, key, []byte{0xbc})
	require.Error(t, err)

	var seen [][]byte
	require.NoError(t, db.ForPrefix(ctx, kv.AccountChangeSet, key, func(k, v []byte) (bool, error) {
		seen = append(seen, v)
		return true, nil
	}))
	assert.Equal(t, [][]byte{{0xaa, 1}, {0xbb, 2}}, seen)
}

func TestWalk(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	for _, k := range [][]byte{{1, 0}, {1, 1}, {1, 0x80}, {2, 0}} {
		require.NoError(t, db.Put(kv.Code, k, k))
	}

	var keys [][]byte
	collect := func(k, _ []byte) (bool, error) {
		keys = append(keys, k)
		return true, nil
	}
	require.NoError(t, db.Walk(ctx, kv.Code, []byte{1, 0}, 9, collect))
	assert.Equal(t, [][]byte{{1, 0}, {1, 1}}, keys)

	keys = nil
	require.NoError(t, db.Walk(ctx, kv.Code, []byte{1, 1}, 0, collect))
	assert.Equal(t, [][]byte{{1, 1}, {1, 0x80}, {2, 0}}, keys)

	keys = nil
	require.NoError(t, db.Walk(ctx, kv.Code, nil, 0, func(k, _ []byte) (bool, error) {
		keys = append(keys, k)
		return len(keys) < 2, nil
	}))
	assert.Len(t, keys, 2)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, db.Walk(cancelled, kv.Code, nil, 0, collect), context.Canceled)
}

func TestUnknownTable(t *testing.T) {
	db := NewTestDB(t)
	require.ErrorIs(t, db.Put("Nope", []byte{1}, nil), kv.ErrUnknownTable)
	_, err := db.GetOne(context.Background(), "Nope", []byte{1})
	require.ErrorIs(t, err, kv.ErrUnknownTable)
}
