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

package bitmapdb_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/rpcgateway/kv/bitmapdb"
)

func TestSeekInBitmap64(t *testing.T) {
	bm := roaring64.BitmapOf(3, 10, 5405099)

	found, ok := bitmapdb.SeekInBitmap64(bm, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(3), found)

	found, ok = bitmapdb.SeekInBitmap64(bm, 10)
	require.True(t, ok)
	assert.Equal(t, uint64(10), found)

	found, ok = bitmapdb.SeekInBitmap64(bm, 11)
	require.True(t, ok)
	assert.Equal(t, uint64(5405099), found)

	_, ok = bitmapdb.SeekInBitmap64(bm, 5405100)
	require.False(t, ok)

	_, ok = bitmapdb.SeekInBitmap64(roaring64.New(), 1)
	require.False(t, ok)
}

func TestRead64(t *testing.T) {
	// single container holding 0x4e3bd6
	raw := []byte{
		0x01, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		0x3a, 0x30, 0, 0, 0x01, 0, 0, 0, 0x4e, 0, 0, 0, 0x10, 0, 0, 0, 0xd6, 0x3b,
	}
	bm, err := bitmapdb.Read64(raw)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x4e3bd6}, bm.ToArray())

	_, err = bitmapdb.Read64([]byte{0xff})
	require.Error(t, err)
}

type shardSink map[string][]byte

func (s shardSink) Put(_ string, k, v []byte) error {
	s[string(k)] = v
	return nil
}

func TestWriteShards64(t *testing.T) {
	bm := roaring64.New()
	for j := uint64(0); j < 200_000; j += 7 {
		bm.Add(j)
	}
	sink := shardSink{}
	key := []byte{0xaa}
	require.NoError(t, bitmapdb.WriteShards64(sink, "AccountHistory", key, bm, uint64(bitmapdb.ShardLimit)))
	require.Greater(t, len(sink), 1)

	merged := roaring64.New()
	var last bool
	for k, v := range sink {
		shard, err := bitmapdb.Read64(v)
		require.NoError(t, err)
		assert.LessOrEqual(t, shard.GetSerializedSizeInBytes(), uint64(bitmapdb.ShardLimit)+256)
		suffix := binary.BigEndian.Uint64([]byte(k)[1:])
		if suffix == math.MaxUint64 {
			last = true
			assert.Equal(t, bm.Maximum(), shard.Maximum())
		} else {
			assert.Equal(t, suffix, shard.Maximum())
		}
		merged.Or(shard)
	}
	assert.True(t, last)
	assert.True(t, merged.Equals(bm))
	assert.Equal(t, uint64(200_000/7+1), bm.GetCardinality(), "input must stay untouched")
}

func TestCutLeft64(t *testing.T) {
	bm := roaring64.New()
	for j := uint64(0); j < 10_000; j += 20 {
		bm.AddRange(j, j+10)
	}
	N := uint64(1024)
	for bm.GetCardinality() > 0 {
		lft := bitmapdb.CutLeft64(bm, N)
		lftSz := lft.GetSerializedSizeInBytes()
		if bm.GetCardinality() > 0 {
			require.True(t, lftSz > N-256 && lftSz < N+256)
		} else {
			require.True(t, lftSz > 0)
			require.True(t, lftSz < N+256)
		}
	}

	require.Nil(t, bitmapdb.CutLeft64(roaring64.New(), N))
}
