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

package bitmapdb

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/c2h5oh/datasize"

	"github.com/erigontech/rpcgateway/kv"
)

const ShardLimit = 2 * datasize.KB

// SeekInBitmap64 returns the smallest element of m that is >= n.
func SeekInBitmap64(m *roaring64.Bitmap, n uint64) (found uint64, ok bool) {
	if m.IsEmpty() {
		return 0, false
	}
	if n == 0 {
		return m.Minimum(), true
	}
	searchRank := m.Rank(n - 1)
	if searchRank >= m.GetCardinality() {
		return 0, false
	}
	found, _ = m.Select(searchRank)
	return found, true
}

// Read64 decodes a serialized shard value.
func Read64(v []byte) (*roaring64.Bitmap, error) {
	bm := roaring64.New()
	if _, err := bm.ReadFrom(bytes.NewReader(v)); err != nil {
		return nil, err
	}
	return bm, nil
}

// CutLeft64 removes from bm a left part whose serialization is at most sizeLimit bytes and returns it.
func CutLeft64(bm *roaring64.Bitmap, sizeLimit uint64) *roaring64.Bitmap {
	if bm.GetCardinality() == 0 {
		return nil
	}

	sz := bm.GetSerializedSizeInBytes()
	if sz <= sizeLimit {
		lft := roaring64.New()
		lft.AddRange(bm.Minimum(), bm.Maximum()+1)
		lft.And(bm)
		lft.RunOptimize()
		bm.Clear()
		return lft
	}

	from := bm.Minimum()
	minMax := bm.Maximum() - bm.Minimum()
	to := sort.Search(int(minMax), func(i int) bool {
		lft := roaring64.New()
		lft.AddRange(from, from+uint64(i)+1)
		lft.And(bm)
		lft.RunOptimize()
		return lft.GetSerializedSizeInBytes() > sizeLimit
	})

	lft := roaring64.New()
	lft.AddRange(from, from+uint64(to)) // no +1: sort.Search points just above the limit
	lft.And(bm)
	bm.RemoveRange(from, from+uint64(to))
	lft.RunOptimize()
	return lft
}

// WriteShards64 stores bm under key split into shards of at most shardLimit bytes.
// Every shard key is key + BE8(max element) except the last one, which ends with 0xFF..FF.
func WriteShards64(p kv.Putter, table string, key []byte, bm *roaring64.Bitmap, shardLimit uint64) error {
	bm = bm.Clone()
	for bm.GetCardinality() > 0 {
		shard := CutLeft64(bm, shardLimit)
		shardKey := make([]byte, len(key)+8)
		copy(shardKey, key)
		if bm.GetCardinality() == 0 {
			binary.BigEndian.PutUint64(shardKey[len(key):], math.MaxUint64)
		} else {
			binary.BigEndian.PutUint64(shardKey[len(key):], shard.Maximum())
		}
		v, err := shard.ToBytes()
		if err != nil {
			return err
		}
		if err := p.Put(table, shardKey, v); err != nil {
			return err
		}
	}
	return nil
}
