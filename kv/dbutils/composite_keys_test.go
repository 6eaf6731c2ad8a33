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

package dbutils

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sender = common.HexToAddress("0xe0a2bd4258d2768837baa26a28fe71dc079f84c7")

func TestBlockNumber(t *testing.T) {
	assert.Equal(t, "0x00000000005279a7", hexutil.Encode(EncodeBlockNumber(5405095)))
	n, err := DecodeBlockNumber(EncodeBlockNumber(5405095))
	require.NoError(t, err)
	assert.Equal(t, uint64(5405095), n)

	_, err = DecodeBlockNumber([]byte{1, 2})
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestHistoryKeys(t *testing.T) {
	assert.Equal(t, "0xe0a2bd4258d2768837baa26a28fe71dc079f84c700000000005279a8", hexutil.Encode(AccountIndexChunkKey(sender, 5405096)))

	loc := common.HexToHash("0x01")
	key := StorageIndexChunkKey(sender, loc, 2)
	require.Len(t, key, 20+32+8)
	assert.Equal(t, loc[:], key[20:52])
	assert.Equal(t, byte(2), key[59])

	cs := StorageChangeSetKey(0x5279ab, sender, 1)
	assert.Equal(t, "0x00000000005279abe0a2bd4258d2768837baa26a28fe71dc079f84c70000000000000001", hexutil.Encode(cs))
}

func TestPlainStorageKeys(t *testing.T) {
	loc := common.HexToHash("0x804292fe56769f4b9f0e91cf85875f67487cd9e85a084cbba2188be4466c4f23")
	composite := PlainGenerateCompositeStorageKey(sender[:], 3, loc[:])
	addr, inc, key := PlainParseCompositeStorageKey(composite)
	assert.Equal(t, sender, addr)
	assert.Equal(t, uint64(3), inc)
	assert.Equal(t, loc, key)
	assert.Equal(t, PlainGenerateStoragePrefix(sender[:], 3), composite[:28])
}
