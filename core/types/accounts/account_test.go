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

package accounts

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGoerliSender(t *testing.T) {
	var a Account
	require.NoError(t, a.DecodeForStorage(hexutil.MustDecode("0x030203430b141e903194951083c424fd")))
	assert.Equal(t, uint64(835), a.Nonce)
	assert.Equal(t, "0x141e903194951083c424fd", a.Balance.Hex())
	assert.Equal(t, uint64(0), a.Incarnation)
	assert.Equal(t, types.EmptyCodeHash, a.CodeHash)
}

func TestEncodeForStorage(t *testing.T) {
	a := NewAccount()
	a.Nonce = 835
	a.Balance.SetFromHex("0x141e903194951083c424fd")
	buf := make([]byte, a.EncodingLengthForStorage())
	a.EncodeForStorage(buf)
	assert.Equal(t, "0x030203430b141e903194951083c424fd", hexutil.Encode(buf))
}

func TestStorageRoundTrip(t *testing.T) {
	accounts := []Account{
		NewAccount(),
		{Initialised: true, Nonce: 1, CodeHash: types.EmptyCodeHash},
		{Initialised: true, Nonce: 1 << 40, Balance: *uint256.NewInt(7), Incarnation: 2, CodeHash: common.HexToHash("0xdeadbeef")},
		{Initialised: true, Balance: *new(uint256.Int).Lsh(uint256.NewInt(1), 255), CodeHash: types.EmptyCodeHash},
	}
	for _, a := range accounts {
		buf := make([]byte, a.EncodingLengthForStorage())
		a.EncodeForStorage(buf)
		var decoded Account
		require.NoError(t, decoded.DecodeForStorage(buf))
		assert.Equal(t, a, decoded)
	}

	empty := NewAccount()
	assert.Equal(t, 1, empty.EncodingLengthForStorage())
}

func TestDecodeMalformed(t *testing.T) {
	var a Account
	require.Error(t, a.DecodeForStorage([]byte{fieldNonce}))
	require.Error(t, a.DecodeForStorage([]byte{fieldNonce, 3, 1}))
	require.Error(t, a.DecodeForStorage([]byte{fieldBalance, 40}))
	require.Error(t, a.DecodeForStorage([]byte{fieldCodeHash, 31}))
	require.Error(t, a.DecodeForStorage([]byte{fieldCodeHash, 32, 1}))

	require.NoError(t, a.DecodeForStorage(nil))
	assert.True(t, a.IsEmptyCodeHash())
}
