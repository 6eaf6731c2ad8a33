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

package gointerfaces

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/erigontech/rpcgateway/gointerfaces/types"
)

// Absent sub-messages convert as zero. Byte slices passed to the
// ConvertBytesToH* family must have the exact width.

func ConvertH128ToBytes(h128 *types.H128) []byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:], h128.GetHi())
	binary.BigEndian.PutUint64(b[8:], h128.GetLo())
	return b[:]
}

func ConvertBytesToH128(b []byte) *types.H128 {
	return &types.H128{Hi: binary.BigEndian.Uint64(b[0:]), Lo: binary.BigEndian.Uint64(b[8:])}
}

func ConvertH256ToBytes(h256 *types.H256) []byte {
	var b [32]byte
	copy(b[0:], ConvertH128ToBytes(h256.GetHi()))
	copy(b[16:], ConvertH128ToBytes(h256.GetLo()))
	return b[:]
}

func ConvertBytesToH256(b []byte) *types.H256 {
	return &types.H256{Hi: ConvertBytesToH128(b[0:16]), Lo: ConvertBytesToH128(b[16:32])}
}

func ConvertH512ToBytes(h512 *types.H512) []byte {
	var b [64]byte
	copy(b[0:], ConvertH256ToBytes(h512.GetHi()))
	copy(b[32:], ConvertH256ToBytes(h512.GetLo()))
	return b[:]
}

func ConvertBytesToH512(b []byte) *types.H512 {
	return &types.H512{Hi: ConvertBytesToH256(b[0:32]), Lo: ConvertBytesToH256(b[32:64])}
}

func ConvertH1024ToBytes(h1024 *types.H1024) []byte {
	var b [128]byte
	copy(b[0:], ConvertH512ToBytes(h1024.GetHi()))
	copy(b[64:], ConvertH512ToBytes(h1024.GetLo()))
	return b[:]
}

func ConvertBytesToH1024(b []byte) *types.H1024 {
	return &types.H1024{Hi: ConvertBytesToH512(b[0:64]), Lo: ConvertBytesToH512(b[64:128])}
}

func ConvertH2048ToBytes(h2048 *types.H2048) []byte {
	var b [256]byte
	copy(b[0:], ConvertH1024ToBytes(h2048.GetHi()))
	copy(b[128:], ConvertH1024ToBytes(h2048.GetLo()))
	return b[:]
}

func ConvertBytesToH2048(b []byte) *types.H2048 {
	return &types.H2048{Hi: ConvertBytesToH1024(b[0:128]), Lo: ConvertBytesToH1024(b[128:256])}
}

func ConvertH256ToHash(h256 *types.H256) common.Hash {
	var hash common.Hash
	binary.BigEndian.PutUint64(hash[0:], h256.GetHi().GetHi())
	binary.BigEndian.PutUint64(hash[8:], h256.GetHi().GetLo())
	binary.BigEndian.PutUint64(hash[16:], h256.GetLo().GetHi())
	binary.BigEndian.PutUint64(hash[24:], h256.GetLo().GetLo())
	return hash
}

func ConvertHashToH256(hash common.Hash) *types.H256 {
	return &types.H256{
		Lo: &types.H128{Lo: binary.BigEndian.Uint64(hash[24:]), Hi: binary.BigEndian.Uint64(hash[16:])},
		Hi: &types.H128{Lo: binary.BigEndian.Uint64(hash[8:]), Hi: binary.BigEndian.Uint64(hash[0:])},
	}
}

func ConvertHashesToH256(hashes []common.Hash) []*types.H256 {
	res := make([]*types.H256, len(hashes))
	for i := range hashes {
		res[i] = ConvertHashToH256(hashes[i])
	}
	return res
}

func ConvertH160toAddress(h160 *types.H160) common.Address {
	var addr common.Address
	binary.BigEndian.PutUint64(addr[0:], h160.GetHi().GetHi())
	binary.BigEndian.PutUint64(addr[8:], h160.GetHi().GetLo())
	binary.BigEndian.PutUint32(addr[16:], h160.GetLo())
	return addr
}

func ConvertAddressToH160(addr common.Address) *types.H160 {
	return &types.H160{
		Lo: binary.BigEndian.Uint32(addr[16:]),
		Hi: &types.H128{Lo: binary.BigEndian.Uint64(addr[8:]), Hi: binary.BigEndian.Uint64(addr[0:])},
	}
}

// uint256.Int keeps its limbs least significant first.
func ConvertH256ToUint256Int(h256 *types.H256) *uint256.Int {
	var i uint256.Int
	i[3] = h256.GetHi().GetHi()
	i[2] = h256.GetHi().GetLo()
	i[1] = h256.GetLo().GetHi()
	i[0] = h256.GetLo().GetLo()
	return &i
}

func ConvertUint256IntToH256(i *uint256.Int) *types.H256 {
	return &types.H256{
		Lo: &types.H128{Lo: i[0], Hi: i[1]},
		Hi: &types.H128{Lo: i[2], Hi: i[3]},
	}
}

func ConvertH2048ToBloom(h2048 *types.H2048) ethtypes.Bloom {
	var bloom ethtypes.Bloom
	copy(bloom[:], ConvertH2048ToBytes(h2048))
	return bloom
}

func ConvertBloomToH2048(bloom ethtypes.Bloom) *types.H2048 {
	return ConvertBytesToH2048(bloom[:])
}
