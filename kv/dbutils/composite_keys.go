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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	NumberLength      = 8
	IncarnationLength = 8
)

// EncodeBlockNumber encodes a block number as big endian uint64
func EncodeBlockNumber(number uint64) []byte {
	enc := make([]byte, NumberLength)
	binary.BigEndian.PutUint64(enc, number)
	return enc
}

var ErrInvalidSize = errors.New("bit endian number has an invalid size")

func DecodeBlockNumber(number []byte) (uint64, error) {
	if len(number) != NumberLength {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, len(number))
	}
	return binary.BigEndian.Uint64(number), nil
}

// HeaderKey = num (uint64 big endian) + hash
func HeaderKey(number uint64, hash common.Hash) []byte {
	k := make([]byte, NumberLength+common.HashLength)
	binary.BigEndian.PutUint64(k, number)
	copy(k[NumberLength:], hash[:])
	return k
}

// AccountIndexChunkKey = address + BE8(blockNumber), the seek key into AccountsHistory.
func AccountIndexChunkKey(address common.Address, blockNumber uint64) []byte {
	key := make([]byte, common.AddressLength+NumberLength)
	copy(key, address[:])
	binary.BigEndian.PutUint64(key[common.AddressLength:], blockNumber)
	return key
}

// StorageIndexChunkKey = address + location + BE8(blockNumber), the seek key into StorageHistory.
func StorageIndexChunkKey(address common.Address, location common.Hash, blockNumber uint64) []byte {
	key := make([]byte, common.AddressLength+common.HashLength+NumberLength)
	copy(key, address[:])
	copy(key[common.AddressLength:], location[:])
	binary.BigEndian.PutUint64(key[common.AddressLength+common.HashLength:], blockNumber)
	return key
}

// StorageChangeSetKey = BE8(blockNumber) + address + BE8(incarnation)
func StorageChangeSetKey(blockNumber uint64, address common.Address, incarnation uint64) []byte {
	key := make([]byte, NumberLength+common.AddressLength+IncarnationLength)
	binary.BigEndian.PutUint64(key, blockNumber)
	copy(key[NumberLength:], address[:])
	binary.BigEndian.PutUint64(key[NumberLength+common.AddressLength:], incarnation)
	return key
}

// PlainGenerateStoragePrefix = address + BE8(incarnation), the PlainState and PlainContractCode key.
func PlainGenerateStoragePrefix(address []byte, incarnation uint64) []byte {
	prefix := make([]byte, common.AddressLength+IncarnationLength)
	copy(prefix, address)
	binary.BigEndian.PutUint64(prefix[common.AddressLength:], incarnation)
	return prefix
}

func PlainParseStoragePrefix(prefix []byte) (common.Address, uint64) {
	var addr common.Address
	copy(addr[:], prefix[:common.AddressLength])
	inc := binary.BigEndian.Uint64(prefix[common.AddressLength : common.AddressLength+IncarnationLength])
	return addr, inc
}

// PlainGenerateCompositeStorageKey = address + BE8(incarnation) + location
func PlainGenerateCompositeStorageKey(address []byte, incarnation uint64, key []byte) []byte {
	compositeKey := make([]byte, common.AddressLength+IncarnationLength+common.HashLength)
	copy(compositeKey, address)
	binary.BigEndian.PutUint64(compositeKey[common.AddressLength:], incarnation)
	copy(compositeKey[common.AddressLength+IncarnationLength:], key)
	return compositeKey
}

func PlainParseCompositeStorageKey(compositeKey []byte) (common.Address, uint64, common.Hash) {
	prefixLen := common.AddressLength + IncarnationLength
	addr, inc := PlainParseStoragePrefix(compositeKey[:prefixLen])
	var key common.Hash
	copy(key[:], compositeKey[prefixLen:prefixLen+common.HashLength])
	return addr, inc, key
}
