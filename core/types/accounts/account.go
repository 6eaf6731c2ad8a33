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
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// Account is the representation of accounts in the PlainState and changeset tables.
// Incarnation separates the storage of a contract from that of an earlier
// contract created and self destructed at the same address.
type Account struct {
	Initialised bool
	Nonce       uint64
	Balance     uint256.Int
	CodeHash    common.Hash
	Incarnation uint64
}

const (
	fieldNonce       = 1
	fieldBalance     = 2
	fieldIncarnation = 4
	fieldCodeHash    = 8
)

// NewAccount creates a new account w/o code nor storage.
func NewAccount() Account {
	return Account{
		Initialised: true,
		CodeHash:    types.EmptyCodeHash,
	}
}

func (a *Account) Reset() {
	a.Initialised = true
	a.Nonce = 0
	a.Incarnation = 0
	a.Balance.Clear()
	a.CodeHash = types.EmptyCodeHash
}

func (a *Account) IsEmptyCodeHash() bool {
	return a.CodeHash == types.EmptyCodeHash || a.CodeHash == (common.Hash{})
}

func (a *Account) EncodingLengthForStorage() int {
	var structLength = 1 // 1 byte for fieldset

	if !a.Balance.IsZero() {
		structLength += a.Balance.ByteLen() + 1
	}
	if a.Nonce > 0 {
		structLength += (bits.Len64(a.Nonce)+7)/8 + 1
	}
	if !a.IsEmptyCodeHash() {
		structLength += 33 // 32-byte array + 1 byte for length
	}
	if a.Incarnation > 0 {
		structLength += (bits.Len64(a.Incarnation)+7)/8 + 1
	}
	return structLength
}

// EncodeForStorage writes a fieldset byte followed by every present field as
// length-prefixed big endian bytes. buffer must be EncodingLengthForStorage long.
func (a *Account) EncodeForStorage(buffer []byte) {
	var fieldSet = 0 // start with first bit set to 0
	var pos = 1
	if a.Nonce > 0 {
		fieldSet = fieldNonce
		pos += putUint(buffer[pos:], a.Nonce)
	}

	// Encoding balance
	if !a.Balance.IsZero() {
		fieldSet |= fieldBalance
		balanceBytes := a.Balance.ByteLen()
		buffer[pos] = byte(balanceBytes)
		pos++
		a.Balance.WriteToSlice(buffer[pos : pos+balanceBytes])
		pos += balanceBytes
	}

	if a.Incarnation > 0 {
		fieldSet |= fieldIncarnation
		pos += putUint(buffer[pos:], a.Incarnation)
	}

	// Encoding CodeHash
	if !a.IsEmptyCodeHash() {
		fieldSet |= fieldCodeHash
		buffer[pos] = 32
		copy(buffer[pos+1:], a.CodeHash[:])
	}

	buffer[0] = byte(fieldSet)
}

func putUint(buffer []byte, v uint64) int {
	n := (bits.Len64(v) + 7) / 8
	buffer[0] = byte(n)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	copy(buffer[1:], b[8-n:])
	return n + 1
}

func (a *Account) DecodeForStorage(enc []byte) error {
	a.Reset()

	if len(enc) == 0 {
		return nil
	}

	var fieldSet = enc[0]
	var pos = 1

	if fieldSet&fieldNonce > 0 {
		nonce, n, err := readUint(enc, pos, "Nonce")
		if err != nil {
			return err
		}
		a.Nonce = nonce
		pos += n
	}

	if fieldSet&fieldBalance > 0 {
		if len(enc) <= pos {
			return fmt.Errorf("malformed CBOR for Account.Balance: missing length at %d", pos)
		}
		decodeLength := int(enc[pos])
		if decodeLength > 32 || len(enc) < pos+decodeLength+1 {
			return fmt.Errorf("malformed CBOR for Account.Balance: %x, Length %d", enc[pos+1:], decodeLength)
		}
		a.Balance.SetBytes(enc[pos+1 : pos+decodeLength+1])
		pos += decodeLength + 1
	}

	if fieldSet&fieldIncarnation > 0 {
		inc, n, err := readUint(enc, pos, "Incarnation")
		if err != nil {
			return err
		}
		a.Incarnation = inc
		pos += n
	}

	if fieldSet&fieldCodeHash > 0 {
		if len(enc) <= pos {
			return fmt.Errorf("malformed CBOR for Account.CodeHash: missing length at %d", pos)
		}
		decodeLength := int(enc[pos])
		if decodeLength != 32 {
			return fmt.Errorf("codehash should be 32 bytes long, got %d instead", decodeLength)
		}
		if len(enc) < pos+decodeLength+1 {
			return fmt.Errorf("malformed CBOR for Account.CodeHash: %x, Length %d", enc[pos+1:], decodeLength)
		}
		a.CodeHash.SetBytes(enc[pos+1 : pos+decodeLength+1])
	}

	return nil
}

func readUint(enc []byte, pos int, field string) (uint64, int, error) {
	if len(enc) <= pos {
		return 0, 0, fmt.Errorf("malformed CBOR for Account.%s: missing length at %d", field, pos)
	}
	decodeLength := int(enc[pos])
	if decodeLength > 8 || len(enc) < pos+decodeLength+1 {
		return 0, 0, fmt.Errorf("malformed CBOR for Account.%s: %x, Length %d", field, enc[pos+1:], decodeLength)
	}
	var b [8]byte
	copy(b[8-decodeLength:], enc[pos+1:pos+decodeLength+1])
	return binary.BigEndian.Uint64(b[:]), decodeLength + 1, nil
}
