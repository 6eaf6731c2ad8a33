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

package transactions

import (
	"errors"
	"math"

	"github.com/ethereum/go-ethereum/params"
)

var ErrGasUintOverflow = errors.New("gas uint64 overflow")

// IntrinsicGas computes the gas a message pays before its first instruction:
// the base cost plus the cost of its data, zero and non-zero bytes priced differently.
func IntrinsicGas(data []byte, isContractCreation, isHomestead, isEIP2028, isEIP3860 bool) (uint64, error) {
	var gas uint64
	if isContractCreation && isHomestead {
		gas = params.TxGasContractCreation
	} else {
		gas = params.TxGas
	}
	dataLen := uint64(len(data))
	if dataLen == 0 {
		return gas, nil
	}

	var nz uint64
	for _, byt := range data {
		if byt != 0 {
			nz++
		}
	}
	nonZeroGas := params.TxDataNonZeroGasFrontier
	if isEIP2028 {
		nonZeroGas = params.TxDataNonZeroGasEIP2028
	}
	if (math.MaxUint64-gas)/nonZeroGas < nz {
		return 0, ErrGasUintOverflow
	}
	gas += nz * nonZeroGas

	z := dataLen - nz
	if (math.MaxUint64-gas)/params.TxDataZeroGas < z {
		return 0, ErrGasUintOverflow
	}
	gas += z * params.TxDataZeroGas

	if isContractCreation && isEIP3860 {
		lenWords := (dataLen + 31) / 32
		if (math.MaxUint64-gas)/params.InitCodeWordGas < lenWords {
			return 0, ErrGasUintOverflow
		}
		gas += lenWords * params.InitCodeWordGas
	}
	return gas, nil
}
