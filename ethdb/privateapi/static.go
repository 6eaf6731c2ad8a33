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

package privateapi

import "github.com/ethereum/go-ethereum/common"

// StaticBackend answers the chain queries with fixed values.
type StaticBackend struct {
	Coinbase  common.Address
	NetworkID uint64
	Peers     uint64
	Name      string
}

func (b *StaticBackend) Etherbase() (common.Address, error) { return b.Coinbase, nil }
func (b *StaticBackend) NetVersion() (uint64, error)        { return b.NetworkID, nil }
func (b *StaticBackend) NetPeerCount() (uint64, error)      { return b.Peers, nil }
func (b *StaticBackend) NodeName() string                   { return b.Name }
