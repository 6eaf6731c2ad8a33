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

package kv

import (
	"sort"
)

const (
	/*
	   PlainState logical layout:

	   	[address]                   | account encoded for storage
	   	[address]+[incarnation_u64] | [storage_key]+[storage_value] (DupSort)

	   Values are the latest ones. Older values live in changesets.
	*/
	PlainState = "PlainState"

	// PlainContractCode
	// key - address+incarnation
	// value - code hash
	PlainContractCode = "PlainCodeHash"

	/*
	   AccountChangeSet and StorageChangeSet of block N store values of state before block N changed them.

	   AccountChangeSet:

	   	key - blockNum_u64
	   	value - address + account(encoded)

	   StorageChangeSet:

	   	key - blockNum_u64 + address + incarnation_u64
	   	value - plain_storage_key + value
	*/
	AccountChangeSet = "AccountChangeSet"
	StorageChangeSet = "StorageChangeSet"

	/*
	   AccountsHistory and StorageHistory answer "smallest block number >= X where A changed".
	   Index is split into shards, each a serialized roaring64 bitmap of block numbers.
	   Non-last shards have the 8 byte suffix bigEndian(max_block_num_in_shard), the last one 0xFF...FF.

	   AccountsHistory:

	   	key - address + shard_id_u64
	   	value - roaring bitmap

	   StorageHistory:

	   	key - address + storage_key + shard_id_u64
	   	value - roaring bitmap
	*/
	AccountsHistory = "AccountHistory"
	StorageHistory  = "StorageHistory"

	//key - contract code hash
	//value - contract code
	Code = "Code"

	HeaderCanonical = "CanonicalHeader" // block_num_u64 -> header hash
	Headers         = "Header"          // block_num_u64 + hash -> header (RLP)
	HeaderNumber    = "HeaderNumber"    // header_hash -> header_num_u64

	ConfigTable = "Config" // genesis hash -> chain config (JSON)
)

type TableFlags uint

const (
	Default TableFlags = 0x00
	DupSort TableFlags = 0x04
)

type TableCfgItem struct {
	Flags TableFlags
}

type TableCfg map[string]TableCfgItem

// ChaindataTables are the tables the gateway reads.
var ChaindataTables = []string{
	PlainState,
	PlainContractCode,
	AccountChangeSet,
	StorageChangeSet,
	AccountsHistory,
	StorageHistory,
	Code,
	HeaderCanonical,
	Headers,
	HeaderNumber,
	ConfigTable,
}

var ChaindataTablesCfg = TableCfg{
	PlainState:       {Flags: DupSort},
	AccountChangeSet: {Flags: DupSort},
	StorageChangeSet: {Flags: DupSort},
}

func init() {
	sort.Strings(ChaindataTables)
	for _, name := range ChaindataTables {
		if _, ok := ChaindataTablesCfg[name]; !ok {
			ChaindataTablesCfg[name] = TableCfgItem{}
		}
	}
}
