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

package rpc

import (
	"encoding/json"
	"os"
	"sort"
)

// AllowList restricts the methods a server answers. An empty list allows every method.
type AllowList map[string]struct{}

func (a *AllowList) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	realA := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		realA[k] = struct{}{}
	}
	*a = realA
	return nil
}

// MarshalJSON returns *a as a sorted JSON array
func (a *AllowList) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(*a))
	for key := range *a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return json.Marshal(keys)
}

func (a AllowList) allows(method string) bool {
	if len(a) == 0 {
		return true
	}
	_, ok := a[method]
	return ok
}

// ParseAllowListFile reads a JSON file of the form {"allow": ["eth_coinbase", ...]}.
func ParseAllowListFile(path string) (AllowList, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Allow AllowList `json:"allow"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Allow, nil
}
