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

// Package memdb is an ordered in-memory chaindata used by tests and the
// mock backend. DupSort tables keep every distinct value of a key, sorted.
package memdb

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/btree"

	"github.com/erigontech/rpcgateway/kv"
)

const degree = 32

type item struct {
	k, v []byte
}

type table struct {
	dupSort bool
	tree    *btree.BTreeG[item]
}

func (t *table) less(a, b item) bool {
	if c := bytes.Compare(a.k, b.k); c != 0 {
		return c < 0
	}
	return t.dupSort && bytes.Compare(a.v, b.v) < 0
}

func (t *table) equal(a, b item) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// seek returns the first item >= pivot.
func (t *table) seek(pivot item) (item, bool) {
	var res item
	var ok bool
	t.tree.AscendGreaterOrEqual(pivot, func(it item) bool {
		res, ok = it, true
		return false
	})
	return res, ok
}

// next returns the first item > cur.
func (t *table) next(cur item) (item, bool) {
	var res item
	var ok bool
	t.tree.AscendGreaterOrEqual(cur, func(it item) bool {
		if t.equal(it, cur) {
			return true
		}
		res, ok = it, true
		return false
	})
	return res, ok
}

type MemoryDB struct {
	mu     sync.RWMutex
	tables map[string]*table
}

var _ kv.RwDB = (*MemoryDB)(nil)

// New creates the chaindata tables described by cfg.
func New(cfg kv.TableCfg) *MemoryDB {
	db := &MemoryDB{tables: make(map[string]*table, len(cfg))}
	for name, cfgItem := range cfg {
		t := &table{dupSort: cfgItem.Flags&kv.DupSort != 0}
		t.tree = btree.NewG[item](degree, t.less)
		db.tables[name] = t
	}
	return db
}

// NewTestDB returns a chaindata closed at test cleanup.
func NewTestDB(tb testing.TB) *MemoryDB {
	tb.Helper()
	db := New(kv.ChaindataTablesCfg)
	tb.Cleanup(db.Close)
	return db
}

func (db *MemoryDB) table(name string) (*table, error) {
	t, ok := db.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", kv.ErrUnknownTable, name)
	}
	return t, nil
}

func (db *MemoryDB) Put(name string, key, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	t, err := db.table(name)
	if err != nil {
		return err
	}
	t.tree.ReplaceOrInsert(item{k: bytes.Clone(key), v: bytes.Clone(value)})
	return nil
}

func (db *MemoryDB) Get(_ context.Context, name string, key []byte) (kv.KeyValue, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, err := db.table(name)
	if err != nil {
		return kv.KeyValue{}, err
	}
	if it, ok := t.seek(item{k: key}); ok {
		return kv.KeyValue{Key: it.k, Value: it.v}, nil
	}
	return kv.KeyValue{}, nil
}

func (db *MemoryDB) GetOne(_ context.Context, name string, key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, err := db.table(name)
	if err != nil {
		return nil, err
	}
	if it, ok := t.seek(item{k: key}); ok && bytes.Equal(it.k, key) {
		return it.v, nil
	}
	return nil, nil
}

func (db *MemoryDB) GetBothRange(_ context.Context, name string, key, subkey []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, err := db.table(name)
	if err != nil {
		return nil, err
	}
	if !t.dupSort {
		return nil, fmt.Errorf("table %s is not DupSort", name)
	}
	if it, ok := t.seek(item{k: key, v: subkey}); ok && bytes.Equal(it.k, key) {
		return it.v, nil
	}
	return nil, nil
}

func (db *MemoryDB) Walk(ctx context.Context, name string, startKey []byte, fixedBits int, walker kv.Walker) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, err := db.table(name)
	if err != nil {
		return err
	}
	c := &cursor{t: t}
	defer c.Close()
	return kv.Walk(ctx, c, startKey, fixedBits, walker)
}

func (db *MemoryDB) ForPrefix(ctx context.Context, name string, prefix []byte, walker kv.Walker) error {
	return db.Walk(ctx, name, prefix, 8*len(prefix), walker)
}

func (db *MemoryDB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, t := range db.tables {
		t.tree.Clear(false)
	}
}

// cursor must be used under the read lock of its db.
type cursor struct {
	t   *table
	cur item
	ok  bool
}

func (c *cursor) Seek(seek []byte) ([]byte, []byte, error) {
	c.cur, c.ok = c.t.seek(item{k: seek})
	return c.current()
}

func (c *cursor) Next() ([]byte, []byte, error) {
	if !c.ok {
		return nil, nil, nil
	}
	c.cur, c.ok = c.t.next(c.cur)
	return c.current()
}

func (c *cursor) current() ([]byte, []byte, error) {
	if !c.ok {
		return nil, nil, nil
	}
	return c.cur.k, c.cur.v, nil
}

func (c *cursor) Close() {}
