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

// Package leveldb keeps chaindata tables in one goleveldb database.
// Every table owns the key range that starts with its name and a zero byte.
// DupSort entries are stored as escaped(key)+value with an empty payload so
// that iteration order equals ordering by (key, value).
package leveldb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ledgerwatch/log/v3"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/erigontech/rpcgateway/kv"
)

type LevelDB struct {
	db     *leveldb.DB
	cfg    kv.TableCfg
	logger log.Logger
}

var _ kv.RwDB = (*LevelDB)(nil)

// Open opens the chaindata at path. readOnly databases reject Put.
func Open(path string, readOnly bool, logger log.Logger) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{ReadOnly: readOnly, ErrorIfMissing: readOnly})
	if err != nil {
		return nil, fmt.Errorf("open chaindata %s: %w", path, err)
	}
	logger.Info("Opened chaindata", "path", path, "readonly", readOnly)
	return &LevelDB{db: db, cfg: kv.ChaindataTablesCfg, logger: logger}, nil
}

// NewMem creates a LevelDB backed by memory storage.
func NewMem(logger log.Logger) (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db, cfg: kv.ChaindataTablesCfg, logger: logger}, nil
}

func (l *LevelDB) dupSort(table string) (bool, error) {
	item, ok := l.cfg[table]
	if !ok {
		return false, fmt.Errorf("%w: %s", kv.ErrUnknownTable, table)
	}
	return item.Flags&kv.DupSort != 0, nil
}

func tablePrefix(table string) []byte {
	return append([]byte(table), 0)
}

func (l *LevelDB) Put(table string, key, value []byte) error {
	dup, err := l.dupSort(table)
	if err != nil {
		return err
	}
	if dup {
		return l.db.Put(append(append(tablePrefix(table), escape(key)...), value...), nil, nil)
	}
	return l.db.Put(append(tablePrefix(table), key...), value, nil)
}

func (l *LevelDB) Get(_ context.Context, table string, key []byte) (kv.KeyValue, error) {
	c, err := l.cursor(table)
	if err != nil {
		return kv.KeyValue{}, err
	}
	defer c.Close()
	k, v, err := c.Seek(key)
	return kv.KeyValue{Key: k, Value: v}, err
}

func (l *LevelDB) GetOne(ctx context.Context, table string, key []byte) ([]byte, error) {
	dup, err := l.dupSort(table)
	if err != nil {
		return nil, err
	}
	if !dup {
		v, err := l.db.Get(append(tablePrefix(table), key...), nil)
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return v, err
	}
	kvp, err := l.Get(ctx, table, key)
	if err != nil || !bytes.Equal(kvp.Key, key) {
		return nil, err
	}
	return kvp.Value, nil
}

func (l *LevelDB) GetBothRange(_ context.Context, table string, key, subkey []byte) ([]byte, error) {
	dup, err := l.dupSort(table)
	if err != nil {
		return nil, err
	}
	if !dup {
		return nil, fmt.Errorf("table %s is not DupSort", table)
	}
	c, err := l.cursor(table)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	k, v, err := c.seekRaw(append(escape(key), subkey...))
	if err != nil || !bytes.Equal(k, key) {
		return nil, err
	}
	return v, nil
}

func (l *LevelDB) Walk(ctx context.Context, table string, startKey []byte, fixedBits int, walker kv.Walker) error {
	c, err := l.cursor(table)
	if err != nil {
		return err
	}
	defer c.Close()
	return kv.Walk(ctx, c, startKey, fixedBits, walker)
}

func (l *LevelDB) ForPrefix(ctx context.Context, table string, prefix []byte, walker kv.Walker) error {
	return l.Walk(ctx, table, prefix, 8*len(prefix), walker)
}

func (l *LevelDB) Close() {
	if err := l.db.Close(); err != nil {
		l.logger.Warn("Close chaindata", "err", err)
	}
}

func (l *LevelDB) cursor(table string) (*cursor, error) {
	dup, err := l.dupSort(table)
	if err != nil {
		return nil, err
	}
	prefix := tablePrefix(table)
	return &cursor{it: l.db.NewIterator(util.BytesPrefix(prefix), nil), prefix: prefix, dup: dup}, nil
}

type cursor struct {
	it     iterator.Iterator
	prefix []byte
	dup    bool
}

func (c *cursor) Seek(seek []byte) ([]byte, []byte, error) {
	if c.dup {
		return c.seekRaw(escape(seek))
	}
	return c.seekRaw(seek)
}

func (c *cursor) seekRaw(seek []byte) ([]byte, []byte, error) {
	if !c.it.Seek(append(bytes.Clone(c.prefix), seek...)) {
		return nil, nil, c.it.Error()
	}
	return c.current()
}

func (c *cursor) Next() ([]byte, []byte, error) {
	if !c.it.Next() {
		return nil, nil, c.it.Error()
	}
	return c.current()
}

func (c *cursor) current() ([]byte, []byte, error) {
	raw := c.it.Key()[len(c.prefix):]
	if !c.dup {
		return bytes.Clone(raw), bytes.Clone(c.it.Value()), nil
	}
	k, n, err := unescape(raw)
	if err != nil {
		return nil, nil, err
	}
	return k, bytes.Clone(raw[n:]), nil
}

func (c *cursor) Close() { c.it.Release() }

// escape maps key to an order preserving, self delimiting form: 0x00 becomes
// 0x00 0xFF and the key is terminated by 0x00 0x00.
func escape(key []byte) []byte {
	out := make([]byte, 0, len(key)+2)
	for _, b := range key {
		if b == 0 {
			out = append(out, 0, 0xff)
			continue
		}
		out = append(out, b)
	}
	return append(out, 0, 0)
}

func unescape(enc []byte) ([]byte, int, error) {
	out := make([]byte, 0, len(enc))
	for i := 0; i < len(enc); i++ {
		if enc[i] != 0 {
			out = append(out, enc[i])
			continue
		}
		if i+1 >= len(enc) {
			break
		}
		switch enc[i+1] {
		case 0:
			return out, i + 2, nil
		case 0xff:
			out = append(out, 0)
			i++
		default:
			return nil, 0, fmt.Errorf("malformed dupsort key %x", enc)
		}
	}
	return nil, 0, fmt.Errorf("unterminated dupsort key %x", enc)
}
