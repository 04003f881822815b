// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import (
	"fmt"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"go.uber.org/atomic"

	"github.com/VKCOM/gdbm-go/internal/gdbm0"
)

const defaultFileMode = os.FileMode(0666)

type Options struct {
	// BlockSize is the database block size hint in bytes, zero picks
	// the filesystem default. Used only when the file is created.
	BlockSize int
	// Flags is the access mode plus modifier bits, see OpenFlags.
	Flags OpenFlags
	// Mode is the permission set for created files, zero means 0666.
	// Only permission bits are accepted.
	Mode os.FileMode

	StatsOptions StatsOptions
}

// DB is a handle to one database file. It is safe to move between
// goroutines, but methods must not be called concurrently: the engine
// serializes nothing, its file locking only fences off other processes.
type DB struct {
	db     *gdbm0.DB
	opt    Options
	closed atomic.Bool
}

// SetLogf redirects the engine's fatal diagnostics. The default
// swallows them. fn may be called from any goroutine that uses a DB.
func SetLogf(fn func(msg string)) {
	gdbm0.SetLogf(fn)
}

// Version returns the engine version string.
func Version() string {
	return gdbm0.Version()
}

// Open opens the database file at path, creating it when Flags ask
// for that. The returned DB must be closed with Close.
func Open(path string, opt Options) (*DB, error) {
	if err := checkPath(opOpen, path); err != nil {
		return nil, err
	}
	if opt.BlockSize < 0 || opt.BlockSize > math.MaxInt32 {
		return nil, argErr(opOpen, fmt.Sprintf("block size %d out of range", opt.BlockSize))
	}
	mode := opt.Mode
	if mode == 0 {
		mode = defaultFileMode
	}
	if mode&^os.ModePerm != 0 {
		return nil, argErr(opOpen, fmt.Sprintf("mode %v has non-permission bits", mode))
	}
	db0, err := gdbm0.Open(path, opt.BlockSize, int(opt.Flags), int(mode))
	if err != nil {
		e := engineErr(opOpen, err)
		opt.StatsOptions.errorEvent(opOpen, e.Kind)
		return nil, e
	}
	return &DB{db: db0, opt: opt}, nil
}

// Close releases the engine handle. Exactly one call closes; every
// later method call, Close included, returns ErrClosed.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	db.db.Close()
	return nil
}

// Store writes the key/value pair. With replace false the pair is only
// inserted: a false result means the key was already present and its
// stored value is untouched. With replace true the result is always
// true on success.
func (db *DB) Store(key, value []byte, replace bool) (bool, error) {
	if db.closed.Load() {
		return false, ErrClosed
	}
	if err := checkDatumLen(opStore, "key", len(key)); err != nil {
		return false, err
	}
	if err := checkDatumLen(opStore, "content", len(value)); err != nil {
		return false, err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opStore, time.Now())
	flag := gdbm0.StoreInsert
	if replace {
		flag = gdbm0.StoreReplace
	}
	stored, err := db.db.Store(key, value, flag)
	if err != nil {
		return false, db.fail(opStore, err)
	}
	return stored, nil
}

// Fetch returns a copy of the value stored under key, or ErrNotFound.
func (db *DB) Fetch(key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}
	if err := checkDatumLen(opFetch, "key", len(key)); err != nil {
		return nil, err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opFetch, time.Now())
	data, found, err := db.db.Fetch(key)
	if err != nil {
		return nil, db.fail(opFetch, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return data, nil
}

// FetchString is Fetch with a strict UTF-8 decode of the value.
func (db *DB) FetchString(key []byte) (string, error) {
	data, err := db.Fetch(key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", encodingErr(opFetch, "value is not valid UTF-8")
	}
	return string(data), nil
}

// FetchStringZ is FetchString for values written by C programs that
// store the terminating NUL: one trailing zero byte is dropped before
// the decode.
func (db *DB) FetchStringZ(key []byte) (string, error) {
	data, err := db.Fetch(key)
	if err != nil {
		return "", err
	}
	if n := len(data); n > 0 && data[n-1] == 0 {
		data = data[:n-1]
	}
	if !utf8.Valid(data) {
		return "", encodingErr(opFetch, "value is not valid UTF-8")
	}
	return string(data), nil
}

func (db *DB) Exists(key []byte) (bool, error) {
	if db.closed.Load() {
		return false, ErrClosed
	}
	if err := checkDatumLen(opExists, "key", len(key)); err != nil {
		return false, err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opExists, time.Now())
	found, err := db.db.Exists(key)
	if err != nil {
		return false, db.fail(opExists, err)
	}
	return found, nil
}

// Delete removes the key. A false result means the key was not there,
// which is not an error.
func (db *DB) Delete(key []byte) (bool, error) {
	if db.closed.Load() {
		return false, ErrClosed
	}
	if err := checkDatumLen(opDelete, "key", len(key)); err != nil {
		return false, err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opDelete, time.Now())
	removed, err := db.db.Delete(key)
	if err != nil {
		return false, db.fail(opDelete, err)
	}
	return removed, nil
}

// Sync blocks until the engine has flushed everything to disk.
func (db *DB) Sync() error {
	if db.closed.Load() {
		return ErrClosed
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opSync, time.Now())
	if err := db.db.Sync(); err != nil {
		return db.fail(opSync, err)
	}
	return nil
}

// Fd returns the file descriptor backing the database, for external
// locking with NoLock. It is only valid until Close.
func (db *DB) Fd() (int, error) {
	if db.closed.Load() {
		return -1, ErrClosed
	}
	return db.db.Fd(), nil
}

func (db *DB) Count() (uint64, error) {
	if db.closed.Load() {
		return 0, ErrClosed
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opCount, time.Now())
	n, err := db.db.Count()
	if err != nil {
		return 0, db.fail(opCount, err)
	}
	return n, nil
}

// FirstKey starts a walk over all keys in engine hash order. A nil key
// with nil error means the database is empty.
func (db *DB) FirstKey() ([]byte, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opIterate, time.Now())
	key, ok, err := db.db.FirstKey()
	if err != nil {
		return nil, db.fail(opIterate, err)
	}
	if !ok {
		return nil, nil
	}
	return key, nil
}

// NextKey continues the walk after prev. A nil key with nil error means
// the walk is done. Deleting keys other than prev mid-walk may skip or
// repeat keys, that is engine behavior.
func (db *DB) NextKey(prev []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}
	if err := checkDatumLen(opIterate, "key", len(prev)); err != nil {
		return nil, err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opIterate, time.Now())
	key, ok, err := db.db.NextKey(prev)
	if err != nil {
		return nil, db.fail(opIterate, err)
	}
	if !ok {
		return nil, nil
	}
	return key, nil
}

// Reorganize compacts the database file, returning space freed by
// deletes to the filesystem. It can move every record, so any key walk
// in progress is invalidated.
func (db *DB) Reorganize() error {
	if db.closed.Load() {
		return ErrClosed
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opReorganize, time.Now())
	if err := db.db.Reorganize(); err != nil {
		return db.fail(opReorganize, err)
	}
	return nil
}

// SetCacheSize sets the engine bucket cache size. The engine accepts
// this once per handle, before the cache is first used.
func (db *DB) SetCacheSize(n int) error {
	if db.closed.Load() {
		return ErrClosed
	}
	if n < 0 || n > math.MaxInt32 {
		return argErr(opSetopt, fmt.Sprintf("cache size %d out of range", n))
	}
	if err := db.db.Setopt(gdbm0.OptCacheSize, n); err != nil {
		return db.fail(opSetopt, err)
	}
	return nil
}

// SetSyncMode toggles synchronization of every write, same effect as
// opening with Sync.
func (db *DB) SetSyncMode(on bool) error {
	return db.setoptBool(gdbm0.OptSyncMode, on)
}

// SetCentfree toggles central free block pooling.
func (db *DB) SetCentfree(on bool) error {
	return db.setoptBool(gdbm0.OptCentfree, on)
}

// SetCoalesceBlks toggles coalescing of adjacent free blocks.
func (db *DB) SetCoalesceBlks(on bool) error {
	return db.setoptBool(gdbm0.OptCoalesceBlks, on)
}

func (db *DB) setoptBool(opt int, on bool) error {
	if db.closed.Load() {
		return ErrClosed
	}
	v := 0
	if on {
		v = 1
	}
	if err := db.db.Setopt(opt, v); err != nil {
		return db.fail(opSetopt, err)
	}
	return nil
}

func (db *DB) fail(op string, err error) error {
	e := engineErr(op, err)
	db.opt.StatsOptions.errorEvent(op, e.Kind)
	return e
}
