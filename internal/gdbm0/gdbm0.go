// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm0

/*
#cgo CFLAGS: -std=gnu99
#cgo CFLAGS: -Os
#cgo LDFLAGS: -lgdbm

#include <stdlib.h>
#include "gdbm-helpers.h"
*/
import "C"
import (
	"runtime"
	"syscall"
	"unsafe"
)

func SetLogf(fn LogFunc) {
	logFuncMu.Lock()
	defer logFuncMu.Unlock()

	logFunc = fn
}

func Version() string {
	return C.GoString(C.gdbm_version)
}

type DB struct {
	dbf C.GDBM_FILE
}

func Open(path string, blockSize int, flags int, mode int) (*DB, error) {
	var gerr, serr C.int
	path = ensureZeroTerm(path)
	dbf := C._gdbm_open(unsafeStringCPtr(path), C.int(blockSize), C.int(flags), C.int(mode), &gerr, &serr) //nolint:gocritic // nonsense
	runtime.KeepAlive(path)
	if dbf == nil {
		e := Error{int(gerr), "gdbm_open", C.GoString(C._gdbm_errstr(gerr))}
		if serr != 0 {
			e.msg += ": " + syscall.Errno(serr).Error()
		}
		return nil, e
	}
	return &DB{dbf: dbf}, nil
}

func (db *DB) Close() {
	if db.dbf != nil {
		C._gdbm_close(db.dbf)
		db.dbf = nil
	}
}

// Store returns false when flag is StoreInsert and the key is already
// present; the stored data is left untouched in that case.
func (db *DB) Store(key, value []byte, flag int) (bool, error) {
	var gerr C.int
	rc := C._gdbm_store(db.dbf, unsafeSlicePtr(key), C.int(len(key)), unsafeSlicePtr(value), C.int(len(value)), C.int(flag), &gerr)
	runtime.KeepAlive(key)
	runtime.KeepAlive(value)
	switch {
	case rc == 0:
		return true, nil
	case rc > 0:
		return false, nil
	default:
		return false, gdbmErr(gerr, db.dbf, "gdbm_store")
	}
}

// Fetch copies the value out of engine memory and releases the origin,
// so the returned slice is an ordinary Go allocation.
func (db *DB) Fetch(key []byte) ([]byte, bool, error) {
	var size, gerr C.int
	p := C._gdbm_fetch(db.dbf, unsafeSlicePtr(key), C.int(len(key)), &size, &gerr)
	runtime.KeepAlive(key)
	if p == nil {
		if gerr == noError || gerr == itemNotFound {
			return nil, false, nil
		}
		return nil, false, gdbmErr(gerr, db.dbf, "gdbm_fetch")
	}
	defer C.free(unsafe.Pointer(p))
	if size < 0 {
		return nil, false, ErrNegativeSize
	}
	return C.GoBytes(unsafe.Pointer(p), size), true, nil
}

func (db *DB) Exists(key []byte) (bool, error) {
	var gerr C.int
	rc := C._gdbm_exists(db.dbf, unsafeSlicePtr(key), C.int(len(key)), &gerr)
	runtime.KeepAlive(key)
	if rc != 0 {
		return true, nil
	}
	if gerr == noError || gerr == itemNotFound {
		return false, nil
	}
	return false, gdbmErr(gerr, db.dbf, "gdbm_exists")
}

func (db *DB) Delete(key []byte) (bool, error) {
	var gerr C.int
	rc := C._gdbm_delete(db.dbf, unsafeSlicePtr(key), C.int(len(key)), &gerr)
	runtime.KeepAlive(key)
	if rc == 0 {
		return true, nil
	}
	if gerr == noError || gerr == itemNotFound {
		return false, nil
	}
	return false, gdbmErr(gerr, db.dbf, "gdbm_delete")
}

func (db *DB) FirstKey() ([]byte, bool, error) {
	var size, gerr C.int
	p := C._gdbm_firstkey(db.dbf, &size, &gerr)
	if p == nil {
		if gerr == noError || gerr == itemNotFound {
			return nil, false, nil
		}
		return nil, false, gdbmErr(gerr, db.dbf, "gdbm_firstkey")
	}
	defer C.free(unsafe.Pointer(p))
	if size < 0 {
		return nil, false, ErrNegativeSize
	}
	return C.GoBytes(unsafe.Pointer(p), size), true, nil
}

func (db *DB) NextKey(prev []byte) ([]byte, bool, error) {
	var size, gerr C.int
	p := C._gdbm_nextkey(db.dbf, unsafeSlicePtr(prev), C.int(len(prev)), &size, &gerr)
	runtime.KeepAlive(prev)
	if p == nil {
		if gerr == noError || gerr == itemNotFound {
			return nil, false, nil
		}
		return nil, false, gdbmErr(gerr, db.dbf, "gdbm_nextkey")
	}
	defer C.free(unsafe.Pointer(p))
	if size < 0 {
		return nil, false, ErrNegativeSize
	}
	return C.GoBytes(unsafe.Pointer(p), size), true, nil
}

func (db *DB) Sync() error {
	var gerr C.int
	C._gdbm_sync(db.dbf, &gerr)
	if gerr != noError {
		return gdbmErr(gerr, db.dbf, "gdbm_sync")
	}
	return nil
}

func (db *DB) Reorganize() error {
	var gerr C.int
	rc := C._gdbm_reorganize(db.dbf, &gerr)
	if rc != 0 {
		return gdbmErr(gerr, db.dbf, "gdbm_reorganize")
	}
	return nil
}

func (db *DB) Count() (uint64, error) {
	var gerr C.int
	var n C.ulonglong
	rc := C._gdbm_count(db.dbf, &n, &gerr)
	if rc != 0 {
		return 0, gdbmErr(gerr, db.dbf, "gdbm_count")
	}
	return uint64(n), nil
}

func (db *DB) Setopt(opt int, value int) error {
	var gerr C.int
	rc := C._gdbm_setopt(db.dbf, C.int(opt), C.int(value), &gerr)
	if rc != 0 {
		return gdbmErr(gerr, db.dbf, "gdbm_setopt")
	}
	return nil
}

func (db *DB) Export(path string, flags int, mode int) error {
	var gerr C.int
	path = ensureZeroTerm(path)
	rc := C._gdbm_export(db.dbf, unsafeStringCPtr(path), C.int(flags), C.int(mode), &gerr)
	runtime.KeepAlive(path)
	if rc != 0 {
		return gdbmErr(gerr, db.dbf, "gdbm_export")
	}
	return nil
}

func (db *DB) Import(path string, flag int) error {
	var gerr C.int
	path = ensureZeroTerm(path)
	rc := C._gdbm_import(db.dbf, unsafeStringCPtr(path), C.int(flag), &gerr)
	runtime.KeepAlive(path)
	if rc != 0 {
		return gdbmErr(gerr, db.dbf, "gdbm_import")
	}
	return nil
}

func (db *DB) Fd() int {
	return int(C.gdbm_fdesc(db.dbf))
}
