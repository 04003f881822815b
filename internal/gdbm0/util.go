// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm0

/*
#include "gdbm-helpers.h"
*/
import "C"
import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

type LogFunc func(msg string)

var (
	emptyBytes = make([]byte, 0)

	logFunc   LogFunc = func(msg string) {}
	logFuncMu sync.Mutex
)

// ErrNegativeSize is returned when the engine hands back a datum with a
// negative length, which can only mean a damaged database.
var ErrNegativeSize = errors.New("gdbm-engine: negative datum size")

//export _gdbmFatalFunc
func _gdbmFatalFunc(cMsg *C.char) {
	msg := ""
	if cMsg != nil {
		msg = C.GoString(cMsg)
	}

	logFuncMu.Lock()
	defer logFuncMu.Unlock()

	logFunc(msg)
}

type Error struct {
	code int
	from string
	msg  string
}

func (err Error) Code() int {
	return err.code
}

func (err Error) Error() string {
	return fmt.Sprintf("%s: %s [%d]", err.from, err.msg, err.code)
}

func gdbmErr(code C.int, dbf C.GDBM_FILE, from string) error {
	switch {
	case dbf != nil && code == C._gdbm_last_err(dbf):
		return Error{int(code), from, C.GoString(C._gdbm_db_errstr(dbf))}
	default:
		return Error{int(code), from, C.GoString(C._gdbm_errstr(code))}
	}
}

func ensureZeroTerm(s string) string {
	if len(s) == 0 || s[len(s)-1] != 0 {
		s += "\x00"
	}
	return s
}

func unsafeStringPtr(s string) unsafe.Pointer {
	return unsafe.Pointer((*reflect.StringHeader)(unsafe.Pointer(&s)).Data)
}

func unsafeStringCPtr(s string) *C.char {
	return (*C.char)(unsafeStringPtr(s))
}

func unsafeSlicePtr(b []byte) unsafe.Pointer {
	if b == nil {
		b = emptyBytes
	}
	return unsafe.Pointer((*reflect.SliceHeader)(unsafe.Pointer(&b)).Data)
}
