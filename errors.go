// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/VKCOM/gdbm-go/internal/gdbm0"
)

var (
	// ErrClosed is returned by every method of a DB that has been closed.
	ErrClosed = errors.New("gdbm: database is closed")
	// ErrNotFound is returned by Fetch when the key is not in the database.
	ErrNotFound = errors.New("gdbm: item not found")
)

// Kind partitions failures by cause. It does not cover the soft
// outcomes (missing key, key already present), which are reported as
// booleans or ErrNotFound.
type Kind int

const (
	// KindEngine is a failure reported by the engine through its
	// last-error channel.
	KindEngine Kind = iota
	// KindInvalidArgument is a local validation failure, detected
	// before any engine call is made.
	KindInvalidArgument
	// KindInvalidEncoding means a fetched value is not valid UTF-8.
	KindInvalidEncoding
	// KindIO is an engine failure in the file I/O class.
	KindIO
	// KindCorruption means the engine returned a structurally invalid
	// result, such as a negative length.
	KindCorruption
)

func (k Kind) String() string {
	switch k {
	case KindEngine:
		return "engine_failure"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidEncoding:
		return "invalid_encoding"
	case KindIO:
		return "io_failure"
	case KindCorruption:
		return "corruption"
	}
	return "unknown"
}

// Error is the failure type returned by DB methods. Code holds the raw
// engine error code when the failure was engine-reported, zero
// otherwise.
type Error struct {
	Kind Kind
	Op   string
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a Fetch miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func argErr(op, msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Msg: msg}
}

func encodingErr(op, msg string) *Error {
	return &Error{Kind: KindInvalidEncoding, Op: op, Msg: msg}
}

func engineErr(op string, err error) *Error {
	var e0 gdbm0.Error
	switch {
	case errors.Is(err, gdbm0.ErrNegativeSize):
		return &Error{Kind: KindCorruption, Op: op, Err: err}
	case errors.As(err, &e0):
		return &Error{Kind: classifyCode(e0.Code()), Op: op, Code: e0.Code(), Err: err}
	default:
		return &Error{Kind: KindEngine, Op: op, Err: err}
	}
}

func classifyCode(code int) Kind {
	switch code {
	case gdbm0.FileOpenError, gdbm0.FileWriteError, gdbm0.FileSeekError,
		gdbm0.FileReadError, gdbm0.FileStatError, gdbm0.FileEOF:
		return KindIO
	}
	return KindEngine
}

// The engine takes datum lengths as a signed 32-bit integer, anything
// longer must be rejected before it reaches the boundary and silently
// truncates.
func checkDatumLen(op, what string, n int) error {
	if n > math.MaxInt32 {
		return argErr(op, fmt.Sprintf("%s too large (%d bytes, max %d)", what, n, math.MaxInt32))
	}
	return nil
}

func checkPath(op, path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return argErr(op, "path contains NUL byte")
	}
	return nil
}
