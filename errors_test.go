// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VKCOM/gdbm-go/internal/gdbm0"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "engine_failure", KindEngine.String())
	require.Equal(t, "invalid_argument", KindInvalidArgument.String())
	require.Equal(t, "invalid_encoding", KindInvalidEncoding.String())
	require.Equal(t, "io_failure", KindIO.String())
	require.Equal(t, "corruption", KindCorruption.String())
	require.Equal(t, "unknown", Kind(100).String())
}

func TestClassifyCode(t *testing.T) {
	ioCodes := []int{
		gdbm0.FileOpenError,
		gdbm0.FileWriteError,
		gdbm0.FileSeekError,
		gdbm0.FileReadError,
		gdbm0.FileStatError,
		gdbm0.FileEOF,
	}
	for _, code := range ioCodes {
		require.Equal(t, KindIO, classifyCode(code), "code %d", code)
	}
	require.Equal(t, KindEngine, classifyCode(gdbm0.CantBeWriter))
	require.Equal(t, KindEngine, classifyCode(gdbm0.ReaderCantStore))
	require.Equal(t, KindEngine, classifyCode(gdbm0.MallocError))
}

func TestErrorFormat(t *testing.T) {
	e := &Error{Kind: KindInvalidArgument, Op: "store", Msg: "key too large"}
	require.Equal(t, "store: key too large", e.Error())

	wrapped := errors.New("engine said no")
	e = &Error{Kind: KindEngine, Op: "fetch", Err: wrapped}
	require.Equal(t, "fetch: engine said no", e.Error())
	require.ErrorIs(t, e, wrapped)
}

func TestEngineErr(t *testing.T) {
	e := engineErr(opFetch, gdbm0.ErrNegativeSize)
	require.Equal(t, KindCorruption, e.Kind)
	require.ErrorIs(t, e, gdbm0.ErrNegativeSize)

	e = engineErr(opSync, errors.New("unexpected"))
	require.Equal(t, KindEngine, e.Kind)
	require.Zero(t, e.Code)
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(ErrNotFound))
	require.False(t, IsNotFound(ErrClosed))
	require.False(t, IsNotFound(engineErr(opFetch, errors.New("boom"))))
	require.False(t, IsNotFound(nil))
}

func TestCheckPath(t *testing.T) {
	require.NoError(t, checkPath(opOpen, "/tmp/ok.db"))
	err := checkPath(opOpen, "bad\x00path")
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindInvalidArgument, e.Kind)
}
