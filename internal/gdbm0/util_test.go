// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm0

import "testing"

func TestUnsafePtrNonNil(t *testing.T) {
	p1 := unsafeSlicePtr(nil)
	if p1 == nil {
		t.Fatalf("got nil from unsafeSlicePtr")
	}
	p2 := unsafeStringPtr("")
	if p2 == nil {
		t.Fatalf("got nil from unsafeStringPtr")
	}
	p3 := unsafeStringCPtr("")
	if p3 == nil {
		t.Fatalf("got nil from unsafeStringCPtr")
	}
}

func TestEnsureZeroTerm(t *testing.T) {
	if s := ensureZeroTerm(""); s != "\x00" {
		t.Fatalf("got %q", s)
	}
	if s := ensureZeroTerm("abc"); s != "abc\x00" {
		t.Fatalf("got %q", s)
	}
	if s := ensureZeroTerm("abc\x00"); s != "abc\x00" {
		t.Fatalf("got %q", s)
	}
}

func TestErrorFormat(t *testing.T) {
	err := Error{code: 12, from: "gdbm_store", msg: "Reader can't store"}
	if got, want := err.Error(), "gdbm_store: Reader can't store [12]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if err.Code() != 12 {
		t.Fatalf("got code %d", err.Code())
	}
}
