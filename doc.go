// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gdbm is a Go binding for the GNU dbm key-value engine.
//
// A DB wraps one database file. Keys and values are byte slices, both
// are copied on every call, so callers can reuse buffers freely and
// returned slices are never backed by engine memory.
//
// The package adds no locking of its own. A DB may be handed from one
// goroutine to another, but concurrent method calls on the same DB are
// a race on the engine's internal state. Distinct DBs are independent,
// so the usual pattern is one DB per goroutine, or one owning goroutine
// per DB. The engine's file lock only fences off other processes, and
// can be turned off with NoLock when the caller coordinates through the
// descriptor from Fd.
//
// Soft outcomes are not errors: Fetch on an absent key returns
// ErrNotFound, Store with replace false reports the insert through its
// bool, Delete reports presence the same way. Everything the engine
// itself refuses comes back as *Error with the failing operation,
// engine code and a Kind for coarse classification.
//
// Requires libgdbm 1.13 or newer at build and run time.
package gdbm
