// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import "github.com/VKCOM/gdbm-go/internal/gdbm0"

// OpenFlags selects how Open accesses the database file: exactly one
// access mode, optionally OR'd with modifier bits. Values come straight
// from the engine headers, so they match the engine bit for bit.
type OpenFlags int

const (
	// Reader opens read-only. This is the zero value.
	Reader OpenFlags = gdbm0.ModeReader
	// Writer opens read-write; the file must exist.
	Writer OpenFlags = gdbm0.ModeWriter
	// WriterCreate opens read-write, creating the file if needed.
	WriterCreate OpenFlags = gdbm0.ModeWrcreat
	// NewDB opens read-write, always starting from an empty database.
	NewDB OpenFlags = gdbm0.ModeNewdb

	// Fast is a historical no-op kept for flag compatibility, writes
	// are unsynchronized unless Sync is given.
	Fast OpenFlags = gdbm0.OpenFast
	// Sync makes the engine synchronize every write to disk.
	Sync OpenFlags = gdbm0.OpenSync
	// NoLock disables the engine's file locking, the caller takes over
	// locking duties (see Fd).
	NoLock OpenFlags = gdbm0.OpenNolock
)
