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

// https://www.gnu.org.ua/software/gdbm/manual/Open.html
const (
	ModeReader  = C.GDBM_READER
	ModeWriter  = C.GDBM_WRITER
	ModeWrcreat = C.GDBM_WRCREAT
	ModeNewdb   = C.GDBM_NEWDB

	OpenFast   = C.GDBM_FAST
	OpenSync   = C.GDBM_SYNC
	OpenNolock = C.GDBM_NOLOCK
)

const (
	StoreInsert  = C.GDBM_INSERT
	StoreReplace = C.GDBM_REPLACE
)

// https://www.gnu.org.ua/software/gdbm/manual/Options.html
const (
	OptCacheSize    = C.GDBM_CACHESIZE
	OptSyncMode     = C.GDBM_SYNCMODE
	OptCentfree     = C.GDBM_CENTFREE
	OptCoalesceBlks = C.GDBM_COALESCEBLKS
)

const (
	NoError          = C.GDBM_NO_ERROR
	MallocError      = C.GDBM_MALLOC_ERROR
	BlockSizeError   = C.GDBM_BLOCK_SIZE_ERROR
	FileOpenError    = C.GDBM_FILE_OPEN_ERROR
	FileWriteError   = C.GDBM_FILE_WRITE_ERROR
	FileSeekError    = C.GDBM_FILE_SEEK_ERROR
	FileReadError    = C.GDBM_FILE_READ_ERROR
	BadMagicNumber   = C.GDBM_BAD_MAGIC_NUMBER
	EmptyDatabase    = C.GDBM_EMPTY_DATABASE
	CantBeReader     = C.GDBM_CANT_BE_READER
	CantBeWriter     = C.GDBM_CANT_BE_WRITER
	ReaderCantDelete = C.GDBM_READER_CANT_DELETE
	ReaderCantStore  = C.GDBM_READER_CANT_STORE
	ItemNotFound     = C.GDBM_ITEM_NOT_FOUND
	ReorganizeFailed = C.GDBM_REORGANIZE_FAILED
	CannotReplace    = C.GDBM_CANNOT_REPLACE
	IllegalData      = C.GDBM_ILLEGAL_DATA
	OptAlreadySet    = C.GDBM_OPT_ALREADY_SET
	ByteSwapped      = C.GDBM_BYTE_SWAPPED
	BadFileOffset    = C.GDBM_BAD_FILE_OFFSET
	BadOpenFlags     = C.GDBM_BAD_OPEN_FLAGS
	FileStatError    = C.GDBM_FILE_STAT_ERROR
	FileEOF          = C.GDBM_FILE_EOF

	noError      = C.GDBM_NO_ERROR
	itemNotFound = C.GDBM_ITEM_NOT_FOUND
)
