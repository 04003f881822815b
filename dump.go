// Copyright 2026 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"pgregory.net/rand"

	"github.com/VKCOM/gdbm-go/internal/gdbm0"
)

// Export writes a flat dump of the database to path. The dump is
// written to a temporary sibling first and renamed into place, so a
// crash mid-export never leaves a truncated dump at path. mode is the
// permission set of the dump file, zero means 0666.
func (db *DB) Export(path string, mode os.FileMode) error {
	if db.closed.Load() {
		return ErrClosed
	}
	if err := checkPath(opExport, path); err != nil {
		return err
	}
	if mode == 0 {
		mode = defaultFileMode
	}
	if mode&^os.ModePerm != 0 {
		return argErr(opExport, fmt.Sprintf("mode %v has non-permission bits", mode))
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opExport, time.Now())
	tmp := path + "." + strconv.FormatUint(rand.Uint64(), 10) + ".tmp"
	if err := db.db.Export(tmp, gdbm0.ModeNewdb, int(mode)); err != nil {
		failErr := db.fail(opExport, err)
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			return multierr.Append(failErr, rmErr)
		}
		return failErr
	}
	if err := os.Rename(tmp, path); err != nil {
		db.opt.StatsOptions.errorEvent(opExport, KindIO)
		return multierr.Append(&Error{Kind: KindIO, Op: opExport, Err: err}, os.Remove(tmp))
	}
	return nil
}

// Import loads a flat dump produced by Export into the database. With
// replace false, keys already present keep their current values.
func (db *DB) Import(path string, replace bool) error {
	if db.closed.Load() {
		return ErrClosed
	}
	if err := checkPath(opImport, path); err != nil {
		return err
	}
	defer db.opt.StatsOptions.measureOpDurationSince(opImport, time.Now())
	flag := gdbm0.StoreInsert
	if replace {
		flag = gdbm0.StoreReplace
	}
	if err := db.db.Import(path, flag); err != nil {
		return db.fail(opImport, err)
	}
	return nil
}
