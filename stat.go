// Copyright 2025 V Kontakte LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gdbm

import (
	"time"

	"github.com/VKCOM/statshouse-go"
)

// StatsOptions identifies the instance in the statshouse metrics the
// library emits. Reporting is disabled while Service is empty.
type StatsOptions struct {
	Service string
	Cluster string
	DC      string
}

const (
	opDurationMetric = "gdbm_op_duration"
	errorEventMetric = "gdbm_error_event"

	opOpen       = "open"
	opStore      = "store"
	opFetch      = "fetch"
	opExists     = "exists"
	opDelete     = "delete"
	opSync       = "sync"
	opCount      = "count"
	opIterate    = "iterate"
	opReorganize = "reorganize"
	opSetopt     = "setopt"
	opExport     = "export"
	opImport     = "import"
)

func (s *StatsOptions) checkEmpty() bool {
	return s.Service == ""
}

func (s *StatsOptions) measureOpDurationSince(op string, start time.Time) {
	if s.checkEmpty() {
		return
	}
	statshouse.Metric(opDurationMetric, statshouse.Tags{1: s.Service, 2: s.Cluster, 3: s.DC, 4: op}).Value(time.Since(start).Seconds())
}

func (s *StatsOptions) errorEvent(op string, kind Kind) {
	if s.checkEmpty() {
		return
	}
	statshouse.Metric(errorEventMetric, statshouse.Tags{1: s.Service, 2: s.Cluster, 3: s.DC, 4: op, 5: kind.String()}).Count(1)
}
