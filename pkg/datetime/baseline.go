/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import (
	"fmt"
	"strings"
	"time"
)

var baselineFormats = [...]string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 Mon 15:04",
	"2006-01-02 Mon",
	"2006-01-02",
}

// ParseBaseline reads a baseline timestamp from a flag, config value or
// request parameter. Values without an offset are taken as wall clock time
// in loc.
func ParseBaseline(some string, loc *time.Location) (time.Time, error) {
	some = strings.TrimSpace(some)

	for _, theFmt := range baselineFormats {
		tm, err := time.ParseInLocation(theFmt, some, loc)
		if err == nil {
			return tm, nil
		}
	}

	return time.Time{}, fmt.Errorf("specified time '%s' did not match a known timestamp", some)
}
