/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package baselines reads the now and default baselines from the command
// line or config file.
package baselines

import (
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FromConfig returns the configured baselines. An unset now is wall; an
// unset default is the now baseline.
func FromConfig(wall time.Time) (def, now time.Time, err error) {
	now, err = parse("orgdate.now", wall)
	if err != nil {
		return
	}
	def, err = parse("orgdate.default", now)
	return
}

func parse(key string, fallback time.Time) (time.Time, error) {
	some := viper.GetString(key)
	if some == "" {
		return fallback, nil
	}

	t, err := datetime.ParseBaseline(some, fallback.Location())
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid %s", key)
	}
	return t, nil
}
