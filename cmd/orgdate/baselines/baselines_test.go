/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package baselines

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromConfig(t *testing.T) {
	wall := time.Date(2023, 5, 6, 7, 8, 0, 0, time.UTC)

	tt := []struct {
		name    string
		now     string
		def     string
		wantNow time.Time
		wantDef time.Time
	}{
		{"unset", "", "", wall, wall},
		{"now only", "2006-06-13 Tue 09:30", "", time.Date(2006, 6, 13, 9, 30, 0, 0, time.UTC), time.Date(2006, 6, 13, 9, 30, 0, 0, time.UTC)},
		{"both", "2006-06-13", "2006-01-01T08:00:00", time.Date(2006, 6, 13, 0, 0, 0, 0, time.UTC), time.Date(2006, 1, 1, 8, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			viper.Set("orgdate.now", tc.now)
			viper.Set("orgdate.default", tc.def)

			def, now, err := FromConfig(wall)
			if err != nil {
				t.Fatal(err)
			}
			if !now.Equal(tc.wantNow) {
				t.Errorf("now: wanted %s, got %s", tc.wantNow, now)
			}
			if !def.Equal(tc.wantDef) {
				t.Errorf("default: wanted %s, got %s", tc.wantDef, def)
			}
		})
	}

	t.Run("malformed", func(t *testing.T) {
		viper.Reset()
		viper.Set("orgdate.default", "someday")

		if _, _, err := FromConfig(wall); err == nil {
			t.Error("expected an error")
		}
	})
}
