/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/google/go-cmp/cmp"
)

func at(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func TestRead(t *testing.T) {
	baseline := at(2006, 6, 13, 0, 0)

	tt := []struct {
		input string
		def   time.Time
		now   time.Time
		want  string
	}{
		{"3-2-5", baseline, baseline, "2003-02-05"},
		{"2/5/3", baseline, baseline, "2003-02-05"},
		{"14", baseline, baseline, "2006-06-14"},
		{"12", baseline, baseline, "2006-07-12"},
		{"sep 12 9", baseline, baseline, "2009-09-12"},
		{"+2tue", baseline, baseline, "2006-06-27"},
		{"-wed", baseline, baseline, "2006-06-07"},
		{"11am-1:15pm", baseline, baseline, "11:00-13:15"},
		{"11am+2:15", baseline, baseline, "11:00-13:15"},
		{"2012 w4 fri", baseline, baseline, "2012-01-27"},
		{"w4", baseline, baseline, "w04"},
		{"22 sept 0:34", baseline, baseline, "2006-09-22 00:34"},
		{"3pm", baseline, baseline, "2006-06-13 15:00"},
		{"++5", at(2006, 1, 1, 0, 0), baseline, "2006-01-06"},
		{"--5", at(2006, 1, 1, 0, 0), baseline, "2005-12-27"},
		{"  +3d\t", baseline, baseline, "2006-06-16"},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Read(tc.input, tc.def, tc.now)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tc.want {
				t.Errorf("wanted %s, got %s", tc.want, got)
			}
		})
	}
}

func TestReadToday(t *testing.T) {
	for _, input := range []string{".", "+0", ".+0d", "++0"} {
		for _, baseline := range []time.Time{
			at(2006, 6, 13, 0, 0),
			at(2006, 6, 13, 23, 59),
			time.Date(1999, 12, 31, 12, 30, 15, 0, time.FixedZone("EST", -5*3600)),
		} {
			got, err := Read(input, baseline, baseline)
			if err != nil {
				t.Fatalf("%s: %v", input, err)
			}

			want := datetime.NewDate(baseline)
			if diff := cmp.Diff(datetime.Rendered(want), got); diff != "" {
				t.Errorf("%s against %s (-want +got):\n%s", input, baseline, diff)
			}
		}
	}
}

func TestReadIsDeterministic(t *testing.T) {
	def, now := at(2006, 1, 1, 9, 0), at(2006, 6, 30, 17, 45)

	for _, input := range []string{"+2tue", "-4m", "sep 12 9", "11am+2:15", "bogus"} {
		first, firstErr := Read(input, def, now)
		for i := 0; i < 5; i++ {
			again, err := Read(input, def, now)
			if (err == nil) != (firstErr == nil) {
				t.Fatalf("%s: error changed from %v to %v", input, firstErr, err)
			}
			if err != nil {
				if err.Error() != firstErr.Error() {
					t.Fatalf("%s: error changed from %v to %v", input, firstErr, err)
				}
				continue
			}
			if diff := cmp.Diff(first, again); diff != "" {
				t.Fatalf("%s: result changed between runs:\n%s", input, diff)
			}
		}
	}
}

func TestReadMonthDeltaFailure(t *testing.T) {
	now := at(2006, 6, 30, 0, 0)

	_, err := Read("-4m", now, now)

	var unrepresentable *datetime.UnrepresentableRelativeDateError
	if !errors.As(err, &unrepresentable) {
		t.Fatalf("expected UnrepresentableRelativeDateError, got %v", err)
	}
	if unrepresentable.Direction != datetime.Past {
		t.Errorf("wanted past direction, got %s", unrepresentable.Direction)
	}
	if diff := cmp.Diff(datetime.Relative(datetime.Months{N: 4}), unrepresentable.Offset); diff != "" {
		t.Errorf("offset mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareRejects(t *testing.T) {
	tt := []struct {
		input string
		want  parse.Location
	}{
		{"", parse.Location{Start: 0, End: 0}},
		{"tomorrow", parse.Location{Start: 0, End: 8}},
		{"14 foo", parse.Location{Start: 2, End: 6}},
		{"  14 foo  ", parse.Location{Start: 2, End: 6}},
		{"11am-x", parse.Location{Start: 4, End: 6}},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			spec, err := Prepare(tc.input)
			if err == nil {
				t.Fatalf("expected an error, got %s", spec)
			}

			var syntax parse.SyntaxError
			if !errors.As(err, &syntax) {
				t.Fatalf("expected a SyntaxError, got %T", err)
			}
			if syntax.Location != tc.want {
				t.Errorf("wanted location %+v, got %+v", tc.want, syntax.Location)
			}
		})
	}
}
