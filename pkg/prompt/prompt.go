/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package prompt ties the date prompt grammar to the resolver for callers
// that hold a whole prompt rather than a prefix of a longer line.
package prompt

import (
	"strings"
	"time"

	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/dburkart/orgdate/pkg/datetime/parser"
	"github.com/dburkart/orgdate/pkg/datetime/render"
)

// Prepare classifies input, which must be consumed completely. Surrounding
// whitespace is ignored. Error locations index into the trimmed input.
func Prepare(input string) (datetime.DateTimeSpec, error) {
	input = strings.TrimSpace(input)

	remaining, spec, err := parser.New(input).Parse()
	if err != nil {
		return nil, err
	}

	if remaining != "" {
		start := len(input) - len(remaining)
		return nil, parse.NewSyntaxError(
			parse.Location{Start: start, End: len(input)},
			"unexpected trailing input",
		)
	}

	return spec, nil
}

// Read classifies input and resolves it against def and now.
func Read(input string, def, now time.Time) (datetime.Rendered, error) {
	spec, err := Prepare(input)
	if err != nil {
		return nil, err
	}
	return render.Render(def, now, spec)
}
