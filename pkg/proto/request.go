/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"encoding/json"
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/rs/zerolog"
)

// ResolveRequest asks for a date prompt to be resolved. Empty baselines
// fall back to the wall clock of whoever serves the request.
type ResolveRequest struct {
	Input   string `json:"input"`
	Now     string `json:"now,omitempty"`
	Default string `json:"default,omitempty"`
}

// NewResolveRequest formats both baselines so they survive the trip over
// the wire with their offsets and sub-second parts intact. A baseline a
// fraction of a second past a clock time must not resolve as that time.
func NewResolveRequest(input string, def, now time.Time) ResolveRequest {
	return ResolveRequest{
		Input:   input,
		Now:     now.Format(time.RFC3339Nano),
		Default: def.Format(time.RFC3339Nano),
	}
}

// Baselines parses the request's baselines. now is parsed first, and an
// empty default falls back to now rather than to wall.
func (rq ResolveRequest) Baselines(wall time.Time) (def, now time.Time, err error) {
	now, err = baseline(rq.Now, wall)
	if err != nil {
		return
	}
	def, err = baseline(rq.Default, now)
	return
}

func baseline(some string, fallback time.Time) (time.Time, error) {
	if some == "" {
		return fallback, nil
	}
	t, err := datetime.ParseBaseline(some, fallback.Location())
	if err != nil {
		return time.Time{}, &BaselineError{Value: some}
	}
	return t, nil
}

// BaselineError is a baseline timestamp in a request that could not be
// parsed.
type BaselineError struct {
	Value string
}

func (e *BaselineError) Error() string {
	return "specified time '" + e.Value + "' did not match a known timestamp"
}

// Marshal ...
func (rq ResolveRequest) Marshal() ([]byte, error) {
	return json.Marshal(rq)
}

// Unmarshal ...
func (rq *ResolveRequest) Unmarshal(b []byte) error {
	return json.Unmarshal(b, rq)
}

func (rq ResolveRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("input", rq.Input).Str("now", rq.Now).Str("default", rq.Default)
}
