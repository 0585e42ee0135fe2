/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

const (
	ErrCodeSyntax          = "syntax"
	ErrCodeConversion      = "conversion"
	ErrCodeUnrepresentable = "unrepresentable"
	ErrCodeInvalidDate     = "invalid_date"
	ErrCodeInvalidTime     = "invalid_time"
	ErrCodeBaseline        = "baseline"
	ErrCodeRequest         = "request"
	ErrCodeInternal        = "internal"
)

// Message is one line typed at the prompt, split into its command and the
// rest of the line.
type Message struct {
	Command string
	Data    []byte
}

func NewMessage(command string, data []byte) Message {
	return Message{Command: command, Data: data}
}

func (m Message) MarshalZerologObject(e *zerolog.Event) {
	e.Str("command", m.Command).Bytes("data", m.Data)
}

type Marshaler interface {
	Marshal() ([]byte, error)
}

// Printable is anything the repl output writers know how to lay out.
type Printable interface {
	Headers() []string
	Values() [][]string
}

var (
	_ Printable = ResolveResponse{}
	_ Printable = ErrResponse{}
)

type (
	ErrResponse struct {
		Code string `json:"code"`
		Err  string `json:"error"`
	}

	// ResolveResponse is a resolved prompt. Start and End are only set for
	// time ranges, Week only for bare week numbers.
	ResolveResponse struct {
		Input    string `json:"input"`
		Kind     string `json:"kind"`
		Value    string `json:"value"`
		Start    string `json:"start,omitempty"`
		End      string `json:"end,omitempty"`
		Week     uint32 `json:"week,omitempty"`
		Relative string `json:"relative,omitempty"`
	}
)

// ErrResponse
// --------------------------

// NewErrResponse classifies err by the failure it reports.
func NewErrResponse(err error) ErrResponse {
	var (
		syntax          parse.SyntaxError
		conversion      *datetime.ConversionError
		unrepresentable *datetime.UnrepresentableRelativeDateError
		invalidDate     *datetime.InvalidDateError
		invalidTime     *datetime.InvalidTimeError
		baseline        *BaselineError
		served          ErrResponse
	)

	code := ErrCodeInternal
	switch {
	case errors.As(err, &served):
		return served
	case errors.As(err, &syntax):
		code = ErrCodeSyntax
	case errors.As(err, &conversion):
		code = ErrCodeConversion
	case errors.As(err, &unrepresentable):
		code = ErrCodeUnrepresentable
	case errors.As(err, &invalidDate):
		code = ErrCodeInvalidDate
	case errors.As(err, &invalidTime):
		code = ErrCodeInvalidTime
	case errors.As(err, &baseline):
		code = ErrCodeBaseline
	}

	return ErrResponse{Code: code, Err: err.Error()}
}

func (rq ErrResponse) Error() string {
	return rq.Err
}

// Status is the HTTP status the error is served with.
func (rq ErrResponse) Status() int {
	switch rq.Code {
	case ErrCodeBaseline, ErrCodeRequest:
		return http.StatusBadRequest
	case ErrCodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusUnprocessableEntity
}

// Marshal ...
func (rq ErrResponse) Marshal() ([]byte, error) {
	return json.Marshal(rq)
}

// Unmarshal ...
func (rq *ErrResponse) Unmarshal(b []byte) error {
	return json.Unmarshal(b, rq)
}

func (rq ErrResponse) Headers() []string {
	return []string{"code", "error"}
}

func (rq ErrResponse) Values() [][]string {
	return [][]string{{rq.Code, rq.Err}}
}

// ResolveResponse
// --------------------------

func NewResolveResponse(input string, r datetime.Rendered, now time.Time) ResolveResponse {
	resp := ResolveResponse{
		Input: input,
		Kind:  string(r.Kind()),
		Value: r.String(),
	}

	switch v := r.(type) {
	case datetime.Date:
		resp.Relative = humanize.RelTime(v.Time, datetime.NewDate(now).Time, "ago", "from now")
	case datetime.DateTime:
		resp.Relative = humanize.RelTime(v.Time, now, "ago", "from now")
	case datetime.Week:
		resp.Week = v.Number
	case datetime.TimeRange:
		resp.Start = v.Start.String()
		resp.End = v.End.String()
	}

	return resp
}

// Marshal ...
func (rq ResolveResponse) Marshal() ([]byte, error) {
	return json.Marshal(rq)
}

// Unmarshal ...
func (rq *ResolveResponse) Unmarshal(b []byte) error {
	return json.Unmarshal(b, rq)
}

func (rq ResolveResponse) Headers() []string {
	return []string{"input", "kind", "value", "relative"}
}

func (rq ResolveResponse) Values() [][]string {
	return [][]string{{rq.Input, rq.Kind, rq.Value, rq.Relative}}
}

func (rq ResolveResponse) MarshalZerologObject(e *zerolog.Event) {
	e.Str("input", rq.Input).Str("kind", rq.Kind).Str("value", rq.Value)
}
