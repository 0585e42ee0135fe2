/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dburkart/orgdate/pkg/prompt"
	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/rs/zerolog"
)

type resolverFunc func(input string, def, now time.Time) (proto.ResolveResponse, error)

func (f resolverFunc) Resolve(input string, def, now time.Time) (proto.ResolveResponse, error) {
	return f(input, def, now)
}

var local = resolverFunc(func(input string, def, now time.Time) (proto.ResolveResponse, error) {
	r, err := prompt.Read(input, def, now)
	if err != nil {
		return proto.ResolveResponse{}, err
	}
	return proto.NewResolveResponse(input, r, now), nil
})

var tuesday = time.Date(2006, 6, 13, 0, 0, 0, 0, time.UTC)

func newTestSession(r Resolver) (*Session, *bytes.Buffer) {
	var b bytes.Buffer
	return NewSession(zerolog.Nop(), r, NewOutputWriter(&b, "json"), tuesday, tuesday), &b
}

func TestSessionLogsMessages(t *testing.T) {
	var out, logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)
	s := NewSession(log, local, NewOutputWriter(&out, "json"), tuesday, tuesday)

	if err := s.Execute(&out, "now 2006-06-30"); err != nil {
		t.Fatal(err)
	}

	var entry struct {
		Message struct {
			Command string `json:"command"`
			Data    string `json:"data"`
		} `json:"message"`
	}
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("unable to decode log line %q: %s", logs.String(), err)
	}
	if entry.Message.Command != proto.CommandNow || entry.Message.Data != "2006-06-30" {
		t.Errorf("unexpected log entry %s", logs.String())
	}
}

func TestSessionResolve(t *testing.T) {
	s, b := newTestSession(local)

	if err := s.Execute(b, "+2tue"); err != nil {
		t.Fatal(err)
	}

	var resp proto.ResolveResponse
	if err := json.Unmarshal(b.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Value != "2006-06-27" || resp.Kind != "date" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestSessionBaselines(t *testing.T) {
	s, b := newTestSession(local)

	for _, line := range []string{"default 2006-01-01", "now 2006-06-30"} {
		if err := s.Execute(b, line); err != nil {
			t.Fatal(err)
		}
	}
	if b.String() != "default = 2006-01-01 00:00\nnow = 2006-06-30 00:00\n" {
		t.Errorf("unexpected output %q", b.String())
	}

	b.Reset()
	if err := s.Execute(b, "++5"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"value":"2006-01-06"`) {
		t.Errorf("default baseline not used: %s", b.String())
	}

	b.Reset()
	if err := s.Execute(b, "-4m"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"code":"unrepresentable"`) {
		t.Errorf("expected an unrepresentable error, got %s", b.String())
	}

	b.Reset()
	if err := s.Execute(b, "now yesterday"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"code":"baseline"`) || !s.Now.Equal(time.Date(2006, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bad baseline should be reported and ignored, got %s", b.String())
	}
}

func TestSessionSyntaxError(t *testing.T) {
	s, b := newTestSession(local)

	if err := s.Execute(b, "tomorrow"); err != nil {
		t.Fatal(err)
	}

	want := "Syntax error found in date prompt:\ntomorrow\n^~~~~~~ no date, time or offset recognized\n"
	if b.String() != want {
		t.Errorf("wanted %q, got %q", want, b.String())
	}
}

func TestSessionCommands(t *testing.T) {
	s, b := newTestSession(local)

	if err := s.Execute(b, "help"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "usage:") {
		t.Errorf("unexpected help %q", b.String())
	}

	b.Reset()
	if err := s.Execute(b, "now"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"code":"request"`) {
		t.Errorf("expected a request error, got %s", b.String())
	}

	if s.Exit {
		t.Fatal("session exited early")
	}
	if err := s.Execute(b, "exit"); err != nil {
		t.Fatal(err)
	}
	if !s.Exit {
		t.Error("exit did not end the session")
	}
}

func TestSessionResolverFailure(t *testing.T) {
	broken := resolverFunc(func(string, time.Time, time.Time) (proto.ResolveResponse, error) {
		return proto.ResolveResponse{}, errors.New("connection refused")
	})
	s, b := newTestSession(broken)

	if err := s.Execute(b, "+1d"); err == nil {
		t.Error("expected the resolver failure to be returned")
	}
}

func TestSessionRemoteError(t *testing.T) {
	remote := resolverFunc(func(string, time.Time, time.Time) (proto.ResolveResponse, error) {
		return proto.ResolveResponse{}, proto.ErrResponse{Code: proto.ErrCodeSyntax, Err: "no date, time or offset recognized at position 0"}
	})
	s, b := newTestSession(remote)

	if err := s.Execute(b, "tomorrow"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"code":"syntax"`) {
		t.Errorf("expected the served error to be written, got %s", b.String())
	}
}
