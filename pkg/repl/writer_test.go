/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dburkart/orgdate/pkg/proto"
)

var resolved = proto.ResolveResponse{
	Input:    "14",
	Kind:     "date",
	Value:    "2006-06-14",
	Relative: "1 day from now",
}

func TestCSVWriter(t *testing.T) {
	var b bytes.Buffer
	if err := NewOutputWriter(&b, "csv").Write(resolved); err != nil {
		t.Fatal(err)
	}

	want := "input,kind,value,relative\n14,date,2006-06-14,1 day from now\n"
	if b.String() != want {
		t.Errorf("wanted %q, got %q", want, b.String())
	}
}

func TestJSONWriter(t *testing.T) {
	var b bytes.Buffer
	if err := NewOutputWriter(&b, "json").Write(proto.ErrResponse{Code: "syntax", Err: "bad"}); err != nil {
		t.Fatal(err)
	}

	want := `{"code":"syntax","error":"bad"}` + "\n"
	if b.String() != want {
		t.Errorf("wanted %q, got %q", want, b.String())
	}
}

func TestTextWriter(t *testing.T) {
	var b bytes.Buffer
	if err := NewOutputWriter(&b, "text").Write(resolved); err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"2006-06-14", "1 day from now"} {
		if !strings.Contains(b.String(), s) {
			t.Errorf("table is missing %q:\n%s", s, b.String())
		}
	}
}

func TestUnknownFormatIsText(t *testing.T) {
	if _, ok := NewOutputWriter(&bytes.Buffer{}, "yaml").(TextWriter); !ok {
		t.Error("expected a TextWriter")
	}
}

func TestCheckOutputFormat(t *testing.T) {
	for _, format := range OutputFormats {
		if err := CheckOutputFormat(format); err != nil {
			t.Errorf("%s rejected: %s", format, err)
		}
	}

	for _, format := range []string{"", "c", "j", "te", "xml", "JSON"} {
		if err := CheckOutputFormat(format); err == nil {
			t.Errorf("%q accepted", format)
		}
	}
}
