/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/olekukonko/tablewriter"
)

var OutputFormats = []string{"text", "csv", "json"}

// CheckOutputFormat rejects anything that is not exactly one of
// OutputFormats; NewOutputWriter would otherwise fall back to text.
func CheckOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q, expected one of %s", format, strings.Join(OutputFormats, ", "))
}

type OutputWriter interface {
	Write(v proto.Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v proto.Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return err
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v proto.Printable) error {
	headers := v.Headers()
	header := make([]any, len(headers))
	for i := range headers {
		header[i] = headers[i]
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(header...)
	if err := table.Bulk(v.Values()); err != nil {
		return err
	}
	return table.Render()
}

func (w JSONWriter) Write(v proto.Printable) error {
	enc := json.NewEncoder(w.w)
	return enc.Encode(v)
}
