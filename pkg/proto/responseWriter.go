/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"io"
)

type ResponseWriter struct {
	w io.Writer
}

// NewResponseWriter wraps w for writing marshaled messages
func NewResponseWriter(w io.Writer) ResponseWriter {
	return ResponseWriter{
		w: w,
	}
}

func (rw ResponseWriter) Write(b []byte) (int, error) {
	return rw.w.Write(b)
}

// WriteMessage marshals t and writes it followed by a newline
func (rw ResponseWriter) WriteMessage(t Marshaler) (int, error) {
	b, err := t.Marshal()
	if err != nil {
		return 0, err
	}

	return rw.w.Write(append(b, '\n'))
}
