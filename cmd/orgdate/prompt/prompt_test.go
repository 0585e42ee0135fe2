/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/chzyer/readline"
	orgdate "github.com/dburkart/orgdate/api"
	"github.com/rs/zerolog"
)

type scriptedReader struct {
	lines []string
	out   bytes.Buffer
}

func (r *scriptedReader) Line() *readline.Result {
	if len(r.lines) == 0 {
		return &readline.Result{Error: io.EOF}
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return &readline.Result{Line: line}
}

func (r *scriptedReader) Stdout() io.Writer {
	return &r.out
}

func TestSessionWritesToReadline(t *testing.T) {
	client, err := orgdate.NewClient("local")
	if err != nil {
		t.Fatal(err)
	}

	rl := &scriptedReader{lines: []string{"14", "", "tomorrow", "exit", "15"}}
	tuesday := time.Date(2006, 6, 13, 0, 0, 0, 0, time.UTC)
	runSession(zerolog.Nop(), rl, client, "csv", tuesday, tuesday)

	out := rl.out.String()
	if !strings.Contains(out, "14,date,2006-06-14,") {
		t.Errorf("result not written to the readline output: %q", out)
	}
	if !strings.Contains(out, "tomorrow\n^~~~~~~") {
		t.Errorf("syntax error not written to the readline output: %q", out)
	}
	if strings.Contains(out, "2006-06-15") {
		t.Errorf("lines after exit were executed: %q", out)
	}
}
