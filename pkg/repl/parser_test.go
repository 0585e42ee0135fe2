/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"testing"

	"github.com/dburkart/orgdate/pkg/proto"
)

func TestParseREPLCommand(t *testing.T) {
	tt := []struct {
		name    string
		line    string
		command string
		data    string
	}{
		{"prompt", "+2tue", proto.CommandResolve, "+2tue"},
		{"prompt with spaces", "  sep 12 9 ", proto.CommandResolve, "sep 12 9"},
		{"now", "now 2006-06-13", proto.CommandNow, "2006-06-13"},
		{"now upper", "NOW 2006-06-13 Tue 09:00", proto.CommandNow, "2006-06-13 Tue 09:00"},
		{"default", "default\t2006-01-01", proto.CommandDefault, "2006-01-01"},
		{"help", "help", proto.CommandHelp, ""},
		{"exit", "Exit", proto.CommandExit, ""},
		{"weekday is a prompt", "wed", proto.CommandResolve, "wed"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := ParseREPLCommand([]byte(tc.line))
			if err != nil {
				t.Fatal(err)
			}
			if msg.Command != tc.command {
				t.Errorf("wanted command %s, got %s", tc.command, msg.Command)
			}
			if !bytes.Equal(msg.Data, []byte(tc.data)) {
				t.Errorf("wanted data %q, got %q", tc.data, msg.Data)
			}
		})
	}

	t.Run("now no args", func(t *testing.T) {
		_, err := ParseREPLCommand([]byte("now"))
		if err == nil {
			t.Fail()
		}
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseREPLCommand([]byte("   "))
		if err == nil {
			t.Fail()
		}
	})
}
