/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dburkart/orgdate/pkg/proto"
)

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'. Lines that do not start with a
// known command are date prompts and come back as a RESOLVE message holding
// the whole line.
func ParseREPLCommand(b []byte) (proto.Message, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return proto.Message{}, fmt.Errorf("empty command")
	}

	// all commands with arguments have a space after them, if not then they
	// are command only like EXIT
	cmd := b
	data := []byte{}
	if ind := bytes.IndexAny(b, " \t"); ind != -1 {
		cmd = b[0:ind]
		data = bytes.TrimSpace(b[ind+1:])
	}

	switch command := strings.ToUpper(string(cmd)); command {
	case proto.CommandNow, proto.CommandDefault:
		if len(data) == 0 {
			return proto.Message{}, fmt.Errorf("%s requires a timestamp", strings.ToLower(command))
		}
		return proto.NewMessage(command, data), nil
	case proto.CommandHelp, proto.CommandExit:
		return proto.NewMessage(command, nil), nil
	}

	return proto.NewMessage(proto.CommandResolve, b), nil
}
