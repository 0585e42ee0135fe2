/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"

	"github.com/dburkart/orgdate/pkg/proto"
)

type MessageMux interface {
	ServeMessage(w io.Writer, msg proto.Message) error
	Handle(s string, f HandleMessage)
}

type HandleMessage func(io.Writer, proto.Message) error

type MapMux struct {
	handlers map[string]HandleMessage
}

func NewMapMux() MessageMux {
	return &MapMux{
		handlers: make(map[string]HandleMessage),
	}
}

func (mm *MapMux) ServeMessage(w io.Writer, msg proto.Message) error {
	f, ok := mm.handlers[msg.Command]
	if !ok {
		return fmt.Errorf("unknown command: %s", msg.Command)
	}
	return f(w, msg)
}

func (mm *MapMux) Handle(s string, f HandleMessage) {
	mm.handlers[s] = f
}
