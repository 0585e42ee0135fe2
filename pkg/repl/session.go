/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/rs/zerolog"
)

// Resolver is the part of a client a session needs.
type Resolver interface {
	Resolve(input string, def, now time.Time) (proto.ResolveResponse, error)
}

const usage = `usage:
    <prompt>            resolve a date prompt, e.g. "+2tue" or "sep 12 9"
    now <timestamp>     set the now baseline
    default <timestamp> set the default baseline
    help                print this message
    exit                leave the prompt`

// Session is an interactive prompt: two baselines the user can move, and
// the client prompts are resolved with.
type Session struct {
	Def  time.Time
	Now  time.Time
	Exit bool

	log      zerolog.Logger
	resolver Resolver
	writer   OutputWriter
	mux      MessageMux
}

func NewSession(log zerolog.Logger, r Resolver, w OutputWriter, def, now time.Time) *Session {
	s := &Session{
		Def:      def,
		Now:      now,
		log:      log,
		resolver: r,
		writer:   w,
		mux:      NewMapMux(),
	}

	s.mux.Handle(proto.CommandResolve, s.resolve)
	s.mux.Handle(proto.CommandNow, s.setBaseline(&s.Now))
	s.mux.Handle(proto.CommandDefault, s.setBaseline(&s.Def))
	s.mux.Handle(proto.CommandHelp, func(w io.Writer, _ proto.Message) error {
		_, err := fmt.Fprintln(w, usage)
		return err
	})
	s.mux.Handle(proto.CommandExit, func(io.Writer, proto.Message) error {
		s.Exit = true
		return nil
	})

	return s
}

// Execute runs one line typed at the prompt. Errors from resolving a
// prompt are written to w; only failures to talk to the resolver or to
// write are returned.
func (s *Session) Execute(w io.Writer, line string) error {
	msg, err := ParseREPLCommand([]byte(line))
	if err != nil {
		s.log.Debug().Err(err).Str("line", line).Msg("unable to parse command")
		return s.writer.Write(proto.ErrResponse{Code: proto.ErrCodeRequest, Err: err.Error()})
	}

	s.log.Debug().Object("message", msg).Msg("executing")
	return s.mux.ServeMessage(w, msg)
}

func (s *Session) resolve(w io.Writer, msg proto.Message) error {
	input := string(msg.Data)

	resp, err := s.resolver.Resolve(input, s.Def, s.Now)
	if err != nil {
		var syntax parse.SyntaxError
		if errors.As(err, &syntax) {
			_, err = fmt.Fprint(w, syntax.FormatError(input))
			return err
		}

		errResp := proto.NewErrResponse(err)
		if errResp.Code == proto.ErrCodeInternal {
			return err
		}
		return s.writer.Write(errResp)
	}

	return s.writer.Write(resp)
}

func (s *Session) setBaseline(target *time.Time) HandleMessage {
	return func(w io.Writer, msg proto.Message) error {
		t, err := datetime.ParseBaseline(string(msg.Data), target.Location())
		if err != nil {
			return s.writer.Write(proto.ErrResponse{Code: proto.ErrCodeBaseline, Err: err.Error()})
		}

		*target = t
		_, err = fmt.Fprintf(w, "%s = %s\n", strings.ToLower(msg.Command), t.Format(datetime.DateTimeLayout))
		return err
	}
}
