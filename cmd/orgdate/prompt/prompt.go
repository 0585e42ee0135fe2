/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package prompt

import (
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	orgdate "github.com/dburkart/orgdate/api"
	"github.com/dburkart/orgdate/cmd/orgdate/baselines"
	"github.com/dburkart/orgdate/pkg/datetime/parser"
	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/dburkart/orgdate/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "prompt",
	Short: "Interactive terminal for resolving date prompts",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		output := viper.GetString("orgdate.output")
		if err := repl.CheckOutputFormat(output); err != nil {
			return err
		}

		def, now, err := baselines.FromConfig(time.Now())
		if err != nil {
			return err
		}

		host := viper.GetString("orgdate.host")
		client, err := orgdate.NewClient(host)
		if err != nil {
			return errors.Wrapf(err, "unable to connect to %s", host)
		}
		defer client.Close()

		log.Debug().Str("host", host).Time("now", now).Time("default", def).Msg("starting prompt")
		return readlinePrompt(log, client, output, def, now)
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// nameItems completes month and weekday names, the only words a date
// prompt contains.
func nameItems() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for _, name := range append(parser.Months(), parser.Weekdays()...) {
		ret = append(ret, readline.PcItem(name))
	}
	return ret
}

func readlinePrompt(log zerolog.Logger, client repl.Resolver, output string, def, now time.Time) error {
	// Configure the completer
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(strings.ToLower(proto.CommandHelp)),
		readline.PcItem(strings.ToLower(proto.CommandExit)),
		readline.PcItem(strings.ToLower(proto.CommandNow)),
		readline.PcItem(strings.ToLower(proto.CommandDefault)),
	}
	completer := readline.NewPrefixCompleter(append(items, nameItems()...)...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return errors.Wrap(err, "unable to start readline")
	}
	defer rl.Close()

	runSession(log, rl, client, output, def, now)
	rl.Clean()

	return nil
}

// lineReader is the part of a readline instance the prompt loop uses.
type lineReader interface {
	Line() *readline.Result
	Stdout() io.Writer
}

func runSession(log zerolog.Logger, rl lineReader, client repl.Resolver, output string, def, now time.Time) {
	// Results share rl.Stdout with usage text and caret errors so readline
	// can redraw the prompt around them.
	session := repl.NewSession(log, client, repl.NewOutputWriter(rl.Stdout(), output), def, now)

	for !session.Exit {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if err := session.Execute(rl.Stdout(), line); err != nil {
			log.Error().Err(err).Str("line", line).Msg("unable to execute")
		}
	}
}
