/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package resolve

import (
	"fmt"
	"strings"
	"time"

	orgdate "github.com/dburkart/orgdate/api"
	"github.com/dburkart/orgdate/cmd/orgdate/baselines"
	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "resolve [flags] <prompt...>",
	Short: "Resolve a date prompt and print the result",
	Example: `  orgdate resolve +2tue
  orgdate resolve --now "2006-06-13 Tue" sep 12 9
  orgdate resolve -o json 11am+2:15`,
	Args: cobra.MinimumNArgs(1),

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

		client, err := orgdate.NewClient(viper.GetString("orgdate.host"))
		if err != nil {
			return errors.Wrap(err, "unable to create client")
		}
		defer client.Close()

		input := strings.TrimSpace(strings.Join(args, " "))
		log.Debug().
			Str("input", input).
			Time("now", now).
			Time("default", def).
			Msg("resolving")

		resp, err := client.Resolve(input, def, now)
		if err != nil {
			var syntax parse.SyntaxError
			if errors.As(err, &syntax) {
				fmt.Fprint(cmd.ErrOrStderr(), syntax.FormatError(input))
			}
			return errors.Wrapf(err, "unable to resolve %q", input)
		}

		return repl.NewOutputWriter(cmd.OutOrStdout(), output).Write(resp)
	},
}
