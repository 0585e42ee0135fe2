/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"fmt"
	"os"
	"time"

	"github.com/dburkart/orgdate/cmd/orgdate/prompt"
	"github.com/dburkart/orgdate/cmd/orgdate/resolve"
	"github.com/dburkart/orgdate/cmd/orgdate/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "orgdate",
		Short: "orgdate reads org-mode style date prompts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			// the config file may raise orgdate.verbose
			initLogLevel()
			traceConfig()
			return checkConfig(time.Now())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("host", "H", "local", "Resolver to use: local, or orgdate://<host:port>")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the orgdate config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	rootCmd.PersistentFlags().String("now", "", "Now baseline (default: the current time)")
	rootCmd.PersistentFlags().String("default", "", "Default baseline, the value being edited (default: the now baseline)")

	// Bind viper config to the root flags
	viper.BindPFlag("orgdate.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("orgdate.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("orgdate.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("orgdate.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("orgdate.now", rootCmd.PersistentFlags().Lookup("now"))
	viper.BindPFlag("orgdate.default", rootCmd.PersistentFlags().Lookup("default"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("orgdate version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables, e.g. ORGDATE_HOST
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Register commands on the root binary command
	server.Command.Version = rootCmd.Version
	prompt.Command.Version = rootCmd.Version
	resolve.Command.Version = rootCmd.Version
	rootCmd.AddCommand(server.Command)
	rootCmd.AddCommand(prompt.Command)
	rootCmd.AddCommand(resolve.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
