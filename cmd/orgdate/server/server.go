/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/orgdate/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve date prompt resolution over HTTP",

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			cmd.Version,
			viper.GetInt("orgdate.port"),
			viper.GetInt("orgdate.prom-port"),
		)

		// Serve the metrics endpoint
		go srv.ServeMetrics()

		// Serve the resolver
		return srv.ServeResolve()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port to serve /resolve on")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("orgdate.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("orgdate.prom-port", Command.Flags().Lookup("prom-port"))
}
