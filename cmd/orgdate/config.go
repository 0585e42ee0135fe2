/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/dburkart/orgdate/cmd/orgdate/baselines"
	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/dburkart/orgdate/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

func initConfig(configFile string) {
	log := viper.Get("logger").(zerolog.Logger)

	// config Read
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/etc/orgdate")
	viper.AddConfigPath("$HOME/.orgdate")
	viper.AddConfigPath(".")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
	} else if err != nil {
		log.Error().Err(err).Msg("Error loading config file")
	}

	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config from file")
}

// checkConfig validates the orgdate keys, wherever they were set, so a bad
// value in a config file fails before any command runs and names its key.
//
//	[orgdate]
//	host = "orgdate://localhost:8001"
//	output = "json"
//	now = "2006-06-13 Tue 09:00"
//	default = "2006-06-13"
func checkConfig(wall time.Time) error {
	if err := repl.CheckOutputFormat(viper.GetString("orgdate.output")); err != nil {
		return errors.Wrap(err, "invalid orgdate.output")
	}
	if _, err := proto.ParseConnectionString(viper.GetString("orgdate.host")); err != nil {
		return errors.Wrap(err, "invalid orgdate.host")
	}
	_, _, err := baselines.FromConfig(wall)
	return err
}

func initLogLevel() {
	level := viper.GetInt("orgdate.verbose")
	switch clamp(2, level) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initLogging() {
	var writer io.Writer

	writer = os.Stderr
	if viper.GetBool("orgdate.local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	viper.Set("logger", logger)
}

func traceConfig() {
	log := viper.Get("logger").(zerolog.Logger)

	for _, v := range viper.AllKeys() {
		if v == "logger" {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
