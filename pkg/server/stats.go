/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type serverStatsCollector struct {
	started time.Time
	clock   func() time.Time

	uptime *prometheus.Desc
}

// NewServerStatsCollector reports how long the server has been up, labelled
// with the version it runs.
func NewServerStatsCollector(version string, started time.Time, clock func() time.Time) prometheus.Collector {
	return &serverStatsCollector{
		started: started,
		clock:   clock,
		uptime: prometheus.NewDesc(
			"orgdate_uptime_seconds",
			"Seconds since the resolve server started.",
			nil, prometheus.Labels{"version": version},
		),
	}
}

// Describe implements Collector.
func (c *serverStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.uptime
}

// Collect implements Collector.
func (c *serverStatsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, c.clock().Sub(c.started).Seconds())
}
