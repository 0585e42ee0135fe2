/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(kind, outcome string)
	ObserveResponseNS(kind, outcome string, t int64)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Requests   *prometheus.CounterVec
	ResponseNS *prometheus.HistogramVec
}

var (
	KindLabel    = "kind"
	OutcomeLabel = "outcome"

	// OutcomeOk labels a request that resolved. Failed requests are labelled
	// with their error code.
	OutcomeOk = "ok"
	// KindNone labels a request that failed before producing a value.
	KindNone = "none"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	// 1µs up to ~32ms
	buckets := prometheus.ExponentialBuckets(1000, 2, 16)

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orgdate_requests",
			Help: "Resolve request counts by result kind and outcome",
		}, []string{KindLabel, OutcomeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orgdate_response_ns",
			Help:    "Time taken to classify and resolve a date prompt",
			Buckets: buckets,
		}, []string{KindLabel, OutcomeLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(kind, outcome string) {
	ms.Requests.With(prometheus.Labels{KindLabel: kind, OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(kind, outcome string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{KindLabel: kind, OutcomeLabel: outcome}).
		Observe(float64(t))
}
