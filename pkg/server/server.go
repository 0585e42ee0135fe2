/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// maxRequestBytes bounds POST bodies. Date prompts are a handful of bytes.
const maxRequestBytes = 4096

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	clock   func() time.Time

	resolvePort int
	metricsPort int
}

func New(log zerolog.Logger, version string, resolvePort, metricsPort int) Server {
	metrics := NewMetricsStore()
	metrics.RegisterCollector(NewServerStatsCollector(version, time.Now(), time.Now))

	return Server{
		log,
		metrics,
		time.Now,
		resolvePort,
		metricsPort,
	}
}

// Handler routes /resolve. Metrics are served separately by ServeMetrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/resolve", s.handleResolve)
	return mux
}

func (s *Server) ServeResolve() error {
	s.log.Info().Int("port", s.resolvePort).Msg("listening for resolve requests")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.resolvePort),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(s.metrics.Registry(), s.metrics.Handler()))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.metricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		s.log.Error().Err(err).Msg("error serving metrics")
	}
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := uuid.New().String()
	log := s.log.With().Str("request-id", id).Logger()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", id)

	rq, err := decodeRequest(r)
	if err != nil {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.writeError(w, log, proto.ErrResponse{Code: proto.ErrCodeRequest, Err: err.Error()}, start)
		return
	}
	log.Debug().Object("request", rq).Msg("resolve request")

	def, now, err := rq.Baselines(s.clock())
	if err != nil {
		s.writeError(w, log, proto.NewErrResponse(err), start)
		return
	}

	resp, err := ResolveResponse(rq.Input, def, now)
	if err != nil {
		s.writeError(w, log, proto.NewErrResponse(err), start)
		return
	}

	s.metrics.IncRequests(resp.Kind, OutcomeOk)
	s.metrics.ObserveResponseNS(resp.Kind, OutcomeOk, time.Since(start).Nanoseconds())
	log.Info().Object("response", resp).Msg("resolved")

	w.WriteHeader(http.StatusOK)
	if _, err := proto.NewResponseWriter(w).WriteMessage(resp); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, log zerolog.Logger, resp proto.ErrResponse, start time.Time) {
	s.metrics.IncRequests(KindNone, resp.Code)
	s.metrics.ObserveResponseNS(KindNone, resp.Code, time.Since(start).Nanoseconds())
	log.Info().Str("code", resp.Code).Str("error", resp.Err).Msg("rejected")

	w.WriteHeader(resp.Status())
	if _, err := proto.NewResponseWriter(w).WriteMessage(resp); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}

// decodeRequest reads a request from the query string of a GET or the
// JSON body of a POST.
func decodeRequest(r *http.Request) (proto.ResolveRequest, error) {
	var rq proto.ResolveRequest

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		if !q.Has("q") {
			return rq, errors.New("missing query parameter q")
		}
		rq.Input = q.Get("q")
		rq.Now = q.Get("now")
		rq.Default = q.Get("default")
		return rq, nil
	case http.MethodPost:
		b, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
		if err != nil {
			return rq, errors.Wrap(err, "unable to read request body")
		}
		if err := rq.Unmarshal(b); err != nil {
			return rq, errors.Wrap(err, "malformed request body")
		}
		return rq, nil
	}

	return rq, errors.Errorf("method %s not allowed", r.Method)
}
