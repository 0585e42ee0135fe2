/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/dburkart/orgdate/pkg/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tuesday = time.Date(2006, 6, 13, 0, 0, 0, 0, time.UTC)

func newRemote(t *testing.T) Client {
	t.Helper()

	srv := server.New(zerolog.Nop(), "test", 0, 0)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client, err := NewClient(ts.URL)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("local")
	require.NoError(t, err)
	assert.IsType(t, &LocalClient{}, c)

	c, err = NewClient("orgdate://localhost:8001")
	require.NoError(t, err)
	assert.IsType(t, &RemoteClient{}, c)

	_, err = NewClient("tcp://localhost:8001")
	assert.Error(t, err)
}

func TestClientsAgree(t *testing.T) {
	local, err := NewClient("")
	require.NoError(t, err)
	remote := newRemote(t)

	def := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"+2tue", "-wed", "sep 12 9", "11am-1:15pm", "w4", "++5", "3pm"} {
		want, err := local.Resolve(input, def, tuesday)
		require.NoError(t, err, input)

		got, err := remote.Resolve(input, def, tuesday)
		require.NoError(t, err, input)

		assert.Equal(t, want, got, input)
	}
}

func TestClientsAgreeOnSubSecondBaselines(t *testing.T) {
	local, err := NewClient("local")
	require.NoError(t, err)
	remote := newRemote(t)

	now := time.Date(2006, 6, 13, 13, 15, 0, 500_000_000, time.UTC)
	for _, input := range []string{"13:15", "1:15pm", "13", ".+1h"} {
		want, err := local.Resolve(input, now, now)
		require.NoError(t, err, input)

		got, err := remote.Resolve(input, now, now)
		require.NoError(t, err, input)

		assert.Equal(t, want, got, input)
	}

	resp, err := remote.Resolve("13:15", now, now)
	require.NoError(t, err)
	assert.Equal(t, "2006-06-14 13:15", resp.Value)
}

func TestClientErrors(t *testing.T) {
	local, err := NewClient("local")
	require.NoError(t, err)
	remote := newRemote(t)

	now := time.Date(2006, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err = local.Resolve("-4m", now, now)
	var unrepresentable *datetime.UnrepresentableRelativeDateError
	require.ErrorAs(t, err, &unrepresentable)
	assert.Equal(t, datetime.Past, unrepresentable.Direction)

	_, err = remote.Resolve("-4m", now, now)
	var served proto.ErrResponse
	require.ErrorAs(t, err, &served)
	assert.Equal(t, proto.ErrCodeUnrepresentable, served.Code)
}

func TestRemoteUnexpectedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL)
	require.NoError(t, err)

	_, err = client.Resolve(".", tuesday, tuesday)
	require.Error(t, err)

	var served proto.ErrResponse
	assert.False(t, errors.As(err, &served), "a non-JSON body should not decode as a served error")
}

func TestRemoteUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client, err := NewClient(url)
	require.NoError(t, err)

	_, err = client.Resolve(".", tuesday, tuesday)
	assert.Error(t, err)
}
