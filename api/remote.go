/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"syscall"
	"time"

	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/pkg/errors"
)

const attempts = 3

// A RemoteClient resolves prompts against an orgdate server. Failures the
// server reports come back as proto.ErrResponse.
type RemoteClient struct {
	target  proto.ConnectionString
	http    *http.Client
	backoff time.Duration
}

func (client *RemoteClient) Open(target proto.ConnectionString) error {
	client.target = target
	client.http = &http.Client{Timeout: 10 * time.Second}
	client.backoff = time.Second
	return nil
}

func (client *RemoteClient) Close() error {
	client.http.CloseIdleConnections()
	return nil
}

// Resolve posts the prompt and both baselines to the server.
func (client *RemoteClient) Resolve(input string, def, now time.Time) (proto.ResolveResponse, error) {
	body, err := proto.NewResolveRequest(input, def, now).Marshal()
	if err != nil {
		return proto.ResolveResponse{}, errors.Wrap(err, "unable to marshal resolve request")
	}

	status, b, err := client.postWithBackoff(body)
	if err != nil {
		return proto.ResolveResponse{}, err
	}

	if status != http.StatusOK {
		errResp := proto.ErrResponse{}
		if err := errResp.Unmarshal(b); err != nil {
			return proto.ResolveResponse{}, errors.Errorf("server answered %d: %s", status, bytes.TrimSpace(b))
		}
		return proto.ResolveResponse{}, errResp
	}

	resp := proto.ResolveResponse{}
	if err := resp.Unmarshal(b); err != nil {
		return proto.ResolveResponse{}, errors.Wrap(err, "unable to unmarshal resolve response")
	}
	return resp, nil
}

// postWithBackoff retries requests the peer dropped, waiting 1, 2 and 4
// backoff periods between attempts.
func (client *RemoteClient) postWithBackoff(body []byte) (int, []byte, error) {
	var err error

	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(time.Duration(math.Exp2(float64(i-1))) * client.backoff)
		}

		var status int
		var b []byte
		status, b, err = client.post(body)
		if err == nil {
			return status, b, nil
		}

		// Only a dropped connection is worth another try
		if !errors.Is(err, syscall.ECONNRESET) && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, io.EOF) {
			break
		}
	}

	return 0, nil, errors.Wrapf(err, "unable to reach %s", client.target.Address)
}

func (client *RemoteClient) post(body []byte) (int, []byte, error) {
	resp, err := client.http.Post(client.target.URL("/resolve"), "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, b, nil
}
