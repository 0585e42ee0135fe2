/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package orgdate resolves date prompts either in process or against an
// orgdate server, behind the same Client interface.
package orgdate

import (
	"github.com/dburkart/orgdate/pkg/proto"
)

// NewClient creates a Client for connstr. "local" or an empty string
// resolves in process; an orgdate:// or http(s):// address talks to a
// server. The client is safe for concurrent use.
func NewClient(connstr string) (Client, error) {
	var client Client

	target, err := proto.ParseConnectionString(connstr)
	if err != nil {
		return nil, err
	}

	if target.Local {
		client = &LocalClient{}
	} else {
		client = &RemoteClient{}
	}

	err = client.Open(target)
	if err != nil {
		return nil, err
	}

	return client, nil
}
