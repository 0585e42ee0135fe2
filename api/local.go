/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"time"

	"github.com/dburkart/orgdate/pkg/proto"
	"github.com/dburkart/orgdate/pkg/server"
)

// LocalClient resolves prompts in process. Errors are the typed errors of
// the datetime packages, unwrapped.
type LocalClient struct {
	target proto.ConnectionString
}

func (client *LocalClient) Open(target proto.ConnectionString) error {
	client.target = target
	return nil
}

func (client *LocalClient) Close() error {
	return nil
}

func (client *LocalClient) Resolve(input string, def, now time.Time) (proto.ResolveResponse, error) {
	return server.ResolveResponse(input, def, now)
}
