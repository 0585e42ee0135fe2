/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"time"

	"github.com/dburkart/orgdate/pkg/prompt"
	"github.com/dburkart/orgdate/pkg/proto"
)

// ResolveResponse resolves input against the two baselines. Both the HTTP
// handler and in-process clients answer through here.
func ResolveResponse(input string, def, now time.Time) (proto.ResolveResponse, error) {
	r, err := prompt.Read(input, def, now)
	if err != nil {
		return proto.ResolveResponse{}, err
	}
	return proto.NewResolveResponse(input, r, now), nil
}
