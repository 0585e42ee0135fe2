/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package orgdate

import (
	"time"

	"github.com/dburkart/orgdate/pkg/proto"
)

type Client interface {
	Open(proto.ConnectionString) error
	Close() error
	Resolve(input string, def, now time.Time) (proto.ResolveResponse, error)
}
