/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"fmt"
	"net/url"
)

var Protocol = "orgdate"

type ConnectionString struct {
	Local   bool
	Scheme  string
	Address string
}

// ParseConnectionString takes a connection string and parses it into the parts
// the application needs to reach a resolver. It will only return an error if
// the scheme is not one of "orgdate", "http" or "https", or a remote
// connection string names no host.
//
// Formats:
//
//	local
//	orgdate://<host:port>
//	http://<host:port>
//	https://<host:port>
func ParseConnectionString(connStr string) (ConnectionString, error) {
	ret := ConnectionString{
		Local:   true,
		Address: "local",
	}

	if connStr == "" || connStr == "local" {
		return ret, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return ConnectionString{}, err
	}

	switch u.Scheme {
	case Protocol, "http":
		ret.Scheme = "http"
	case "https":
		ret.Scheme = "https"
	default:
		return ConnectionString{}, fmt.Errorf("unrecognized scheme: %s", u.Scheme)
	}

	if u.Host == "" {
		return ConnectionString{}, fmt.Errorf("missing host in %s", connStr)
	}

	ret.Local = false
	ret.Address = u.Host
	return ret, nil
}

// URL joins the remote address with path.
func (c ConnectionString) URL(path string) string {
	return c.Scheme + "://" + c.Address + path
}
