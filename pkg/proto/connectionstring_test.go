/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import "testing"

func TestParseConnectionString(t *testing.T) {
	tt := []struct {
		test    string
		connStr string
		addr    string
		local   bool
		url     string
	}{
		{
			"Test empty conn string",
			"",
			"local",
			true,
			"",
		},
		{
			"Test local",
			"local",
			"local",
			true,
			"",
		},
		{
			"Test orgdate scheme",
			"orgdate://localhost:8000",
			"localhost:8000",
			false,
			"http://localhost:8000/resolve",
		},
		{
			"Test http end slash",
			"http://localhost:8000/",
			"localhost:8000",
			false,
			"http://localhost:8000/resolve",
		},
		{
			"Test https",
			"https://dates.example.com",
			"dates.example.com",
			false,
			"https://dates.example.com/resolve",
		},
	}

	for _, bad := range []string{"orgdat:///zx", "tcp://localhost:8000", "http:///resolve", "./local"} {
		_, err := ParseConnectionString(bad)
		if err == nil {
			t.Errorf("%s should have caused an error", bad)
		}
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			connStr, err := ParseConnectionString(tc.connStr)
			if err != nil {
				t.Fatal(err)
			}
			if connStr.Address != tc.addr {
				t.Errorf("Address mismatch: %s != %s", connStr.Address, tc.addr)
			}
			if connStr.Local != tc.local {
				t.Error("local mismatch")
			}
			if !tc.local && connStr.URL("/resolve") != tc.url {
				t.Errorf("url mismatch: %s != %s", connStr.URL("/resolve"), tc.url)
			}
		})
	}
}
