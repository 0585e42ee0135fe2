/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

var (
	// CommandResolve resolves a date prompt against the session baselines
	CommandResolve = "RESOLVE"
	// CommandNow sets the now baseline of the session
	CommandNow = "NOW"
	// CommandDefault sets the default baseline of the session
	CommandDefault = "DEFAULT"
	// CommandHelp prints the command tree
	CommandHelp = "HELP"
	// CommandExit leaves the prompt
	CommandExit = "EXIT"
)
