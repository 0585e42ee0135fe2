/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner walks a date prompt. Productions that fail rewind Pos with Reset;
// Furthest remembers the deepest position any production reached so errors
// can point at it.
type Scanner struct {
	Input    string
	Pos      int
	Furthest int
}

func New(input string) *Scanner {
	return &Scanner{Input: input}
}

// Remaining returns the unconsumed input.
func (s *Scanner) Remaining() string {
	return s.Input[s.Pos:]
}

func (s *Scanner) AtEnd() bool {
	return s.Pos >= len(s.Input)
}

// Mark returns a position to later Reset to.
func (s *Scanner) Mark() int {
	return s.Pos
}

func (s *Scanner) Reset(mark int) {
	s.Pos = mark
}

// Advance consumes n bytes.
func (s *Scanner) Advance(n int) {
	s.Pos += n
	if s.Pos > s.Furthest {
		s.Furthest = s.Pos
	}
}

// MatchInteger returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	integer         = 1*DIGIT
func (s *Scanner) MatchInteger() int {
	size := 0

	for i := s.Pos; i < len(s.Input); {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		if r < '0' || r > '9' {
			break
		}
		size += width
		i += width
	}

	return size
}

// MatchWhitespace returns the length of the next run of blanks
//
// Grammar:
//
//	whitespace      = 1*(SP / HTAB)
func (s *Scanner) MatchWhitespace() int {
	size := 0

	for i := s.Pos; i < len(s.Input); {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		if r != ' ' && r != '\t' {
			break
		}
		size += width
		i += width
	}

	return size
}

// MatchLiteral consumes lit if the input continues with it exactly.
func (s *Scanner) MatchLiteral(lit string) bool {
	if !strings.HasPrefix(s.Input[s.Pos:], lit) {
		return false
	}
	s.Advance(len(lit))
	return true
}

// MatchFold consumes lit if the input continues with it, ignoring case.
func (s *Scanner) MatchFold(lit string) bool {
	n := len(lit)
	if len(s.Input)-s.Pos < n || !strings.EqualFold(s.Input[s.Pos:s.Pos+n], lit) {
		return false
	}
	s.Advance(n)
	return true
}

// MatchWord returns the length of the next run of letters.
//
// Grammar:
//
//	word            = 1*ALPHA
func (s *Scanner) MatchWord() int {
	size := 0

	for i := s.Pos; i < len(s.Input); {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		if !unicode.IsLetter(r) {
			break
		}
		size += width
		i += width
	}

	return size
}
