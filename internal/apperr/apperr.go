// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package apperr carries the blame classification for errors that reach the
// top of cargo-eval. Human errors are caused by the user's environment and
// should be reported with an actionable message; everything else is Internal.
//
// Blame rides on the error codes of github.com/jmgilman/go/errors, so the
// errors built here interoperate with anything else using that package.
package apperr

import (
	"github.com/jmgilman/go/errors"
)

// Blame identifies who is responsible for an error.
type Blame int

const (
	// Internal covers I/O failures, corrupt records and bugs.
	Internal Blame = iota
	// Human covers misconfiguration the user can fix.
	Human
)

func (b Blame) String() string {
	switch b {
	case Human:
		return "human"
	default:
		return "internal"
	}
}

// Code is the error code a Blame is recorded as.
func (b Blame) Code() errors.ErrorCode {
	if b == Human {
		return errors.CodeInvalidConfig
	}
	return errors.CodeInternal
}

// Humanf returns a Human-blamed error with a formatted message.
func Humanf(format string, args ...any) error {
	return errors.Newf(Human.Code(), format, args...)
}

// Wrap attaches msg to err and blames it on cargo-eval. A nil err yields
// nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, Internal.Code(), msg)
}

// BlameOf reports the Blame recorded by the outermost classified error in
// err's chain. Errors that carry no classification are Internal.
func BlameOf(err error) Blame {
	if errors.GetCode(err) == Human.Code() {
		return Human
	}
	return Internal
}
