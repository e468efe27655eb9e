// SPDX-License-Identifier: Unlicense OR MIT

// Package warn is the channel for non-fatal programming error
// diagnostics. A warning never aborts the program; the operation that
// reported it is skipped.
package warn

import (
	"fmt"
	"log"
	"os"
)

var (
	logger = log.New(os.Stderr, "flowkit: ", log.LstdFlags)
	hook   func(msg string)
)

// Printf reports a diagnostic.
func Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if hook != nil {
		hook(msg)
		return
	}
	logger.Output(2, msg)
}

// SetOutput redirects diagnostics written by Printf.
func SetOutput(l *log.Logger) {
	logger = l
}

// Capture diverts diagnostics into memory until restore is called.
// It is meant for tests.
func Capture() (msgs func() []string, restore func()) {
	var got []string
	prev := hook
	hook = func(msg string) {
		got = append(got, msg)
	}
	return func() []string { return got }, func() { hook = prev }
}
