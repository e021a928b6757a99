// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer

import (
	"errors"
	"os"
)

// LevelEnv is the environment variable read by EnvFilter.
const LevelEnv = "LOG_LEVEL"

// ErrFilter wraps any error returned by a FilterResolver during Flush.
var ErrFilter = errors.New("cannot resolve severity filter")

// FilterResolver yields the flush filter. Flush calls it exactly once per
// attempt, after the already-flushed check.
type FilterResolver func() (Severity, error)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvFilter resolves the filter from LOG_LEVEL through lookup (os.LookupEnv
// when nil). Unset and unrecognized values both resolve to Default.
func EnvFilter(lookup LookupFunc) FilterResolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return func() (Severity, error) {
		v, _ := lookup(LevelEnv)
		return ParseEnvFilter(v), nil
	}
}

// Fixed always resolves to s.
func Fixed(s Severity) FilterResolver {
	return func() (Severity, error) { return s, nil }
}
