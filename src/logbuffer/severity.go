// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies an entry, and doubles as the flush filter.
// There is no ordering between severities.
type Severity uint8

const (
	// Default is the fallback filter; it is never attached to a recorded entry.
	Default Severity = iota
	Error
	Debug
	Info
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognized names.
var ErrUnknownSeverity = errors.New("unknown severity")

var severityLabels = [...]string{
	Default: "Default",
	Error:   "Error",
	Debug:   "Debug",
	Info:    "Info",
}

// String returns the label written into log lines.
func (s Severity) String() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// Allows reports whether an entry of severity entry passes when s is the filter.
func (s Severity) Allows(entry Severity) bool {
	switch s {
	case Error, Info:
		return entry == s
	default:
		// Default and Debug are verbose: everything goes through.
		return true
	}
}

// ParseEnvFilter maps a LOG_LEVEL value to a filter. Only the exact values
// "debug" and "info" are recognized; anything else, including the empty
// string, yields Default.
func ParseEnvFilter(v string) Severity {
	switch v {
	case "debug":
		return Debug
	case "info":
		return Info
	default:
		return Default
	}
}

// ParseSeverity parses a severity name case-insensitively. Unlike
// ParseEnvFilter it rejects unknown names and accepts "error", so an explicit
// configuration can select the Error filter.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default":
		return Default, nil
	case "error":
		return Error, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// labelSeverity is the inverse of String for the labels that appear in files.
func labelSeverity(label string) (Severity, bool) {
	for i, l := range severityLabels {
		if l == label {
			return Severity(i), true
		}
	}
	return Default, false
}
