// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for logbuffer.
// It implements a Cobra-based CLI with two commands: record, which buffers
// leveled lines from a file or standard input and flushes them once to a log
// file, and show, which renders a flushed log file as a markdown table.
// Diagnostics go through the logger package, as plain text or JSON lines.
package cli
