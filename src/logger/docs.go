// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostic logging used by the log buffer and the
// logbuffer command itself. It is separate from the buffered entries: these
// messages describe what the tool is doing (for example that a new log file was
// created) and go to the terminal, never into the flushed file.
//
// Two implementations are provided: CLILogger for human-readable lines and
// JSONLogger for one JSON object per line. Both are safe for concurrent use.
package logger
