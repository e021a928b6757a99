// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logbuffer accumulates leveled log entries in memory and writes them
// to a single plain-text file on demand.
//
// Entries are stamped with the local time when they are recorded and kept in
// insertion order. Nothing touches the disk until [Buffer.Flush], which runs at
// most once: it resolves the severity filter (by default from the LOG_LEVEL
// environment variable, read at that moment), opens the target file for append
// (creating it and its parent directories when missing) and writes every entry
// the filter allows, one line each:
//
//	[2025-01-02 15-04-05] Info: service started
//
// Filtering is exact-match, not a threshold:
//
//   - Default and Debug write every entry
//   - Error writes only Error entries
//   - Info writes only Info entries
//
// A failed flush leaves the buffer untouched so it can be retried. A successful
// flush seals the buffer; later record calls are dropped.
//
// # Usage
//
//	buf := logbuffer.New("/var/log/myapp.log")
//	buf.Info("starting")
//	buf.Errorf("dial %s: %v", addr, err)
//	if err := buf.Flush(); err != nil {
//		fmt.Fprintln(os.Stderr, "log flush failed:", err)
//	}
package logbuffer
