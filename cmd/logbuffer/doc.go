// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// logbuffer buffers leveled log lines in memory and writes them once to a
// plain-text log file, filtered by severity.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/logbuffer/cmd/logbuffer@latest
//
// # Usage
//
//	logbuffer record [INPUT_FILE] [-o LOG_FILE] [FLAGS]
//	logbuffer show LOG_FILE [FLAGS]
//
// # Flags
//
//	-o, --output   Log file for record (default: config path, then the system log directory)
//	-l, --level    Severity filter: default, debug, info or error
//	-c, --config   Config file (JSON or YAML)
//	    --json     Diagnostics as JSON lines on stderr
//	-q, --quiet    Suppress diagnostics
//
// # Environment Variables
//
//	LOG_LEVEL              "debug" writes everything, "info" only Info entries; anything else writes everything
//	LOGBUFFER_CONFIG_FILE  Config file when --config is not given
//
// # Log Format
//
// One line per entry, appended to the file:
//
//	[2025-01-02 15-04-05] Error: disk full
//
// # Examples
//
//	printf 'info: started\nerror: disk full\n' | logbuffer record -o app.log
//	LOG_LEVEL=info logbuffer record events.txt -o /var/log/app.log
//	logbuffer show app.log --level error
package main
