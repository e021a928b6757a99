// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the optional logbuffer configuration file and turns it,
// together with the LOG_LEVEL environment variable, into the filter resolver a
// [logbuffer.Buffer] consults at flush time.
//
// A configuration file is JSON (.json) or YAML (.yaml, .yml):
//
//	path: /var/log/myapp/app.log
//	level: error
//	strict: true
//
// JSON files are validated against an embedded JSON Schema before decoding;
// YAML files are decoded with unknown keys rejected. Either way an invalid
// level name is an error.
//
// Filter precedence, evaluated when the buffer flushes:
//  1. LOG_LEVEL, when set and non-empty ("debug", "info"; anything else is Default)
//  2. the file's level
//  3. Default
//
// With strict enabled an unrecognized LOG_LEVEL is reported as ErrInvalidLevel
// instead of falling back to Default.
package config
