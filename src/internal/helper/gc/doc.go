// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffers to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library so the log buffer can render a whole
// flush, and the JSON logger a whole line, into one pooled buffer before a single
// write to the destination.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
