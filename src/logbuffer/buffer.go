// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/logbuffer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/logbuffer/src/logger"
)

// Buffer accumulates entries until it is flushed to a file.
//
// A Buffer moves through two states, open and flushed. While open, record
// calls append entries. The first successful Flush or FlushWith moves it to
// flushed; from then on flushes return nil without doing anything and record
// calls are dropped.
//
// Buffer is safe for concurrent use by multiple goroutines. A flush holds the
// buffer for its whole duration, so concurrent flushes write exactly once and
// record calls made during a flush wait for it to finish.
type Buffer struct {
	mu       sync.Mutex
	entries  []Entry
	path     string
	target   string
	flushed  bool
	dropped  int
	resolver FilterResolver
	log      logger.Logger
	now      func() time.Time
}

// New returns an empty buffer targeting path. An empty path selects
// DefaultPath at flush time. New performs no I/O.
//
// The filter is read from LOG_LEVEL at flush time; see SetFilterResolver.
func New(path string) *Buffer {
	return &Buffer{
		path:     path,
		resolver: EnvFilter(nil),
		log:      logger.Nop(),
		now:      time.Now,
	}
}

// SetFilterResolver replaces how Flush obtains its filter.
// A nil r restores the LOG_LEVEL environment lookup.
func (b *Buffer) SetFilterResolver(r FilterResolver) {
	if r == nil {
		r = EnvFilter(nil)
	}
	b.mu.Lock()
	b.resolver = r
	b.mu.Unlock()
}

// SetLogger sets where diagnostics such as new-file notices go.
// A nil l discards them.
func (b *Buffer) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	b.mu.Lock()
	b.log = l
	b.mu.Unlock()
}

// Debug records msg with Debug severity.
func (b *Buffer) Debug(msg string) { b.record(Debug, msg) }

// Info records msg with Info severity.
func (b *Buffer) Info(msg string) { b.record(Info, msg) }

// Error records msg with Error severity.
func (b *Buffer) Error(msg string) { b.record(Error, msg) }

// Debugf records a formatted Debug message.
func (b *Buffer) Debugf(format string, v ...any) { b.record(Debug, fmt.Sprintf(format, v...)) }

// Infof records a formatted Info message.
func (b *Buffer) Infof(format string, v ...any) { b.record(Info, fmt.Sprintf(format, v...)) }

// Errorf records a formatted Error message.
func (b *Buffer) Errorf(format string, v ...any) { b.record(Error, fmt.Sprintf(format, v...)) }

func (b *Buffer) record(sev Severity, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flushed {
		b.dropped++
		return
	}
	b.entries = append(b.entries, Entry{Time: b.now(), Severity: sev, Message: msg})
}

// Flush writes the buffered entries allowed by the resolved filter to the
// target file, once.
//
// If the buffer was already flushed, Flush returns nil immediately without
// resolving the filter or touching the file system. Otherwise it resolves the
// filter (a resolver error is returned wrapped in ErrFilter), opens the target
// for append, creating it and its parent directories when missing, and writes
// one line per allowed entry in insertion order.
//
// Any error leaves the buffer open with its entries intact; a later Flush
// starts over. Lines written before a failing write stay in the file.
func (b *Buffer) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flushed {
		return nil
	}

	filter, err := b.resolver()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return b.flushLocked(filter)
}

// FlushWith is Flush with an explicit filter instead of the resolver.
func (b *Buffer) FlushWith(filter Severity) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flushed {
		return nil
	}
	return b.flushLocked(filter)
}

func (b *Buffer) flushLocked(filter Severity) error {
	name := resolvePath(b.path)
	if err := b.writeFiltered(name, filter); err != nil {
		return err
	}
	b.target = name
	b.flushed = true
	return nil
}

func (b *Buffer) writeFiltered(name string, filter Severity) (err error) {
	f, err := openTarget(name, b.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", cerr)
		}
	}()

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	for _, e := range b.entries {
		if filter.Allows(e.Severity) {
			writeLine(buf, e)
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	if _, err = buf.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}

// Entries returns a copy of the recorded entries in insertion order.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// Len returns the number of recorded entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flushed reports whether a flush has succeeded.
func (b *Buffer) Flushed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

// Dropped returns how many record calls arrived after the buffer was flushed.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Path returns the configured target path, which is empty when DefaultPath is used.
func (b *Buffer) Path() string { return b.path }

// Target returns the file a flush writes to. Unlike Path it is never empty: the
// default path and directory targets are resolved to a file name. After a
// successful flush it is the file that was written.
func (b *Buffer) Target() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.flushed {
		return b.target
	}
	return resolvePath(b.path)
}
