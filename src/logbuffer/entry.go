// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/logbuffer/src/internal/helper/gc"
)

// TimeLayout is the timestamp layout of a log line. Time fields are separated
// by dashes, not colons.
const TimeLayout = "2006-01-02 15-04-05"

// ErrMalformedLine is returned when a line does not have the shape FormatLine produces.
var ErrMalformedLine = errors.New("malformed log line")

// Entry is one recorded message.
type Entry struct {
	Time     time.Time
	Severity Severity
	Message  string
}

// FormatLine renders e as a log line, without the trailing newline.
func FormatLine(e Entry) string {
	var b strings.Builder
	b.Grow(len(TimeLayout) + len(e.Message) + 16)
	b.WriteByte('[')
	b.WriteString(e.Time.Format(TimeLayout))
	b.WriteString("] ")
	b.WriteString(e.Severity.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// writeLine appends e and a newline to buf.
func writeLine(buf gc.Buffer, e Entry) {
	buf.WriteString(FormatLine(e))
	buf.WriteByte('\n')
}

// ParseLine parses a line produced by FormatLine. The timestamp is read in the
// local time zone, so it matches the recorded time to the second.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")

	// "[" + timestamp + "] "
	const head = 1 + len(TimeLayout) + 2
	if len(line) < head || line[0] != '[' || line[head-2:head] != "] " {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	ts, err := time.ParseInLocation(TimeLayout, line[1:head-2], time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
	}

	rest := line[head:]
	label, msg, ok := strings.Cut(rest, ": ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	sev, ok := labelSeverity(label)
	if !ok {
		return Entry{}, fmt.Errorf("%w: unknown label %q", ErrMalformedLine, label)
	}

	return Entry{Time: ts, Severity: sev, Message: msg}, nil
}

// ReadEntries parses a flushed log file. Messages that contained newlines were
// written verbatim, so a line that does not parse is treated as a continuation
// of the previous entry. A leading line that does not parse is an error.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		e, err := ParseLine(line)
		if err != nil {
			if len(entries) == 0 {
				return nil, err
			}
			last := &entries[len(entries)-1]
			last.Message += "\n" + line
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log entries: %w", err)
	}
	return entries, nil
}
