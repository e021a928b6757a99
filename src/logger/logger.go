// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/logbuffer/src/internal/helper/gc"
)

// Logger defines the interface for diagnostic logging operations.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLI logger writing to w without timestamps.
// A nil w means standard error, keeping standard output free for command results.
func NewCLILogger(w io.Writer) *CLILogger {
	if w == nil {
		w = os.Stderr
	}
	return &CLILogger{logger: log.New(w, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
// A nil w discards output.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

// JSONLogger implements Logger by writing one JSON object per line:
//
//	{"time":"2025-01-02T15:04:05+07:00","level":"info","message":"..."}
//
// It can be silenced entirely, which is how the --quiet flag is honored in
// JSON mode.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	now    func() time.Time
}

// jsonLine is the wire shape of a JSONLogger line.
type jsonLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a JSON logger writing to writer.
// A nil writer discards output. When silent is true nothing is written at all.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
		now:    time.Now,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message. Operands are joined as fmt.Sprint does.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

// SetOutput sets the output destination for the JSON logger.
// A nil w discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	line := jsonLine{
		Time:    j.now().Format(time.RFC3339),
		Level:   "info",
		Message: msg,
	}
	// Encode appends the trailing newline. A struct of strings cannot fail to encode.
	_ = json.NewEncoder(buf).Encode(line)

	j.mu.Lock()
	// Diagnostics are best effort; a failing sink is not reported.
	_, _ = buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// nop discards everything.
type nop struct{}

func (nop) Printf(string, ...any) {}
func (nop) Println(...any)        {}
func (nop) SetOutput(io.Writer)   {}

// Nop returns a Logger that discards all messages.
func Nop() Logger { return nop{} }
