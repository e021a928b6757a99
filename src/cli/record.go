// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/logbuffer/src/config"
	"github.com/H0llyW00dzZ/logbuffer/src/logbuffer"
	"github.com/spf13/cobra"
)

func (a *app) recordCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "record [INPUT_FILE]",
		Short: "Record lines into a buffer and flush them to the log file",
		Long: `Reads lines from INPUT_FILE (standard input when omitted). A line starting
with "debug:", "info:" or "error:" (any case) is recorded with that severity;
any other non-blank line is recorded as Info. When input ends the buffer is
flushed once.

Filter precedence: --level, then LOG_LEVEL, then the config file level.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecord(cmd, args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "log file (default: config path, then the system log directory)")
	return cmd
}

func (a *app) runRecord(cmd *cobra.Command, args []string, output string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Path = output
	}

	buf := cfg.NewBuffer(nil)
	buf.SetLogger(a.log)
	if sev, ok, err := a.levelOverride(); err != nil {
		return err
	} else if ok {
		buf.SetFilterResolver(logbuffer.Fixed(sev))
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error reading input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	// Input read so far is still flushed when reading stops early.
	readErr := recordLines(cmd, in, buf)

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush failed: %w", err)
	}

	a.log.Printf("Recorded %d entries, flushed to %s", buf.Len(), buf.Target())
	return readErr
}

// recordLines feeds every non-blank line of in to buf until in is exhausted
// or the command context is cancelled. Reading happens on its own goroutine so
// that cancellation returns even while in is blocked; that goroutine exits
// once the pending Read returns.
func recordLines(cmd *cobra.Command, in io.Reader, buf *logbuffer.Buffer) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				return nil
			}
			recordLine(buf, line)
		}
	}
}

func recordLine(buf *logbuffer.Buffer, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	sev, msg := splitInputLine(line)
	switch sev {
	case logbuffer.Debug:
		buf.Debug(msg)
	case logbuffer.Error:
		buf.Error(msg)
	default:
		buf.Info(msg)
	}
}

// splitInputLine recognizes a "<severity>: message" prefix. Lines without one
// are Info with the whole line as message.
func splitInputLine(line string) (logbuffer.Severity, string) {
	prefix, msg, ok := strings.Cut(line, ":")
	if !ok {
		return logbuffer.Info, line
	}
	switch strings.ToLower(strings.TrimSpace(prefix)) {
	case "debug":
		return logbuffer.Debug, strings.TrimPrefix(msg, " ")
	case "info":
		return logbuffer.Info, strings.TrimPrefix(msg, " ")
	case "error":
		return logbuffer.Error, strings.TrimPrefix(msg, " ")
	default:
		return logbuffer.Info, line
	}
}
