// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/logbuffer/src/config"
	"github.com/H0llyW00dzZ/logbuffer/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/logbuffer/src/logbuffer"
	"github.com/H0llyW00dzZ/logbuffer/src/logger"
	"github.com/spf13/cobra"
)

// app carries the flags shared by all commands and the active diagnostic logger.
type app struct {
	configFile string
	level      string
	jsonOutput bool
	quiet      bool
	log        logger.Logger
}

// Execute builds the command tree and runs it with ctx and the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand returns the logbuffer command tree. log receives diagnostics
// unless --json replaces it.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger(nil)
	}
	a := &app{log: log}
	exe := posix.GetExecutableName()

	root := &cobra.Command{
		Use:     exe,
		Short:   "Buffer leveled log lines in memory and flush them once to a file",
		Version: version,
		Example: fmt.Sprintf(`  printf 'info: started\nerror: failed\n' | %[1]s record -o app.log
  LOG_LEVEL=info %[1]s record events.txt -o /var/log/app.log
  %[1]s show app.log --level error`, exe),
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogger,
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (JSON or YAML); defaults to $"+config.FileEnv)
	root.PersistentFlags().StringVarP(&a.level, "level", "l", "", "severity filter: default, debug, info or error (overrides "+logbuffer.LevelEnv+")")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "write diagnostics as JSON lines")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress diagnostics")

	root.AddCommand(a.recordCommand(), a.showCommand())
	return root
}

func (a *app) setupLogger(cmd *cobra.Command, _ []string) error {
	switch {
	case a.jsonOutput:
		a.log = logger.NewJSONLogger(cmd.ErrOrStderr(), a.quiet)
	case a.quiet:
		a.log.SetOutput(io.Discard)
	}
	return nil
}

// levelOverride parses --level. ok is false when the flag was not given.
func (a *app) levelOverride() (sev logbuffer.Severity, ok bool, err error) {
	if a.level == "" {
		return logbuffer.Default, false, nil
	}
	sev, err = logbuffer.ParseSeverity(a.level)
	if err != nil {
		return logbuffer.Default, false, fmt.Errorf("invalid --level: %w", err)
	}
	return sev, true, nil
}
