// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/H0llyW00dzZ/logbuffer/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/logbuffer/src/logger"
)

// DefaultFileName is the file name used inside the system log directory, and
// inside any directory given as a target path: "<executable>.log".
func DefaultFileName() string { return posix.GetExecutableName() + ".log" }

// DefaultPath returns the file used when a Buffer has no path:
// /var/log/<executable>.log on Linux and other Unix systems,
// /Library/Logs/<executable>.log on macOS and
// C:\ProgramData\Logs\<executable>.log on Windows.
func DefaultPath() string { return defaultPathFor(runtime.GOOS) }

func defaultPathFor(goos string) string {
	dir := posix.SystemLogDir(goos)
	if goos == "windows" {
		return dir + `\` + DefaultFileName()
	}
	return path.Join(dir, DefaultFileName())
}

// resolvePath turns the configured target into the file that will be opened.
// An existing directory gets DefaultFileName appended.
func resolvePath(target string) string {
	if target == "" {
		return DefaultPath()
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, DefaultFileName())
	}
	return target
}

// openTarget opens name for appending. A name that cannot be stat'ed is
// treated as missing: its parent directories are created, then the file.
func openTarget(name string, log logger.Logger) (*os.File, error) {
	if _, err := os.Stat(name); err == nil {
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, nil
	}

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	log.Printf("Creating new log file at: %s", name)
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}
