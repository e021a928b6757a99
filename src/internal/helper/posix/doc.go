// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides cross-platform helpers for names and locations the
// log buffer derives from the running system.
//
// Key functions:
//   - GetExecutableName: executable name without extension, used in CLI usage
//     strings and as the default log file name
//   - SystemLogDir: conventional system log directory for a GOOS value
//
// Cross-platform behavior:
//
//   - Linux/BSD: "/usr/bin/myapp" → "myapp", logs under /var/log
//   - macOS: logs under /Library/Logs
//   - Windows: "C:\bin\myapp.exe" → "myapp", logs under C:\ProgramData\Logs
//   - Fallback: empty args → "logbuffer"
package posix
