// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

// Conventional system log directories.
const (
	UnixLogDir    = "/var/log"
	DarwinLogDir  = "/Library/Logs"
	WindowsLogDir = `C:\ProgramData\Logs`
)

// SystemLogDir returns the system log directory for goos (a runtime.GOOS value).
// Anything that is neither windows nor darwin is treated as Unix-like.
func SystemLogDir(goos string) string {
	switch goos {
	case "windows":
		return WindowsLogDir
	case "darwin", "ios":
		return DarwinLogDir
	default:
		return UnixLogDir
	}
}
