// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is returned by GetExecutableName when os.Args carries no program name.
const FallbackName = "logbuffer"

// GetExecutableName returns the executable name without extension.
// It takes the last path component of os.Args[0], accepting both '/' and '\'
// as separators so Windows-style paths resolve on Unix too, and strips a
// trailing ".exe".
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := filepath.Base(os.Args[0])

	// filepath.Base only knows the host separator.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return FallbackName
	}
	return name
}
