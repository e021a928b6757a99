// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/logbuffer/src/cli"
	"github.com/H0llyW00dzZ/logbuffer/src/logger"
	verpkg "github.com/H0llyW00dzZ/logbuffer/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			// Cobra already printed the error.
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Println("Interrupted, flushing buffered entries...")
		// record stops waiting for input on cancellation and flushes what it read.
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}
