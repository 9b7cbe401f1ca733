// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the console output of the program. Printf writes
// plain console text, Logger carries structured records.
package conlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	out    io.Writer = os.Stdout
	logger           = slog.Default()
)

// SetOutput redirects Printf.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetLogger replaces the logger and makes it the slog default so library
// packages logging through slog end up in the same place.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	slog.SetDefault(l)
}

func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Init sets up a text logger on w. verbose enables debug records.
func Init(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func Printf(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, v...)
}
