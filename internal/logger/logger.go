// Copyright 2020 Aleksandr Demakin. All rights reserved.

package logger

import (
	"io"
	"log/slog"
	"sync"
)

type Config struct {
	Out   io.Writer
	Debug bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup replaces the global logger with a text logger writing to cfg.Out.
// A nil writer discards all records.
func Setup(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey { // keep output reproducible.
				return slog.Attr{}
			}
			return a
		},
	}))

	mu.Lock()
	global = l
	mu.Unlock()

	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset turns the global logger back into a discarding one.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
