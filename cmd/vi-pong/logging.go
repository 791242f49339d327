package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

const (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = 10 * 1024 * 1024
)

var renameFile = os.Rename

// setupLogging points the default slog logger at logs/vi-pong.log when debug
// is set and discards everything otherwise; the terminal belongs to the game.
// The returned file is nil when logging is disabled or could not be opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	// An oversized log that cannot be rotated is truncated instead
	logPath := filepath.Join(logDir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, "vi-pong-"+time.Now().Format("20060102-150405")+".log")
		if rotateErr = renameFile(logPath, rotated); rotateErr != nil {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.StampMilli,
		NoColor:    true,
	})))
	if rotateErr != nil {
		slog.Warn("log rotation failed, truncated", "err", rotateErr)
	}
	return f
}
