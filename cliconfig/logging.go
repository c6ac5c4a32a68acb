package cliconfig

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging builds the dual-sink (console + rotating file) logger
// cmd/anytimectl uses for per-row progress and the final snapshot line.
// verbose raises the level to Debug; logDir defaults to "./logs" under
// the current working directory when empty.
func InitLogging(verbose bool, logDir string) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339Nano,
		NoColor:    !isTerminal,
	}

	if logDir == "" {
		logDir = "logs"
	}
	_ = os.MkdirAll(logDir, 0o755)

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "anytimectl.log"),
		MaxSize:    16, // megabytes
		MaxBackups: 8,
		MaxAge:     90, // days
		Compress:   true,
	}

	multi := zerolog.MultiLevelWriter(io.Writer(consoleWriter), fileWriter)
	return zerolog.New(multi).Level(level).With().Timestamp().Logger()
}
