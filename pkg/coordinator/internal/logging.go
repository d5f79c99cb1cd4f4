package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFilename = "coordinator.log"

var (
	mu      sync.Mutex
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on the next write. Loggers returned
// earlier switch to the new file as well.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logPath = path
	setupOnce = sync.Once{}
}

// sink forwards every log record to the current output.
type sink struct{}

func (sink) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	setup()
	return output.Write(p)
}

// setup must be called with mu held.
func setup() {
	setupOnce.Do(func() {
		targetPath := logPath
		if targetPath == "" {
			targetPath = filepath.Join("logs", defaultLogFilename)
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			output = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console only.
			output = os.Stdout
			return
		}

		output = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(sink{}, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the router and hosts.
// It defaults to error level so library chatter stays out of application logs.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newJSONLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsValidLevel reports whether rawLevel is one of the names ParseLevel knows.
func IsValidLevel(rawLevel string) bool {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file. Later records go to stdout only.
func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()

	setupOnce.Do(func() {})
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	output = os.Stdout
}
