// Package logger is the process-wide log sink. Output goes to a rotating
// file so the alt-screen TUI is never scribbled on.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/surprise/internal/constants"
)

// Logger is nil until Init succeeds. The helpers below drop messages until then.
var Logger *log.Logger

var file *lumberjack.Logger

type Config struct {
	Debug     bool
	ConfigDir string
	// Interactive is set when a full-screen TUI owns the terminal; stderr is
	// never written to in that case, even in debug mode.
	Interactive bool
}

// Init opens <ConfigDir>/logs/surprise.log and installs the global logger.
// Debug lowers the level to debug and, for non-interactive commands, mirrors
// output to stderr.
func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if file != nil {
		_ = file.Close()
	}
	file = &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    2, // MB
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   true,
	}

	out := io.Writer(file)
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		if !cfg.Interactive {
			out = io.MultiWriter(os.Stderr, file)
		}
	}

	Logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
	return nil
}

// Path is the active log file, or "" before Init.
func Path() string {
	if file == nil {
		return ""
	}
	return file.Filename
}

// Close flushes and releases the log file. Later messages are dropped.
func Close() error {
	Logger = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
