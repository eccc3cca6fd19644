package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*logrus.Logger
	fileLogger *logrus.Logger // nil unless a log file is configured
}

var defaultLogger *Logger

func init() {
	defaultLogger = &Logger{Logger: newConsole(os.Stderr, logrus.WarnLevel)}
}

// stdout carries command output, so the console logger writes to stderr.
func newConsole(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}

// Setup replaces the default logger. An empty file disables file logging.
func Setup(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	l := &Logger{Logger: newConsole(os.Stderr, lvl)}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		fl := logrus.New()
		fl.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint:     false,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		fl.SetLevel(logrus.DebugLevel)
		fl.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
		l.fileLogger = fl
	}
	defaultLogger = l
	return nil
}

// SetOutput redirects console logging, used by tests.
func SetOutput(w io.Writer) {
	defaultLogger.Logger.SetOutput(w)
}

func Infof(format string, args ...any) {
	defaultLogger.Logger.Infof(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Infof(format, args...)
	}
}

func Warnf(format string, args ...any) {
	defaultLogger.Logger.Warnf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Warnf(format, args...)
	}
}

func Errorf(format string, args ...any) {
	defaultLogger.Logger.Errorf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Errorf(format, args...)
	}
}

func Debugf(format string, args ...any) {
	defaultLogger.Logger.Debugf(format, args...)
	if defaultLogger.fileLogger != nil {
		defaultLogger.fileLogger.Debugf(format, args...)
	}
}
