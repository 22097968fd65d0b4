package logger

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// New creates the process logger. An unknown level falls back to info.
func New(level string, jsonFormat bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.DateTime,
			FullTimestamp:   true,
		})
	}
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("invalid_level", level).Warn("unknown log level, using info")
		return l
	}
	l.SetLevel(parsed)
	return l
}
