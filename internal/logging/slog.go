package logging

import (
	"log/slog"

	sloglogrus "github.com/samber/slog-logrus/v2"
	"github.com/sirupsen/logrus"
)

// NewSlogHandler routes slog records into logger, at logger's level, so
// libraries that log through slog share the service's log stream.
func NewSlogHandler(logger *logrus.Logger) slog.Handler {
	return sloglogrus.Option{
		Level:  SlogLevel(logger.GetLevel()),
		Logger: logger,
	}.NewLogrusHandler()
}

// SlogLevel maps a logrus level to the closest slog level.
func SlogLevel(level logrus.Level) slog.Level {
	switch {
	case level >= logrus.DebugLevel:
		return slog.LevelDebug
	case level == logrus.InfoLevel:
		return slog.LevelInfo
	case level == logrus.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
