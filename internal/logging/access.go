package logging

import (
	"io"
	"os"
	"time"

	"sentinel-backend/internal/shared"

	"github.com/sirupsen/logrus"
)

// AccessLogger writes one plain line per request:
//
//	2024-05-01T12:00:00.000Z - GET /health
//
// The line format is fixed and does not depend on the application log format.
type AccessLogger struct {
	logger *logrus.Logger
}

// NewAccessLogger creates an access logger writing to out (stdout if nil).
func NewAccessLogger(out io.Writer) *AccessLogger {
	if out == nil {
		out = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(accessFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return &AccessLogger{logger: logger}
}

// Log records a request received at the given time.
func (a *AccessLogger) Log(receivedAt time.Time, method, url string) {
	a.logger.WithTime(receivedAt).WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	}).Info("request")
}

type accessFormatter struct{}

func (accessFormatter) Format(e *logrus.Entry) ([]byte, error) {
	method, _ := e.Data["method"].(string)
	url, _ := e.Data["url"].(string)

	line := make([]byte, 0, 64+len(url))
	line = append(line, shared.FormatTimestamp(e.Time)...)
	line = append(line, " - "...)
	line = append(line, method...)
	line = append(line, ' ')
	line = append(line, url...)
	line = append(line, '\n')
	return line, nil
}
