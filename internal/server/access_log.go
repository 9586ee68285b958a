package server

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// accessLogWriter forwards Fiber access log lines to logrus at info level.
type accessLogWriter struct {
	logger *logrus.Logger
}

func (w accessLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
