package observability

import (
	"io"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the process logger: plain text, no timestamps, since
// its only job is the one line a user reads when the report fails.
func NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		DisableColors:          true,
	})
	return logger
}

// CaptureStdLog sends lines written through the standard log package to
// logger at debug level. The GLFW binding reports platform errors that way
// before the probe turns them into its own error.
func CaptureStdLog(logger *logrus.Logger) {
	log.SetFlags(0)
	log.SetOutput(debugWriter{logger: logger})
}

type debugWriter struct {
	logger *logrus.Logger
}

func (w debugWriter) Write(p []byte) (int, error) {
	w.logger.Debug(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
