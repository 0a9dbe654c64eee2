package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	graphicsadapter "github.com/restartfu/hostreport/internal/adapters/graphics"
	specsadapter "github.com/restartfu/hostreport/internal/adapters/specs"
	"github.com/restartfu/hostreport/internal/app"
	"github.com/restartfu/hostreport/internal/observability"
	"github.com/restartfu/hostreport/internal/specs"
)

func main() {
	logger := observability.NewLogger(os.Stderr)
	observability.CaptureStdLog(logger)
	flushSentry, err := observability.InitSentry()
	if err != nil {
		logger.Warnf("sentry init: %v", err)
	}

	service := app.NewService(
		specsadapter.NewReader(specs.NewReader()),
		graphicsadapter.NewProber(nil),
	)
	code := run(context.Background(), service, os.Stdout, logger)
	flushSentry()
	os.Exit(code)
}

type reporter interface {
	Report(ctx context.Context) (string, error)
}

// run prints the report and returns the exit status. On failure stdout is
// left untouched.
func run(ctx context.Context, service reporter, stdout io.Writer, logger logrus.FieldLogger) int {
	text, err := service.Report(ctx)
	if err != nil {
		logger.WithError(err).Error("could not collect system info")
		return 1
	}
	if _, err := fmt.Fprint(stdout, text); err != nil {
		logger.WithError(err).Error("write report")
		return 1
	}
	return 0
}
