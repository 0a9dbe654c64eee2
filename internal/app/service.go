package app

import (
	"context"
	"fmt"

	"github.com/restartfu/hostreport/internal/ports"
	"github.com/restartfu/hostreport/internal/report"
)

type Service struct {
	hostReader     ports.HostReader
	graphicsProber ports.GraphicsProber
}

func NewService(hostReader ports.HostReader, graphicsProber ports.GraphicsProber) *Service {
	return &Service{
		hostReader:     hostReader,
		graphicsProber: graphicsProber,
	}
}

// Report collects host facts, then driver strings, and renders them.
// Nothing is returned alongside an error; there is no partial report.
func (s *Service) Report(ctx context.Context) (string, error) {
	host, err := s.hostReader.ReadHostInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}
	graphics, err := s.graphicsProber.ProbeGraphics(ctx)
	if err != nil {
		return "", fmt.Errorf("graphics: %w", err)
	}
	return report.Format(host, graphics), nil
}
