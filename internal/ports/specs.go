package ports

import (
	"context"

	"github.com/restartfu/hostreport/internal/domain"
)

type HostReader interface {
	ReadHostInfo(ctx context.Context) (domain.HostInfo, error)
}

type GraphicsProber interface {
	ProbeGraphics(ctx context.Context) (domain.GraphicsInfo, error)
}
