package graphicsadapter

import (
	"context"

	"github.com/restartfu/hostreport/internal/domain"
	"github.com/restartfu/hostreport/internal/graphics"
	"github.com/restartfu/hostreport/internal/observability"
)

type Prober struct {
	prober *graphics.Prober
}

func NewProber(platform graphics.Platform) *Prober {
	if platform == nil {
		platform = graphics.NewPlatform()
	}
	return &Prober{prober: graphics.NewProber(platform)}
}

func (p *Prober) ProbeGraphics(ctx context.Context) (domain.GraphicsInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.GraphicsInfo{}, err
	}
	info, err := p.prober.Probe()
	if err != nil {
		observability.CaptureFailure("graphics", "probe_driver", err)
		return domain.GraphicsInfo{}, err
	}
	return domain.GraphicsInfo{
		Driver:        info.Driver,
		DriverVersion: info.DriverVersion,
	}, nil
}
