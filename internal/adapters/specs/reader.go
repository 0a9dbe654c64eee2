package specsadapter

import (
	"context"

	"github.com/restartfu/hostreport/internal/domain"
	"github.com/restartfu/hostreport/internal/observability"
	"github.com/restartfu/hostreport/internal/specs"
)

type Reader struct {
	specs *specs.Reader
}

func NewReader(reader *specs.Reader) *Reader {
	if reader == nil {
		reader = specs.NewReader()
	}
	return &Reader{specs: reader}
}

func (r *Reader) ReadHostInfo(ctx context.Context) (domain.HostInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.HostInfo{}, err
	}
	current, err := r.specs.ReadSpecs()
	if err != nil {
		observability.CaptureFailure("specs", "read_host_info", err)
		return domain.HostInfo{}, err
	}
	return domain.HostInfo{
		CPUModel:      current.CPUModel,
		RAMTotalMB:    current.RAMTotalMB,
		OSDescription: current.OSDescription,
		KernelName:    current.Kernel.Name,
		KernelRelease: current.Kernel.Release,
		Architecture:  current.Kernel.Architecture,
	}, nil
}
