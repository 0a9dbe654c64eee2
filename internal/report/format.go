package report

import (
	"fmt"

	"github.com/restartfu/hostreport/internal/domain"
)

const reportTemplate = `System Info:


Processor Information:
    CPU Brand:  %s

Operating System Version:
    %s (%s)
    Kernel Name:  %s
    Kernel Version:  %s

Video Card:
    Driver:  %s
    Driver Version:  %s



Memory:
    RAM:  %d MB

`

// Format renders the host and graphics facts into the fixed report layout.
func Format(host domain.HostInfo, graphics domain.GraphicsInfo) string {
	return fmt.Sprintf(reportTemplate,
		host.CPUModel,
		host.OSDescription,
		host.Architecture,
		host.KernelName,
		host.KernelRelease,
		graphics.Driver,
		graphics.DriverVersion,
		host.RAMTotalMB,
	)
}
