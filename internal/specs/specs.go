package specs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	DefaultCPUInfoPath    = "/proc/cpuinfo"
	DefaultMemInfoPath    = "/proc/meminfo"
	DefaultLSBReleasePath = "/etc/lsb-release"
)

// Reader collects host facts from procfs, lsb-release and uname(2).
// Paths and the uname call are fields so tests can substitute them.
type Reader struct {
	CPUInfoPath    string
	MemInfoPath    string
	LSBReleasePath string
	Uname          func(*unix.Utsname) error
}

func NewReader() *Reader {
	return &Reader{
		CPUInfoPath:    DefaultCPUInfoPath,
		MemInfoPath:    DefaultMemInfoPath,
		LSBReleasePath: DefaultLSBReleasePath,
		Uname:          unix.Uname,
	}
}

type Specs struct {
	CPUModel      string
	RAMTotalMB    uint64
	OSDescription string
	Kernel        KernelInfo
}

// ReadSpecs runs every lookup and stops at the first failure.
func (r *Reader) ReadSpecs() (Specs, error) {
	model, err := r.ReadCPUModel()
	if err != nil {
		return Specs{}, fmt.Errorf("cpu model: %w", err)
	}
	ram, err := r.ReadMemoryTotalMB()
	if err != nil {
		return Specs{}, fmt.Errorf("memory total: %w", err)
	}
	description, err := r.ReadOSDescription()
	if err != nil {
		return Specs{}, fmt.Errorf("os description: %w", err)
	}
	kernel, err := r.ReadKernelInfo()
	if err != nil {
		return Specs{}, fmt.Errorf("kernel info: %w", err)
	}

	return Specs{
		CPUModel:      model,
		RAMTotalMB:    ram,
		OSDescription: description,
		Kernel:        kernel,
	}, nil
}
