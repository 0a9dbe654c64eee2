package domain

type HostInfo struct {
	CPUModel      string
	RAMTotalMB    uint64
	OSDescription string
	KernelName    string
	KernelRelease string
	Architecture  string
}

type GraphicsInfo struct {
	Driver        string
	DriverVersion string
}
