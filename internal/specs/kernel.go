package specs

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

type KernelInfo struct {
	Name         string
	Release      string
	Machine      string
	Architecture string
}

// ReadKernelInfo queries uname(2) for the system name, release and machine.
func (r *Reader) ReadKernelInfo() (KernelInfo, error) {
	var utsname unix.Utsname
	if err := r.Uname(&utsname); err != nil {
		return KernelInfo{}, fmt.Errorf("uname: %w", err)
	}

	name, err := decodeUTSField("sysname", utsname.Sysname[:])
	if err != nil {
		return KernelInfo{}, err
	}
	release, err := decodeUTSField("release", utsname.Release[:])
	if err != nil {
		return KernelInfo{}, err
	}
	machine, err := decodeUTSField("machine", utsname.Machine[:])
	if err != nil {
		return KernelInfo{}, err
	}

	return KernelInfo{
		Name:         name,
		Release:      release,
		Machine:      machine,
		Architecture: ArchitectureLabel(machine),
	}, nil
}

// ArchitectureLabel maps a uname machine identifier to its display label.
func ArchitectureLabel(machine string) string {
	if machine == "x86_64" {
		return "64 bit"
	}
	return machine
}

func decodeUTSField(field string, raw []byte) (string, error) {
	value := unix.ByteSliceToString(raw)
	if !utf8.ValidString(value) {
		return "", fmt.Errorf("uname %s: %w", field, ErrEncoding)
	}
	return value, nil
}
