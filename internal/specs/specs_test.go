package specs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

const sampleCPUInfo = "processor\t: 0\n" +
	"vendor_id\t: GenuineIntel\n" +
	"model name\t:   Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz  \n" +
	"\n" +
	"processor\t: 1\n" +
	"model name\t: Some Other CPU\n"

const sampleMemInfo = "MemTotal:       16384000 kB\n" +
	"MemFree:         1024000 kB\n" +
	"MemAvailable:    8192000 kB\n"

const sampleLSBRelease = "DISTRIB_ID=Ubuntu\n" +
	"DISTRIB_RELEASE=22.04\n" +
	"DISTRIB_CODENAME=jammy\n" +
	"DISTRIB_DESCRIPTION=\"Ubuntu 22.04.3 LTS\"\n"

// writeSyntheticFile writes content under root and returns the full path.
func writeSyntheticFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fakeUname(sysname, release, machine string) func(*unix.Utsname) error {
	return func(u *unix.Utsname) error {
		copy(u.Sysname[:], sysname)
		copy(u.Release[:], release)
		copy(u.Machine[:], machine)
		return nil
	}
}

func newSyntheticReader(t *testing.T, cpuinfo, meminfo, lsb string) *Reader {
	t.Helper()
	root := t.TempDir()
	return &Reader{
		CPUInfoPath:    writeSyntheticFile(t, root, "cpuinfo", cpuinfo),
		MemInfoPath:    writeSyntheticFile(t, root, "meminfo", meminfo),
		LSBReleasePath: writeSyntheticFile(t, root, "lsb-release", lsb),
		Uname:          fakeUname("Linux", "6.5.0-14-generic", "x86_64"),
	}
}

func TestReadCPUModelFirstOccurrence(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)

	model, err := r.ReadCPUModel()
	require.NoError(t, err)
	assert.Equal(t, "Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz", model)
}

func TestReadCPUModelMissing(t *testing.T) {
	r := newSyntheticReader(t, "processor\t: 0\nvendor_id\t: ARM\n", sampleMemInfo, sampleLSBRelease)

	_, err := r.ReadCPUModel()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadCPUModelUnreadable(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)
	r.CPUInfoPath = filepath.Join(t.TempDir(), "missing")

	_, err := r.ReadCPUModel()
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadMemoryTotalMB(t *testing.T) {
	tests := []struct {
		name    string
		meminfo string
		want    uint64
		wantErr error
	}{
		{name: "kilobytes", meminfo: sampleMemInfo, want: 16000},
		{name: "rounds down", meminfo: "MemTotal: 2047 kB\n", want: 1},
		{name: "below one megabyte", meminfo: "MemTotal: 1023 kB\n", want: 0},
		{name: "other unit", meminfo: "MemTotal: 16000 MB\n", wantErr: ErrUnsupportedUnit},
		{name: "no unit", meminfo: "MemTotal: 16384000\n", wantErr: ErrUnparseable},
		{name: "fractional amount", meminfo: "MemTotal: 1.5 kB\n", wantErr: ErrUnparseable},
		{name: "missing key", meminfo: "MemFree: 1024 kB\n", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSyntheticReader(t, sampleCPUInfo, tt.meminfo, sampleLSBRelease)

			got, err := r.ReadMemoryTotalMB()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadOSDescriptionKeepsQuotes(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)

	description, err := r.ReadOSDescription()
	require.NoError(t, err)
	assert.Equal(t, `"Ubuntu 22.04.3 LTS"`, description)
}

func TestReadOSDescriptionMissingFile(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)
	r.LSBReleasePath = filepath.Join(t.TempDir(), "lsb-release")

	_, err := r.ReadOSDescription()
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestReadOSDescriptionMissingKey(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, "DISTRIB_ID=Arch\n")

	_, err := r.ReadOSDescription()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadKernelInfo(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)

	kernel, err := r.ReadKernelInfo()
	require.NoError(t, err)
	assert.Equal(t, KernelInfo{
		Name:         "Linux",
		Release:      "6.5.0-14-generic",
		Machine:      "x86_64",
		Architecture: "64 bit",
	}, kernel)
}

func TestReadKernelInfoInvalidEncoding(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)
	r.Uname = fakeUname("Linux", "6.5.0\xff\xfe", "x86_64")

	_, err := r.ReadKernelInfo()
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestReadKernelInfoSyscallFailure(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)
	r.Uname = func(*unix.Utsname) error { return unix.EFAULT }

	_, err := r.ReadKernelInfo()
	assert.ErrorIs(t, err, unix.EFAULT)
}

func TestArchitectureLabel(t *testing.T) {
	assert.Equal(t, "64 bit", ArchitectureLabel("x86_64"))
	assert.Equal(t, "aarch64", ArchitectureLabel("aarch64"))
	assert.Equal(t, "i686", ArchitectureLabel("i686"))
}

func TestReadSpecs(t *testing.T) {
	r := newSyntheticReader(t, sampleCPUInfo, sampleMemInfo, sampleLSBRelease)

	specs, err := r.ReadSpecs()
	require.NoError(t, err)
	assert.Equal(t, "Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz", specs.CPUModel)
	assert.Equal(t, uint64(16000), specs.RAMTotalMB)
	assert.Equal(t, `"Ubuntu 22.04.3 LTS"`, specs.OSDescription)
	assert.Equal(t, "Linux", specs.Kernel.Name)
}

func TestReadSpecsFirstFailureWins(t *testing.T) {
	r := newSyntheticReader(t, "processor\t: 0\n", "MemTotal: 1 MB\n", sampleLSBRelease)
	unameCalled := false
	r.Uname = func(*unix.Utsname) error {
		unameCalled = true
		return nil
	}

	_, err := r.ReadSpecs()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrUnsupportedUnit))
	assert.False(t, unameCalled)
}
