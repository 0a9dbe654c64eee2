package specs

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const cpuModelKey = "model name"

// ReadCPUModel returns the first "model name" value in cpuinfo.
func (r *Reader) ReadCPUModel() (string, error) {
	file, err := os.Open(r.CPUInfoPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open %s: %w", ErrUnreadable, r.CPUInfoPath, err)
	}
	defer file.Close()

	model, ok, err := scanKeyedValue(file, ':', cpuModelKey)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", r.CPUInfoPath, err)
	}
	if !ok {
		return "", fmt.Errorf("CPU model name %w in %s", ErrNotFound, r.CPUInfoPath)
	}
	return model, nil
}

// scanKeyedValue returns the trimmed value of the first line whose key,
// left of sep, trims to key.
func scanKeyedValue(file *os.File, sep byte, key string) (string, bool, error) {
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), string(sep), 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == key {
			return strings.TrimSpace(parts[1]), true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}
