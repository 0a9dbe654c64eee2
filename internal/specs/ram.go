package specs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	memTotalKey = "MemTotal"
	kbPerMB     = 1024
)

// ReadMemoryTotalMB returns MemTotal in whole megabytes, rounded down.
// Only the kB unit the kernel emits is understood; anything else is an
// error rather than a guess.
func (r *Reader) ReadMemoryTotalMB() (uint64, error) {
	file, err := os.Open(r.MemInfoPath)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to open %s: %w", ErrUnreadable, r.MemInfoPath, err)
	}
	defer file.Close()

	value, ok, err := scanKeyedValue(file, ':', memTotalKey)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", r.MemInfoPath, err)
	}
	if !ok {
		return 0, fmt.Errorf("%s %w in %s", memTotalKey, ErrNotFound, r.MemInfoPath)
	}
	return parseMemTotal(value)
}

func parseMemTotal(value string) (uint64, error) {
	amount, unit, ok := strings.Cut(value, " ")
	if !ok {
		return 0, fmt.Errorf("%s value %q is %w", memTotalKey, value, ErrUnparseable)
	}
	kb, err := strconv.ParseUint(amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s amount %q is %w: %v", memTotalKey, amount, ErrUnparseable, err)
	}
	switch strings.TrimSpace(unit) {
	case "kB":
		return kb / kbPerMB, nil
	default:
		return 0, fmt.Errorf("%s: %w %q", memTotalKey, ErrUnsupportedUnit, unit)
	}
}
