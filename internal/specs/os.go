package specs

import (
	"fmt"
	"os"
)

const osDescriptionKey = "DISTRIB_DESCRIPTION"

// ReadOSDescription returns DISTRIB_DESCRIPTION from lsb-release as written,
// quotes included. Distributions that only ship os-release are not covered.
func (r *Reader) ReadOSDescription() (string, error) {
	file, err := os.Open(r.LSBReleasePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open %s: %w", ErrUnreadable, r.LSBReleasePath, err)
	}
	defer file.Close()

	description, ok, err := scanKeyedValue(file, '=', osDescriptionKey)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", r.LSBReleasePath, err)
	}
	if !ok {
		return "", fmt.Errorf("%s %w in %s", osDescriptionKey, ErrNotFound, r.LSBReleasePath)
	}
	return description, nil
}
