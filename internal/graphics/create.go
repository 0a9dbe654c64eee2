package graphics

import (
	"errors"
	"fmt"
)

var errNoWindow = errors.New("window creation failed")

// classifyCreate decides what a context creation attempt produced. The
// window binding can report a platform error by returning no window and no
// error, so a missing window is a failure on its own. On EGL, an
// unavailable API or a silent failure means the next backend should be
// tried.
func classifyCreate(backend Backend, created bool, apiUnavailable bool, err error) error {
	if created && err == nil {
		return nil
	}
	if err == nil {
		err = errNoWindow
	}
	if backend == BackendEGL && (apiUnavailable || errors.Is(err, errNoWindow)) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return err
}
