package graphics

import (
	"errors"
	"fmt"
)

var ErrDriverInfo = errors.New("could not determine driver info")

var (
	backendOrder = []Backend{BackendEGL, BackendNative}
	apiOrder     = []API{APIOpenGL, APIOpenGLES}
)

type Info struct {
	Driver        string
	DriverVersion string
}

type Prober struct {
	platform Platform
}

func NewProber(platform Platform) *Prober {
	return &Prober{platform: platform}
}

// Probe creates a throwaway context, reads the driver identity strings and
// releases everything before returning.
func (p *Prober) Probe() (Info, error) {
	if err := p.platform.Init(); err != nil {
		return Info{}, fmt.Errorf("%w: init: %w", ErrDriverInfo, err)
	}
	defer p.platform.Terminate()

	glctx, err := p.createContext()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrDriverInfo, err)
	}
	defer glctx.Destroy()

	var result capture
	p.platform.RunUntilReady(func() {
		result = queryDriverStrings(glctx)
	})

	if result.err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrDriverInfo, result.err)
	}
	if !result.hasDriver || !result.hasVersion {
		return Info{}, ErrDriverInfo
	}
	return Info{
		Driver:        result.driver,
		DriverVersion: result.version,
	}, nil
}

// createContext walks the backends in preference order. A backend is only
// skipped when the platform says it is unavailable; any other pair of
// failures ends the search.
func (p *Prober) createContext() (Context, error) {
	var lastErr error
	for _, backend := range backendOrder {
		glctx, err := p.createContextOn(backend)
		if err == nil {
			return glctx, nil
		}
		if !errors.Is(err, ErrBackendUnavailable) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (p *Prober) createContextOn(backend Backend) (Context, error) {
	var errs []error
	for _, api := range apiOrder {
		glctx, err := p.platform.CreateContext(ContextAttributes{Backend: backend, API: api})
		if err == nil {
			return glctx, nil
		}
		errs = append(errs, fmt.Errorf("create %s context on %s: %w", api, backend, err))
	}
	return nil, errors.Join(errs...)
}

type capture struct {
	driver     string
	version    string
	hasDriver  bool
	hasVersion bool
	err        error
}

func queryDriverStrings(glctx Context) capture {
	if err := glctx.MakeCurrent(); err != nil {
		return capture{err: fmt.Errorf("make current: %w", err)}
	}
	functions, err := glctx.LoadFunctions()
	if err != nil {
		return capture{err: fmt.Errorf("load functions: %w", err)}
	}

	var result capture
	if vendor, ok := functions.String(Vendor); ok {
		if renderer, ok := functions.String(Renderer); ok {
			result.driver = vendor + " " + renderer
			result.hasDriver = true
		}
	}
	if version, ok := functions.String(Version); ok {
		result.version = version
		result.hasVersion = true
	}
	return result
}
