package graphics

import "errors"

var (
	ErrBackendUnavailable = errors.New("display backend unavailable")
	ErrUnsupported        = errors.New("graphics platform not available in this build")
)

// Backend selects how the display connection and context are negotiated.
type Backend int

const (
	BackendEGL Backend = iota
	BackendNative
)

func (b Backend) String() string {
	switch b {
	case BackendEGL:
		return "egl"
	case BackendNative:
		return "native"
	default:
		return "unknown"
	}
}

// API is the client API requested for the context. Desktop OpenGL is always
// requested with the compatibility profile.
type API int

const (
	APIOpenGL API = iota
	APIOpenGLES
)

func (a API) String() string {
	switch a {
	case APIOpenGL:
		return "opengl"
	case APIOpenGLES:
		return "opengles"
	default:
		return "unknown"
	}
}

type ContextAttributes struct {
	Backend Backend
	API     API
}

// StringName values are the GL enum codes accepted by glGetString.
type StringName uint32

const (
	Vendor   StringName = 0x1F00
	Renderer StringName = 0x1F01
	Version  StringName = 0x1F02
)

// Platform is the windowing layer the probe borrows to get a current
// context. Nothing it creates is ever shown.
type Platform interface {
	Init() error
	Terminate()
	// CreateContext creates a context and its hidden 1x1 surface using the
	// first framebuffer config the platform offers.
	CreateContext(attrs ContextAttributes) (Context, error)
	// RunUntilReady dispatches events until the surface is ready, calls
	// onReady exactly once and returns.
	RunUntilReady(onReady func())
}

type Context interface {
	MakeCurrent() error
	// LoadFunctions resolves the function table through the platform's
	// proc address lookup. The context must be current.
	LoadFunctions() (Functions, error)
	Destroy()
}

type Functions interface {
	// String returns a copy of the driver string; false means the driver
	// returned NULL.
	String(name StringName) (string, bool)
}
