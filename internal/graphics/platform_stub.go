//go:build !linux || !cgo

package graphics

type unsupportedPlatform struct{}

// NewPlatform returns a platform whose Init always fails; the probe needs
// cgo and a Linux display stack.
func NewPlatform() Platform {
	return unsupportedPlatform{}
}

func (unsupportedPlatform) Init() error {
	return ErrUnsupported
}

func (unsupportedPlatform) Terminate() {}

func (unsupportedPlatform) CreateContext(ContextAttributes) (Context, error) {
	return nil, ErrUnsupported
}

func (unsupportedPlatform) RunUntilReady(func()) {}
