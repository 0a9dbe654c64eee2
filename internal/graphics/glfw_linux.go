//go:build linux && cgo

package graphics

/*
typedef unsigned int GLenum;
typedef unsigned char GLubyte;
typedef const GLubyte *(*get_string_fn)(GLenum);

static const char *call_get_string(void *fn, GLenum name) {
	return (const char *)((get_string_fn)fn)(name);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type glfwPlatform struct{}

func NewPlatform() Platform {
	return glfwPlatform{}
}

func (glfwPlatform) Init() error {
	return catchGLFW(glfw.Init)
}

func (glfwPlatform) Terminate() {
	_ = catchGLFW(func() error {
		glfw.Terminate()
		return nil
	})
}

func (glfwPlatform) CreateContext(attrs ContextAttributes) (Context, error) {
	var window *glfw.Window
	err := catchGLFW(func() error {
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.Visible, glfw.False)
		glfw.WindowHint(glfw.Focused, glfw.False)
		if attrs.Backend == BackendEGL {
			glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
		} else {
			glfw.WindowHint(glfw.ContextCreationAPI, glfw.NativeContextAPI)
		}
		if attrs.API == APIOpenGLES {
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
			glfw.WindowHint(glfw.ContextVersionMajor, 2)
			glfw.WindowHint(glfw.ContextVersionMinor, 0)
		} else {
			// A profile can only be requested from 3.2 onwards.
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
			glfw.WindowHint(glfw.ContextVersionMajor, 3)
			glfw.WindowHint(glfw.ContextVersionMinor, 2)
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
		}

		var err error
		window, err = glfw.CreateWindow(1, 1, "hostreport", nil, nil)
		return err
	})
	var glfwErr *glfw.Error
	apiUnavailable := errors.As(err, &glfwErr) && glfwErr.Code == glfw.APIUnavailable
	if err := classifyCreate(attrs.Backend, window != nil, apiUnavailable, err); err != nil {
		if window != nil {
			_ = catchGLFW(func() error {
				window.Destroy()
				return nil
			})
		}
		return nil, err
	}
	return &glfwContext{window: window}, nil
}

func (glfwPlatform) RunUntilReady(onReady func()) {
	// Window creation is synchronous in GLFW, so the surface is ready
	// after the first dispatch pass.
	glfw.PollEvents()
	onReady()
}

type glfwContext struct {
	window *glfw.Window
}

func (c *glfwContext) MakeCurrent() error {
	return catchGLFW(func() error {
		c.window.MakeContextCurrent()
		return nil
	})
}

// LoadFunctions resolves glGetString only. An unresolved symbol leaves a
// nil entry, which String reports as not available.
func (c *glfwContext) LoadFunctions() (Functions, error) {
	var getString unsafe.Pointer
	err := catchGLFW(func() error {
		getString = glfw.GetProcAddress("glGetString")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return procFunctions{getString: getString}, nil
}

func (c *glfwContext) Destroy() {
	_ = catchGLFW(func() error {
		glfw.DetachCurrentContext()
		c.window.Destroy()
		return nil
	})
}

type procFunctions struct {
	getString unsafe.Pointer
}

func (f procFunctions) String(name StringName) (string, bool) {
	if f.getString == nil {
		return "", false
	}
	value := C.call_get_string(f.getString, C.GLenum(name))
	if value == nil {
		return "", false
	}
	// C.GoString copies, so the result outlives the context.
	return C.GoString(value), true
}

// catchGLFW turns the panics the GLFW binding raises for unexpected error
// codes back into errors.
func catchGLFW(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if recovered, ok := r.(error); ok {
				err = recovered
				return
			}
			err = fmt.Errorf("glfw: %v", r)
		}
	}()
	return fn()
}
