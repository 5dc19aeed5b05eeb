package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its GL context. Exactly one instance is
// expected per process; every method must be called from the thread that
// created it.
type Window struct {
	win    *glfw.Window
	Width  int
	Height int
}

// NewWindow initializes GLFW, creates the window and makes its GL context
// current. The cursor is captured for mouse look.
func NewWindow(width, height int, title string) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	win.MakeContextCurrent()
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return &Window{win: win, Width: width, Height: height}, nil
}

// OnCursorMoved registers the cursor-position callback.
func (w *Window) OnCursorMoved(fn func(x, y float64)) {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(x, y)
	})
}

// OnScroll registers the scroll-wheel callback. Only the vertical offset is
// forwarded.
func (w *Window) OnScroll(fn func(yOffset float64)) {
	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		fn(yoff)
	})
}

func (w *Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
