package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Keys the demo queries. The indices double as array offsets in Input.
const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyO
	KeyEscape
	keyCount
)

var keyToGlfw = map[int]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyQ:      glfw.KeyQ,
	KeyE:      glfw.KeyE,
	KeyP:      glfw.KeyP,
	KeyO:      glfw.KeyO,
	KeyEscape: glfw.KeyEscape,
}

// Input is a per-frame keyboard snapshot. Pressed reflects the current key
// state; JustPressed and JustReleased are edge flags valid for one frame, so
// a held key triggers once, on the frame it went down.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool
}

// Poll pumps GLFW events (which also fires the cursor/scroll callbacks) and
// refreshes the snapshot from the window's key state.
func (in *Input) Poll(w *Window) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		action := w.win.GetKey(glfwKey)

		in.JustPressed[key] = false
		in.JustReleased[key] = false

		if action == glfw.Press {
			if !in.Pressed[key] {
				in.JustPressed[key] = true
			}
			in.Pressed[key] = true
		} else if action == glfw.Release {
			if in.Pressed[key] {
				in.JustReleased[key] = true
			}
			in.Pressed[key] = false
		}
	}
}

// Set updates one key's state the same way Poll does. Used by code that
// drives Input without a window.
func (in *Input) Set(key int, down bool) {
	in.JustPressed[key] = false
	in.JustReleased[key] = false

	if down {
		if !in.Pressed[key] {
			in.JustPressed[key] = true
		}
		in.Pressed[key] = true
	} else {
		if in.Pressed[key] {
			in.JustReleased[key] = true
		}
		in.Pressed[key] = false
	}
}
