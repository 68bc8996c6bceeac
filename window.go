package main

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/brot/viewer"
)

// RenderWindow owns the GLFW window and its GL context. GLFW delivers
// input through callbacks; they are queued here and handed out by
// PollEvents, once per frame.
type RenderWindow struct {
	*glfw.Window

	vao uint32
	vbo uint32

	events []viewer.Event
}

func NewRenderWindow(width, height int, title string) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.DebugMessageCallback(glDebugMessage, nil)
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	w := &RenderWindow{Window: window}
	w.createQuad()

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	window.SetCloseCallback(w.close)
	window.SetFramebufferSizeCallback(w.resize)
	window.SetKeyCallback(w.key)
	window.SetMouseButtonCallback(w.button)
	window.SetCursorPosCallback(w.cursor)
	window.SetScrollCallback(w.scroll)

	return w, nil
}

// createQuad uploads a triangle strip covering the whole viewport.
func (w *RenderWindow) createQuad() {
	verticies := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)
}

// Bind points the quad's vertex attribute at the shader's vert input.
func (w *RenderWindow) Bind(s *Shader) {
	gl.BindVertexArray(w.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.EnableVertexAttribArray(s.vertexAttrib)
	gl.VertexAttribPointerWithOffset(s.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)
}

// Size returns the drawable size in pixels.
func (w *RenderWindow) Size() (width, height int) {
	return w.GetFramebufferSize()
}

// PollEvents processes pending window system events without blocking and
// returns them in arrival order.
func (w *RenderWindow) PollEvents() []viewer.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// Draw renders one frame with s and presents it.
func (w *RenderWindow) Draw(s *Shader) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.Use()
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	w.SwapBuffers()
}

func (w *RenderWindow) Destroy() {
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteVertexArrays(1, &w.vao)
	w.Window.Destroy()
}

func (w *RenderWindow) push(e viewer.Event) {
	w.events = append(w.events, e)
}

// pixelScale converts window coordinates to framebuffer pixels.
func (w *RenderWindow) pixelScale() (float64, float64) {
	winWidth, winHeight := w.GetSize()
	fbWidth, fbHeight := w.GetFramebufferSize()
	if winWidth == 0 || winHeight == 0 {
		return 1, 1
	}
	return float64(fbWidth) / float64(winWidth), float64(fbHeight) / float64(winHeight)
}

func (w *RenderWindow) cursorPos() (float64, float64) {
	x, y := w.GetCursorPos()
	sx, sy := w.pixelScale()
	return x * sx, y * sy
}

func (w *RenderWindow) close(window *glfw.Window) {
	w.push(viewer.CloseEvent{})
}

func (w *RenderWindow) resize(window *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	w.push(viewer.ResizeEvent{Width: width, Height: height})
}

func (w *RenderWindow) key(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	k := viewer.KeyUnknown
	switch key {
	case glfw.KeyUp:
		k = viewer.KeyUp
	case glfw.KeyDown:
		k = viewer.KeyDown
	case glfw.Key1, glfw.KeyKP1:
		k = viewer.Key1
	case glfw.Key2, glfw.KeyKP2:
		k = viewer.Key2
	case glfw.Key3, glfw.KeyKP3:
		k = viewer.Key3
	}
	w.push(viewer.KeyEvent{Key: k})
}

func (w *RenderWindow) button(window *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := viewer.MouseButtonOther
	switch button {
	case glfw.MouseButtonLeft:
		b = viewer.MouseButtonLeft
	case glfw.MouseButtonRight:
		b = viewer.MouseButtonRight
	case glfw.MouseButtonMiddle:
		b = viewer.MouseButtonMiddle
	}

	x, y := w.cursorPos()
	switch action {
	case glfw.Press:
		w.push(viewer.ButtonPressEvent{Button: b, X: x, Y: y})
	case glfw.Release:
		w.push(viewer.ButtonReleaseEvent{Button: b, X: x, Y: y})
	}
}

func (w *RenderWindow) cursor(window *glfw.Window, xpos, ypos float64) {
	sx, sy := w.pixelScale()
	w.push(viewer.MouseMoveEvent{X: xpos * sx, Y: ypos * sy})
}

func (w *RenderWindow) scroll(window *glfw.Window, xoff, yoff float64) {
	if yoff != 0 {
		w.push(viewer.ScrollEvent{Wheel: viewer.WheelVertical, Delta: yoff})
	}
	if xoff != 0 {
		w.push(viewer.ScrollEvent{Wheel: viewer.WheelHorizontal, Delta: xoff})
	}
}
