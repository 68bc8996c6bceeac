// Package viewer holds the host side of the fractal viewer: the view
// parameters, the rules that turn input events into parameter changes,
// and the frame pacer. It has no graphics dependencies; parameter changes
// are pushed through a Shader.
package viewer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/brot/programs"
)

// Shader receives uniform updates. Values are mgl32.Vec2, mgl32.Vec3,
// float32 or int32.
type Shader interface {
	SetUniform(name string, value interface{})
}

type Viewer struct {
	shader     Shader
	view       ViewState
	resolution mgl32.Vec2
	drag       DragState
	running    bool
}

// New returns a running Viewer with the default view and seeds every
// uniform of shader.
func New(shader Shader, width, height int) *Viewer {
	v := &Viewer{
		shader:     shader,
		view:       DefaultView(),
		resolution: mgl32.Vec2{float32(width), float32(height)},
		running:    true,
	}

	v.Uniforms().Each(shader.SetUniform)
	return v
}

func (v *Viewer) Running() bool          { return v.running }
func (v *Viewer) View() ViewState        { return v.view }
func (v *Viewer) Resolution() mgl32.Vec2 { return v.resolution }
func (v *Viewer) Drag() DragState        { return v.drag }

func (v *Viewer) Uniforms() programs.Uniforms {
	return programs.Uniforms{
		Resolution: v.resolution,
		Pos:        v.view.Center,
		Scale:      v.view.Scale,
		MaxIters:   v.view.MaxIters,
		Palette:    v.view.Palette.Weights(),
	}
}

// Dispatch applies a single event.
func (v *Viewer) Dispatch(e Event) {
	switch e := e.(type) {
	case CloseEvent:
		v.running = false

	case ResizeEvent:
		v.resolution = mgl32.Vec2{float32(e.Width), float32(e.Height)}
		v.shader.SetUniform(programs.UniformResolution, v.resolution)

	case KeyEvent:
		v.key(e.Key)

	case ButtonPressEvent:
		if e.Button == MouseButtonLeft {
			v.drag.Active = true
			v.drag.Last = mgl32.Vec2{float32(e.X), float32(e.Y)}
		}

	case ButtonReleaseEvent:
		v.drag.Active = false

	case MouseMoveEvent:
		if !v.drag.Active {
			return
		}
		pos := mgl32.Vec2{float32(e.X), float32(e.Y)}
		v.view.Center = v.view.Center.Add(v.drag.Last.Sub(pos).Mul(v.view.Scale / v.resolution.Y()))
		v.drag.Last = pos
		v.shader.SetUniform(programs.UniformPos, v.view.Center)

	case ScrollEvent:
		if e.Wheel != WheelVertical {
			return
		}
		v.view.Scale = v.view.Scale * (1 - ZoomStep*float32(e.Delta))
		v.shader.SetUniform(programs.UniformScale, v.view.Scale)

		v.view.MaxIters = MaxIters(v.view.Scale)
		v.shader.SetUniform(programs.UniformMaxIters, v.view.MaxIters)
	}
}

func (v *Viewer) key(k Key) {
	switch k {
	case KeyUp:
		v.view.MaxIters += IterationStep
		v.shader.SetUniform(programs.UniformMaxIters, v.view.MaxIters)
	case KeyDown:
		v.view.MaxIters -= IterationStep
		v.shader.SetUniform(programs.UniformMaxIters, v.view.MaxIters)
	case Key1:
		v.setPalette(PaletteIce)
	case Key2:
		v.setPalette(PaletteFire)
	case Key3:
		v.setPalette(PaletteForest)
	}
}

func (v *Viewer) setPalette(p Palette) {
	v.view.Palette = p
	v.shader.SetUniform(programs.UniformPalette, p.Weights())
}
