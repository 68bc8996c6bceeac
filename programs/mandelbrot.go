package programs

import (
	_ "embed"
)

// MandelbrotName is the resource name the viewer loads at startup.
const MandelbrotName = "mset"

//go:embed shaders/mset.frag
var mandelbrotFragment string

func init() {
	NewProgram(Program{
		Name:           MandelbrotName,
		VertexShader:   defaultVertexShader,
		FragmentShader: mandelbrotFragment,
	})
}
