package viewer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultScale  = float32(4)
	IterationStep = int32(10)
	ZoomStep      = float32(0.1)
)

var DefaultCenter = mgl32.Vec2{-0.5, 0}

type Palette int

const (
	PaletteFire Palette = iota
	PaletteIce
	PaletteForest
)

var paletteWeights = map[Palette]mgl32.Vec3{
	PaletteFire:   {3, 2, 1},
	PaletteIce:    {1, 2, 3},
	PaletteForest: {1, 3, 1},
}

// Weights returns the per-channel color weights the shader uses for p.
func (p Palette) Weights() mgl32.Vec3 {
	return paletteWeights[p]
}

func (p Palette) String() string {
	switch p {
	case PaletteFire:
		return "fire"
	case PaletteIce:
		return "ice"
	case PaletteForest:
		return "forest"
	}
	return fmt.Sprintf("Palette(%d)", int(p))
}

// MaxIters is the iteration cap for a view of the given scale,
// floor(1000 * (1/scale)^(1/8)).
func MaxIters(scale float32) int32 {
	return int32(1000 * math.Sqrt(math.Sqrt(math.Sqrt(1/float64(scale)))))
}

type ViewState struct {
	Center   mgl32.Vec2
	Scale    float32
	MaxIters int32
	Palette  Palette
}

func DefaultView() ViewState {
	return ViewState{
		Center:   DefaultCenter,
		Scale:    DefaultScale,
		MaxIters: MaxIters(DefaultScale),
		Palette:  PaletteIce,
	}
}

type DragState struct {
	Active bool
	Last   mgl32.Vec2
}
