package programs

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with the fragment shader.
const (
	UniformResolution = "res"
	UniformPos        = "pos"
	UniformScale      = "scale"
	UniformMaxIters   = "max_iters"
	UniformPalette    = "palette"
)

type Uniforms struct {
	Resolution mgl32.Vec2 `uniform:"res"`
	Pos        mgl32.Vec2 `uniform:"pos"`
	Scale      float32    `uniform:"scale"`
	MaxIters   int32      `uniform:"max_iters"`
	Palette    mgl32.Vec3 `uniform:"palette"`
}

// Each calls fn with the shader name and value of every tagged field, in
// declaration order.
func (u Uniforms) Each(fn func(name string, value interface{})) {
	v := reflect.ValueOf(u)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		if name == "" {
			continue
		}
		fn(name, v.Field(i).Interface())
	}
}
