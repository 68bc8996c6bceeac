package programs

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLoadMandelbrot(t *testing.T) {
	p, err := Load(MandelbrotName)
	if err != nil {
		t.Fatalf("Load(%q): %v", MandelbrotName, err)
	}
	if p.Name != MandelbrotName {
		t.Errorf("name = %q", p.Name)
	}
	if p.VertexShader == "" || p.FragmentShader == "" {
		t.Error("empty shader source")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("does-not-exist")
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("err = %v, want ErrResourceLoad", err)
	}
}

func TestRegistry(t *testing.T) {
	if NumPrograms() == 0 {
		t.Fatal("no programs registered")
	}
	if got := GetProgram(0).Name; got != MandelbrotName {
		t.Errorf("GetProgram(0).Name = %q", got)
	}
	if err := NewProgram(Program{Name: MandelbrotName}); err == nil {
		t.Error("duplicate registration succeeded")
	}
}

func TestShaderDeclaresUniforms(t *testing.T) {
	p, err := Load(MandelbrotName)
	if err != nil {
		t.Fatal(err)
	}

	decls := map[string]string{
		UniformResolution: "uniform vec2 res;",
		UniformPos:        "uniform vec2 pos;",
		UniformScale:      "uniform float scale;",
		UniformMaxIters:   "uniform int max_iters;",
		UniformPalette:    "uniform vec3 palette;",
	}
	for name, decl := range decls {
		if !strings.Contains(p.FragmentShader, decl) {
			t.Errorf("fragment shader does not declare %q as %q", name, decl)
		}
	}
	if !strings.Contains(p.VertexShader, "in vec2 vert;") {
		t.Error("vertex shader has no vert attribute")
	}
}

func TestUniformsEach(t *testing.T) {
	u := Uniforms{
		Resolution: mgl32.Vec2{800, 600},
		Pos:        mgl32.Vec2{-0.5, 0},
		Scale:      4,
		MaxIters:   840,
		Palette:    mgl32.Vec3{1, 2, 3},
	}

	var names []string
	values := map[string]interface{}{}
	u.Each(func(name string, value interface{}) {
		names = append(names, name)
		values[name] = value
	})

	want := []string{UniformResolution, UniformPos, UniformScale, UniformMaxIters, UniformPalette}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if values[UniformScale] != float32(4) {
		t.Errorf("scale = %v", values[UniformScale])
	}
	if values[UniformMaxIters] != int32(840) {
		t.Errorf("max_iters = %v", values[UniformMaxIters])
	}
	if values[UniformPalette] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("palette = %v", values[UniformPalette])
	}
}
