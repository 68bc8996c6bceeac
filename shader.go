package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/brot/programs"
)

// Shader is a linked GL program whose uniforms are set by name.
type Shader struct {
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32
}

// NewShader compiles and links p. Any failure is reported as
// programs.ErrResourceLoad.
func NewShader(p programs.Program) (*Shader, error) {
	s, err := linkProgram(p)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", programs.ErrResourceLoad, p.Name, err)
	}
	return s, nil
}

func linkProgram(p programs.Program) (*Shader, error) {
	vertexShader, err := compileShader(p.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(p.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	s := &Shader{
		program:          gl.CreateProgram(),
		uniformLocations: make(map[string]int32),
	}
	gl.AttachShader(s.program, vertexShader)
	gl.AttachShader(s.program, fragmentShader)
	gl.BindFragDataLocation(s.program, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(s.program)

	var status int32
	gl.GetProgramiv(s.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(s.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(s.program, l, nil, gl.Str(log))
		gl.DeleteProgram(s.program)
		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	s.vertexAttrib = uint32(gl.GetAttribLocation(s.program, gl.Str("vert\x00")))
	return s, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader failed to compile: %v", log)
	}

	return shader, nil
}

func (s *Shader) location(name string) int32 {
	loc, ok := s.uniformLocations[name]
	if !ok {
		loc = gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
		if loc < 0 {
			log.Printf("uniform %q is not active in the shader", name)
		}
		s.uniformLocations[name] = loc
	}
	return loc
}

// SetUniform sets a uniform of the program. It does not require the
// program to be bound.
func (s *Shader) SetUniform(name string, value interface{}) {
	loc := s.location(name)

	switch v := value.(type) {
	case mgl32.Vec2:
		gl.ProgramUniform2fv(s.program, loc, 1, &v[0])
	case mgl32.Vec3:
		gl.ProgramUniform3fv(s.program, loc, 1, &v[0])
	case float32:
		gl.ProgramUniform1f(s.program, loc, v)
	case int32:
		gl.ProgramUniform1i(s.program, loc, v)
	default:
		log.Printf("unsupported uniform type %T for %q", value, name)
	}
}

func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.program)
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "notification"
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	}

	log.Printf("gl %v(%v): %v; %v", sourceStr, severityStr, typeStr, message)
}
