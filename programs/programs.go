package programs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// ErrResourceLoad is returned when a shader resource cannot be found or compiled.
var ErrResourceLoad = errors.New("failed to load shader resource")

//go:embed shaders
var shaders embed.FS

//go:embed shaders/default.vert
var defaultVertexShader string

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

func NewProgram(p Program) error {
	for _, existing := range programs {
		if existing.Name == p.Name {
			return fmt.Errorf("program %q already registered", p.Name)
		}
	}
	programs = append(programs, p)
	return nil
}

var programs []Program

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}

// Load returns the program with the given name. Registered programs are
// preferred; otherwise the fragment stage is read from shaders/<name>.frag
// and paired with the default vertex stage.
func Load(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}

	fragment, err := fs.ReadFile(shaders, "shaders/"+name+".frag")
	if err != nil {
		return Program{}, fmt.Errorf("%w %q: %v", ErrResourceLoad, name, err)
	}

	return Program{
		Name:           name,
		VertexShader:   defaultVertexShader,
		FragmentShader: string(fragment),
	}, nil
}
