package engine

import (
	"errors"
	"os"
)

// Program is a linked shader program with its resolved uniform locations
type Program struct {
	Handle   Handle
	Uniforms map[string]int32
}

// LoadProgram reads vertex and fragment shader sources from disk and builds a Program.
func LoadProgram(b Backend, vertexPath, fragmentPath string, uniforms []string) (*Program, error) {
	vdata, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, Unreadable(vertexPath, err)
	}

	fdata, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, Unreadable(fragmentPath, err)
	}

	p, err := newProgram(b, string(vdata), string(fdata), uniforms)
	if err != nil {
		var se *ShaderError
		if errors.As(err, &se) {
			if se.Stage == VertexStage {
				se.Path = vertexPath
			} else {
				se.Path = fragmentPath
			}
		}
		return nil, err
	}
	return p, nil
}

// newProgram compiles and links vertex and fragment sources and resolves
// the named uniforms. Unknown uniforms resolve to -1.
func newProgram(b Backend, vertex, fragment string, uniforms []string) (*Program, error) {
	// vertex shader
	vshader, err := b.CompileShader(VertexStage, vertex)
	if err != nil {
		return nil, err
	}
	defer b.Delete(vshader)

	// fragment shader
	fshader, err := b.CompileShader(FragmentStage, fragment)
	if err != nil {
		return nil, err
	}
	defer b.Delete(fshader)

	// program
	prg, err := b.LinkProgram(vshader, fshader)
	if err != nil {
		return nil, err
	}

	// locations
	p := &Program{
		Handle:   prg,
		Uniforms: make(map[string]int32, len(uniforms)),
	}
	for _, u := range uniforms {
		p.Uniforms[u] = b.UniformLocation(prg, u)
	}

	return p, nil
}
