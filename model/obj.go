/*
	wavefront obj importer
	http://en.wikipedia.org/wiki/Wavefront_OBJ

	object format
	http://paulbourke.net/dataformats/obj/

	supported subset
		v x y z        - geometric vertex
		vt u v         - texture vertex
		vn x y z       - vertex normal
		f v/t/n v/t/n v/t/n - triangle, one-based references

	all v, vt and vn records precede the first f record,
	everything from the first f record on is read as faces.
*/
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// ErrMalformedToken is matched by every *SyntaxError
var ErrMalformedToken = errors.New("model: malformed geometry token")

// SyntaxError locates a malformed record of a geometry file
type SyntaxError struct {
	File   string
	Line   int
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s %q", e.File, e.Line, e.Reason, e.Token)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrMalformedToken }

// LoadOBJ reads a triangulated obj file into vertex indexed ModelData.
func LoadOBJ(path string) (*engine.ModelData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, engine.Unreadable(path, err)
	}
	defer file.Close()

	return ParseOBJ(file, path)
}

type objParser struct {
	name string
	line int

	vertices  []float32
	texcoords []float32
	normals   []float32
}

// ParseOBJ parses obj records from r; name is used in error messages.
//
// Texture coordinates and normals are re-ordered to follow the vertex
// positions: every face corner writes its texture coordinate and normal at its
// vertex index, later faces overwrite earlier ones. V is flipped to match
// the top-down image upload.
func ParseOBJ(r io.Reader, name string) (*engine.ModelData, error) {
	p := &objParser{name: name}
	scanner := bufio.NewScanner(r)

	// vertex data, up to the first face
	var face string
	for scanner.Scan() {
		p.line++
		line := scanner.Text()

		var err error
		switch {
		case strings.HasPrefix(line, "v "):
			p.vertices, err = p.floats(p.vertices, line[2:], 3)
		case strings.HasPrefix(line, "vt "):
			p.texcoords, err = p.floats(p.texcoords, line[3:], 2)
		case strings.HasPrefix(line, "vn "):
			p.normals, err = p.floats(p.normals, line[3:], 3)
		case strings.HasPrefix(line, "f "):
			face = line
		}
		if err != nil {
			return nil, err
		}
		if face != "" {
			break
		}
	}

	m := &engine.ModelData{
		Positions: p.vertices,
		TexCoords: make([]float32, len(p.vertices)/3*2),
		Normals:   make([]float32, len(p.vertices)),
	}

	// faces
	for face != "" {
		if strings.HasPrefix(face, "f ") {
			if err := p.face(m, face[2:]); err != nil {
				return nil, err
			}
		}

		face = ""
		for face == "" && scanner.Scan() {
			p.line++
			face = scanner.Text()
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, engine.Unreadable(name, err)
	}

	return m, nil
}

func (p *objParser) syntax(token, reason string) error {
	return &SyntaxError{File: p.name, Line: p.line, Token: token, Reason: reason}
}

// floats appends exactly n floats parsed from the fields of s
func (p *objParser) floats(dst []float32, s string, n int) ([]float32, error) {
	fields := strings.Fields(s)
	if len(fields) < n {
		return nil, p.syntax(s, fmt.Sprintf("expected %d values", n))
	}

	for _, f := range fields[:n] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, p.syntax(f, "invalid float")
		}
		dst = append(dst, float32(v))
	}
	return dst, nil
}

func (p *objParser) index(s string, count int) (int, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, p.syntax(s, "invalid index")
	}
	if v < 1 || int(v) > count {
		return 0, p.syntax(s, fmt.Sprintf("index out of range 1..%d", count))
	}
	return int(v) - 1, nil
}

func (p *objParser) face(m *engine.ModelData, s string) error {
	corners := strings.Fields(s)
	if len(corners) != 3 {
		return p.syntax(s, "face is not a triangle")
	}

	for _, corner := range corners {
		refs := strings.Split(corner, "/")
		if len(refs) != 3 {
			return p.syntax(corner, "expected vertex/texcoord/normal")
		}

		vi, err := p.index(refs[0], len(p.vertices)/3)
		if err != nil {
			return err
		}
		ti, err := p.index(refs[1], len(p.texcoords)/2)
		if err != nil {
			return err
		}
		ni, err := p.index(refs[2], len(p.normals)/3)
		if err != nil {
			return err
		}

		m.Indices = append(m.Indices, uint32(vi))

		m.TexCoords[vi*2] = p.texcoords[ti*2]
		m.TexCoords[vi*2+1] = 1 - p.texcoords[ti*2+1]

		m.Normals[vi*3] = p.normals[ni*3]
		m.Normals[vi*3+1] = p.normals[ni*3+1]
		m.Normals[vi*3+2] = p.normals[ni*3+2]
	}

	return nil
}
