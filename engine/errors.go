package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrFileUnreadable is matched by every failure to open or read an asset file.
	ErrFileUnreadable = errors.New("engine: file unreadable")
	// ErrShaderCompile is matched by *ShaderError.
	ErrShaderCompile = errors.New("engine: shader compile error")
	// ErrLink is matched by *LinkError.
	ErrLink = errors.New("engine: program link error")
	// ErrImageDecode indicates a texture file that is not a decodable image.
	ErrImageDecode = errors.New("engine: image decode error")
)

// ShaderError carries the driver info log of a failed compile.
type ShaderError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error compiling %v shader %s: %s", e.Stage, e.Path, e.Log)
	}
	return fmt.Sprintf("error compiling %v shader: %s", e.Stage, e.Log)
}

func (e *ShaderError) Is(target error) bool { return target == ErrShaderCompile }

// LinkError carries the driver info log of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("error linking program: %s", e.Log)
}

func (e *LinkError) Is(target error) bool { return target == ErrLink }

// Unreadable wraps an os error of path so it matches ErrFileUnreadable.
func Unreadable(path string, err error) error {
	return fmt.Errorf("could not open %s: %w: %w", path, ErrFileUnreadable, err)
}
