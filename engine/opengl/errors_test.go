package opengl

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestEnumName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", EnumName(gl.INVALID_ENUM))
	assert.Equal(t, "GL_OUT_OF_MEMORY", EnumName(gl.OUT_OF_MEMORY))

	// object targets are never reported by glGetError
	assert.Equal(t, "(unknown)", EnumName(gl.TEXTURE))
	assert.Equal(t, "(unknown)", EnumName(gl.RENDERBUFFER))
}
