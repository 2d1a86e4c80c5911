/*
	opengl resource layer

	Everything the world needs from the graphics driver goes through a Backend.
	engine/opengl implements it on top of go-gl, engine/enginetest provides a
	counting fake for tests.

	resources
		Handle (kind + driver id)
			buffer, vertex array, program, shader, texture
		Bundle
			handles allocated together, released together

	loading
		ModelData (positions, uvs, normals, indices) -> buffers
		vertex + fragment source -> Program (uniform locations)
		image file -> Image (RGB or RGBA) -> texture
*/
package engine
