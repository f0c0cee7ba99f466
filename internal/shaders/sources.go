package shaders

import _ "embed"

// File names of the built-in shaders, for loading overrides from disk.
const (
	PointVertexFile   = "point.vert.glsl"
	PointFragmentFile = "point.frag.glsl"
)

//go:embed point.vert.glsl
var PointVertex string

//go:embed point.frag.glsl
var PointFragment string
