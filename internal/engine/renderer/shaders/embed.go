// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader is the vertex shader for lit scene meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for lit scene meshes.
//
//go:embed mesh.frag
var MeshFragmentShader string

// BboxVertexShader is the vertex shader for the bounds overlay.
//
//go:embed bbox.vert
var BboxVertexShader string

// BboxFragmentShader is the fragment shader for the bounds overlay.
//
//go:embed bbox.frag
var BboxFragmentShader string
