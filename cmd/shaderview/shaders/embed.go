// Package shaders provides the embedded GLSL sources shaderview falls back to.
package shaders

import _ "embed"

// QuadVertexShader transforms the full-screen quad by the mvp uniform.
//
//go:embed quad.vert
var QuadVertexShader string

// PlasmaFragmentShader colors the quad from resolution and time.
//
//go:embed plasma.frag
var PlasmaFragmentShader string
