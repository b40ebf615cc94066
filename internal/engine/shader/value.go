package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Value is data uploaded to a uniform. It is one of Scalar, FloatArray, Vec2 or Mat3.
type Value interface {
	isValue()
	fmt.Stringer
}

// Scalar is a single float.
type Scalar float32

// FloatArray is a sequence of floats, uploaded to float uniforms as an array.
type FloatArray []float32

// Vec2 is a two component float vector.
type Vec2 mgl32.Vec2

// Mat3 is a column-major 3x3 float matrix.
type Mat3 mgl32.Mat3

func (Scalar) isValue()     {}
func (FloatArray) isValue() {}
func (Vec2) isValue()       {}
func (Mat3) isValue()       {}

func (v Scalar) String() string     { return fmt.Sprintf("scalar(%g)", float32(v)) }
func (v FloatArray) String() string { return fmt.Sprintf("float[%d]", len(v)) }
func (v Vec2) String() string       { return fmt.Sprintf("vec2(%g, %g)", v[0], v[1]) }
func (Mat3) String() string         { return "mat3" }
