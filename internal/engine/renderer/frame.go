package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shaderkit/internal/engine/shader"
)

// Names of the inputs the viewer feeds. A program may declare any subset.
const (
	AttribPosition    = "position"
	UniformResolution = "resolution"
	UniformMVP        = "mvp"
	UniformTime       = "time"
)

// ErrNoPosition is returned when the vertex shader has no active position attribute.
var ErrNoPosition = errors.New("vertex shader must declare an active 'position' attribute")

// quadVertices are two clip-space triangles, two floats per vertex.
var quadVertices = []float32{
	-1, -1, 1, -1, 1, 1,
	-1, -1, 1, 1, -1, 1,
}

const (
	quadComponents  = 2
	quadVertexCount = 6
	floatSize       = 4
)

// FrameState is the per-frame input to the program's uniforms.
type FrameState struct {
	Width  int
	Height int
	Time   float32
}

// MVP returns a rotation about Z by half a radian per second, with the
// x axis scaled so the quad keeps its aspect at any window shape.
func (f FrameState) MVP() mgl32.Mat3 {
	aspect := float32(1)
	if f.Width > 0 && f.Height > 0 {
		aspect = float32(f.Height) / float32(f.Width)
	}
	return mgl32.Scale2D(aspect, 1).Mul3(mgl32.HomogRotate2D(f.Time * 0.5))
}

// bindQuad points the position attribute at the bound quad buffer.
func bindQuad(p *shader.Program) error {
	if _, ok := p.Attribute(AttribPosition); !ok {
		return ErrNoPosition
	}
	_, err := p.BindAttribute(AttribPosition, quadComponents, shader.ComponentFloat, false, quadComponents*floatSize, 0)
	return err
}

// uploadFrame sets every viewer uniform the program declares.
func uploadFrame(p *shader.Program, f FrameState) error {
	values := []struct {
		name  string
		value shader.Value
	}{
		{UniformResolution, shader.Vec2{float32(f.Width), float32(f.Height)}},
		{UniformMVP, shader.Mat3(f.MVP())},
		{UniformTime, shader.Scalar(f.Time)},
	}

	for _, v := range values {
		if _, ok := p.Uniform(v.name); !ok {
			continue
		}
		if err := p.SetUniform(v.name, v.value); err != nil {
			return fmt.Errorf("frame uniforms: %w", err)
		}
	}
	return nil
}
