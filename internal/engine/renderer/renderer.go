// Package renderer draws a full-screen quad with a user supplied shader program.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shaderkit/internal/engine/shader"
	"github.com/Faultbox/shaderkit/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	VertexSource   string
	FragmentSource string
}

// Renderer owns the quad geometry and the program that shades it.
type Renderer struct {
	width  int
	height int

	program *shader.Program

	quadVAO uint32
	quadVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		width:  cfg.Width,
		height: cfg.Height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// Attribute state is recorded in the VAO, so it stays bound while the
	// program's attributes are enabled and pointed at the VBO.
	r.createQuad()
	defer gl.BindVertexArray(0)

	var err error
	r.program, err = shader.New(shader.NewGLContext(), cfg.VertexSource, cfg.FragmentSource,
		shader.WithLogger(logger.Named("shader")))
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	if err := bindQuad(r.program.Use()); err != nil {
		r.Close()
		return nil, err
	}

	logger.Debug("renderer ready",
		zap.Uint32("program", r.program.Handle()),
		zap.Int("attributes", len(r.program.Attributes())),
		zap.Int("uniforms", len(r.program.Uniforms())),
	)
	return r, nil
}

// createQuad uploads two triangles covering clip space.
func (r *Renderer) createQuad() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, unsafe.Pointer(&quadVertices[0]), gl.STATIC_DRAW)

	logger.Debug("quad created",
		zap.Uint32("vao", r.quadVAO),
		zap.Uint32("vbo", r.quadVBO),
	)
}

// Close releases GPU resources owned by the renderer.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.program != nil {
		gl.DeleteProgram(r.program.Handle())
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Frame clears the screen and draws the quad, seconds being the time since start.
func (r *Renderer) Frame(seconds float32) error {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindVertexArray(r.quadVAO)
	defer gl.BindVertexArray(0)

	r.program.Use()
	if err := uploadFrame(r.program, FrameState{Width: r.width, Height: r.height, Time: seconds}); err != nil {
		return err
	}
	gl.DrawArrays(gl.TRIANGLES, 0, quadVertexCount)
	return nil
}
