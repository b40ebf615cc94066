package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLContext implements Context on top of the current OpenGL 4.1 core context.
// gl.Init must have been called on the thread that owns the context.
type GLContext struct{}

var _ Context = GLContext{}

// NewGLContext returns a Context backed by go-gl.
func NewGLContext() *GLContext {
	return &GLContext{}
}

func (GLContext) CreateShader(stage Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (GLContext) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (GLContext) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GLContext) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GLContext) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (GLContext) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GLContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GLContext) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GLContext) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GLContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GLContext) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (GLContext) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GLContext) ActiveUniformCount(program uint32) int {
	var n int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

func (GLContext) ActiveUniform(program uint32, index int) ActiveInfo {
	var maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(buf *uint8, length, size *int32, xtype *uint32) {
		gl.GetActiveUniform(program, uint32(index), maxLen, length, size, xtype, buf)
	})
}

func (GLContext) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GLContext) ActiveAttribCount(program uint32) int {
	var n int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &n)
	return int(n)
}

func (GLContext) ActiveAttrib(program uint32, index int) ActiveInfo {
	var maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(buf *uint8, length, size *int32, xtype *uint32) {
		gl.GetActiveAttrib(program, uint32(index), maxLen, length, size, xtype, buf)
	})
}

func (GLContext) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (GLContext) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (GLContext) VertexAttribPointer(location uint32, size int32, xtype ComponentType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(location, size, uint32(xtype), normalized, stride, offset)
}

func (GLContext) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (GLContext) Uniform1fv(location int32, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(location, int32(len(v)), &v[0])
}

func (GLContext) Uniform2fv(location int32, v [2]float32) {
	gl.Uniform2fv(location, 1, &v[0])
}

func (GLContext) UniformMatrix3fv(location int32, transpose bool, m [9]float32) {
	gl.UniformMatrix3fv(location, 1, transpose, &m[0])
}

// activeInfo reads one GetActiveUniform/GetActiveAttrib result into an ActiveInfo.
func activeInfo(maxLen int32, query func(buf *uint8, length, size *int32, xtype *uint32)) ActiveInfo {
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]uint8, maxLen)
	var length, size int32
	var xtype uint32
	query(&buf[0], &length, &size, &xtype)
	return ActiveInfo{
		Name: string(buf[:length]),
		Type: DataType(xtype),
		Size: size,
	}
}
