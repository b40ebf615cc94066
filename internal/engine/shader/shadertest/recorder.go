// Package shadertest provides a recording shader.Context for tests.
package shadertest

import (
	"fmt"
	"slices"

	"github.com/Faultbox/shaderkit/internal/engine/shader"
)

// Call is one recorded Context invocation.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Args)
}

// UniformLocationBase is added to a uniform's declaration index to form its location,
// so uniform and attribute locations never collide in assertions.
const UniformLocationBase = 10

// Context records every call and answers queries from its configured fields.
// Handles are allocated sequentially from 1: the vertex stage, the fragment
// stage, then the program.
type Context struct {
	// CompileErr maps a stage to the info log it fails with.
	CompileErr map[shader.Stage]string
	// LinkErr, when non-empty, makes linking fail with this log.
	LinkErr string

	// Uniforms and Attributes are the active interface, in driver order.
	Uniforms   []shader.ActiveInfo
	Attributes []shader.ActiveInfo
	// AttribLocs overrides attribute locations; by default an attribute's
	// location is its index in Attributes.
	AttribLocs map[string]int32

	calls      []Call
	nextHandle uint32
	stages     map[uint32]shader.Stage
}

var _ shader.Context = (*Context)(nil)

// New returns a Context whose program compiles and links with no active interface.
func New() *Context {
	return &Context{
		CompileErr: make(map[shader.Stage]string),
		AttribLocs: make(map[string]int32),
		stages:     make(map[uint32]shader.Stage),
	}
}

// Calls returns every recorded call in order.
func (c *Context) Calls() []Call {
	return c.calls
}

// Called returns the recorded calls of one method.
func (c *Context) Called(method string) []Call {
	var out []Call
	for _, call := range c.calls {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (c *Context) Reset() {
	c.calls = nil
}

func (c *Context) record(method string, args ...any) {
	c.calls = append(c.calls, Call{Method: method, Args: args})
}

func (c *Context) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

func (c *Context) CreateShader(stage shader.Stage) uint32 {
	h := c.handle()
	c.stages[h] = stage
	c.record("CreateShader", stage)
	return h
}

func (c *Context) ShaderSource(sh uint32, source string) {
	c.record("ShaderSource", sh, source)
}

func (c *Context) CompileShader(sh uint32) {
	c.record("CompileShader", sh)
}

func (c *Context) ShaderCompiled(sh uint32) bool {
	_, failed := c.CompileErr[c.stages[sh]]
	return !failed
}

func (c *Context) ShaderInfoLog(sh uint32) string {
	return c.CompileErr[c.stages[sh]]
}

func (c *Context) DeleteShader(sh uint32) {
	c.record("DeleteShader", sh)
}

func (c *Context) CreateProgram() uint32 {
	h := c.handle()
	c.record("CreateProgram")
	return h
}

func (c *Context) AttachShader(program, sh uint32) {
	c.record("AttachShader", program, sh)
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram", program)
}

func (c *Context) ProgramLinked(uint32) bool {
	return c.LinkErr == ""
}

func (c *Context) ProgramInfoLog(uint32) string {
	return c.LinkErr
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram", program)
}

func (c *Context) ActiveUniformCount(uint32) int {
	return len(c.Uniforms)
}

func (c *Context) ActiveUniform(_ uint32, index int) shader.ActiveInfo {
	return c.Uniforms[index]
}

func (c *Context) UniformLocation(_ uint32, name string) int32 {
	i := slices.IndexFunc(c.Uniforms, func(u shader.ActiveInfo) bool { return u.Name == name })
	if i < 0 {
		return -1
	}
	return int32(UniformLocationBase + i)
}

func (c *Context) ActiveAttribCount(uint32) int {
	return len(c.Attributes)
}

func (c *Context) ActiveAttrib(_ uint32, index int) shader.ActiveInfo {
	return c.Attributes[index]
}

func (c *Context) AttribLocation(_ uint32, name string) int32 {
	if loc, ok := c.AttribLocs[name]; ok {
		return loc
	}
	return int32(slices.IndexFunc(c.Attributes, func(a shader.ActiveInfo) bool { return a.Name == name }))
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	c.record("EnableVertexAttribArray", location)
}

func (c *Context) VertexAttribPointer(location uint32, size int32, xtype shader.ComponentType, normalized bool, stride int32, offset uintptr) {
	c.record("VertexAttribPointer", location, size, xtype, normalized, stride, offset)
}

func (c *Context) Uniform1f(location int32, v float32) {
	c.record("Uniform1f", location, v)
}

func (c *Context) Uniform1fv(location int32, v []float32) {
	c.record("Uniform1fv", location, slices.Clone(v))
}

func (c *Context) Uniform2fv(location int32, v [2]float32) {
	c.record("Uniform2fv", location, v)
}

func (c *Context) UniformMatrix3fv(location int32, transpose bool, m [9]float32) {
	c.record("UniformMatrix3fv", location, transpose, m)
}
