// Package shader compiles GLSL programs and binds vertex attributes and uniforms by name.
package shader

import (
	"maps"

	"go.uber.org/zap"
)

// UniformSlot is an active uniform's location and declared type.
type UniformSlot struct {
	Location int32
	Type     DataType
	Size     int32
}

// Program is a linked vertex/fragment program together with the attributes and
// uniforms the driver reported as active right after linking. It is not modified
// after New returns.
type Program struct {
	ctx        Context
	handle     uint32
	attributes map[string]uint32
	uniforms   map[string]UniformSlot
	log        *zap.Logger
}

// Option configures New.
type Option func(*Program)

// WithLogger sets the logger used for compile failures and interface discovery.
func WithLogger(l *zap.Logger) Option {
	return func(p *Program) {
		if l != nil {
			p.log = l
		}
	}
}

// New compiles both stages, links them and makes the result the current program.
// Returns a *CompileError or *LinkError if the driver rejects the sources.
func New(ctx Context, vertexSrc, fragmentSrc string, opts ...Option) (*Program, error) {
	p := &Program{
		ctx:        ctx,
		attributes: make(map[string]uint32),
		uniforms:   make(map[string]UniformSlot),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	vert, err := p.compileStage(StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	frag, err := p.compileStage(StageFragment, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p.handle, err = p.link(vert, frag)
	if err != nil {
		return nil, err
	}
	ctx.DeleteShader(vert)
	ctx.DeleteShader(frag)
	ctx.UseProgram(p.handle)

	p.introspect()
	return p, nil
}

// compileStage compiles a single stage. The source is logged when compilation fails.
func (p *Program) compileStage(stage Stage, source string) (uint32, error) {
	if stage != StageVertex && stage != StageFragment {
		return 0, &CompileError{Stage: stage, Log: "unsupported stage"}
	}

	sh := p.ctx.CreateShader(stage)
	p.ctx.ShaderSource(sh, source)
	p.ctx.CompileShader(sh)
	if p.ctx.ShaderCompiled(sh) {
		return sh, nil
	}

	infoLog := p.ctx.ShaderInfoLog(sh)
	p.log.Error("shader compile failed",
		zap.Stringer("stage", stage),
		zap.String("log", infoLog),
		zap.String("source", source),
	)
	return 0, &CompileError{Stage: stage, Log: infoLog}
}

func (p *Program) link(vert, frag uint32) (uint32, error) {
	program := p.ctx.CreateProgram()
	p.ctx.AttachShader(program, vert)
	p.ctx.AttachShader(program, frag)
	p.ctx.LinkProgram(program)
	if !p.ctx.ProgramLinked(program) {
		return 0, &LinkError{Log: p.ctx.ProgramInfoLog(program)}
	}
	return program, nil
}

// introspect records the active uniforms and attributes. Called once from New.
func (p *Program) introspect() {
	for i := range p.ctx.ActiveUniformCount(p.handle) {
		info := p.ctx.ActiveUniform(p.handle, i)
		loc := p.ctx.UniformLocation(p.handle, info.Name)
		p.log.Debug("uniform",
			zap.String("name", info.Name),
			zap.Stringer("type", info.Type),
			zap.Int32("size", info.Size),
			zap.Int32("location", loc),
		)
		p.uniforms[info.Name] = UniformSlot{Location: loc, Type: info.Type, Size: info.Size}
	}

	for i := range p.ctx.ActiveAttribCount(p.handle) {
		info := p.ctx.ActiveAttrib(p.handle, i)
		loc := p.ctx.AttribLocation(p.handle, info.Name)
		p.log.Debug("attribute",
			zap.String("name", info.Name),
			zap.Stringer("type", info.Type),
			zap.Int32("size", info.Size),
			zap.Int32("location", loc),
		)
		// Built-in inputs such as gl_VertexID are active but have no location.
		if loc < 0 {
			continue
		}
		p.attributes[info.Name] = uint32(loc)
	}
}

// Handle returns the driver's program handle.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Attributes returns a copy of the active attribute locations keyed by name.
func (p *Program) Attributes() map[string]uint32 {
	return maps.Clone(p.attributes)
}

// Uniforms returns a copy of the active uniform slots keyed by name.
func (p *Program) Uniforms() map[string]UniformSlot {
	return maps.Clone(p.uniforms)
}

// Attribute returns the location of the named attribute.
func (p *Program) Attribute(name string) (uint32, bool) {
	loc, ok := p.attributes[name]
	return loc, ok
}

// Uniform returns the slot of the named uniform.
func (p *Program) Uniform(name string) (UniformSlot, bool) {
	slot, ok := p.uniforms[name]
	return slot, ok
}

// Use makes the program current and enables all of its attribute arrays.
func (p *Program) Use() *Program {
	p.ctx.UseProgram(p.handle)
	for _, loc := range p.attributes {
		p.ctx.EnableVertexAttribArray(loc)
	}
	return p
}

// BindAttribute points the named attribute at the currently bound vertex buffer.
// size is the component count; stride and offset are in bytes.
func (p *Program) BindAttribute(name string, size int32, xtype ComponentType, normalized bool, stride int32, offset uintptr) (*Program, error) {
	loc, ok := p.attributes[name]
	if !ok {
		return p, &UnknownAttributeError{Name: name}
	}
	p.ctx.VertexAttribPointer(loc, size, xtype, normalized, stride, offset)
	return p, nil
}

// SetUniform uploads v to the named uniform. The upload call is chosen by the
// uniform's declared type: vec2 takes a Vec2, mat3 a Mat3 (not transposed), and
// float either a Scalar or a FloatArray.
func (p *Program) SetUniform(name string, v Value) error {
	slot, ok := p.uniforms[name]
	if !ok {
		return &UnknownUniformError{Name: name}
	}

	switch slot.Type {
	case TypeFloatVec2:
		vec, ok := v.(Vec2)
		if !ok {
			return &ValueMismatchError{Name: name, Type: slot.Type, Value: v}
		}
		p.ctx.Uniform2fv(slot.Location, vec)
	case TypeFloatMat3:
		m, ok := v.(Mat3)
		if !ok {
			return &ValueMismatchError{Name: name, Type: slot.Type, Value: v}
		}
		p.ctx.UniformMatrix3fv(slot.Location, false, m)
	case TypeFloat:
		switch val := v.(type) {
		case FloatArray:
			p.ctx.Uniform1fv(slot.Location, val)
		case Scalar:
			p.ctx.Uniform1f(slot.Location, float32(val))
		default:
			return &ValueMismatchError{Name: name, Type: slot.Type, Value: v}
		}
	default:
		return &UnsupportedUniformTypeError{Name: name, Type: slot.Type}
	}
	return nil
}
