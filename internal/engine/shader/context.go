package shader

import "fmt"

// Stage identifies a programmable pipeline stage.
type Stage uint32

// Supported stages. Values match the OpenGL enums.
const (
	StageVertex   Stage = 0x8B31 // GL_VERTEX_SHADER
	StageFragment Stage = 0x8B30 // GL_FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%X)", uint32(s))
	}
}

// DataType is the type tag the driver reports for an active uniform or attribute.
type DataType uint32

// Data type tags. Values match the OpenGL enums so a GL context can pass them through.
const (
	TypeInt       DataType = 0x1404
	TypeFloat     DataType = 0x1406
	TypeFloatVec2 DataType = 0x8B50
	TypeFloatVec3 DataType = 0x8B51
	TypeFloatVec4 DataType = 0x8B52
	TypeBool      DataType = 0x8B56
	TypeFloatMat2 DataType = 0x8B5A
	TypeFloatMat3 DataType = 0x8B5B
	TypeFloatMat4 DataType = 0x8B5C
	TypeSampler2D DataType = 0x8B5E
)

var dataTypeNames = map[DataType]string{
	TypeInt:       "int",
	TypeFloat:     "float",
	TypeFloatVec2: "vec2",
	TypeFloatVec3: "vec3",
	TypeFloatVec4: "vec4",
	TypeBool:      "bool",
	TypeFloatMat2: "mat2",
	TypeFloatMat3: "mat3",
	TypeFloatMat4: "mat4",
	TypeSampler2D: "sampler2D",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(0x%X)", uint32(t))
}

// ComponentType is the per-component type of vertex attribute data in a buffer.
type ComponentType uint32

// Component types accepted by BindAttribute.
const (
	ComponentByte          ComponentType = 0x1400
	ComponentUnsignedByte  ComponentType = 0x1401
	ComponentShort         ComponentType = 0x1402
	ComponentUnsignedShort ComponentType = 0x1403
	ComponentFloat         ComponentType = 0x1406
)

// ActiveInfo describes one active uniform or attribute as reported by the driver.
type ActiveInfo struct {
	Name string
	Type DataType
	Size int32
}

// Context is the subset of a graphics API a Program drives.
// Stage, program and uniform handles are opaque to this package.
type Context interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)

	ActiveUniformCount(program uint32) int
	ActiveUniform(program uint32, index int) ActiveInfo
	UniformLocation(program uint32, name string) int32
	ActiveAttribCount(program uint32) int
	ActiveAttrib(program uint32, index int) ActiveInfo
	AttribLocation(program uint32, name string) int32

	EnableVertexAttribArray(location uint32)
	VertexAttribPointer(location uint32, size int32, xtype ComponentType, normalized bool, stride int32, offset uintptr)

	Uniform1f(location int32, v float32)
	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v [2]float32)
	UniformMatrix3fv(location int32, transpose bool, m [9]float32)
}
