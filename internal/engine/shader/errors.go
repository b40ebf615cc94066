package shader

import "fmt"

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link: %s", e.Log)
}

// UnknownAttributeError is returned for a name that is not an active attribute.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("program has no attribute %q", e.Name)
}

// UnknownUniformError is returned for a name that is not an active uniform.
type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("unknown uniform %q", e.Name)
}

// UnsupportedUniformTypeError is returned when a uniform's type has no upload path.
type UnsupportedUniformTypeError struct {
	Name string
	Type DataType
}

func (e *UnsupportedUniformTypeError) Error() string {
	return fmt.Sprintf("uniform %q: unsupported data type %s", e.Name, e.Type)
}

// ValueMismatchError is returned when a value's shape does not fit the uniform's type.
type ValueMismatchError struct {
	Name  string
	Type  DataType
	Value Value
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("uniform %q: cannot upload %s to %s", e.Name, e.Value, e.Type)
}
