package triple

import "fmt"

// Field names one of the five components of a Triple, in triple order.
type Field uint8

const (
	FieldArchitecture Field = iota
	FieldVendor
	FieldOperatingSystem
	FieldEnvironment
	FieldBinaryFormat
)

func (f Field) String() string {
	switch f {
	case FieldArchitecture:
		return "architecture"
	case FieldVendor:
		return "vendor"
	case FieldOperatingSystem:
		return "operating system"
	case FieldEnvironment:
		return "environment"
	case FieldBinaryFormat:
		return "binary format"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}
