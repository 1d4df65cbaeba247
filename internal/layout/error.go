package layout

import (
	"fmt"

	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

// LayoutErrorKind enumerates types of layout calculation errors.
type LayoutErrorKind uint8

const (
	// LayoutErrUnknownArchitecture indicates a triple without an architecture.
	LayoutErrUnknownArchitecture LayoutErrorKind = iota + 1
	// LayoutErrNoDataModel indicates a pointer width no C data model covers.
	LayoutErrNoDataModel
	LayoutErrLengthConversion
	LayoutErrNegativeLength
	LayoutErrOverflow
)

// LayoutError represents an error during layout calculation.
type LayoutError struct {
	Kind   LayoutErrorKind
	Triple triple.Triple
	Bits   int   // for LayoutErrNoDataModel
	Value  int64 // for LayoutErrNegativeLength, LayoutErrOverflow
	Err    error // for LayoutErrLengthConversion
}

func (e *LayoutError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case LayoutErrUnknownArchitecture:
		return fmt.Sprintf("target %s has no architecture", e.Triple)
	case LayoutErrNoDataModel:
		return fmt.Sprintf("no C data model has %d-bit pointers (target %s)", e.Bits, e.Triple)
	case LayoutErrLengthConversion:
		if e.Err != nil {
			return fmt.Sprintf("array length conversion error (target %s): %v", e.Triple, e.Err)
		}
		return fmt.Sprintf("array length conversion error (target %s)", e.Triple)
	case LayoutErrNegativeLength:
		return fmt.Sprintf("negative array length: %d (target %s)", e.Value, e.Triple)
	case LayoutErrOverflow:
		return fmt.Sprintf("array of %d elements overflows (target %s)", e.Value, e.Triple)
	default:
		return fmt.Sprintf("layout error kind=%d target %s", e.Kind, e.Triple)
	}
}

func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
