package layout

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

// CType is a C scalar type whose layout depends on the target.
type CType uint8

const (
	CShort CType = iota
	CInt
	CLong
	CLongLong
	CFloat
	CDouble
	CPointer
)

// CTypes lists every scalar type in declaration order.
var CTypes = []CType{CShort, CInt, CLong, CLongLong, CFloat, CDouble, CPointer}

func (c CType) String() string {
	switch c {
	case CShort:
		return "short"
	case CInt:
		return "int"
	case CLong:
		return "long"
	case CLongLong:
		return "long long"
	case CFloat:
		return "float"
	case CDouble:
		return "double"
	case CPointer:
		return "pointer"
	default:
		return fmt.Sprintf("CType(%d)", c)
	}
}

// TypeLayout is the ABI layout of a type for a specific Target.
type TypeLayout struct {
	Size  int
	Align int
}

func (tgt Target) width(c CType) datamodel.Size {
	m := tgt.Model
	switch c {
	case CShort:
		return m.ShortSize()
	case CInt:
		return m.IntSize()
	case CLong:
		return m.LongSize()
	case CLongLong:
		return m.LongLongSize()
	case CFloat:
		return m.FloatSize()
	case CDouble:
		return m.DoubleSize()
	case CPointer:
		return m.PointerWidth()
	default:
		panic(fmt.Sprintf("layout: invalid C type %d", c))
	}
}

// LayoutOf returns the size and alignment of a C scalar type.
func (tgt Target) LayoutOf(c CType) TypeLayout {
	size := tgt.width(c).Bytes()
	align := size
	if size == 8 && tgt.packs64BitScalars() {
		align = 4
	}
	if c == CPointer {
		align = tgt.PtrAlign
	}
	return TypeLayout{Size: size, Align: align}
}

// The System V i386 ABI aligns 8-byte scalars to 4 bytes; Windows does not.
func (tgt Target) packs64BitScalars() bool {
	switch tgt.Triple.Architecture.Kind() {
	case triple.ArchI386, triple.ArchI586, triple.ArchI686:
		return tgt.Triple.OperatingSystem != triple.OSWindows
	default:
		return false
	}
}

// SizeOf returns the size of a C scalar type in bytes.
func (tgt Target) SizeOf(c CType) int { return tgt.LayoutOf(c).Size }

// AlignOf returns the alignment requirement of a C scalar type in bytes.
func (tgt Target) AlignOf(c CType) int { return tgt.LayoutOf(c).Align }

// ArrayOf returns the layout of a C array of count elements.
func (tgt Target) ArrayOf(c CType, count int64) (TypeLayout, error) {
	if count < 0 {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrNegativeLength, Triple: tgt.Triple, Value: count}
	}
	n, err := safecast.Conv[int](count)
	if err != nil {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrLengthConversion, Triple: tgt.Triple, Err: err}
	}
	elem := tgt.LayoutOf(c)
	if n > 0 && elem.Size > math.MaxInt/n {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrOverflow, Triple: tgt.Triple, Value: count}
	}
	return TypeLayout{Size: elem.Size * n, Align: elem.Align}, nil
}
