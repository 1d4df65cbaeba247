package datamodel

import (
	"fmt"
	"strings"
)

// CDataModel is the C data model used on a target.
//
// See also https://en.cppreference.com/w/c/language/arithmetic_types
type CDataModel uint8

const (
	// LP32 is the data model used most commonly on Win16.
	LP32 CDataModel = iota
	// ILP32 is the data model used most commonly on Win32 and 32-bit Unix systems.
	ILP32
	// LLP64 is the data model used most commonly on Win64.
	LLP64
	// LP64 is the data model used most commonly on 64-bit Unix systems.
	LP64
	// ILP64 is a rare data model used on early 64-bit Unix systems.
	ILP64

	modelCount
)

// widths holds the per-model C type widths, one row per CDataModel.
type widths struct {
	pointer  Size
	short    Size
	integer  Size
	long     Size
	longLong Size
}

var modelWidths = [modelCount]widths{
	LP32:  {pointer: U32, short: U16, integer: U16, long: U32, longLong: U64},
	ILP32: {pointer: U32, short: U16, integer: U32, long: U32, longLong: U64},
	LLP64: {pointer: U64, short: U16, integer: U32, long: U32, longLong: U64},
	LP64:  {pointer: U64, short: U16, integer: U32, long: U64, longLong: U64},
	ILP64: {pointer: U64, short: U16, integer: U32, long: U32, longLong: U64},
}

var modelNames = [modelCount]string{
	LP32:  "lp32",
	ILP32: "ilp32",
	LLP64: "llp64",
	LP64:  "lp64",
	ILP64: "ilp64",
}

// All returns every data model in declaration order.
func All() []CDataModel {
	out := make([]CDataModel, 0, modelCount)
	for m := CDataModel(0); m < modelCount; m++ {
		out = append(out, m)
	}
	return out
}

func (m CDataModel) row() widths {
	if m >= modelCount {
		panic(fmt.Sprintf("datamodel: invalid data model %d", uint8(m)))
	}
	return modelWidths[m]
}

// PointerWidth is the width of a pointer in the default address space.
func (m CDataModel) PointerWidth() Size { return m.row().pointer }

// ShortSize is the size of a C short. C requires at least 16 bits.
func (m CDataModel) ShortSize() Size { return m.row().short }

// IntSize is the size of a C int. C requires at least 16 bits.
func (m CDataModel) IntSize() Size { return m.row().integer }

// LongSize is the size of a C long. C requires at least 32 bits.
func (m CDataModel) LongSize() Size { return m.row().long }

// LongLongSize is the size of a C long long. C99 requires at least 64 bits.
func (m CDataModel) LongLongSize() Size { return m.row().longLong }

// FloatSize is the size of a C float.
func (m CDataModel) FloatSize() Size { return U32 }

// DoubleSize is the size of a C double.
func (m CDataModel) DoubleSize() Size { return U64 }

func (m CDataModel) String() string {
	if m >= modelCount {
		return fmt.Sprintf("CDataModel(%d)", uint8(m))
	}
	return modelNames[m]
}

// ParseCDataModel looks up a data model by its lowercase name ("lp64").
// Upper-case spellings ("LP64") are accepted too since that is how they are
// usually written.
func ParseCDataModel(s string) (CDataModel, bool) {
	for m, name := range modelNames {
		if s == name || s == strings.ToUpper(name) {
			return CDataModel(m), true
		}
	}
	return 0, false
}
