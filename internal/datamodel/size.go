package datamodel

import "fmt"

// BitsPerByte is the byte width every Size is measured against.
const BitsPerByte = 8

// Size is the width of a machine type, stored in bits.
type Size uint8

const (
	U16 Size = 16
	U32 Size = 32
	U64 Size = 64
)

// Bits returns the number of bits in a size.
func (s Size) Bits() int {
	return int(s)
}

// Bytes returns the number of bytes in a size.
// A width that is not a whole number of bytes means the size tables are broken,
// so it panics instead of returning an error.
func (s Size) Bytes() int {
	if int(s)%BitsPerByte != 0 {
		panic(fmt.Sprintf("datamodel: size of %d bits is not a multiple of %d", s, BitsPerByte))
	}
	return int(s) / BitsPerByte
}

func (s Size) String() string {
	return fmt.Sprintf("%d-bit", uint8(s))
}
