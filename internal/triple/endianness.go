package triple

import (
	"encoding/binary"
	"fmt"
)

// Endianness is the byte order of an architecture.
type Endianness uint8

const (
	Little Endianness = iota
	Big
)

func (e Endianness) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Endianness(%d)", e)
	}
}

// ByteOrder returns the encoding/binary order matching e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
