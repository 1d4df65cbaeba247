package triple

import (
	"fmt"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
)

// ArmArchitecture is the sub-architecture of the 32-bit ARM family.
// The zero value is the generic "arm".
type ArmArchitecture uint8

const (
	ArmGeneric ArmArchitecture = iota // arm
	Armeb
	Armv4
	Armv4t
	Armv5t
	Armv5te
	Armv5tej
	Armv6
	Armv6j
	Armv6k
	Armv6z
	Armv6kz
	Armv6t2
	Armv6m
	Armv7
	Armv7a
	Armv7ve
	Armv7m
	Armv7r
	Armv7s
	Armv8
	Armv8a
	Armv8_1a
	Armv8_2a
	Armv8_3a
	Armv8_4a
	Armv8_5a
	Armv8mBase
	Armv8mMain
	Armv8r
	Armebv7r
	Thumbeb
	Thumbv6m
	Thumbv7a
	Thumbv7em
	Thumbv7m
	Thumbv7neon
	Thumbv8mBase
	Thumbv8mMain

	armCount
)

type armInfo struct {
	name  string
	thumb bool
	big   bool
}

var armTable = [armCount]armInfo{
	ArmGeneric:   {name: "arm"},
	Armeb:        {name: "armeb", big: true},
	Armv4:        {name: "armv4"},
	Armv4t:       {name: "armv4t"},
	Armv5t:       {name: "armv5t"},
	Armv5te:      {name: "armv5te"},
	Armv5tej:     {name: "armv5tej"},
	Armv6:        {name: "armv6"},
	Armv6j:       {name: "armv6j"},
	Armv6k:       {name: "armv6k"},
	Armv6z:       {name: "armv6z"},
	Armv6kz:      {name: "armv6kz"},
	Armv6t2:      {name: "armv6t2"},
	Armv6m:       {name: "armv6m"},
	Armv7:        {name: "armv7"},
	Armv7a:       {name: "armv7a"},
	Armv7ve:      {name: "armv7ve"},
	Armv7m:       {name: "armv7m"},
	Armv7r:       {name: "armv7r"},
	Armv7s:       {name: "armv7s"},
	Armv8:        {name: "armv8"},
	Armv8a:       {name: "armv8a"},
	Armv8_1a:     {name: "armv8.1a"},
	Armv8_2a:     {name: "armv8.2a"},
	Armv8_3a:     {name: "armv8.3a"},
	Armv8_4a:     {name: "armv8.4a"},
	Armv8_5a:     {name: "armv8.5a"},
	Armv8mBase:   {name: "armv8m.base"},
	Armv8mMain:   {name: "armv8m.main"},
	Armv8r:       {name: "armv8r"},
	Armebv7r:     {name: "armebv7r", big: true},
	Thumbeb:      {name: "thumbeb", thumb: true, big: true},
	Thumbv6m:     {name: "thumbv6m", thumb: true},
	Thumbv7a:     {name: "thumbv7a", thumb: true},
	Thumbv7em:    {name: "thumbv7em", thumb: true},
	Thumbv7m:     {name: "thumbv7m", thumb: true},
	Thumbv7neon:  {name: "thumbv7neon", thumb: true},
	Thumbv8mBase: {name: "thumbv8m.base", thumb: true},
	Thumbv8mMain: {name: "thumbv8m.main", thumb: true},
}

var armByName = func() map[string]ArmArchitecture {
	m := make(map[string]ArmArchitecture, armCount)
	for a := ArmArchitecture(0); a < armCount; a++ {
		m[armTable[a].name] = a
	}
	return m
}()

// ParseArmArchitecture recognises an ARM sub-architecture name such as
// "armv7" or "thumbv8m.main".
func ParseArmArchitecture(s string) (ArmArchitecture, bool) {
	a, ok := armByName[s]
	return a, ok
}

func (a ArmArchitecture) info() armInfo {
	if a >= armCount {
		panic(fmt.Sprintf("triple: invalid arm architecture %d", uint8(a)))
	}
	return armTable[a]
}

func (a ArmArchitecture) String() string {
	if a >= armCount {
		return fmt.Sprintf("ArmArchitecture(%d)", uint8(a))
	}
	return armTable[a].name
}

// IsThumb reports whether a is one of the Thumb instruction set variants.
func (a ArmArchitecture) IsThumb() bool {
	return a.info().thumb
}

// PointerWidth is 32 bits for every ARM sub-architecture.
func (a ArmArchitecture) PointerWidth() datamodel.Size {
	_ = a.info()
	return datamodel.U32
}

// Endianness is big only for the explicit "eb" variants.
func (a ArmArchitecture) Endianness() Endianness {
	if a.info().big {
		return Big
	}
	return Little
}

// Aarch64Architecture is the sub-architecture of the 64-bit ARM family.
type Aarch64Architecture uint8

const (
	Aarch64 Aarch64Architecture = iota
	Aarch64be

	aarch64Count
)

var aarch64Names = [aarch64Count]string{
	Aarch64:   "aarch64",
	Aarch64be: "aarch64be",
}

// "arm64" is Apple's spelling of aarch64; it parses but never prints.
var aarch64ByName = map[string]Aarch64Architecture{
	"aarch64":   Aarch64,
	"arm64":     Aarch64,
	"aarch64be": Aarch64be,
}

// ParseAarch64Architecture recognises "aarch64", "arm64" and "aarch64be".
func ParseAarch64Architecture(s string) (Aarch64Architecture, bool) {
	a, ok := aarch64ByName[s]
	return a, ok
}

func (a Aarch64Architecture) String() string {
	if a >= aarch64Count {
		return fmt.Sprintf("Aarch64Architecture(%d)", uint8(a))
	}
	return aarch64Names[a]
}

// IsThumb is always false; there is no 64-bit Thumb.
func (a Aarch64Architecture) IsThumb() bool {
	return false
}

// PointerWidth is 64 bits for every aarch64 variant.
func (a Aarch64Architecture) PointerWidth() datamodel.Size {
	return datamodel.U64
}

func (a Aarch64Architecture) Endianness() Endianness {
	if a == Aarch64be {
		return Big
	}
	return Little
}
