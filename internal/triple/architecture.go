package triple

import (
	"errors"
	"fmt"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
)

// ErrNotRepresentable is returned by derived queries that have no answer for
// the Unknown architecture.
var ErrNotRepresentable = errors.New("not representable for unknown architecture")

// ArchKind is the architecture family. ArchArm and ArchAarch64 carry a
// sub-architecture inside Architecture; every other kind is complete on its own.
type ArchKind uint8

const (
	ArchUnknown ArchKind = iota
	ArchArm
	ArchAarch64
	ArchAsmjs
	ArchI386
	ArchI586
	ArchI686
	ArchMips
	ArchMips64
	ArchMips64el
	ArchMipsel
	ArchMsp430
	ArchPowerpc
	ArchPowerpc64
	ArchPowerpc64le
	ArchRiscv32
	ArchRiscv32imac
	ArchRiscv32imc
	ArchRiscv64
	ArchS390x
	ArchSparc
	ArchSparc64
	ArchSparcv9
	ArchWasm32
	ArchX86_64

	archKindCount
)

type archInfo struct {
	name  string
	width datamodel.Size
	big   bool
}

// archTable describes the flat families. Arm and Aarch64 rows are empty:
// their names and properties live in the sub-architecture tables.
var archTable = [archKindCount]archInfo{
	ArchUnknown:     {name: "unknown"},
	ArchArm:         {},
	ArchAarch64:     {},
	ArchAsmjs:       {name: "asmjs", width: datamodel.U32},
	ArchI386:        {name: "i386", width: datamodel.U32},
	ArchI586:        {name: "i586", width: datamodel.U32},
	ArchI686:        {name: "i686", width: datamodel.U32},
	ArchMips:        {name: "mips", width: datamodel.U32, big: true},
	ArchMips64:      {name: "mips64", width: datamodel.U64, big: true},
	ArchMips64el:    {name: "mips64el", width: datamodel.U64},
	ArchMipsel:      {name: "mipsel", width: datamodel.U32},
	ArchMsp430:      {name: "msp430", width: datamodel.U16},
	ArchPowerpc:     {name: "powerpc", width: datamodel.U32, big: true},
	ArchPowerpc64:   {name: "powerpc64", width: datamodel.U64, big: true},
	ArchPowerpc64le: {name: "powerpc64le", width: datamodel.U64},
	ArchRiscv32:     {name: "riscv32", width: datamodel.U32},
	ArchRiscv32imac: {name: "riscv32imac", width: datamodel.U32},
	ArchRiscv32imc:  {name: "riscv32imc", width: datamodel.U32},
	ArchRiscv64:     {name: "riscv64", width: datamodel.U64},
	ArchS390x:       {name: "s390x", width: datamodel.U64, big: true},
	ArchSparc:       {name: "sparc", width: datamodel.U32, big: true},
	ArchSparc64:     {name: "sparc64", width: datamodel.U64, big: true},
	ArchSparcv9:     {name: "sparcv9", width: datamodel.U64, big: true},
	ArchWasm32:      {name: "wasm32", width: datamodel.U32},
	ArchX86_64:      {name: "x86_64", width: datamodel.U64},
}

var archByName = func() map[string]ArchKind {
	m := make(map[string]ArchKind, archKindCount)
	for k := ArchKind(0); k < archKindCount; k++ {
		if name := archTable[k].name; name != "" {
			m[name] = k
		}
	}
	return m
}()

func (k ArchKind) String() string {
	switch {
	case k == ArchArm:
		return "arm"
	case k == ArchAarch64:
		return "aarch64"
	case k < archKindCount:
		return archTable[k].name
	default:
		return fmt.Sprintf("ArchKind(%d)", uint8(k))
	}
}

// Architecture is the architecture field of a triple. It is a small value
// type; two Architectures are equal iff they name the same variant.
// The zero value is the Unknown architecture.
type Architecture struct {
	kind ArchKind
	sub  uint8 // ArmArchitecture or Aarch64Architecture, depending on kind
}

// Arch returns the architecture of a flat family. For ArchArm and ArchAarch64
// it returns the generic member of the family ("arm", "aarch64").
func Arch(k ArchKind) Architecture {
	return Architecture{kind: k}
}

// ArmArch wraps an ARM sub-architecture.
func ArmArch(a ArmArchitecture) Architecture {
	return Architecture{kind: ArchArm, sub: uint8(a)}
}

// Aarch64Arch wraps an aarch64 sub-architecture.
func Aarch64Arch(a Aarch64Architecture) Architecture {
	return Architecture{kind: ArchAarch64, sub: uint8(a)}
}

// Kind returns the architecture family.
func (a Architecture) Kind() ArchKind { return a.kind }

// IsUnknown reports whether a is the Unknown sentinel.
func (a Architecture) IsUnknown() bool { return a.kind == ArchUnknown }

// Arm returns the ARM sub-architecture, if a belongs to the ARM family.
func (a Architecture) Arm() (ArmArchitecture, bool) {
	if a.kind != ArchArm {
		return 0, false
	}
	return ArmArchitecture(a.sub), true
}

// Aarch64 returns the aarch64 sub-architecture, if a belongs to that family.
func (a Architecture) Aarch64() (Aarch64Architecture, bool) {
	if a.kind != ArchAarch64 {
		return 0, false
	}
	return Aarch64Architecture(a.sub), true
}

func (a Architecture) String() string {
	switch a.kind {
	case ArchArm:
		return ArmArchitecture(a.sub).String()
	case ArchAarch64:
		return Aarch64Architecture(a.sub).String()
	default:
		return a.kind.String()
	}
}

// ParseArchitecture recognises an architecture name. The flat families are
// tried first, then the ARM sub-architectures, then aarch64.
func ParseArchitecture(s string) (Architecture, bool) {
	if k, ok := archByName[s]; ok {
		return Arch(k), true
	}
	if arm, ok := ParseArmArchitecture(s); ok {
		return ArmArch(arm), true
	}
	if aarch, ok := ParseAarch64Architecture(s); ok {
		return Aarch64Arch(aarch), true
	}
	return Architecture{}, false
}

// Endianness returns the byte order of the architecture.
func (a Architecture) Endianness() (Endianness, error) {
	switch a.kind {
	case ArchUnknown:
		return 0, ErrNotRepresentable
	case ArchArm:
		return ArmArchitecture(a.sub).Endianness(), nil
	case ArchAarch64:
		return Aarch64Architecture(a.sub).Endianness(), nil
	}
	if a.flat().big {
		return Big, nil
	}
	return Little, nil
}

// PointerWidth returns the pointer bit width of the architecture.
func (a Architecture) PointerWidth() (datamodel.Size, error) {
	switch a.kind {
	case ArchUnknown:
		return 0, ErrNotRepresentable
	case ArchArm:
		return ArmArchitecture(a.sub).PointerWidth(), nil
	case ArchAarch64:
		return Aarch64Architecture(a.sub).PointerWidth(), nil
	}
	return a.flat().width, nil
}

// IsThumb reports whether the architecture executes Thumb code. Families
// outside ARM are never Thumb.
func (a Architecture) IsThumb() (bool, error) {
	switch a.kind {
	case ArchUnknown:
		return false, ErrNotRepresentable
	case ArchArm:
		return ArmArchitecture(a.sub).IsThumb(), nil
	case ArchAarch64:
		return Aarch64Architecture(a.sub).IsThumb(), nil
	default:
		return false, nil
	}
}

func (a Architecture) flat() archInfo {
	if a.kind >= archKindCount {
		panic(fmt.Sprintf("triple: invalid architecture kind %d", uint8(a.kind)))
	}
	return archTable[a.kind]
}

// Architectures lists every architecture value, Unknown first, with the ARM
// and aarch64 families expanded into their sub-architectures.
func Architectures() []Architecture {
	out := make([]Architecture, 0, int(archKindCount)+int(armCount)+int(aarch64Count))
	for k := ArchKind(0); k < archKindCount; k++ {
		switch k {
		case ArchArm:
			for a := ArmArchitecture(0); a < armCount; a++ {
				out = append(out, ArmArch(a))
			}
		case ArchAarch64:
			for a := Aarch64Architecture(0); a < aarch64Count; a++ {
				out = append(out, Aarch64Arch(a))
			}
		default:
			out = append(out, Arch(k))
		}
	}
	return out
}
