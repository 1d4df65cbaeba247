package triple

import "github.com/bytecodealliance/target-lexicon/internal/datamodel"

// Triple is a parsed target triple. Fields the input left out hold their
// Unknown value; the zero Triple is entirely unknown.
type Triple struct {
	Architecture    Architecture
	Vendor          Vendor
	OperatingSystem OperatingSystem
	Environment     Environment
	BinaryFormat    BinaryFormat
}

// Unknown returns a triple with every field set to Unknown.
func Unknown() Triple {
	return Triple{}
}

// Endianness returns the byte order of the triple's architecture.
func (t Triple) Endianness() (Endianness, error) {
	return t.Architecture.Endianness()
}

// PointerWidth returns the pointer width of the triple's architecture.
func (t Triple) PointerWidth() (datamodel.Size, error) {
	return t.Architecture.PointerWidth()
}

// IsThumb reports whether the triple's architecture executes Thumb code.
func (t Triple) IsThumb() (bool, error) {
	return t.Architecture.IsThumb()
}

// DefaultBinaryFormat returns the binary format implied by the operating
// system (and, for wasm, the architecture). It ignores t.BinaryFormat and is
// meant as the fallback when that field is FormatUnknown.
func (t Triple) DefaultBinaryFormat() BinaryFormat {
	switch t.OperatingSystem {
	case OSNone:
		return FormatUnknown
	case OSDarwin, OSIos:
		return FormatMacho
	case OSWindows:
		return FormatCoff
	case OSNebulet, OSEmscripten, OSUnknown:
		if t.Architecture == Arch(ArchWasm32) {
			return FormatWasm
		}
		return FormatUnknown
	default:
		return FormatElf
	}
}

// EffectiveBinaryFormat returns t.BinaryFormat when it was given explicitly
// and DefaultBinaryFormat otherwise.
func (t Triple) EffectiveBinaryFormat() BinaryFormat {
	if t.BinaryFormat != FormatUnknown {
		return t.BinaryFormat
	}
	return t.DefaultBinaryFormat()
}
