package triple

// BinaryFormat is the object file format. It is usually omitted from triples
// and implied by the other fields; see Triple.DefaultBinaryFormat.
type BinaryFormat uint8

const (
	FormatUnknown BinaryFormat = iota
	FormatElf
	FormatCoff
	FormatMacho
	FormatWasm

	formatCount
)

var formatNames = [formatCount]string{
	FormatUnknown: "unknown",
	FormatElf:     "elf",
	FormatCoff:    "coff",
	FormatMacho:   "macho",
	FormatWasm:    "wasm",
}

var formatByName = lookupTable[BinaryFormat](formatNames[:])

func (f BinaryFormat) String() string { return nameOf(formatNames[:], f, "BinaryFormat") }

// ParseBinaryFormat recognises a binary format name.
func ParseBinaryFormat(s string) (BinaryFormat, bool) {
	f, ok := formatByName[s]
	return f, ok
}
