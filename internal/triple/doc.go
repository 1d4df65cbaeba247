// Package triple parses, classifies and formats target triples.
//
// A target triple such as "x86_64-unknown-linux-gnu" names an architecture,
// a vendor, an operating system, an ABI environment and (rarely) a binary
// format. Parse turns the hyphen-separated form into a Triple whose fields are
// closed enumerations; Triple.String renders the canonical form back.
//
// # Vocabularies
//
// Every field type maps each value to exactly one canonical string and accepts
// a fixed set of literal spellings:
//
//	ParseVendor("apple")           // VendorApple, true
//	ParseArchitecture("arm64")     // Aarch64Arch(Aarch64), true (alias)
//	ParseOperatingSystem("Linux")  // matching is case-sensitive: false
//
// "unknown" is a literal in every vocabulary and maps to the Unknown value,
// which means "not specified". A token missing from a vocabulary is not
// Unknown; it is a recognition failure.
//
// # Parsing
//
// Segment 0 must be an architecture. The remaining segments are classified
// left to right against Vendor, OperatingSystem, Environment and, for the last
// segment only, BinaryFormat. The first category that accepts a segment wins
// and later segments may only use later categories, so in
// "riscv32-unknown-unknown" the first "unknown" is the vendor and the second
// is the operating system.
//
// # Host
//
// Host returns the triple of the platform the program was built for. It is
// computed once and shared.
package triple
