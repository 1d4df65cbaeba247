package triple

import "fmt"

// lookupTable inverts a names table. Every canonical name must be unique; a
// duplicate is a bug in the table and is reported at init time.
func lookupTable[T ~uint8](names []string) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names {
		if _, dup := m[name]; dup {
			panic(fmt.Sprintf("triple: duplicate vocabulary entry %q", name))
		}
		m[name] = T(i)
	}
	return m
}

func nameOf[T ~uint8](names []string, v T, typeName string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typeName, uint8(v))
}

func enumerate[T ~uint8](n T) []T {
	out := make([]T, 0, n)
	for v := T(0); v < n; v++ {
		out = append(out, v)
	}
	return out
}

// Vendors lists every vendor, Unknown first.
func Vendors() []Vendor { return enumerate(vendorCount) }

// OperatingSystems lists every operating system, Unknown first.
func OperatingSystems() []OperatingSystem { return enumerate(osCount) }

// Environments lists every environment, Unknown first.
func Environments() []Environment { return enumerate(envCount) }

// BinaryFormats lists every binary format, Unknown first.
func BinaryFormats() []BinaryFormat { return enumerate(formatCount) }
