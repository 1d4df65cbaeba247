package triple

import "strings"

// String renders the canonical form of t.
//
// The vendor is dropped for the handful of targets that are conventionally
// written without one (Android, Fuchsia and some bare-metal ARM/MSP430
// targets). The environment and binary format are written only when they are
// not Unknown.
func (t Triple) String() string {
	var b strings.Builder
	b.Grow(32)
	b.WriteString(t.Architecture.String())
	if !t.omitsVendor() {
		b.WriteByte('-')
		b.WriteString(t.Vendor.String())
	}
	b.WriteByte('-')
	b.WriteString(t.OperatingSystem.String())
	if t.Environment != EnvUnknown {
		b.WriteByte('-')
		b.WriteString(t.Environment.String())
	}
	if t.BinaryFormat != FormatUnknown {
		b.WriteByte('-')
		b.WriteString(t.BinaryFormat.String())
	}
	return b.String()
}

func (t Triple) omitsVendor() bool {
	if t.Vendor != VendorUnknown {
		return false
	}
	switch t.OperatingSystem {
	case OSFuchsia:
		return true
	case OSLinux:
		return t.Environment == EnvAndroid || t.Environment == EnvAndroideabi
	case OSNone:
		return isBareMetalWithoutVendor(t.Architecture)
	default:
		return false
	}
}

func isBareMetalWithoutVendor(a Architecture) bool {
	if a.Kind() == ArchMsp430 {
		return true
	}
	arm, ok := a.Arm()
	if !ok {
		return false
	}
	switch arm {
	case Armebv7r, Armv7r, Thumbv6m, Thumbv7em, Thumbv7m, Thumbv8mBase, Thumbv8mMain:
		return true
	default:
		return false
	}
}
