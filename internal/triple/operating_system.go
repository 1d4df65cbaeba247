package triple

// OperatingSystem is the operating system field. It sometimes implies an
// environment, and sometimes isn't an actual operating system ("none" is the
// bare-metal marker).
type OperatingSystem uint8

const (
	OSUnknown OperatingSystem = iota
	OSBitrig
	OSCloudabi
	OSDarwin
	OSDragonfly
	OSEmscripten
	OSFreebsd
	OSFuchsia
	OSHaiku
	OSHermit
	OSIos
	OSL4re
	OSLinux
	OSNebulet
	OSNetbsd
	OSNone
	OSOpenbsd
	OSRedox
	OSSolaris
	OSUefi
	OSWindows

	osCount
)

var osNames = [osCount]string{
	OSUnknown:    "unknown",
	OSBitrig:     "bitrig",
	OSCloudabi:   "cloudabi",
	OSDarwin:     "darwin",
	OSDragonfly:  "dragonfly",
	OSEmscripten: "emscripten",
	OSFreebsd:    "freebsd",
	OSFuchsia:    "fuchsia",
	OSHaiku:      "haiku",
	OSHermit:     "hermit",
	OSIos:        "ios",
	OSL4re:       "l4re",
	OSLinux:      "linux",
	OSNebulet:    "nebulet",
	OSNetbsd:     "netbsd",
	OSNone:       "none",
	OSOpenbsd:    "openbsd",
	OSRedox:      "redox",
	OSSolaris:    "solaris",
	OSUefi:       "uefi",
	OSWindows:    "windows",
}

var osByName = lookupTable[OperatingSystem](osNames[:])

func (o OperatingSystem) String() string { return nameOf(osNames[:], o, "OperatingSystem") }

// ParseOperatingSystem recognises an operating system name.
func ParseOperatingSystem(s string) (OperatingSystem, bool) {
	o, ok := osByName[s]
	return o, ok
}
