package triple

import (
	"runtime"
	"sync"
)

// goarchs maps runtime.GOARCH values to architectures. GOARCH values missing
// here (loong64, ppc64 with ELFv1 variants, ...) resolve to Unknown.
var goarchs = map[string]Architecture{
	"386":      Arch(ArchI686),
	"amd64":    Arch(ArchX86_64),
	"arm":      ArmArch(Armv7),
	"arm64":    Aarch64Arch(Aarch64),
	"arm64be":  Aarch64Arch(Aarch64be),
	"armbe":    ArmArch(Armeb),
	"mips":     Arch(ArchMips),
	"mipsle":   Arch(ArchMipsel),
	"mips64":   Arch(ArchMips64),
	"mips64le": Arch(ArchMips64el),
	"ppc":      Arch(ArchPowerpc),
	"ppc64":    Arch(ArchPowerpc64),
	"ppc64le":  Arch(ArchPowerpc64le),
	"riscv":    Arch(ArchRiscv32),
	"riscv64":  Arch(ArchRiscv64),
	"s390x":    Arch(ArchS390x),
	"sparc":    Arch(ArchSparc),
	"sparc64":  Arch(ArchSparc64),
	"wasm":     Arch(ArchWasm32),
}

type hostOS struct {
	vendor Vendor
	os     OperatingSystem
	env    Environment
}

// goosen maps runtime.GOOS values to the vendor, OS and default environment
// that toolchains conventionally use for them.
var goosen = map[string]hostOS{
	"android":   {os: OSLinux, env: EnvAndroid},
	"darwin":    {vendor: VendorApple, os: OSDarwin},
	"dragonfly": {os: OSDragonfly},
	"freebsd":   {os: OSFreebsd},
	"fuchsia":   {os: OSFuchsia},
	"hermit":    {os: OSHermit},
	"illumos":   {vendor: VendorSun, os: OSSolaris},
	"ios":       {vendor: VendorApple, os: OSIos},
	"js":        {os: OSUnknown},
	"linux":     {os: OSLinux, env: EnvGnu},
	"netbsd":    {os: OSNetbsd},
	"openbsd":   {os: OSOpenbsd},
	"solaris":   {vendor: VendorSun, os: OSSolaris},
	"wasip1":    {os: OSUnknown},
	"windows":   {vendor: VendorPc, os: OSWindows, env: EnvGnu},
}

// HostFor returns the triple for a GOOS/GOARCH pair. It is a pure table lookup;
// unrecognised values leave the corresponding fields Unknown.
func HostFor(goos, goarch string) Triple {
	t := Triple{Architecture: goarchs[goarch]}
	if h, ok := goosen[goos]; ok {
		t.Vendor = h.vendor
		t.OperatingSystem = h.os
		t.Environment = h.env
	}
	// 32-bit ARM ABIs spell out the float convention.
	if t.Architecture.Kind() == ArchArm {
		switch t.Environment {
		case EnvGnu:
			t.Environment = EnvGnueabihf
		case EnvAndroid:
			t.Environment = EnvAndroideabi
		}
	}
	return t
}

var host = sync.OnceValue(func() Triple {
	return HostFor(runtime.GOOS, runtime.GOARCH)
})

// Host returns the triple of the platform this program was compiled for.
// The value is computed on first use and shared afterwards.
func Host() Triple {
	return host()
}
