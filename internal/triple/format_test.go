package triple

import "testing"

func TestWellKnownTargetsRoundTrip(t *testing.T) {
	targets := WellKnown()
	if len(targets) < 100 {
		t.Fatalf("only %d well-known targets", len(targets))
	}
	for _, target := range targets {
		tr, err := Parse(target)
		if err != nil {
			t.Fatalf("Parse(%q): %v", target, err)
		}
		if tr.Architecture.IsUnknown() {
			t.Errorf("%s: unknown architecture", target)
		}
		if got := tr.String(); got != target {
			t.Errorf("Parse(%q).String() = %q", target, got)
		}
	}
}

func TestCanonicalizationIsIdempotent(t *testing.T) {
	inputs := append(WellKnown(),
		"arm64-apple-darwin",
		"x86_64-linux",
		"x86_64-unknown",
		"x86_64-unknown-linux-unknown-elf",
		"x86_64-unknown-unknown-unknown-unknown",
		"arm-none-eabi",
		"thumbv7m-unknown-none-eabi",
		"msp430-unknown-none",
		"aarch64-unknown-fuchsia",
		"i686-unknown-linux-android",
		"unknown-unknown-unknown",
		"wasm32-wasm",
		"x86_64-pc",
		"mips-sun-none-elf",
	)
	for _, in := range inputs {
		first, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		canon := first.String()
		second, err := Parse(canon)
		if err != nil {
			t.Fatalf("reparse of %q (from %q): %v", canon, in, err)
		}
		if second != first {
			t.Errorf("%q -> %q reparsed to %+v, want %+v", in, canon, second, first)
		}
		if again := second.String(); again != canon {
			t.Errorf("%q formatted as %q then %q", in, canon, again)
		}
	}
}

func TestFormatEveryFieldCombination(t *testing.T) {
	// Every architecture paired with every vendor/os/env/format sample must
	// survive a format-parse cycle.
	vendors := Vendors()
	oses := OperatingSystems()
	envs := []Environment{EnvUnknown, EnvGnu, EnvAndroid, EnvAndroideabi, EnvEabi}
	formats := []BinaryFormat{FormatUnknown, FormatElf, FormatWasm}
	for _, a := range Architectures() {
		for _, v := range vendors {
			for _, o := range oses {
				for _, e := range envs {
					for _, f := range formats {
						tr := Triple{Architecture: a, Vendor: v, OperatingSystem: o, Environment: e, BinaryFormat: f}
						s := tr.String()
						got, err := Parse(s)
						if err != nil {
							t.Fatalf("%+v formatted as %q which fails to parse: %v", tr, s, err)
						}
						if got != tr {
							t.Fatalf("%q reparsed to %+v, want %+v", s, got, tr)
						}
					}
				}
			}
		}
	}
}

func TestFormatOmitsVendor(t *testing.T) {
	tests := []struct {
		tr   Triple
		want string
	}{
		{Triple{Architecture: Aarch64Arch(Aarch64), OperatingSystem: OSFuchsia}, "aarch64-fuchsia"},
		{Triple{Architecture: ArmArch(Armv7), OperatingSystem: OSLinux, Environment: EnvAndroideabi}, "armv7-linux-androideabi"},
		{Triple{Architecture: ArmArch(Thumbv7em), OperatingSystem: OSNone, Environment: EnvEabihf}, "thumbv7em-none-eabihf"},
		{Triple{Architecture: Arch(ArchRiscv32imc), OperatingSystem: OSNone, BinaryFormat: FormatElf}, "riscv32imc-unknown-none-elf"},
		{Triple{Architecture: ArmArch(ArmGeneric), OperatingSystem: OSNone, Environment: EnvEabi}, "arm-unknown-none-eabi"},
		{Triple{Architecture: Arch(ArchX86_64), Vendor: VendorPc, OperatingSystem: OSFuchsia}, "x86_64-pc-fuchsia"},
		{Triple{Architecture: Arch(ArchX86_64), OperatingSystem: OSLinux, Environment: EnvGnu}, "x86_64-unknown-linux-gnu"},
	}
	for _, tt := range tests {
		if got := tt.tr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
