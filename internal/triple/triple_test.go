package triple

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
)

func TestDerivedQueriesCoverEveryArchitecture(t *testing.T) {
	for _, a := range Architectures() {
		_, endErr := a.Endianness()
		w, widthErr := a.PointerWidth()
		_, thumbErr := a.IsThumb()
		if a.IsUnknown() {
			if !errors.Is(endErr, ErrNotRepresentable) || !errors.Is(widthErr, ErrNotRepresentable) || !errors.Is(thumbErr, ErrNotRepresentable) {
				t.Fatalf("unknown architecture: got %v, %v, %v", endErr, widthErr, thumbErr)
			}
			continue
		}
		if endErr != nil || widthErr != nil || thumbErr != nil {
			t.Fatalf("%v: got %v, %v, %v", a, endErr, widthErr, thumbErr)
		}
		switch w {
		case datamodel.U16, datamodel.U32, datamodel.U64:
		default:
			t.Fatalf("%v: pointer width %d", a, w)
		}
	}
}

func TestEndianness(t *testing.T) {
	tests := []struct {
		arch Architecture
		want Endianness
	}{
		{Arch(ArchX86_64), Little},
		{Arch(ArchRiscv32), Little},
		{Arch(ArchMips), Big},
		{Arch(ArchMips64el), Little},
		{Arch(ArchPowerpc64), Big},
		{Arch(ArchPowerpc64le), Little},
		{Arch(ArchS390x), Big},
		{Arch(ArchSparcv9), Big},
		{Arch(ArchMsp430), Little},
		{ArmArch(Armv7), Little},
		{ArmArch(Armeb), Big},
		{ArmArch(Armebv7r), Big},
		{ArmArch(Thumbeb), Big},
		{ArmArch(Thumbv7em), Little},
		{Aarch64Arch(Aarch64), Little},
		{Aarch64Arch(Aarch64be), Big},
	}
	for _, tt := range tests {
		got, err := tt.arch.Endianness()
		if err != nil {
			t.Fatalf("%v: %v", tt.arch, err)
		}
		if got != tt.want {
			t.Errorf("%v: endianness %v, want %v", tt.arch, got, tt.want)
		}
	}
}

func TestPointerWidth(t *testing.T) {
	tests := []struct {
		arch Architecture
		want datamodel.Size
	}{
		{Arch(ArchMsp430), datamodel.U16},
		{Arch(ArchI686), datamodel.U32},
		{Arch(ArchAsmjs), datamodel.U32},
		{Arch(ArchWasm32), datamodel.U32},
		{Arch(ArchMips), datamodel.U32},
		{Arch(ArchPowerpc), datamodel.U32},
		{Arch(ArchSparc), datamodel.U32},
		{Arch(ArchX86_64), datamodel.U64},
		{Arch(ArchRiscv64), datamodel.U64},
		{Arch(ArchSparc64), datamodel.U64},
		{ArmArch(Thumbv8mMain), datamodel.U32},
		{Aarch64Arch(Aarch64be), datamodel.U64},
	}
	for _, tt := range tests {
		got, err := tt.arch.PointerWidth()
		if err != nil {
			t.Fatalf("%v: %v", tt.arch, err)
		}
		if got != tt.want {
			t.Errorf("%v: pointer width %v, want %v", tt.arch, got, tt.want)
		}
	}
}

func TestIsThumb(t *testing.T) {
	for _, a := range Architectures() {
		if a.IsUnknown() {
			continue
		}
		got, err := a.IsThumb()
		if err != nil {
			t.Fatal(err)
		}
		arm, isArm := a.Arm()
		want := isArm && len(arm.String()) > 5 && arm.String()[:5] == "thumb"
		if got != want {
			t.Errorf("%v: IsThumb = %v, want %v", a, got, want)
		}
	}
}

func TestTripleIsThumb(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"thumbv7em-none-eabihf", true},
		{"thumbv6m-none-eabi", true},
		{"armv7-unknown-linux-gnueabihf", false},
		{"aarch64-apple-ios", false},
		{"x86_64-unknown-linux-gnu", false},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.in).IsThumb()
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: IsThumb = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := Unknown().IsThumb(); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("unknown triple: err = %v, want ErrNotRepresentable", err)
	}
}

func TestEndiannessByteOrder(t *testing.T) {
	if Big.ByteOrder() != binary.BigEndian || Little.ByteOrder() != binary.LittleEndian {
		t.Fatal("byte order mismatch")
	}
}

func TestDefaultBinaryFormat(t *testing.T) {
	tests := []struct {
		in   string
		want BinaryFormat
	}{
		{"x86_64-unknown-linux-gnu", FormatElf},
		{"x86_64-apple-darwin", FormatMacho},
		{"aarch64-apple-ios", FormatMacho},
		{"x86_64-pc-windows-msvc", FormatCoff},
		{"thumbv7m-none-eabi", FormatUnknown},
		{"wasm32-unknown-unknown", FormatWasm},
		{"wasm32-unknown-emscripten", FormatWasm},
		{"wasm32-experimental-emscripten", FormatWasm},
		{"asmjs-unknown-emscripten", FormatUnknown},
		{"riscv32-unknown-unknown", FormatUnknown},
		{"x86_64-unknown-redox", FormatElf},
		{"x86_64-unknown-uefi", FormatElf},
	}
	for _, tt := range tests {
		tr := MustParse(tt.in)
		if got := tr.DefaultBinaryFormat(); got != tt.want {
			t.Errorf("%s: DefaultBinaryFormat = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultBinaryFormatIgnoresExplicitField(t *testing.T) {
	tr := MustParse("riscv32imac-unknown-none-elf")
	if tr.BinaryFormat != FormatElf {
		t.Fatalf("binary format = %v", tr.BinaryFormat)
	}
	if got := tr.DefaultBinaryFormat(); got != FormatUnknown {
		t.Fatalf("DefaultBinaryFormat = %v, want unknown", got)
	}
	if got := tr.EffectiveBinaryFormat(); got != FormatElf {
		t.Fatalf("EffectiveBinaryFormat = %v, want elf", got)
	}
}

func TestZeroTripleIsUnknown(t *testing.T) {
	var z Triple
	if z != Unknown() || !z.Architecture.IsUnknown() {
		t.Fatal("zero triple must be unknown")
	}
	if _, err := z.PointerWidth(); !errors.Is(err, ErrNotRepresentable) {
		t.Fatalf("err = %v", err)
	}
	if got := z.String(); got != "unknown-unknown-unknown" {
		t.Fatalf("String = %q", got)
	}
}
