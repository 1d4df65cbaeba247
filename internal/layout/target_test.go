package layout

import (
	"errors"
	"testing"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

func mustTarget(t *testing.T, s string) Target {
	t.Helper()
	tgt, err := NewTarget(triple.MustParse(s))
	if err != nil {
		t.Fatalf("NewTarget(%s): %v", s, err)
	}
	return tgt
}

func TestNewTargetDataModel(t *testing.T) {
	tests := []struct {
		triple  string
		model   datamodel.CDataModel
		ptrSize int
		endian  triple.Endianness
	}{
		{"x86_64-unknown-linux-gnu", datamodel.LP64, 8, triple.Little},
		{"x86_64-pc-windows-msvc", datamodel.LLP64, 8, triple.Little},
		{"aarch64-pc-windows-msvc", datamodel.LLP64, 8, triple.Little},
		{"i686-pc-windows-msvc", datamodel.ILP32, 4, triple.Little},
		{"armv7-unknown-linux-gnueabihf", datamodel.ILP32, 4, triple.Little},
		{"wasm32-unknown-unknown", datamodel.ILP32, 4, triple.Little},
		{"s390x-unknown-linux-gnu", datamodel.LP64, 8, triple.Big},
		{"aarch64be-unknown-linux-gnu", datamodel.LP64, 8, triple.Big},
	}
	for _, tt := range tests {
		tgt := mustTarget(t, tt.triple)
		if tgt.Model != tt.model || tgt.PtrSize != tt.ptrSize || tgt.PtrAlign != tt.ptrSize || tgt.Endian != tt.endian {
			t.Errorf("%s: got %+v", tt.triple, tgt)
		}
	}
}

func TestNewTargetErrors(t *testing.T) {
	_, err := NewTarget(triple.Unknown())
	var le *LayoutError
	if !errors.As(err, &le) || le.Kind != LayoutErrUnknownArchitecture {
		t.Fatalf("unknown arch: %v", err)
	}
	_, err = NewTarget(triple.MustParse("msp430-none-elf"))
	if !errors.As(err, &le) || le.Kind != LayoutErrNoDataModel || le.Bits != 16 {
		t.Fatalf("msp430: %v", err)
	}
	if le.Error() == "" {
		t.Fatal("empty message")
	}
}

func TestX86_64LinuxGNU(t *testing.T) {
	tgt := X86_64LinuxGNU()
	if tgt.Triple.String() != "x86_64-unknown-linux-gnu" || tgt.PtrSize != 8 || tgt.PtrAlign != 8 {
		t.Fatalf("got %+v", tgt)
	}
}

func TestLayoutOf(t *testing.T) {
	linux64 := mustTarget(t, "x86_64-unknown-linux-gnu")
	win64 := mustTarget(t, "x86_64-pc-windows-msvc")
	i686 := mustTarget(t, "i686-unknown-linux-gnu")
	i686win := mustTarget(t, "i686-pc-windows-msvc")

	tests := []struct {
		name string
		tgt  Target
		c    CType
		want TypeLayout
	}{
		{"linux64 long", linux64, CLong, TypeLayout{8, 8}},
		{"win64 long", win64, CLong, TypeLayout{4, 4}},
		{"win64 pointer", win64, CPointer, TypeLayout{8, 8}},
		{"linux64 short", linux64, CShort, TypeLayout{2, 2}},
		{"i686 double", i686, CDouble, TypeLayout{8, 4}},
		{"i686 long long", i686, CLongLong, TypeLayout{8, 4}},
		{"i686 windows double", i686win, CDouble, TypeLayout{8, 8}},
		{"i686 pointer", i686, CPointer, TypeLayout{4, 4}},
	}
	for _, tt := range tests {
		if got := tt.tgt.LayoutOf(tt.c); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
	if linux64.SizeOf(CInt) != 4 || linux64.AlignOf(CInt) != 4 {
		t.Error("int must be 4 bytes on LP64")
	}
}

func TestWithDataModel(t *testing.T) {
	tgt := X86_64LinuxGNU().WithDataModel(datamodel.ILP64)
	if tgt.SizeOf(CInt) != 4 || tgt.SizeOf(CLong) != 4 || tgt.PtrSize != 8 {
		t.Fatalf("ILP64 override: %+v", tgt)
	}
	tgt = tgt.WithDataModel(datamodel.ILP32)
	if tgt.PtrSize != 4 || tgt.SizeOf(CPointer) != 4 {
		t.Fatalf("ILP32 override: %+v", tgt)
	}
}

func TestArrayOf(t *testing.T) {
	tgt := X86_64LinuxGNU()
	got, err := tgt.ArrayOf(CInt, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != (TypeLayout{Size: 40, Align: 4}) {
		t.Fatalf("int[10] = %+v", got)
	}
	var le *LayoutError
	if _, err := tgt.ArrayOf(CInt, -1); !errors.As(err, &le) || le.Kind != LayoutErrNegativeLength {
		t.Fatalf("negative: %v", err)
	}
	// 32-bit hosts fail the length conversion before the multiplication.
	_, err = tgt.ArrayOf(CDouble, 1<<62)
	if !errors.As(err, &le) || (le.Kind != LayoutErrOverflow && le.Kind != LayoutErrLengthConversion) {
		t.Fatalf("overflow: %v", err)
	}
}

func TestCTypeNames(t *testing.T) {
	for _, c := range CTypes {
		if c.String() == "" {
			t.Fatalf("CType %d has no name", c)
		}
	}
	if CType(99).String() != "CType(99)" {
		t.Fatal("unexpected name for invalid CType")
	}
}
