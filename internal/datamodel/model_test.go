package datamodel

import "testing"

func TestCDataModelTable(t *testing.T) {
	type row struct {
		ptr, short, integer, long, longLong Size
	}
	tests := []struct {
		model CDataModel
		want  row
	}{
		{LP32, row{U32, U16, U16, U32, U64}},
		{ILP32, row{U32, U16, U32, U32, U64}},
		{LLP64, row{U64, U16, U32, U32, U64}},
		{LP64, row{U64, U16, U32, U64, U64}},
		{ILP64, row{U64, U16, U32, U32, U64}},
	}
	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			got := row{tt.model.PointerWidth(), tt.model.ShortSize(), tt.model.IntSize(), tt.model.LongSize(), tt.model.LongLongSize()}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if tt.model.FloatSize() != U32 || tt.model.DoubleSize() != U64 {
				t.Fatal("float/double must be 32/64 bits")
			}
		})
	}
}

func TestLP64Scenario(t *testing.T) {
	if LP64.PointerWidth().Bits() != 64 {
		t.Fatalf("LP64 pointer = %v", LP64.PointerWidth())
	}
	if LP64.IntSize().Bits() != 32 {
		t.Fatalf("LP64 int = %v", LP64.IntSize())
	}
	if U32.Bytes() != 4 {
		t.Fatalf("32-bit size is %d bytes", U32.Bytes())
	}
}

func TestSizeBytes(t *testing.T) {
	for _, s := range []Size{U16, U32, U64} {
		if s.Bytes()*BitsPerByte != s.Bits() {
			t.Errorf("%v: %d bytes for %d bits", s, s.Bytes(), s.Bits())
		}
	}
}

func TestSizeBytesPanicsOnPartialByte(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bytes on a 12-bit size did not panic")
		}
	}()
	_ = Size(12).Bytes()
}

func TestParseCDataModel(t *testing.T) {
	for _, m := range All() {
		got, ok := ParseCDataModel(m.String())
		if !ok || got != m {
			t.Errorf("ParseCDataModel(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if got, ok := ParseCDataModel("LLP64"); !ok || got != LLP64 {
		t.Errorf("LLP64 = %v, %v", got, ok)
	}
	if _, ok := ParseCDataModel("lp128"); ok {
		t.Error("lp128 accepted")
	}
	if len(All()) != 5 {
		t.Errorf("All() = %v", All())
	}
}
