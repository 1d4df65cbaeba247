package layout

import (
	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

// Target describes the ABI target triple and its pointer properties.
type Target struct {
	Triple   triple.Triple
	PtrSize  int // bytes
	PtrAlign int // bytes
	Model    datamodel.CDataModel
	Endian   triple.Endianness
}

// NewTarget derives the ABI properties of t.
//
// The C data model follows common practice: LLP64 on 64-bit Windows, LP64 on
// other 64-bit targets, ILP32 on 32-bit targets. 16-bit targets have no
// standard model and are rejected; use WithDataModel on a Target built some
// other way if one is needed.
func NewTarget(t triple.Triple) (Target, error) {
	width, err := t.PointerWidth()
	if err != nil {
		return Target{}, &LayoutError{Kind: LayoutErrUnknownArchitecture, Triple: t}
	}
	endian, err := t.Endianness()
	if err != nil {
		return Target{}, &LayoutError{Kind: LayoutErrUnknownArchitecture, Triple: t}
	}
	var model datamodel.CDataModel
	switch width {
	case datamodel.U64:
		if t.OperatingSystem == triple.OSWindows {
			model = datamodel.LLP64
		} else {
			model = datamodel.LP64
		}
	case datamodel.U32:
		model = datamodel.ILP32
	default:
		return Target{}, &LayoutError{Kind: LayoutErrNoDataModel, Triple: t, Bits: width.Bits()}
	}
	return Target{
		Triple:   t,
		PtrSize:  width.Bytes(),
		PtrAlign: width.Bytes(),
		Model:    model,
		Endian:   endian,
	}, nil
}

// WithDataModel returns a copy of tgt using model for C type sizes. Pointer
// size and alignment follow the model.
func (tgt Target) WithDataModel(model datamodel.CDataModel) Target {
	tgt.Model = model
	tgt.PtrSize = model.PointerWidth().Bytes()
	tgt.PtrAlign = tgt.PtrSize
	return tgt
}

// X86_64LinuxGNU is the target most of the toolchain is tested against.
func X86_64LinuxGNU() Target {
	tgt, err := NewTarget(triple.MustParse("x86_64-unknown-linux-gnu"))
	if err != nil {
		panic(err)
	}
	return tgt
}
