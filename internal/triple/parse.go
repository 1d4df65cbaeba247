package triple

import (
	"fmt"
	"strings"
)

// componentOrder is the order in which fields after the architecture are
// claimed. A segment may only take a field at or after the cursor.
var componentOrder = [...]Field{FieldVendor, FieldOperatingSystem, FieldEnvironment, FieldBinaryFormat}

// classifier assigns the segments that follow the architecture. It is a cursor
// over componentOrder: the first field accepting a segment wins and the cursor
// moves past it, so assignment never goes backwards.
type classifier struct {
	t      Triple
	cursor int
}

// next classifies seg. last marks the final segment, the only one allowed to
// be a binary format. On failure it returns the fields that were tried.
func (c *classifier) next(seg string, last bool) (Field, []Field, bool) {
	var tried []Field
	for i := c.cursor; i < len(componentOrder); i++ {
		f := componentOrder[i]
		if f == FieldBinaryFormat && !last {
			break
		}
		tried = append(tried, f)
		if c.assign(f, seg) {
			c.cursor = i + 1
			return f, nil, true
		}
	}
	return 0, tried, false
}

func (c *classifier) assign(f Field, seg string) bool {
	switch f {
	case FieldVendor:
		v, ok := ParseVendor(seg)
		if ok {
			c.t.Vendor = v
		}
		return ok
	case FieldOperatingSystem:
		o, ok := ParseOperatingSystem(seg)
		if ok {
			c.t.OperatingSystem = o
		}
		return ok
	case FieldEnvironment:
		e, ok := ParseEnvironment(seg)
		if ok {
			c.t.Environment = e
		}
		return ok
	case FieldBinaryFormat:
		b, ok := ParseBinaryFormat(seg)
		if ok {
			c.t.BinaryFormat = b
		}
		return ok
	default:
		return false
	}
}

// Parse converts a hyphen-separated target triple into a Triple.
//
// The result does not always format back to s (aliases such as "arm64" and
// dropped "unknown" fields are canonicalized), but its String form always
// parses back to the same Triple.
func Parse(s string) (Triple, error) {
	segs := strings.Split(s, "-")
	if len(segs) < 2 {
		return Triple{}, &ParseError{Kind: ParseErrMalformed, Input: s}
	}

	arch, ok := ParseArchitecture(segs[0])
	if !ok {
		return Triple{}, &ParseError{
			Kind:    ParseErrUnrecognizedArchitecture,
			Input:   s,
			Segment: segs[0],
			Tried:   []Field{FieldArchitecture},
		}
	}

	c := classifier{t: Triple{Architecture: arch}}
	for i := 1; i < len(segs); i++ {
		if _, tried, ok := c.next(segs[i], i == len(segs)-1); !ok {
			return Triple{}, &ParseError{
				Kind:    ParseErrUnrecognizedComponent,
				Input:   s,
				Segment: segs[i],
				Index:   i,
				Tried:   tried,
			}
		}
	}
	return c.t, nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Triple {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("triple: MustParse(%q): %v", s, err))
	}
	return t
}
