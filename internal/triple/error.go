package triple

import (
	"fmt"
	"strings"
)

// ParseErrorKind enumerates the ways Parse can fail.
type ParseErrorKind uint8

const (
	// ParseErrMalformed means the input has fewer than two segments.
	ParseErrMalformed ParseErrorKind = iota + 1
	// ParseErrUnrecognizedArchitecture means segment 0 is not an architecture.
	ParseErrUnrecognizedArchitecture
	// ParseErrUnrecognizedComponent means a later segment fits none of the
	// fields still open at its position.
	ParseErrUnrecognizedComponent
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrMalformed:
		return "malformed triple"
	case ParseErrUnrecognizedArchitecture:
		return "unrecognized architecture"
	case ParseErrUnrecognizedComponent:
		return "unrecognized component"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", k)
	}
}

// Sentinels for errors.Is; they match any *ParseError of the same kind.
var (
	ErrMalformedTriple          = &ParseError{Kind: ParseErrMalformed}
	ErrUnrecognizedArchitecture = &ParseError{Kind: ParseErrUnrecognizedArchitecture}
	ErrUnrecognizedComponent    = &ParseError{Kind: ParseErrUnrecognizedComponent}
)

// ParseError describes why a string is not a target triple.
type ParseError struct {
	Kind    ParseErrorKind
	Input   string
	Segment string  // offending segment; empty for ParseErrMalformed
	Index   int     // position of Segment in the hyphen-split input
	Tried   []Field // fields Segment was tested against (ParseErrUnrecognizedComponent)
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ParseErrMalformed:
		return fmt.Sprintf("malformed target triple %q: expected at least 2 '-'-separated segments", e.Input)
	case ParseErrUnrecognizedArchitecture:
		return fmt.Sprintf("unrecognized architecture %q in target triple %q", e.Segment, e.Input)
	case ParseErrUnrecognizedComponent:
		if len(e.Tried) == 0 {
			return fmt.Sprintf("unrecognized component %q at segment %d of target triple %q: every field is already assigned",
				e.Segment, e.Index, e.Input)
		}
		names := make([]string, 0, len(e.Tried))
		for _, f := range e.Tried {
			names = append(names, f.String())
		}
		return fmt.Sprintf("unrecognized component %q at segment %d of target triple %q: not a %s",
			e.Segment, e.Index, e.Input, strings.Join(names, " or "))
	default:
		return fmt.Sprintf("target triple error kind=%d input=%q", e.Kind, e.Input)
	}
}

// Is matches another *ParseError with the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
