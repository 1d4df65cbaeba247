package triple

// DefaultToHost holds an optional triple. Its zero value stands for the host,
// which makes it a convenient type for configuration fields that may be left
// out.
type DefaultToHost struct {
	t   Triple
	set bool
}

// Explicit returns a DefaultToHost pinned to t.
func Explicit(t Triple) DefaultToHost {
	return DefaultToHost{t: t, set: true}
}

// Triple returns the explicit triple, or Host() when none was set.
func (d DefaultToHost) Triple() Triple {
	if !d.set {
		return Host()
	}
	return d.t
}

// IsHost reports whether d falls back to the host triple.
func (d DefaultToHost) IsHost() bool { return !d.set }

func (d DefaultToHost) String() string { return d.Triple().String() }

// MarshalText writes the explicit triple, or nothing for the host default.
func (d DefaultToHost) MarshalText() ([]byte, error) {
	if !d.set {
		return nil, nil
	}
	return d.t.MarshalText()
}

// UnmarshalText parses a triple. Empty text and the literal "host" select the
// host default.
func (d *DefaultToHost) UnmarshalText(text []byte) error {
	if len(text) == 0 || string(text) == "host" {
		*d = DefaultToHost{}
		return nil
	}
	var t Triple
	if err := t.UnmarshalText(text); err != nil {
		return err
	}
	*d = Explicit(t)
	return nil
}
