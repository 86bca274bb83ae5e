package mime

// Matcher tracks the best match between the types a selection advertises
// and the wanted list. The match only ever moves towards the front of the
// list.
type Matcher struct {
	wanted List
	best   int
}

func NewMatcher(wanted List) *Matcher {
	return &Matcher{
		wanted: wanted,
		best:   -1,
	}
}

// Observe records an advertised type and reports whether the best match
// improved.
func (m *Matcher) Observe(advertised string) bool {
	n := m.wanted.Index(advertised)
	if n < 0 {
		return false
	}

	if m.best >= 0 && n >= m.best {
		return false
	}

	m.best = n
	return true
}

// Best returns the matched type. ok is false while nothing advertised is
// wanted.
func (m *Matcher) Best() (typ string, ok bool) {
	if m.best < 0 {
		return "", false
	}

	return m.wanted[m.best], true
}

// Reset forgets every observed type.
func (m *Matcher) Reset() {
	m.best = -1
}
