package browse

// Selection is the set of authors a visitor filters by. It keeps the order
// in which names were first received; duplicates collapse.
type Selection struct {
	names []string
	set   map[string]struct{}
}

// ParseSelection builds a Selection from raw parameter values.
func ParseSelection(values []string) Selection {
	s := Selection{set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if _, dup := s.set[v]; dup {
			continue
		}
		s.set[v] = struct{}{}
		s.names = append(s.names, v)
	}
	return s
}

// Empty reports whether no author is selected, i.e. no filter applies.
func (s Selection) Empty() bool {
	return len(s.names) == 0
}

// Len returns the number of distinct selected authors.
func (s Selection) Len() int {
	return len(s.names)
}

// Has reports whether author was selected. Matching is exact.
func (s Selection) Has(author string) bool {
	_, ok := s.set[author]
	return ok
}

// Names returns the selected authors in first-received order.
func (s Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
