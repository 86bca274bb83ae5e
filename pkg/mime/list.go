package mime

import (
	"slices"
	"strings"
)

// List is an ordered set of content types, most preferred first.
type List []string

// NewList copies types into a List. An empty input yields DefaultType
// alone.
func NewList(types ...string) List {
	if len(types) == 0 {
		return List{DefaultType}
	}

	return slices.Clone(List(types))
}

// Index returns the priority of t, or -1 if it is not in the list.
func (l List) Index(t string) int {
	return slices.Index(l, t)
}

func (l List) String() string {
	return strings.Join(l, ",")
}
