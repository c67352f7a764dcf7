package sorting

import "slices"

// Role tags a highlighted index. Roles are advisory and only consumed by renderers.
type Role string

const (
	RoleCompared       Role = "compared"
	RolePivot          Role = "pivot"
	RoleSortedBoundary Role = "sorted-boundary"
	RoleActive         Role = "active"
	RoleActiveLeft     Role = "active-left"
	RoleActiveRight    Role = "active-right"
	RoleRoot           Role = "root"
	RoleSettled        Role = "settled"
)

// Roles lists every role in rendering priority order.
var Roles = []Role{
	RoleCompared,
	RolePivot,
	RoleSortedBoundary,
	RoleActive,
	RoleActiveLeft,
	RoleActiveRight,
	RoleRoot,
	RoleSettled,
}

// Step is one observable instant of progress.
type Step struct {
	Values     []int        `json:"values" cbor:"1,keyasint"`
	Highlights map[int]Role `json:"highlights,omitempty" cbor:"2,keyasint,omitempty"`
}

func (s Step) Len() int { return len(s.Values) }

func (s Step) Role(i int) (Role, bool) {
	r, ok := s.Highlights[i]
	return r, ok
}

// snapshot copies the working array so later mutation never leaks into a yielded step.
func snapshot(a []int, highlights map[int]Role) Step {
	return Step{Values: slices.Clone(a), Highlights: highlights}
}
