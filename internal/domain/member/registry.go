package member

import (
	"fmt"
	"math"
	"strconv"
)

// Registry owns an ordered collection of members with unique ids. Insertion
// order is kept for display only. A Registry is not safe for concurrent use.
type Registry struct {
	members []*Member
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Add appends m, failing with ErrDuplicateID if its id is already present.
func (r *Registry) Add(m *Member) error {
	if m == nil {
		return fmt.Errorf("%w: nil member", ErrInvalidMember)
	}
	if _, exists := r.index[m.id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, m.id)
	}
	r.index[m.id] = len(r.members)
	r.members = append(r.members, m)
	return nil
}

func (r *Registry) Find(id string) (*Member, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	return r.members[i], nil
}

func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Remove deletes the member with the given id and returns it.
func (r *Registry) Remove(id string) (*Member, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}

	removed := r.members[i]
	r.members = append(r.members[:i], r.members[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.members); j++ {
		r.index[r.members[j].id] = j
	}
	return removed, nil
}

// List returns the members in insertion order. The slice is a copy; the
// members are shared.
func (r *Registry) List() []*Member {
	out := make([]*Member, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Registry) Len() int {
	return len(r.members)
}

// NextID returns one more than the largest numeric id, or "1" when empty.
// Ids at or beyond the int64 range are ignored so the result never wraps.
func (r *Registry) NextID() string {
	var max int64
	for _, m := range r.members {
		n, err := strconv.ParseInt(m.id, 10, 64)
		if err == nil && n > max && n < math.MaxInt64 {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}

// ReplaceWith swaps in the members of other, leaving other empty.
func (r *Registry) ReplaceWith(other *Registry) {
	r.members = other.members
	r.index = other.index
	other.members = nil
	other.index = make(map[string]int)
}
