// sim/pit.go
package sim

import "sort"

// PIT is a node's Pending Interest Table: name -> set of neighbor ids
// whose requests for that name are outstanding at this node.
type PIT struct {
	entries map[string]map[string]struct{}
}

// NewPIT constructs an empty PIT.
func NewPIT() *PIT {
	return &PIT{entries: make(map[string]map[string]struct{})}
}

// Insert records sender as awaiting a response for name. Returns true if
// this is the first outstanding request for name (a new PIT entry was
// created), false if name was already pending (sender is aggregated into
// the existing entry, possibly a no-op if sender already requested it).
func (p *PIT) Insert(name string, sender string) bool {
	set, existed := p.entries[name]
	if !existed {
		p.entries[name] = map[string]struct{}{sender: {}}
		return true
	}
	set[sender] = struct{}{}
	return false
}

// Targets returns the set of neighbor ids awaiting a response for name,
// and whether name has an entry at all.
func (p *PIT) Targets(name string) ([]string, bool) {
	set, ok := p.entries[name]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, true
}

// Has reports whether name has an outstanding PIT entry.
func (p *PIT) Has(name string) bool {
	_, ok := p.entries[name]
	return ok
}

// Delete removes the PIT entry for name, if any.
func (p *PIT) Delete(name string) {
	delete(p.entries, name)
}

// Len reports the number of outstanding names.
func (p *PIT) Len() int {
	return len(p.entries)
}
