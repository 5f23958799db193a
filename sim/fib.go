// sim/fib.go
package sim

// FIBEntry records the best known next-hop and hop-distance for a name.
type FIBEntry struct {
	NextHop  string
	Distance int64
}

// FIB is a node's Forwarding Information Base: name -> best known
// next-hop neighbor and distance. Populated by the routing broadcast
// before the scheduler runs; read-only during the scheduler phase.
type FIB struct {
	entries map[string]FIBEntry
}

// NewFIB constructs an empty FIB.
func NewFIB() *FIB {
	return &FIB{entries: make(map[string]FIBEntry)}
}

// Lookup returns the FIBEntry for name, if any.
func (f *FIB) Lookup(name string) (FIBEntry, bool) {
	e, ok := f.entries[name]
	return e, ok
}

// Offer records (nextHop, distance) for name if no entry exists yet or
// distance improves on the recorded one. Returns true if the FIB was
// updated, which callers use to decide whether to keep propagating the
// advertisement. Ties (equal distance from a different neighbor) are not
// updates: whichever advertisement arrived first wins.
func (f *FIB) Offer(name string, nextHop string, distance int64) bool {
	if cur, ok := f.entries[name]; ok && distance >= cur.Distance {
		return false
	}
	f.entries[name] = FIBEntry{NextHop: nextHop, Distance: distance}
	return true
}

// Names returns every advertised name this FIB has an entry for.
func (f *FIB) Names() []string {
	names := make([]string, 0, len(f.entries))
	for n := range f.entries {
		names = append(names, n)
	}
	return names
}

// Len reports the number of FIB entries.
func (f *FIB) Len() int {
	return len(f.entries)
}
