// sim/topology/workload.go
package topology

import "math/rand"

// RandomRequestSchedule returns n names drawn uniformly at random (with
// replacement) from names, seeded deterministically so the same seed
// always reproduces the same schedule. Useful for load-shaped scenarios
// where a client hammers a random subset of content rather than a fixed
// sequence.
func RandomRequestSchedule(names []string, n int, seed int64) []string {
	if len(names) == 0 || n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := range out {
		out[i] = names[rng.Intn(len(names))]
	}
	return out
}
