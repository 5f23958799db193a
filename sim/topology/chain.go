// sim/topology/chain.go
package topology

import (
	"fmt"

	"github.com/ccn-sim/ccn-sim/sim"
)

// Chain is a linear router chain with one client attached to the first
// router and authoritative data owned by the last.
type Chain struct {
	Client  *sim.Node
	Routers []*sim.Node
}

// NewChain builds a chain of n routers (r-0..r-{n-1}), wires a client
// c-0 to r-0, gives r-{n-1} ownership of data, and runs the routing
// broadcast.
func NewChain(n int, cacheSize int, simulateIP bool, data map[string]int) (*Chain, error) {
	if n < 2 {
		return nil, fmt.Errorf("chain topology requires n >= 2, got %d", n)
	}

	routers := make([]*sim.Node, n)
	for i := 0; i < n; i++ {
		routers[i] = sim.NewNode(fmt.Sprintf("r-%d", i), false, nil, cacheSize, simulateIP)
	}
	routers[n-1].Data = data

	for i := 1; i < n-1; i++ {
		routers[i].AddNeighbors(map[string]*sim.Node{
			routers[i-1].ID: routers[i-1],
			routers[i+1].ID: routers[i+1],
		})
	}
	routers[0].AddNeighbors(map[string]*sim.Node{routers[1].ID: routers[1]})
	routers[n-1].AddNeighbors(map[string]*sim.Node{routers[n-2].ID: routers[n-2]})

	client := sim.NewNode("c-0", true, nil, 0, simulateIP)
	client.AddNeighbors(map[string]*sim.Node{routers[0].ID: routers[0]})
	routers[0].AddNeighbors(map[string]*sim.Node{client.ID: client})

	routers[n-1].InitRoutingBroadcast()

	return &Chain{Client: client, Routers: routers}, nil
}

// AttachClient wires a new client node to router and returns it. Scenario
// configs use it to place additional clients on an already-built topology.
// The routing broadcast has typically run by then, which is fine: clients
// fan requests out to every neighbor rather than consulting a FIB.
func AttachClient(id string, router *sim.Node, simulateIP bool) *sim.Node {
	client := sim.NewNode(id, true, nil, 0, simulateIP)
	client.AddNeighbors(map[string]*sim.Node{router.ID: router})
	router.AddNeighbors(map[string]*sim.Node{client.ID: client})
	return client
}
