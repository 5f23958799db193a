// sim/topology/star.go
package topology

import (
	"fmt"

	"github.com/ccn-sim/ccn-sim/sim"
)

// Star is a topology of client clusters, each fronted by a final router,
// all connected to a single central authoritative server.
type Star struct {
	Clients      []*sim.Node
	Routers      []*sim.Node // all routers, including the per-cluster "final" routers
	FinalRouters []*sim.Node // one per cluster, directly adjacent to Server
	Server       *sim.Node
}

// NewStar builds a star network: nClusters clusters, each with
// clusterClients clients separated from their cluster's final router by
// a chain of clientToRouterHops intermediate routers, all final routers
// wired to one central server holding data.
func NewStar(nClusters, clusterClients, clientToRouterHops, cacheSize int, simulateIP bool, data map[string]int) (*Star, error) {
	if nClusters < 1 {
		return nil, fmt.Errorf("star topology requires nClusters >= 1, got %d", nClusters)
	}
	if clusterClients < 1 {
		return nil, fmt.Errorf("star topology requires clusterClients >= 1, got %d", clusterClients)
	}

	var clients []*sim.Node
	var routers []*sim.Node
	var finalRouters []*sim.Node

	routerIdx := 0
	clientIdx := 0

	for c := 0; c < nClusters; c++ {
		finalRouter := sim.NewNode(fmt.Sprintf("r-%d", routerIdx), false, nil, cacheSize, simulateIP)
		routers = append(routers, finalRouter)
		finalRouters = append(finalRouters, finalRouter)
		routerIdx++

		for j := 0; j < clusterClients; j++ {
			client := sim.NewNode(fmt.Sprintf("c-%d", clientIdx), true, nil, 0, simulateIP)
			clients = append(clients, client)
			clientIdx++

			last := client
			for h := 0; h < clientToRouterHops; h++ {
				hop := sim.NewNode(fmt.Sprintf("r-%d", routerIdx), false, nil, cacheSize, simulateIP)
				routers = append(routers, hop)
				routerIdx++
				wire(last, hop)
				last = hop
			}
			wire(last, finalRouter)
		}
	}

	server := sim.NewNode("s-0", false, data, cacheSize, simulateIP)
	for _, fr := range finalRouters {
		wire(server, fr)
	}

	server.InitRoutingBroadcast()

	return &Star{Clients: clients, Routers: routers, FinalRouters: finalRouters, Server: server}, nil
}

// wire attaches a and b as mutual neighbors.
func wire(a, b *sim.Node) {
	a.AddNeighbors(map[string]*sim.Node{b.ID: b})
	b.AddNeighbors(map[string]*sim.Node{a.ID: a})
}
