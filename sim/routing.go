// sim/routing.go
package sim

import "fmt"

// advertisement is one pending (name, distance) flood step to apply at a
// node, having arrived from fromID.
type advertisement struct {
	node     *Node
	fromID   string
	name     string
	distance int64
}

// InitRoutingBroadcast floods every name owned by n to the rest of the
// graph so every reachable node's FIB learns the shortest next-hop.
// Call once per authoritative server, after every neighbor edge in the
// graph has been attached. Uses an explicit worklist rather than
// recursion to avoid deep stack growth on large graphs; equivalent to a
// per-name BFS from n.
func (n *Node) InitRoutingBroadcast() {
	if len(n.neighbors) == 0 {
		panic(fmt.Sprintf("node %s: InitRoutingBroadcast called before neighbors are attached", n.ID))
	}
	for name := range n.Data {
		n.floodName(name)
	}
}

// floodName runs the distance-vector flood for a single owned name,
// starting at distance 0 from n to each of n's neighbors.
func (n *Node) floodName(name string) {
	queue := make([]advertisement, 0, len(n.neighbors))
	for _, id := range n.NeighborIDs() {
		queue = append(queue, advertisement{node: n.neighbors[id], fromID: n.ID, name: name, distance: 0})
	}

	for len(queue) > 0 {
		adv := queue[0]
		queue = queue[1:]

		if !adv.node.FIB.Offer(adv.name, adv.fromID, adv.distance) {
			continue
		}
		for _, id := range adv.node.NeighborIDs() {
			if id == adv.fromID {
				continue
			}
			queue = append(queue, advertisement{
				node:     adv.node.neighbors[id],
				fromID:   adv.node.ID,
				name:     adv.name,
				distance: adv.distance + 1,
			})
		}
	}
}
