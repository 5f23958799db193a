// sim/node.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Node is the unified state machine for clients, routers, and servers: a
// server is a Node with owned Data, a router is a Node with neither Data
// nor IsClient set, and a client is a Node with IsClient set. All three
// share the same identity/neighbor/queue machinery; only the per-tick
// Step behavior and the request/response dispatch differ by role.
type Node struct {
	ID         string
	IsClient   bool
	SimulateIP bool // true disables PIT aggregation (plain IP forwarding)
	Data       map[string]int

	Cache *ContentCache
	PIT   *PIT
	FIB   *FIB

	neighbors map[string]*Node
	queue     []Packet // visible this tick, drained by ProcessOne
	pending   []Packet // enqueued during the current tick, not yet visible

	History NodeHistory
	uidSeq  int // per-node request uid counter, deterministic across runs
}

// NewNode constructs a Node. cacheSize == 0 disables caching (IP mode).
func NewNode(id string, isClient bool, data map[string]int, cacheSize int, simulateIP bool) *Node {
	return &Node{
		ID:         id,
		IsClient:   isClient,
		SimulateIP: simulateIP,
		Data:       data,
		Cache:      NewContentCache(cacheSize),
		PIT:        NewPIT(),
		FIB:        NewFIB(),
		neighbors:  make(map[string]*Node),
	}
}

// AddNeighbors merges additional edges into the node's neighbor table.
// Idempotent for previously-known ids.
func (n *Node) AddNeighbors(neighbors map[string]*Node) {
	for id, nb := range neighbors {
		n.neighbors[id] = nb
	}
}

// Neighbor returns the neighbor registered under id, if any.
func (n *Node) Neighbor(id string) (*Node, bool) {
	nb, ok := n.neighbors[id]
	return nb, ok
}

// NeighborIDs returns the ids of every attached neighbor in sorted
// order, so fan-out iteration is deterministic across runs.
func (n *Node) NeighborIDs() []string {
	ids := make([]string, 0, len(n.neighbors))
	for id := range n.neighbors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Enqueue hands packet to the node at simulated time now. A client
// records the arrival immediately (its inbound queue is a log, not a
// FIFO to be drained later). A non-client node buffers the packet in
// pending: enqueues made during tick t must become
// visible to the destination only at tick t+1, regardless of the
// (implementation-defined) order nodes are stepped in within a tick.
// Scheduler.commitPending moves pending into queue once every node has
// had its turn for the tick. Fatal if the node's neighbor table was
// never initialized.
func (n *Node) Enqueue(packet Packet, now int64) {
	if n.neighbors == nil {
		panic(fmt.Sprintf("node %s: enqueue into a node with unset neighbor table", n.ID))
	}
	if n.IsClient {
		n.recordArrival(packet, now)
		return
	}
	n.pending = append(n.pending, packet)
}

// commitPending moves packets enqueued during the tick just completed
// into the visible queue, ready for ProcessOne on the next tick.
func (n *Node) commitPending() {
	if len(n.pending) == 0 {
		return
	}
	n.queue = append(n.queue, n.pending...)
	n.pending = nil
}

// QueueLen returns the number of packets currently queued and visible
// for processing (pending, not-yet-visible arrivals are excluded).
func (n *Node) QueueLen() int {
	return len(n.queue)
}

// recordArrival is the client-side terminal handler: arrivals are logged,
// never processed through the request/response state machine.
func (n *Node) recordArrival(packet Packet, now int64) {
	n.History.ResponseTimes = append(n.History.ResponseTimes, NameTimeStamp{Name: packet.Search, Time: now})
	n.History.Responses = append(n.History.Responses, packet)
}

// Step implements a non-client node's per-tick behavior:
// record a queue-length sample, then process at most one packet from the
// head of the FIFO. Must not be called on a client node.
func (n *Node) Step(now int64) {
	if n.IsClient {
		panic(fmt.Sprintf("node %s: Step called on a client node", n.ID))
	}
	n.History.QueueSamples = append(n.History.QueueSamples, TimeSample{Time: now, QueueLen: len(n.queue)})
	n.ProcessOne(now)
}

// ProcessOne dequeues and handles exactly one packet from the inbound
// FIFO at simulated time now, if any. Returns false if the queue was
// empty.
func (n *Node) ProcessOne(now int64) bool {
	if len(n.queue) == 0 {
		return false
	}
	packet := n.queue[0]
	n.queue = n.queue[1:]
	n.dispatch(packet, now)
	return true
}

func (n *Node) dispatch(packet Packet, now int64) {
	switch packet.Type {
	case RequestPacket:
		n.processRequest(packet, now)
	case DataPacket:
		n.processResponse(packet, now)
	default:
		panic(fmt.Sprintf("node %s: packet %d has unknown type %v", n.ID, packet.UID, packet.Type))
	}
}

// processRequest dispatches an inbound request packet: PIT aggregation,
// cache probe, owned-data probe, then forwarding upstream.
func (n *Node) processRequest(request Packet, now int64) {
	isNew := n.PIT.Insert(request.Search, request.SenderID)
	if !isNew && !n.SimulateIP {
		logrus.Debugf("node %s: aggregating duplicate request for %s", n.ID, request.Search)
		return
	}

	if hit, ok := n.Cache.Lookup(request.Search); ok {
		response := request.Derive(n.ID, DataPacket).WithResponseData(hit)
		logrus.Debugf("node %s: cache hit for %s", n.ID, request.Search)
		n.processResponse(response, now)
		return
	}

	if val, ok := n.Data[request.Search]; ok {
		response := request.Derive(n.ID, DataPacket).WithResponseData(val)
		logrus.Debugf("node %s: owned-data hit for %s", n.ID, request.Search)
		n.processResponse(response, now)
		return
	}

	entry, ok := n.FIB.Lookup(request.Search)
	if !ok {
		panic(fmt.Sprintf("node %s: no FIB entry for %q; configuration error", n.ID, request.Search))
	}
	nextHop, ok := n.neighbors[entry.NextHop]
	if !ok {
		panic(fmt.Sprintf("node %s: FIB next-hop %q for %q is not a neighbor", n.ID, entry.NextHop, request.Search))
	}
	forwarded := request.Derive(n.ID, RequestPacket)
	logrus.Debugf("node %s: forwarding request for %s to %s", n.ID, request.Search, entry.NextHop)
	nextHop.Enqueue(forwarded, now)
}

// processResponse dispatches an inbound data packet: cache the value,
// then fan it out to every PIT target for the name.
func (n *Node) processResponse(response Packet, now int64) {
	n.Cache.Add(response.Search, response.ResponseData)

	targets, ok := n.PIT.Targets(response.Search)
	if !ok {
		logrus.Debugf("node %s: dropping unsolicited response for %s", n.ID, response.Search)
		return
	}

	for _, targetID := range targets {
		nb, ok := n.neighbors[targetID]
		if !ok {
			panic(fmt.Sprintf("node %s: PIT target %q for %q is not a neighbor", n.ID, targetID, response.Search))
		}
		fresh := response.Derive(n.ID, DataPacket)
		nb.Enqueue(fresh, now)
	}
	n.PIT.Delete(response.Search)
}

// nextUID returns a monotonically increasing, per-node unique request id,
// deterministic so that two runs of the same scenario produce identical
// histories.
func (n *Node) nextUID() int {
	n.uidSeq++
	return n.uidSeq
}

// EmitRequests implements a client's per-tick emission step: for each
// requested name, stamp a request-time history entry and enqueue a
// fresh request packet into every neighbor.
func (n *Node) EmitRequests(names []string, now int64) {
	if !n.IsClient {
		panic(fmt.Sprintf("node %s: EmitRequests called on a non-client node", n.ID))
	}
	for _, search := range names {
		n.History.RequestTimes = append(n.History.RequestTimes, NameTimeStamp{Name: search, Time: now})
		request := NewRequest(n.nextUID(), search, n.ID)
		for _, id := range n.NeighborIDs() {
			nb := n.neighbors[id]
			nb.Enqueue(request, now)
		}
	}
}
