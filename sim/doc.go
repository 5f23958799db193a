// Package sim provides the core discrete-event simulation engine for the
// CCN overlay simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - packet.go: Packet, the immutable value that flows between nodes
//   - cache.go, fib.go, pit.go: the three per-node tables a Node consults
//   - node.go: the per-node request/response state machine
//   - routing.go: the distance-vector broadcast that populates every FIB
//   - scheduler.go: the tick-driven clock that drives Node.Step
//   - metrics.go: append-only history buffers and the final metrics report
//
// # Architecture
//
// Topology construction (chain/star builders, randomized request
// schedules) lives in sim/topology; CSV history export lives in
// sim/export. Neither is required by the core: a caller can construct
// Nodes directly, wire neighbors with AddNeighbors, call
// InitRoutingBroadcast, register nodes with a Scheduler, and call
// RunUntil.
package sim
