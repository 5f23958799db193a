// sim/metrics.go
package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TimeSample is one (time, queueLen) observation.
type TimeSample struct {
	Time     int64
	QueueLen int
}

// NameTimeStamp is one (name, time) observation: a request or response
// stamp recorded by a client.
type NameTimeStamp struct {
	Name string
	Time int64
}

// NodeHistory is the append-only per-node time series the scheduler
// writes to during a run. Non-client nodes populate only QueueSamples;
// clients populate RequestTimes, ResponseTimes, and Responses.
type NodeHistory struct {
	QueueSamples  []TimeSample
	RequestTimes  []NameTimeStamp
	ResponseTimes []NameTimeStamp
	Responses     []Packet
}

// Metrics aggregates cross-node statistics computed from client
// histories after a run completes. Per-request latency is measured in
// ticks between a client's request stamp and the matching response
// stamp for the same name, paired in FIFO order.
type Metrics struct {
	RequestsSent  int
	ResponsesRecv int
	Latencies     []float64 // ticks, one per matched request/response pair
	HopCounts     []float64 // InverseTTL of each received response
}

// ComputeMetrics walks every client node's history and builds a Metrics
// report. Requests and responses for the same name are paired in the
// order each occurred (FIFO): a client receives at most as many
// responses for a name as it requested.
func ComputeMetrics(clients []*Node) *Metrics {
	m := &Metrics{}
	for _, c := range clients {
		if !c.IsClient {
			panic(fmt.Sprintf("node %s: ComputeMetrics given a non-client node", c.ID))
		}
		m.RequestsSent += len(c.History.RequestTimes)
		m.ResponsesRecv += len(c.History.Responses)
		for _, resp := range c.History.Responses {
			m.HopCounts = append(m.HopCounts, float64(resp.InverseTTL))
		}
		m.pairLatencies(c)
	}
	return m
}

// pairLatencies computes per-response latency for one client by pairing
// each response (in arrival order) with the oldest unmatched request for
// the same name (FIFO), and appends the ticks elapsed to m.Latencies.
func (m *Metrics) pairLatencies(c *Node) {
	pendingByName := make(map[string][]int64)
	for _, rt := range c.History.RequestTimes {
		pendingByName[rt.Name] = append(pendingByName[rt.Name], rt.Time)
	}
	for i, resp := range c.History.Responses {
		if i >= len(c.History.ResponseTimes) {
			break
		}
		queue := pendingByName[resp.Search]
		if len(queue) == 0 {
			continue
		}
		reqTime := queue[0]
		pendingByName[resp.Search] = queue[1:]
		arrival := c.History.ResponseTimes[i].Time
		m.Latencies = append(m.Latencies, float64(arrival-reqTime))
	}
}

// Percentile returns the p-th percentile (0-100) of data, sorting a copy
// first, using gonum's empirical-CDF quantile: the smallest sample whose
// cumulative fraction reaches p/100, with no interpolation between samples.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return stat.Quantile(p/100.0, stat.Empirical, sorted, nil)
}

// Print writes a human-readable summary of the metrics to stdout.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Requests sent       : %d\n", m.RequestsSent)
	fmt.Printf("Responses received  : %d\n", m.ResponsesRecv)
	if len(m.Latencies) > 0 {
		mean := stat.Mean(m.Latencies, nil)
		fmt.Printf("Latency (ticks)     : mean=%.2f p50=%.2f p95=%.2f p99=%.2f\n",
			mean, Percentile(m.Latencies, 50), Percentile(m.Latencies, 95), Percentile(m.Latencies, 99))
	}
	if len(m.HopCounts) > 0 {
		mean := stat.Mean(m.HopCounts, nil)
		fmt.Printf("Hop count           : mean=%.2f p50=%.2f p95=%.2f p99=%.2f\n",
			mean, Percentile(m.HopCounts, 50), Percentile(m.HopCounts, 95), Percentile(m.HopCounts, 99))
	}
}
