package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics_CountsAndHopCounts(t *testing.T) {
	client, routers := buildChain(t, 2, 5, false, map[string]int{"data/0": 1})
	runTicks(client, routers, []string{"data/0", "data/0"}, 5, 100)

	m := ComputeMetrics([]*Node{client})
	assert.Equal(t, 2, m.RequestsSent)
	assert.Equal(t, 2, m.ResponsesRecv)
	assert.Equal(t, []float64{4, 2}, m.HopCounts)
}

func TestComputeMetrics_Latencies(t *testing.T) {
	client, routers := buildChain(t, 2, 5, false, map[string]int{"data/0": 1})
	runTicks(client, routers, []string{"data/0"}, 5, 20)

	m := ComputeMetrics([]*Node{client})
	if len(m.Latencies) != 1 {
		t.Fatalf("got %d latencies, want 1", len(m.Latencies))
	}
	if m.Latencies[0] <= 0 {
		t.Errorf("latency = %v, want positive tick count", m.Latencies[0])
	}
}

func TestComputeMetrics_PanicsOnNonClientNode(t *testing.T) {
	r := NewNode("r-0", false, nil, 5, false)
	defer func() {
		if rec := recover(); rec == nil {
			t.Error("expected panic computing metrics over a non-client node")
		}
	}()
	ComputeMetrics([]*Node{r})
}

func TestPercentile_EmptyInputIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestPercentile_Monotonic(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	p50 := Percentile(data, 50)
	p95 := Percentile(data, 95)
	assert.LessOrEqual(t, p50, p95)
}
