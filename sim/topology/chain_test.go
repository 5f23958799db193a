package topology

import "testing"

func TestNewChain_RejectsTooFewRouters(t *testing.T) {
	if _, err := NewChain(1, 5, false, map[string]int{"data/0": 1}); err == nil {
		t.Error("expected an error for a chain with fewer than 2 routers")
	}
}

func TestAttachClient_WiresBothDirections(t *testing.T) {
	chain, err := NewChain(3, 5, false, map[string]int{"data/0": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extra := AttachClient("c-1", chain.Routers[1], false)
	if _, ok := extra.Neighbor("r-1"); !ok {
		t.Error("attached client should be wired to r-1")
	}
	if _, ok := chain.Routers[1].Neighbor("c-1"); !ok {
		t.Error("r-1 should be wired back to the attached client")
	}
}

func TestNewChain_WiresEndpointsAndBroadcasts(t *testing.T) {
	chain, err := NewChain(5, 5, false, map[string]int{"data/0": 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chain.Routers) != 5 {
		t.Fatalf("got %d routers, want 5", len(chain.Routers))
	}

	if _, ok := chain.Client.Neighbor("r-0"); !ok {
		t.Error("client should be wired to r-0")
	}
	if _, ok := chain.Routers[0].Neighbor("c-0"); !ok {
		t.Error("r-0 should be wired back to the client")
	}
	if _, ok := chain.Routers[4].Neighbor("r-3"); !ok {
		t.Error("last router should be wired to its predecessor")
	}

	entry, ok := chain.Client.FIB.Lookup("data/0")
	if !ok {
		t.Fatal("client FIB should have learned data/0 after InitRoutingBroadcast")
	}
	if entry.NextHop != "r-0" {
		t.Errorf("client FIB nextHop = %s, want r-0", entry.NextHop)
	}
}
