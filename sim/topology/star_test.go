package topology

import "testing"

func TestNewStar_RejectsZeroClusters(t *testing.T) {
	if _, err := NewStar(0, 1, 0, 5, false, map[string]int{"data/0": 1}); err == nil {
		t.Error("expected an error for zero clusters")
	}
}

func TestNewStar_RejectsZeroClusterClients(t *testing.T) {
	if _, err := NewStar(1, 0, 0, 5, false, map[string]int{"data/0": 1}); err == nil {
		t.Error("expected an error for zero clients per cluster")
	}
}

func TestNewStar_BuildsClustersAndWiresServer(t *testing.T) {
	star, err := NewStar(2, 3, 0, 5, false, map[string]int{"data/0": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(star.Clients) != 6 {
		t.Errorf("got %d clients, want 6 (2 clusters x 3 clients)", len(star.Clients))
	}
	if len(star.FinalRouters) != 2 {
		t.Errorf("got %d final routers, want 2", len(star.FinalRouters))
	}
	for _, fr := range star.FinalRouters {
		if _, ok := star.Server.Neighbor(fr.ID); !ok {
			t.Errorf("server should be wired to final router %s", fr.ID)
		}
	}
	for _, c := range star.Clients {
		entry, ok := c.FIB.Lookup("data/0")
		if !ok {
			t.Errorf("client %s should have learned data/0 via routing broadcast", c.ID)
			continue
		}
		if entry.Distance < 1 {
			t.Errorf("client %s distance to data/0 = %d, want >= 1", c.ID, entry.Distance)
		}
	}
}

func TestNewStar_ClientToRouterHopsInsertsIntermediateRouters(t *testing.T) {
	star, err := NewStar(1, 1, 2, 5, false, map[string]int{"data/0": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 final router + 2 intermediate hop routers.
	if len(star.Routers) != 3 {
		t.Errorf("got %d routers, want 3 (1 final + 2 intermediate hops)", len(star.Routers))
	}

	client := star.Clients[0]
	entry, ok := client.FIB.Lookup("data/0")
	if !ok {
		t.Fatal("client should have learned data/0")
	}
	// server -(0)- final router -(1)- hop -(2)- hop -(3)- client.
	if entry.Distance != 3 {
		t.Errorf("client distance to data/0 = %d, want 3 (final router + two intermediate hops away from the server)", entry.Distance)
	}
}
