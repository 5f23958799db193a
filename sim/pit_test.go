package sim

import "testing"

func TestPIT_InsertFirstCreatesEntry(t *testing.T) {
	p := NewPIT()
	isNew := p.Insert("data/0", "c-0")
	if !isNew {
		t.Error("first Insert for a name should report a new entry")
	}
	if !p.Has("data/0") {
		t.Error("Has should report the name as pending")
	}
}

func TestPIT_InsertAggregatesDuplicates(t *testing.T) {
	p := NewPIT()
	p.Insert("data/0", "c-0")
	isNew := p.Insert("data/0", "c-1")
	if isNew {
		t.Error("second Insert for an already-pending name should not report a new entry")
	}

	targets, ok := p.Targets("data/0")
	if !ok {
		t.Fatal("Targets should find the aggregated entry")
	}
	if len(targets) != 2 {
		t.Errorf("Targets() = %v, want 2 entries", targets)
	}
}

func TestPIT_InsertSameSenderTwiceDoesNotDuplicateTarget(t *testing.T) {
	p := NewPIT()
	p.Insert("data/0", "c-0")
	p.Insert("data/0", "c-0")

	targets, _ := p.Targets("data/0")
	if len(targets) != 1 {
		t.Errorf("Targets() = %v, want exactly one entry for a repeated sender", targets)
	}
}

func TestPIT_TargetsSortedForDeterminism(t *testing.T) {
	p := NewPIT()
	p.Insert("data/0", "c-9")
	p.Insert("data/0", "c-1")
	p.Insert("data/0", "c-5")

	targets, _ := p.Targets("data/0")
	want := []string{"c-1", "c-5", "c-9"}
	for i, id := range want {
		if targets[i] != id {
			t.Errorf("Targets()[%d] = %s, want %s (targets must be sorted for deterministic fan-out)", i, targets[i], id)
		}
	}
}

func TestPIT_DeleteClearsEntry(t *testing.T) {
	p := NewPIT()
	p.Insert("data/0", "c-0")
	p.Delete("data/0")

	if p.Has("data/0") {
		t.Error("Has should report false after Delete")
	}
	if _, ok := p.Targets("data/0"); ok {
		t.Error("Targets should report false after Delete")
	}
}

func TestPIT_TargetsMissOnUnknownName(t *testing.T) {
	p := NewPIT()
	if _, ok := p.Targets("data/0"); ok {
		t.Error("Targets on an empty PIT should report false")
	}
}
