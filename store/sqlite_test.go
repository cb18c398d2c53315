package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gmuffiness/agentfloor/world"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "floor.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestSaveLoadRoundtrip verifies the organization document survives storage
func TestSaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	org := SeedOrganization()

	if err := s.SaveOrganization(org); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadOrganization(org.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != org.Name || len(got.Departments) != len(org.Departments) {
		t.Errorf("loaded %q with %d departments, want %q with %d",
			got.Name, len(got.Departments), org.Name, len(org.Departments))
	}
	if a := got.FindAgent("agent-1"); a == nil || a.Name == "" {
		t.Error("agent-1 missing after roundtrip")
	}
}

// TestLoadUnknownOrganization verifies the not-found sentinel
func TestLoadUnknownOrganization(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadOrganization("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestPositionOverlay verifies saved positions replace the document defaults
// on the next load
func TestPositionOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "floor.db")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	org := SeedOrganization()
	if err := s.SaveOrganization(org); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.SavePosition(org.ID, "agent-1", 777, 333)
	// positions for unknown agents must be ignored, not fail the load
	s.SavePosition(org.ID, "agent-gone", 1, 2)
	if err := s.Close(); err != nil { // drains the write queue
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.LoadOrganization(org.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := got.FindAgent("agent-1")
	if a.Position.X != 777 || a.Position.Y != 333 {
		t.Errorf("overlaid position (%v,%v), want (777,333)", a.Position.X, a.Position.Y)
	}
}

// TestLastWriteWins verifies repeated saves keep only the newest position
func TestLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	org := SeedOrganization()
	if err := s.SaveOrganization(org); err != nil {
		t.Fatalf("save: %v", err)
	}

	s.SavePosition(org.ID, "agent-2", 10, 10)
	s.SavePosition(org.ID, "agent-2", 20, 20)
	s.SavePosition(org.ID, "agent-2", 99, 88)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.LoadOrganization(org.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := got.FindAgent("agent-2")
	if a.Position.X != 99 || a.Position.Y != 88 {
		t.Errorf("position (%v,%v), want newest (99,88)", a.Position.X, a.Position.Y)
	}
}

// TestFirstOrganizationID verifies discovery on non-empty and empty stores
func TestFirstOrganizationID(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.FirstOrganizationID(); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty store: expected ErrNotFound, got %v", err)
	}

	if err := s.SaveOrganization(&world.Organization{ID: "org-a", Name: "A"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	id, err := s.FirstOrganizationID()
	if err != nil || id != "org-a" {
		t.Errorf("got (%q, %v), want (org-a, nil)", id, err)
	}
}

// TestSavePositionAfterClose verifies a closed store drops writes quietly
func TestSavePositionAfterClose(t *testing.T) {
	s := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// must not panic on the closed channel
	s.SavePosition("org", "agent-1", 1, 2)
}

// TestSaveOrganizationRejectsEmptyID verifies input validation
func TestSaveOrganizationRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveOrganization(&world.Organization{Name: "anonymous"}); err == nil {
		t.Error("expected an error for an organization without id")
	}
	if err := s.SaveOrganization(nil); err == nil {
		t.Error("expected an error for a nil organization")
	}
}
