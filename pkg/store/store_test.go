package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBranchRoundtrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if _, err := s.Branch(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on a fresh store, got %v", err)
	}

	if err := s.SetBranch("cairo"); err != nil {
		t.Fatalf("failed to set branch: %v", err)
	}

	id, err := s.Branch()
	if err != nil {
		t.Fatalf("failed to read branch: %v", err)
	}
	if id != "cairo" {
		t.Errorf("expected cairo, got %q", id)
	}
}

func TestSessionRoundtrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if _, err := s.Session(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound when logged out, got %v", err)
	}

	in := Session{Token: "tok-1", TraineeID: "t-1", Name: "Mona Adel", NationalID: "29805241301234"}
	if err := s.SetSession(in); err != nil {
		t.Fatalf("failed to set session: %v", err)
	}

	out, err := s.Session()
	if err != nil {
		t.Fatalf("failed to read session: %v", err)
	}
	if out.Token != in.Token || out.TraineeID != in.TraineeID || out.Name != in.Name {
		t.Errorf("session did not round-trip: %+v", out)
	}
	if out.Date.IsZero() {
		t.Error("date must be filled when absent")
	}
}

func TestClearSessionIdempotent(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if err := s.ClearSession(); err != nil {
		t.Errorf("clearing an absent session must not fail: %v", err)
	}

	if err := s.SetSession(Session{Token: "tok-1"}); err != nil {
		t.Fatalf("failed to set session: %v", err)
	}
	if err := s.ClearSession(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if _, err := s.Session(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after clearing, got %v", err)
	}
}

func TestCorruptedFile(t *testing.T) {
	root := t.TempDir()
	s, err := Open(root)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "session.json"), []byte("{nope"), 0640); err != nil {
		t.Fatalf("failed to plant corrupted file: %v", err)
	}

	_, err = s.Session()
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected a parse error, got %v", err)
	}
}
