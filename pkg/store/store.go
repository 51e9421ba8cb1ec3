// Package store persists the client-side state that must survive restarts:
// the selected branch and the session token. It is a small JSON-file
// key-value store under the user config directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"traineeportal/pkg/tools/json"
)

type (
	Session struct {
		Token      string    `json:"token"`
		TraineeID  string    `json:"trainee_id"`
		Name       string    `json:"name,omitempty"`
		NationalID string    `json:"national_id,omitempty"`
		Date       time.Time `json:"date"`
	}

	selection struct {
		BranchID string `json:"branch_id"`
	}

	Store struct {
		root string
	}
)

var ErrNotFound = errors.New("not found")

// Open creates the store rooted at root, making the directory if needed.
func Open(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0740); err != nil {
		return nil, fmt.Errorf("cannot make the datastore: %w", err)
	}
	return &Store{root: root}, nil
}

// Default opens the store in the per-user config directory.
func Default() (*Store, error) {
	roaming, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config path: %w", err)
	}
	return Open(filepath.Join(roaming, "traineeportal"))
}

// Branch returns the persisted branch selection, ErrNotFound when no branch
// was ever selected.
func (s *Store) Branch() (string, error) {
	var sel selection
	if err := s.read("branch.json", &sel); err != nil {
		return "", err
	}
	return sel.BranchID, nil
}

func (s *Store) SetBranch(id string) error {
	return s.write("branch.json", selection{BranchID: id})
}

// Session returns the persisted session, ErrNotFound when logged out.
func (s *Store) Session() (Session, error) {
	var sess Session
	if err := s.read("session.json", &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Store) SetSession(sess Session) error {
	if sess.Date.IsZero() {
		sess.Date = time.Now()
	}
	return s.write("session.json", sess)
}

// ClearSession logs out locally. Clearing an absent session is not an error.
func (s *Store) ClearSession() error {
	err := os.Remove(filepath.Join(s.root, "session.json"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) read(name string, v any) error {
	content, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}

	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("corrupted datastore: failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0740)
	if err != nil {
		return err
	}
	defer f.Close()

	e := json.NewEncoder(f)
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("cannot write %s in the datastore: %w", name, err)
	}
	return nil
}
