// Package app wires the pieces every CLI command needs: the local datastore,
// the client configuration pointing at the persisted branch, and the domain
// services.
package app

import (
	"errors"
	"fmt"

	"traineeportal/pkg/attendance"
	"traineeportal/pkg/auth"
	"traineeportal/pkg/branch"
	"traineeportal/pkg/contents"
	"traineeportal/pkg/portal"
	"traineeportal/pkg/requests"
	"traineeportal/pkg/schedule"
	"traineeportal/pkg/store"
)

type (
	App struct {
		Store  *store.Store
		Config *portal.Config
		Client *portal.Client

		Auth       *auth.Service
		Schedule   *schedule.Service
		Attendance *attendance.Service
		Contents   *contents.Service
		Requests   *requests.Service
	}
)

// New opens the datastore and activates the persisted branch when there is
// one. With no branch persisted the configuration stays empty and the client
// reports the missing branch on first use.
func New() (*App, error) {
	st, err := store.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}

	cfg := portal.NewConfig()
	if id, err := st.Branch(); err == nil {
		if err := branch.Activate(cfg, id); err != nil {
			return nil, fmt.Errorf("persisted branch is invalid: %w", err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	cli := portal.New(cfg)
	return &App{
		Store:      st,
		Config:     cfg,
		Client:     cli,
		Auth:       auth.NewService(cli),
		Schedule:   schedule.NewService(cli),
		Attendance: attendance.NewService(cli),
		Contents:   contents.NewService(cli),
		Requests:   requests.NewService(cli),
	}, nil
}

// Token returns the persisted session token, or an instruction to log in.
func (a *App) Token() (string, error) {
	sess, err := a.Store.Session()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", errors.New("not logged in: run the login command first")
		}
		return "", err
	}
	return sess.Token, nil
}
