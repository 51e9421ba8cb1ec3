// Package requests wraps the trainee-requests endpoint group: administrative
// requests a trainee files with the branch office (enrollment letters,
// transcripts, excused absences) and their review status.
package requests

import (
	"context"
	"time"

	"traineeportal/pkg/normalize"
	"traineeportal/pkg/portal"
	"traineeportal/pkg/tools/json"
)

type (
	Service struct {
		cli *portal.Client
	}

	Request struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"`
		Subject   string    `json:"subject"`
		Body      string    `json:"body,omitempty"`
		Status    string    `json:"status"` // pending, approved, rejected
		CreatedAt time.Time `json:"createdAt"`
	}

	NewRequest struct {
		Type    string `json:"type"`
		Subject string `json:"subject"`
		Body    string `json:"body,omitempty"`
	}

	List struct {
		Requests []Request `json:"requests"`
	}
)

func NewService(cli *portal.Client) *Service {
	return &Service{cli: cli}
}

// All lists the trainee's filed requests in the canonical wrapper.
func (s *Service) All(ctx context.Context, token string) (normalize.Envelope[List], error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointTraineeRequests, token)
	if err != nil {
		return normalize.Envelope[List]{}, err
	}

	return normalize.Wrap(raw, "requests", func(l *List) {
		l.Requests = normalize.Collection(l.Requests)
	})
}

// Submit files a new request and returns it as recorded by the backend.
func (s *Service) Submit(ctx context.Context, token string, nr NewRequest) (Request, error) {
	raw, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointTraineeRequests, nr, token)
	if err != nil {
		return Request{}, err
	}

	env, err := normalize.Wrap[Request](raw, "", nil)
	if err != nil {
		return Request{}, err
	}
	return env.Data, nil
}
