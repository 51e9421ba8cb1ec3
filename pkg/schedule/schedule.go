// Package schedule wraps the weekly schedule and grades endpoints.
package schedule

import (
	"context"
	"math"

	"traineeportal/pkg/normalize"
	"traineeportal/pkg/portal"
	"traineeportal/pkg/tools/json"
)

type (
	Service struct {
		cli *portal.Client
	}

	Session struct {
		Day        string `json:"day"`
		StartTime  string `json:"startTime"`
		EndTime    string `json:"endTime"`
		Course     string `json:"course"`
		Room       string `json:"room,omitempty"`
		Instructor string `json:"instructor,omitempty"`
	}

	Week struct {
		Sessions []Session `json:"sessions"`
	}

	Grade struct {
		Course  string  `json:"course"`
		Term    string  `json:"term,omitempty"`
		Score   float64 `json:"score"`
		Max     float64 `json:"max"`
		Percent float64 `json:"percent"`
	}

	GradeReport struct {
		Grades  []Grade `json:"grades"`
		Average float64 `json:"average"`
	}
)

func NewService(cli *portal.Client) *Service {
	return &Service{cli: cli}
}

// Week returns the weekly schedule in the canonical wrapper. Older branches
// answer with a bare session array; it is re-wrapped here.
func (s *Service) Week(ctx context.Context, token string) (normalize.Envelope[Week], error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointSchedule, token)
	if err != nil {
		return normalize.Envelope[Week]{}, err
	}

	return normalize.Wrap(raw, "sessions", func(w *Week) {
		w.Sessions = normalize.Collection(w.Sessions)
	})
}

// Grades returns the grade report. Per-grade percentages and the overall
// average are recomputed when the backend omits them.
func (s *Service) Grades(ctx context.Context, token string) (normalize.Envelope[GradeReport], error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointGrades, token)
	if err != nil {
		return normalize.Envelope[GradeReport]{}, err
	}

	return normalize.Wrap(raw, "grades", func(r *GradeReport) {
		r.Grades = normalize.Collection(r.Grades)

		var sum float64
		for i := range r.Grades {
			g := &r.Grades[i]
			if g.Percent == 0 && g.Max > 0 {
				g.Percent = round2(g.Score / g.Max * 100)
			}
			sum += g.Percent
		}
		if r.Average == 0 && len(r.Grades) > 0 {
			r.Average = round2(sum / float64(len(r.Grades)))
		}
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
