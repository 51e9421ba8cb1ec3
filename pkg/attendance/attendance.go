// Package attendance wraps the attendance-records endpoint. Besides the usual
// envelope tolerance, it recomputes the report-level aggregate when the
// backend only delivers per-content groups.
package attendance

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

	Stats struct {
		Present        int     `json:"present"`
		Absent         int     `json:"absent"`
		Total          int     `json:"total"`
		AttendanceRate float64 `json:"attendanceRate"`
	}

	SessionRecord struct {
		Date   string `json:"date"`
		Status string `json:"status"` // present, absent, excused
	}

	ContentRecord struct {
		ContentID string          `json:"contentId"`
		Content   string          `json:"content"`
		Stats     Stats           `json:"stats"`
		Sessions  []SessionRecord `json:"sessions"`
	}

	Report struct {
		Records []ContentRecord `json:"records"`
		Stats   Stats           `json:"stats"`
	}
)

func NewService(cli *portal.Client) *Service {
	return &Service{cli: cli}
}

// Records returns the attendance report in the canonical wrapper. A bare
// array of content groups is tolerated; the overall stats block is then
// synthesized by folding over the groups.
func (s *Service) Records(ctx context.Context, token string) (normalize.Envelope[Report], error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointAttendanceRecords, token)
	if err != nil {
		return normalize.Envelope[Report]{}, err
	}

	return normalize.Wrap(raw, "records", Normalize)
}

// Normalize coerces nil collections and fills the overall stats when the
// backend left them empty. The rate is a percentage rounded to two decimals:
// round(present/total * 10000) / 100.
func Normalize(r *Report) {
	r.Records = normalize.Collection(r.Records)

	for i := range r.Records {
		rec := &r.Records[i]
		rec.Sessions = normalize.Collection(rec.Sessions)
		if rec.Stats.AttendanceRate == 0 {
			rec.Stats.AttendanceRate = Rate(rec.Stats.Present, rec.Stats.Total)
		}
	}

	if r.Stats.Total == 0 && len(r.Records) > 0 {
		var agg Stats
		for _, rec := range r.Records {
			agg.Present += rec.Stats.Present
			agg.Absent += rec.Stats.Absent
			agg.Total += rec.Stats.Total
		}
		agg.AttendanceRate = Rate(agg.Present, agg.Total)
		r.Stats = agg
	}
}

// Rate returns present/total as a percentage with two-decimal rounding, 0
// when there is nothing to rate.
func Rate(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}
