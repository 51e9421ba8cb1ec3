package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"traineeportal/pkg/portal"
)

func TestRate(t *testing.T) {
	tests := []struct {
		present, total int
		want           float64
	}{
		{8, 9, 88.89},
		{3, 4, 75},
		{5, 5, 100},
		{0, 0, 0},
		{1, 3, 33.33},
	}

	for _, tt := range tests {
		if got := Rate(tt.present, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
		}
	}
}

func TestNormalizeAggregates(t *testing.T) {
	r := Report{
		Records: []ContentRecord{
			{Content: "Backend", Stats: Stats{Present: 3, Absent: 1, Total: 4}},
			{Content: "Databases", Stats: Stats{Present: 5, Total: 5}},
		},
	}

	Normalize(&r)

	if r.Stats.Present != 8 || r.Stats.Total != 9 || r.Stats.Absent != 1 {
		t.Errorf("aggregate counts wrong: %+v", r.Stats)
	}
	if r.Stats.AttendanceRate != 88.89 {
		t.Errorf("expected overall rate 88.89, got %v", r.Stats.AttendanceRate)
	}
	if r.Records[0].Stats.AttendanceRate != 75 {
		t.Errorf("per-content rate not filled: %v", r.Records[0].Stats.AttendanceRate)
	}
}

func TestNormalizeKeepsServerStats(t *testing.T) {
	r := Report{
		Records: []ContentRecord{
			{Stats: Stats{Present: 1, Total: 2}},
		},
		Stats: Stats{Present: 10, Total: 20, AttendanceRate: 50},
	}

	Normalize(&r)

	if r.Stats.Present != 10 || r.Stats.AttendanceRate != 50 {
		t.Errorf("server-supplied stats were overwritten: %+v", r.Stats)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	var r Report
	Normalize(&r)

	if r.Records == nil {
		t.Error("records must come back empty, not nil")
	}
}

func TestRecordsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != portal.EndpointAttendanceRecords {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"contentId":"c1","content":"Backend","stats":{"present":3,"absent":1,"total":4}},
			{"contentId":"c2","content":"Databases","stats":{"present":5,"absent":0,"total":5}}
		]`))
	}))
	defer srv.Close()

	cfg := portal.NewConfig()
	cfg.SetBaseURL(srv.URL)
	svc := NewService(portal.New(cfg))

	env, err := svc.Records(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.Data.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(env.Data.Records))
	}
	if env.Data.Stats.AttendanceRate != 88.89 {
		t.Errorf("expected overall rate 88.89, got %v", env.Data.Stats.AttendanceRate)
	}
	if env.Data.Records[0].Sessions == nil {
		t.Error("sessions must come back empty, not nil")
	}
}
