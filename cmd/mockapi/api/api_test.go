package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"traineeportal/cmd/mockapi/data"
	"traineeportal/pkg/attendance"
	"traineeportal/pkg/auth"
	"traineeportal/pkg/contents"
	"traineeportal/pkg/portal"
	"traineeportal/pkg/requests"
	"traineeportal/pkg/schedule"
)

// app wires the full client SDK against an httptest instance of the mock
// portal, the way the CLI wires it against a real branch.
type app struct {
	set        *data.Set
	auth       *auth.Service
	schedule   *schedule.Service
	attendance *attendance.Service
	contents   *contents.Service
	requests   *requests.Service
}

func newApp(t *testing.T) *app {
	t.Helper()

	set, err := data.Load("")
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}

	srv := httptest.NewServer(NewServer(set, 0).Router())
	t.Cleanup(srv.Close)

	cfg := portal.NewConfig()
	cfg.SetBaseURL(srv.URL)
	cli := portal.New(cfg)

	return &app{
		set:        set,
		auth:       auth.NewService(cli),
		schedule:   schedule.NewService(cli),
		attendance: attendance.NewService(cli),
		contents:   contents.NewService(cli),
		requests:   requests.NewService(cli),
	}
}

func login(t *testing.T, a *app) auth.LoginResult {
	t.Helper()

	res, err := a.auth.Login(context.Background(), auth.Credentials{
		NationalID: "29805241301234",
		Password:   "secret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return res
}

func TestLoginAndProfile(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()

	res := login(t, a)
	if res.AccessToken == "" {
		t.Fatal("login must issue a token")
	}
	if res.Trainee.Name != "Mona Adel" {
		t.Errorf("unexpected trainee: %+v", res.Trainee)
	}

	// The profile endpoint answers in the legacy bare shape; the service
	// must still come back with the trainee.
	trainee, err := a.auth.Profile(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if trainee.ID != res.Trainee.ID {
		t.Errorf("profile does not match the login trainee: %+v", trainee)
	}
}

func TestLoginRejected(t *testing.T) {
	a := newApp(t)

	_, err := a.auth.Login(context.Background(), auth.Credentials{
		NationalID: "29805241301234",
		Password:   "wrong",
	})

	perr, ok := portal.AsError(err)
	if !ok || perr.Kind != portal.KindHTTP || perr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected http 401, got %v", err)
	}
	if perr.Message == "" {
		t.Error("server message must be surfaced")
	}
}

func TestRevokedToken(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()

	res := login(t, a)
	a.set.RevokeToken(res.AccessToken)

	_, err := a.auth.Profile(ctx, res.AccessToken)
	perr, ok := portal.AsError(err)
	if !ok || perr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected http 401 for a revoked token, got %v", err)
	}
}

func TestScheduleAndGrades(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	token := login(t, a).AccessToken

	week, err := a.schedule.Week(ctx, token)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(week.Data.Sessions) == 0 {
		t.Error("expected seeded sessions")
	}

	// The grades endpoint wraps a bare array; percentages and the average
	// are filled in client-side.
	grades, err := a.schedule.Grades(ctx, token)
	if err != nil {
		t.Fatalf("grades: %v", err)
	}
	if len(grades.Data.Grades) == 0 {
		t.Fatal("expected seeded grades")
	}
	for _, g := range grades.Data.Grades {
		if g.Percent == 0 {
			t.Errorf("percent not computed for %s", g.Course)
		}
	}
	if grades.Data.Average == 0 {
		t.Error("average not computed")
	}
}

func TestAttendanceAggregate(t *testing.T) {
	a := newApp(t)
	token := login(t, a).AccessToken

	env, err := a.attendance.Records(context.Background(), token)
	if err != nil {
		t.Fatalf("attendance: %v", err)
	}
	// Seed: 3/4 and 5/5 present, so 8/9 overall.
	if env.Data.Stats.AttendanceRate != 88.89 {
		t.Errorf("expected overall rate 88.89, got %v", env.Data.Stats.AttendanceRate)
	}
}

func TestContentsAndMaterial(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	token := login(t, a).AccessToken

	cnts, err := a.contents.Contents(ctx, token)
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if len(cnts.Data.Contents) == 0 {
		t.Fatal("expected seeded contents")
	}

	lectures, err := a.contents.Lectures(ctx, token, cnts.Data.Contents[0].ID)
	if err != nil {
		t.Fatalf("lectures: %v", err)
	}
	if len(lectures.Data.Lectures) == 0 {
		t.Fatal("expected seeded lectures")
	}

	var withFile, withoutFile string
	for _, l := range lectures.Data.Lectures {
		if l.HasFile {
			withFile = l.ID
		} else {
			withoutFile = l.ID
		}
	}
	if withFile == "" {
		t.Fatal("seed must carry a lecture with material")
	}

	var buf bytes.Buffer
	n, err := a.contents.DownloadMaterial(ctx, token, withFile, &buf)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if n == 0 || !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("unexpected material payload: %q", buf.String())
	}

	if withoutFile != "" {
		_, err := a.contents.DownloadMaterial(ctx, token, withoutFile, &bytes.Buffer{})
		perr, ok := portal.AsError(err)
		if !ok || perr.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 for a lecture without material, got %v", err)
		}
	}
}

func TestSignupChainEndToEnd(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()

	signup := auth.NewSignup(a.auth)

	res, err := signup.VerifyIdentity(ctx, "30109251104478")
	if err != nil {
		t.Fatalf("verify identity: %v", err)
	}
	if res.MaskedPhone == "" {
		t.Error("expected a masked phone")
	}

	if err := signup.VerifyPhone(ctx, "000000"); err == nil {
		t.Fatal("wrong code must be rejected")
	}
	if signup.State() != auth.StateIdentityVerified {
		t.Fatalf("failed step must not advance the state, got %s", signup.State())
	}

	if err := signup.VerifyPhone(ctx, "123456"); err != nil {
		t.Fatalf("verify phone: %v", err)
	}
	if err := signup.CreatePassword(ctx, "fresh-pass"); err != nil {
		t.Fatalf("create password: %v", err)
	}
	if !signup.Done() {
		t.Fatal("chain must be done")
	}

	if _, err := a.auth.Login(ctx, auth.Credentials{NationalID: "30109251104478", Password: "fresh-pass"}); err != nil {
		t.Errorf("login after signup: %v", err)
	}
}

func TestPasswordResetEndToEnd(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	const id = "30011051502211"

	if err := a.auth.ForgotPassword(ctx, id); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	sess, err := a.auth.VerifyResetCode(ctx, id, "123456")
	if err != nil {
		t.Fatalf("verify reset code: %v", err)
	}
	if sess.ResetToken == "" {
		t.Fatal("expected a reset token")
	}

	if err := a.auth.ResetPassword(ctx, sess.ResetToken, "rotated"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, err := a.auth.Login(ctx, auth.Credentials{NationalID: id, Password: "rotated"}); err != nil {
		t.Errorf("login with the new password: %v", err)
	}
}

func TestRequestsEndToEnd(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	token := login(t, a).AccessToken

	before, err := a.requests.All(ctx, token)
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}

	created, err := a.requests.Submit(ctx, token, requests.NewRequest{
		Type:    "enrollment_letter",
		Subject: "Enrollment letter for the bank",
	})
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}
	if created.ID == "" || created.Status != "pending" {
		t.Errorf("unexpected created request: %+v", created)
	}

	after, err := a.requests.All(ctx, token)
	if err != nil {
		t.Fatalf("list requests again: %v", err)
	}
	if len(after.Data.Requests) != len(before.Data.Requests)+1 {
		t.Errorf("submitted request not listed: before=%d after=%d",
			len(before.Data.Requests), len(after.Data.Requests))
	}
}

func TestUnknownEndpoint(t *testing.T) {
	set, err := data.Load("")
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	srv := httptest.NewServer(NewServer(set, 0).Router())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/no-such-thing")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", res.StatusCode)
	}
}
