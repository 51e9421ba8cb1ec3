package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"traineeportal/pkg/portal"
	"traineeportal/pkg/tools/json"
)

func newTestService(t *testing.T, h http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := portal.NewConfig()
	cfg.SetBaseURL(srv.URL)
	return NewService(portal.New(cfg)), srv
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != portal.EndpointLogin {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry an Authorization header, got %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var creds Credentials
		if err := json.Unmarshal(body, &creds); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if creds.NationalID != "29805241301234" || creds.Password != "secret" {
			t.Errorf("unexpected credentials: %+v", creds)
		}

		w.Write([]byte(`{"access_token":"tok-1","trainee":{"id":"t-1","nationalId":"29805241301234","name":"Mona Adel"}}`))
	})

	res, err := svc.Login(context.Background(), Credentials{NationalID: "29805241301234", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.AccessToken != "tok-1" {
		t.Errorf("expected token tok-1, got %q", res.AccessToken)
	}
	if res.Trainee.Name != "Mona Adel" {
		t.Errorf("trainee payload not returned verbatim: %+v", res.Trainee)
	}
}

func TestLoginRejected(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid national id or password"}`))
	})

	_, err := svc.Login(context.Background(), Credentials{NationalID: "x", Password: "y"})

	perr, ok := portal.AsError(err)
	if !ok {
		t.Fatalf("expected portal error, got %v", err)
	}
	if perr.Kind != portal.KindHTTP || perr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected http 401, got kind=%s status=%d", perr.Kind, perr.StatusCode)
	}
	if perr.Message != "invalid national id or password" {
		t.Errorf("server message not surfaced: %q", perr.Message)
	}
}

func TestProfileShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare object", `{"id":"t-1","nationalId":"n","name":"Mona Adel"}`},
		{"wrapped", `{"success":true,"data":{"id":"t-1","nationalId":"n","name":"Mona Adel"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer tok" {
					t.Errorf("missing bearer token, got %q", got)
				}
				w.Write([]byte(tt.body))
			})

			trainee, err := svc.Profile(context.Background(), "tok")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if trainee.Name != "Mona Adel" {
				t.Errorf("unexpected trainee: %+v", trainee)
			}
		})
	}
}

func TestVerifyTrainee(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != portal.EndpointVerifyTrainee {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"eligible":true,"maskedPhone":"010****1234"}}`))
	})

	res, err := svc.VerifyTrainee(context.Background(), "29805241301234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Eligible || res.MaskedPhone != "010****1234" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestVerifyResetCode(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if req["code"] != "123456" {
			t.Errorf("expected code 123456, got %q", req["code"])
		}
		w.Write([]byte(`{"resetToken":"rst-1"}`))
	})

	sess, err := svc.VerifyResetCode(context.Background(), "29805241301234", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ResetToken != "rst-1" {
		t.Errorf("unexpected session: %+v", sess)
	}
}
