// Package api is the mock portal backend: the full trainee endpoint catalog
// served from an in-memory fixture set. Some endpoints answer in the
// canonical {success, data} wrapper and some in the older bare shapes, on
// purpose, so the client's normalization layer gets exercised end to end.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"traineeportal/cmd/mockapi/data"
	"traineeportal/pkg/auth"
	"traineeportal/pkg/requests"
	"traineeportal/pkg/tools/json"
)

type (
	HTTPServer struct {
		Server *http.Server
		Set    *data.Set
	}

	credentials struct {
		NationalID string `json:"nationalId"`
		Password   string `json:"password"`
	}

	signupBody struct {
		NationalID string `json:"nationalId"`
		Code       string `json:"code"`
		Password   string `json:"password"`
		ResetToken string `json:"resetToken"`
	}
)

// NewServer builds the mock portal around the fixture set.
func NewServer(set *data.Set, port int) *HTTPServer {
	s := &HTTPServer{Set: set}

	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		notFound("no such endpoint", w)
	})
	router.Use(middleware.Logger)
	router.Use(recoverMiddleware)
	router.Route("/api", func(r chi.Router) {
		r.Route("/trainee-auth", func(r chi.Router) {
			r.Post("/login", s.login)
			r.Post("/verify-trainee", s.verifyTrainee)
			r.Post("/verify-phone", s.verifyPhone)
			r.Post("/create-password", s.createPassword)
			r.Post("/forgot-password", s.forgotPassword)
			r.Post("/verify-reset-code", s.verifyResetCode)
			r.Post("/reset-password", s.resetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(set))

			r.Get("/trainees/profile", s.profile)
			r.Get("/schedule", s.schedule)
			r.Get("/grades", s.grades)
			r.Get("/attendance-records", s.attendanceRecords)
			r.Get("/training-contents", s.trainingContents)
			r.Get("/training-contents/{id}/lectures", s.lectures)
			r.Get("/lectures/{id}", s.lecture)
			r.Get("/lectures/{id}/material", s.material)
			r.Get("/trainee-requests", s.traineeRequests)
			r.Post("/trainee-requests", s.submitRequest)
		})
	})

	s.Server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
	return s
}

// Router exposes the handler for httptest-driven integration tests.
func (s *HTTPServer) Router() http.Handler {
	return s.Server.Handler
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decode(r, &creds); err != nil {
		badRequest("bad payload", w)
		return
	}

	t, token, err := s.Set.Login(creds.NationalID, creds.Password)
	if err != nil {
		unauthorized("wrong national id or password", w)
		return
	}

	// The login payload is not wrapped; clients consume it verbatim.
	okLegacy(auth.LoginResult{AccessToken: token, Trainee: wireTrainee(t)}, w)
}

func (s *HTTPServer) verifyTrainee(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	masked, eligible := s.Set.VerifyTrainee(body.NationalID)
	ok(auth.VerifyResult{Eligible: eligible, MaskedPhone: masked}, w)
}

func (s *HTTPServer) verifyPhone(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	if !s.Set.VerifyPhone(body.NationalID, body.Code) {
		badRequest("wrong or expired confirmation code", w)
		return
	}
	ok(struct{}{}, w)
}

func (s *HTTPServer) createPassword(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	if err := s.Set.CreatePassword(body.NationalID, body.Password); err != nil {
		notFound("trainee not found", w)
		return
	}
	ok(struct{}{}, w)
}

func (s *HTTPServer) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	// Always answer OK so the endpoint does not leak which national ids have
	// accounts.
	s.Set.ForgotPassword(body.NationalID)
	ok(struct{}{}, w)
}

func (s *HTTPServer) verifyResetCode(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	token, valid := s.Set.VerifyResetCode(body.NationalID, body.Code)
	if !valid {
		badRequest("wrong or expired confirmation code", w)
		return
	}
	ok(map[string]string{"resetToken": token}, w)
}

func (s *HTTPServer) resetPassword(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := decode(r, &body); err != nil {
		badRequest("bad payload", w)
		return
	}

	if err := s.Set.ResetPassword(body.ResetToken, body.Password); err != nil {
		badRequest("invalid reset token", w)
		return
	}
	ok(struct{}{}, w)
}

func (s *HTTPServer) profile(w http.ResponseWriter, r *http.Request) {
	// Legacy shape: the profile endpoint predates the envelope.
	okLegacy(wireTrainee(traineeFrom(r)), w)
}

func (s *HTTPServer) schedule(w http.ResponseWriter, r *http.Request) {
	ok(map[string]any{"sessions": s.Set.Schedule()}, w)
}

func (s *HTTPServer) grades(w http.ResponseWriter, r *http.Request) {
	// Canonical wrapper, but the data payload is still the old bare array.
	ok(s.Set.Grades(), w)
}

func (s *HTTPServer) attendanceRecords(w http.ResponseWriter, r *http.Request) {
	okLegacy(s.Set.Attendance(), w)
}

func (s *HTTPServer) trainingContents(w http.ResponseWriter, r *http.Request) {
	ok(map[string]any{"contents": s.Set.Contents()}, w)
}

func (s *HTTPServer) lectures(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lectures, found := s.Set.Lectures(id)
	if !found {
		notFound("training content not found", w)
		return
	}
	okLegacy(lectures, w)
}

func (s *HTTPServer) lecture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lec, found := s.Set.Lecture(id)
	if !found {
		notFound("lecture not found", w)
		return
	}
	okLegacy(lec, w)
}

func (s *HTTPServer) material(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lec, found := s.Set.Lecture(id)
	if !found || !lec.HasFile {
		notFound("no material for this lecture", w)
		return
	}

	payload := []byte("%PDF-1.4\n% mock material for " + lec.Title + "\n")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="material.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to stream material", "lecture", id, "error", err)
	}
}

func (s *HTTPServer) traineeRequests(w http.ResponseWriter, r *http.Request) {
	t := traineeFrom(r)
	ok(map[string]any{"requests": s.Set.Requests(t.ID)}, w)
}

func (s *HTTPServer) submitRequest(w http.ResponseWriter, r *http.Request) {
	t := traineeFrom(r)

	var nr struct {
		Type    string `json:"type"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := decode(r, &nr); err != nil {
		badRequest("bad payload", w)
		return
	}
	if nr.Type == "" || nr.Subject == "" {
		badRequest("type and subject are required", w)
		return
	}

	created := s.Set.AddRequest(t.ID, requests.NewRequest{Type: nr.Type, Subject: nr.Subject, Body: nr.Body})
	ok(created, w)
}

func wireTrainee(t data.Trainee) auth.Trainee {
	return auth.Trainee{
		ID:         t.ID,
		NationalID: t.NationalID,
		Name:       t.Name,
		Phone:      t.Phone,
		Program:    t.Program,
	}
}

func decode(r *http.Request, v any) error {
	defer io.Copy(io.Discard, r.Body)
	return json.NewDecoder(r.Body).Decode(v)
}
