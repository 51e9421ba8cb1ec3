package api

import (
	"context"
	"net/http"
	"strings"

	"traineeportal/cmd/mockapi/data"
)

type contextKey string

const traineeKey contextKey = "trainee"

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				internalServerError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// BearerAuth guards the session-only routes: it resolves the Authorization
// bearer token against the fixture set and stores the trainee on the context.
func BearerAuth(set *data.Set) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				unauthorized("missing bearer token", w)
				return
			}

			t, ok := set.Authenticate(token)
			if !ok {
				unauthorized("session expired, please log in again", w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), traineeKey, t)))
		})
	}
}

func traineeFrom(r *http.Request) data.Trainee {
	t, _ := r.Context().Value(traineeKey).(data.Trainee)
	return t
}
