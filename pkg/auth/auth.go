// Package auth wraps the trainee-auth endpoint group: login, the signup
// verification chain, the password-reset chain, and the profile.
package auth

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

	Credentials struct {
		NationalID string `json:"nationalId"`
		Password   string `json:"password"`
	}

	Trainee struct {
		ID         string `json:"id"`
		NationalID string `json:"nationalId"`
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Email      string `json:"email,omitempty"`
		BranchID   string `json:"branchId,omitempty"`
		Program    string `json:"program,omitempty"`
	}

	// LoginResult is returned by the backend verbatim; no normalization is
	// applied to the login payload.
	LoginResult struct {
		AccessToken string  `json:"access_token"`
		Trainee     Trainee `json:"trainee"`
	}

	// VerifyResult is the backend's answer to verify-trainee: whether the
	// national id belongs to an enrollable trainee, and the masked phone the
	// confirmation code was sent to.
	VerifyResult struct {
		Eligible    bool   `json:"eligible"`
		MaskedPhone string `json:"maskedPhone,omitempty"`
	}

	ResetSession struct {
		ResetToken string    `json:"resetToken"`
		ExpiresAt  time.Time `json:"expiresAt,omitempty"`
	}
)

func NewService(cli *portal.Client) *Service {
	return &Service{cli: cli}
}

// Login establishes a session. It is a pre-session endpoint: no Authorization
// header is sent.
func (s *Service) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	return portal.Post[LoginResult](ctx, s.cli, portal.EndpointLogin, creds, "")
}

// Profile returns the logged-in trainee, tolerating both the wrapped and the
// bare-object response shape.
func (s *Service) Profile(ctx context.Context, token string) (Trainee, error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointProfile, token)
	if err != nil {
		return Trainee{}, err
	}

	env, err := normalize.Wrap[Trainee](raw, "", nil)
	if err != nil {
		return Trainee{}, err
	}
	return env.Data, nil
}

func (s *Service) VerifyTrainee(ctx context.Context, nationalID string) (VerifyResult, error) {
	body := map[string]string{"nationalId": nationalID}
	raw, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointVerifyTrainee, body, "")
	if err != nil {
		return VerifyResult{}, err
	}

	env, err := normalize.Wrap[VerifyResult](raw, "", nil)
	if err != nil {
		return VerifyResult{}, err
	}
	return env.Data, nil
}

func (s *Service) VerifyPhone(ctx context.Context, nationalID, code string) error {
	body := map[string]string{"nationalId": nationalID, "code": code}
	_, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointVerifyPhone, body, "")
	return err
}

func (s *Service) CreatePassword(ctx context.Context, nationalID, password string) error {
	body := map[string]string{"nationalId": nationalID, "password": password}
	_, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointCreatePassword, body, "")
	return err
}

// ForgotPassword starts the reset chain by sending a code to the trainee's
// registered phone.
func (s *Service) ForgotPassword(ctx context.Context, nationalID string) error {
	body := map[string]string{"nationalId": nationalID}
	_, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointForgotPassword, body, "")
	return err
}

func (s *Service) VerifyResetCode(ctx context.Context, nationalID, code string) (ResetSession, error) {
	body := map[string]string{"nationalId": nationalID, "code": code}
	raw, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointVerifyResetCode, body, "")
	if err != nil {
		return ResetSession{}, err
	}

	env, err := normalize.Wrap[ResetSession](raw, "", nil)
	if err != nil {
		return ResetSession{}, err
	}
	return env.Data, nil
}

func (s *Service) ResetPassword(ctx context.Context, resetToken, password string) error {
	body := map[string]string{"resetToken": resetToken, "password": password}
	_, err := portal.Post[json.RawMessage](ctx, s.cli, portal.EndpointResetPassword, body, "")
	return err
}
