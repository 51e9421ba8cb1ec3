package auth

import (
	"context"
	"errors"
)

// SignupState tracks how far a new trainee is through the signup chain.
// Every transition needs a successful backend call; a failed call leaves the
// state where it was.
type SignupState int

const (
	StateUnverified SignupState = iota
	StateIdentityVerified
	StatePhoneVerified
	StatePasswordCreated
)

func (s SignupState) String() string {
	switch s {
	case StateUnverified:
		return "unverified"
	case StateIdentityVerified:
		return "identity_verified"
	case StatePhoneVerified:
		return "phone_verified"
	case StatePasswordCreated:
		return "password_created"
	default:
		return "unknown"
	}
}

var ErrBadTransition = errors.New("signup step attempted out of order")

type (
	// Signup drives one trainee through the verification chain. It is not
	// safe for concurrent use; the signup screen owns exactly one.
	Signup struct {
		svc        *Service
		state      SignupState
		nationalID string
	}
)

func NewSignup(svc *Service) *Signup {
	return &Signup{svc: svc, state: StateUnverified}
}

func (s *Signup) State() SignupState {
	return s.state
}

// VerifyIdentity checks the national id against the enrollment records and
// triggers the confirmation SMS. Moves Unverified -> IdentityVerified.
func (s *Signup) VerifyIdentity(ctx context.Context, nationalID string) (VerifyResult, error) {
	if s.state != StateUnverified {
		return VerifyResult{}, ErrBadTransition
	}

	res, err := s.svc.VerifyTrainee(ctx, nationalID)
	if err != nil {
		return VerifyResult{}, err
	}
	if !res.Eligible {
		return res, errors.New("national id is not enrolled at this branch")
	}

	s.nationalID = nationalID
	s.state = StateIdentityVerified
	return res, nil
}

// VerifyPhone confirms the SMS code. Moves IdentityVerified -> PhoneVerified.
func (s *Signup) VerifyPhone(ctx context.Context, code string) error {
	if s.state != StateIdentityVerified {
		return ErrBadTransition
	}

	if err := s.svc.VerifyPhone(ctx, s.nationalID, code); err != nil {
		return err
	}

	s.state = StatePhoneVerified
	return nil
}

// CreatePassword finishes signup. Moves PhoneVerified -> PasswordCreated,
// the terminal state; the caller returns to the login screen from here.
func (s *Signup) CreatePassword(ctx context.Context, password string) error {
	if s.state != StatePhoneVerified {
		return ErrBadTransition
	}

	if err := s.svc.CreatePassword(ctx, s.nationalID, password); err != nil {
		return err
	}

	s.state = StatePasswordCreated
	return nil
}

// Done reports whether the chain reached its terminal state.
func (s *Signup) Done() bool {
	return s.state == StatePasswordCreated
}
