// Package data holds the in-memory fixture set the mock portal serves. It is
// seeded from YAML, either the built-in fixtures or a file supplied on the
// command line.
package data

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"traineeportal/pkg/attendance"
	"traineeportal/pkg/contents"
	"traineeportal/pkg/requests"
	"traineeportal/pkg/schedule"
	"traineeportal/pkg/tools/json"
)

type (
	Trainee struct {
		ID           string `json:"id"`
		NationalID   string `json:"national_id"`
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Program      string `json:"program"`
		Password     string `json:"password,omitempty"`      // plaintext in seed, hashed at load
		PasswordHash string `json:"password_hash,omitempty"` // pre-hashed alternative
		Registered   bool   `json:"registered"`
	}

	Seed struct {
		Trainees   []Trainee                     `json:"trainees"`
		Schedule   []schedule.Session            `json:"schedule"`
		Grades     []schedule.Grade              `json:"grades"`
		Attendance []attendance.ContentRecord    `json:"attendance"`
		Contents   []contents.Content            `json:"contents"`
		Lectures   map[string][]contents.Lecture `json:"lectures"`
		Requests   map[string][]requests.Request `json:"requests"`
	}

	Set struct {
		mu sync.RWMutex

		trainees map[string]*Trainee // keyed by national id
		tokens   map[string]string   // bearer token -> national id
		smsCodes map[string]string   // national id -> pending confirmation code
		resets   map[string]string   // reset token -> national id

		schedule   []schedule.Session
		grades     []schedule.Grade
		attendance []attendance.ContentRecord
		contents   []contents.Content
		lectures   map[string][]contents.Lecture
		requests   map[string][]requests.Request
	}
)

var (
	ErrNotFound    = errors.New("not found")
	ErrBadPassword = errors.New("wrong password")
)

// smsCode is the fixed confirmation code the mock "sends". Handy for tests
// and manual poking alike.
const smsCode = "123456"

// Load builds the fixture set from path, or from the built-in seed when path
// is empty.
func Load(path string) (*Set, error) {
	raw := []byte(defaultSeed)
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open seed file: %w", err)
		}
	}

	// The seed structs carry json tags (they share types with the SDK), so
	// the YAML document goes through a generic node and a JSON round trip.
	var node any
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	encoded, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to convert seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(encoded, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return FromSeed(seed)
}

// FromSeed builds the fixture set, hashing any plaintext seed passwords.
func FromSeed(seed Seed) (*Set, error) {
	s := &Set{
		trainees:   make(map[string]*Trainee),
		tokens:     make(map[string]string),
		smsCodes:   make(map[string]string),
		resets:     make(map[string]string),
		schedule:   seed.Schedule,
		grades:     seed.Grades,
		attendance: seed.Attendance,
		contents:   seed.Contents,
		lectures:   seed.Lectures,
		requests:   seed.Requests,
	}
	if s.lectures == nil {
		s.lectures = make(map[string][]contents.Lecture)
	}
	if s.requests == nil {
		s.requests = make(map[string][]requests.Request)
	}

	for i := range seed.Trainees {
		t := seed.Trainees[i]
		if t.Password != "" {
			h, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash seed password: %w", err)
			}
			t.PasswordHash = string(h)
			t.Password = ""
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		s.trainees[t.NationalID] = &t
	}

	return s, nil
}

// Login checks the credentials and issues a bearer token.
func (s *Set) Login(nationalID, password string) (Trainee, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trainees[nationalID]
	if !ok || !t.Registered {
		return Trainee{}, "", ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)); err != nil {
		return Trainee{}, "", ErrBadPassword
	}

	token := uuid.NewString()
	s.tokens[token] = nationalID
	return *t, token, nil
}

// Authenticate resolves a bearer token to its trainee.
func (s *Set) Authenticate(token string) (Trainee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nationalID, ok := s.tokens[token]
	if !ok {
		return Trainee{}, false
	}
	t, ok := s.trainees[nationalID]
	if !ok {
		return Trainee{}, false
	}
	return *t, true
}

// RevokeToken drops a bearer token, simulating expiry.
func (s *Set) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// VerifyTrainee starts signup: the id must exist and not be registered yet.
// The mock records a pending confirmation code instead of sending an SMS.
func (s *Set) VerifyTrainee(nationalID string) (masked string, eligible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trainees[nationalID]
	if !ok || t.Registered {
		return "", false
	}

	s.smsCodes[nationalID] = smsCode
	return maskPhone(t.Phone), true
}

func (s *Set) VerifyPhone(nationalID, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.smsCodes[nationalID]
	if !ok || code != want {
		return false
	}
	delete(s.smsCodes, nationalID)
	return true
}

func (s *Set) CreatePassword(nationalID, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trainees[nationalID]
	if !ok {
		return ErrNotFound
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = string(h)
	t.Registered = true
	return nil
}

// ForgotPassword records a pending reset code for a registered trainee.
func (s *Set) ForgotPassword(nationalID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trainees[nationalID]
	if !ok || !t.Registered {
		return false
	}
	s.smsCodes[nationalID] = smsCode
	return true
}

// VerifyResetCode trades a valid code for a one-shot reset token.
func (s *Set) VerifyResetCode(nationalID, code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.smsCodes[nationalID]
	if !ok || code != want {
		return "", false
	}
	delete(s.smsCodes, nationalID)

	token := uuid.NewString()
	s.resets[token] = nationalID
	return token, true
}

func (s *Set) ResetPassword(resetToken, password string) error {
	s.mu.Lock()
	nationalID, ok := s.resets[resetToken]
	delete(s.resets, resetToken)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	return s.CreatePassword(nationalID, password)
}

func (s *Set) Schedule() []schedule.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule
}

func (s *Set) Grades() []schedule.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grades
}

func (s *Set) Attendance() []attendance.ContentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendance
}

func (s *Set) Contents() []contents.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contents
}

func (s *Set) Lectures(contentID string) ([]contents.Lecture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lectures[contentID]
	return l, ok
}

func (s *Set) Lecture(lectureID string) (contents.Lecture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ls := range s.lectures {
		for _, l := range ls {
			if l.ID == lectureID {
				return l, true
			}
		}
	}
	return contents.Lecture{}, false
}

func (s *Set) Requests(traineeID string) []requests.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests[traineeID]
}

func (s *Set) AddRequest(traineeID string, nr requests.NewRequest) requests.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := requests.Request{
		ID:        uuid.NewString(),
		Type:      nr.Type,
		Subject:   nr.Subject,
		Body:      nr.Body,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	s.requests[traineeID] = append(s.requests[traineeID], r)
	return r
}

func maskPhone(phone string) string {
	if len(phone) < 4 {
		return "****"
	}
	masked := make([]byte, len(phone))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(masked)-4:], phone[len(phone)-4:])
	return string(masked)
}
