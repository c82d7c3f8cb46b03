package users

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/designerprogramming-cyber/Designs4U/internal/mailer"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
)

// demoResetCode is the fixed reset code the demo accepts. A stand-in
// for a real SMS backend, not security logic.
const demoResetCode = "123456"

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

type Service struct {
	store       *Store
	mail        mailer.Service
	submitDelay time.Duration
	log         *slog.Logger
}

func NewService(store *Store, mail mailer.Service, submitDelay time.Duration, log *slog.Logger) *Service {
	return &Service{store: store, mail: mail, submitDelay: submitDelay, log: log}
}

// SeedDemoAccounts creates the two built-in accounts:
// admin / 0 and user / 00.
func (s *Service) SeedDemoAccounts(ctx context.Context) error {
	seeds := []struct {
		email, password string
		role            Role
	}{
		{"admin", "0", RoleAdmin},
		{"user", "00", RoleCustomer},
	}
	for _, sd := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(sd.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now()
		u := &User{
			ID:              uuid.NewString(),
			Email:           sd.email,
			Role:            sd.role,
			PasswordHash:    hash,
			EmailVerifiedAt: &now,
			CreatedAt:       now,
		}
		if err := s.store.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// Authenticate checks credentials and returns the account, or an
// unauthorized error with no session created.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	u, ok, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}
	if !ok {
		return User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}
	return u, nil
}

type RegisterInput struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Register creates a customer account and starts email verification.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	if in.Password != in.ConfirmPassword {
		return User{}, apperr.InvalidErr("Passwords don't match.", map[string]string{"confirm_password": "must match password"})
	}
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}
	u := &User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		PhoneE164:    in.Phone,
		Role:         RoleCustomer,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, u); err != nil {
		if err == ErrEmailTaken {
			return User{}, apperr.ConflictErr("An account with this email already exists.")
		}
		return User{}, apperr.Wrap(err)
	}

	code, err := generateOTP()
	if err != nil {
		return User{}, apperr.Wrap(err)
	}
	mail := mailer.Email{
		FromName: "Designs4U",
		From:     "no-reply@designs4u.local",
		To:       []string{u.Email},
		Subject:  "Verify your email",
		Text:     fmt.Sprintf("Your verification code is %s.", code),
	}
	if err := s.mail.Send(ctx, mail); err != nil {
		// verification is simulated anyway; log and move on
		s.log.Warn("verification_mail_failed", slog.String("email", u.Email), slog.Any("err", err))
	}
	s.log.Info("user_registered", slog.String("user_id", u.ID), slog.String("email", u.Email))
	return *u, nil
}

// VerifyEmail accepts any well-formed 6-digit code; the strict check
// lives behind a real backend this demo does not have.
func (s *Service) VerifyEmail(ctx context.Context, email, code string) error {
	if !sixDigits.MatchString(code) {
		return apperr.InvalidErr("Please enter the full 6-digit code.", map[string]string{"code": "must be 6 digits"})
	}
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	return s.store.MarkEmailVerified(ctx, email)
}

// StartPasswordReset "sends" the fixed demo reset code to the phone.
func (s *Service) StartPasswordReset(ctx context.Context, phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", apperr.InvalidErr("Phone number is required.", map[string]string{"phone": "required"})
	}
	if err := s.simulateLatency(ctx); err != nil {
		return "", err
	}
	s.log.Info("reset_code_sent", slog.String("phone", phone))
	return demoResetCode, nil
}

type ResetPasswordInput struct {
	Phone           string
	Code            string
	Password        string
	ConfirmPassword string
}

func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if in.Code != demoResetCode {
		return apperr.InvalidErr("Invalid verification code.", map[string]string{"code": "invalid"})
	}
	if in.Password != in.ConfirmPassword {
		return apperr.InvalidErr("Passwords don't match.", map[string]string{"confirm_password": "must match password"})
	}
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	u, ok, err := s.store.GetByPhone(ctx, in.Phone)
	if err != nil {
		return apperr.Wrap(err)
	}
	if !ok {
		// the demo reports success either way; no account enumeration
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(err)
	}
	return s.store.UpdatePassword(ctx, u.Email, hash)
}

// simulateLatency stands in for the network round trip every submit
// path had in the original. Cancellation wins over the delay.
func (s *Service) simulateLatency(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.submitDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// generateOTP returns a random 6-digit code.
func generateOTP() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	num := ((int(b[0]) << 16) | (int(b[1]) << 8) | int(b[2])) % 1000000
	return fmt.Sprintf("%06d", num), nil
}
