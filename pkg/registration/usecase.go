package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinAge            = 18
)

// UseCase describes registration behavior.
type UseCase interface {
	Register(ctx context.Context, user User) (User, error)
}

type service struct {
	storage Storage
	log     *slog.Logger
}

// NewService returns default implementation of UseCase.
func NewService(storage Storage, log *slog.Logger) UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &service{storage: storage, log: log}
}

func (s *service) Register(ctx context.Context, user User) (User, error) {
	if user.Login == "" {
		return User{}, s.reject(ctx, user, "login is empty")
	}

	_, err := s.storage.Get(ctx, user.Login)
	switch {
	case err == nil:
		return User{}, s.reject(ctx, user, "login already exists")
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("lookup login: %w", err)
	}

	if reason := credentialsProblem(user); reason != "" {
		return User{}, s.reject(ctx, user, reason)
	}

	if err := s.storage.Add(ctx, user); err != nil {
		return User{}, fmt.Errorf("store user: %w", err)
	}
	s.log.InfoContext(ctx, "user registered", "login", user.Login)
	return user, nil
}

func (s *service) reject(ctx context.Context, user User, reason string) error {
	s.log.DebugContext(ctx, "registration rejected", "login", user.Login, "reason", reason)
	return fmt.Errorf("%w: %s", ErrInvalidData, reason)
}

// Validate checks the rules that do not need storage: login present,
// password length and age. Uniqueness is checked by Register only.
func Validate(user User) error {
	reason := credentialsProblem(user)
	if user.Login == "" {
		reason = "login is empty"
	}
	if reason == "" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidData, reason)
}

func credentialsProblem(user User) string {
	switch {
	case utf8.RuneCountInString(user.Password) < MinPasswordLength:
		return fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	case user.Age == nil:
		return "age is absent"
	case *user.Age < MinAge:
		return fmt.Sprintf("age must be at least %d", MinAge)
	}
	return ""
}
