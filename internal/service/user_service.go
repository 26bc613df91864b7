package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/security"
	"courseapi/internal/validation"

	"github.com/go-playground/validator/v10"
)

const emailInUseMessage = "The email you entered is already in use. Please use a different email"

// ValidationError carries the full list of field messages for a rejected
// payload. Violations are collected, not fail-fast, so the caller can return
// every message in one response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// UserService defines the interface for user registration.
type UserService interface {
	// Register validates the candidate user plus plaintext password, hashes
	// the password and persists the record. Rule violations are returned as a
	// *ValidationError.
	Register(ctx context.Context, u *model.User, password string) error
}

type userService struct {
	userRepo repository.UserRepository
	rules    *validation.RuleSet
}

// NewUserService creates a new UserService. The registration ruleset is built
// once here; the uniqueness rule reads through the user repository.
func NewUserService(userRepo repository.UserRepository, validate *validator.Validate) UserService {
	rules := validation.NewRuleSet(validate,
		validation.NewField("firstName",
			validation.Required(`Please provide a value for "first name"`),
		),
		validation.NewField("lastName",
			validation.Required(`Please provide a value for "last name"`),
		),
		validation.NewField("emailAddress",
			validation.Required(`Please provide a value for "Email"`),
			validation.Email(`Please provide a valid email address for "Email"`),
			validation.Unique(func(ctx context.Context, email string) (bool, error) {
				u, err := userRepo.GetUserByEmail(ctx, email)
				return u != nil, err
			}, emailInUseMessage),
		),
		validation.NewField("password",
			validation.Required(`Please provide a value for "Password"`),
			validation.Length(8, 20, "Please provide password with 8 to 20 characters"),
		),
	)
	return &userService{userRepo: userRepo, rules: rules}
}

func (s *userService) Register(ctx context.Context, u *model.User, password string) error {
	messages, err := s.rules.Validate(ctx, map[string]string{
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"emailAddress": u.EmailAddress,
		"password":     password,
	})
	if err != nil {
		return fmt.Errorf("validating registration: %w", err)
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.Password = hash

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		// A concurrent registration can land between the uniqueness lookup
		// and the insert; the unique index reports it here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &ValidationError{Messages: []string{emailInUseMessage}}
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}
