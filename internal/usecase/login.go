package usecase

import (
	"context"
	"strings"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// LoginInput contains the credentials entered on the login screen.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the signed-in user.
type LoginOutput struct {
	Username string
}

// Login is the stub sign-in: any non-empty username and password are accepted.
type Login struct {
	logger domain.Logger
}

// NewLogin creates a new Login use case.
func NewLogin(logger domain.Logger) *Login {
	return &Login{
		logger: logger,
	}
}

// Execute checks that both credentials are present. No credential store is consulted.
func (uc *Login) Execute(_ context.Context, in LoginInput) (*LoginOutput, error) {
	user := strings.TrimSpace(in.Username)
	if user == "" {
		return nil, domain.ErrEmptyUsername
	}
	if in.Password == "" {
		return nil, domain.ErrEmptyPassword
	}
	uc.logger.Info("", "auth", "signed in as "+user)
	return &LoginOutput{Username: user}, nil
}
