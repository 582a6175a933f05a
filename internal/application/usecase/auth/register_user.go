// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email       string
	Name        string
	Password    string
	DigestOptIn bool
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User        *entity.User
	AccessToken string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email address",
			domainerror.ErrInvalidEmail,
		)
	}

	if len(input.Password) < MinPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"email already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Name), hash)
	user.DigestOptIn = input.DigestOptIn

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RegisterUserOutput{
		User:        user,
		AccessToken: token,
	}, nil
}
