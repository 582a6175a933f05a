// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository for use case tests.
type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

// fakePasswordService hashes with a recognizable prefix.
type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// fakeTokenService issues a deterministic token per user.
type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepository) {
		userRepo := newFakeUserRepository()
		uc := NewRegisterUserUseCase(userRepo, fakePasswordService{}, fakeTokenService{})
		return uc, userRepo
	}

	t.Run("registers a user and issues a token", func(t *testing.T) {
		uc, userRepo := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    " Saver@Example.com ",
			Name:     "Saver",
			Password: "longenough",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "saver@example.com" {
			t.Errorf("expected normalized email, got %q", output.User.Email)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if _, ok := userRepo.users[output.User.ID]; !ok {
			t.Error("expected user persisted")
		}
	})

	t.Run("carries the digest opt-in onto the stored user", func(t *testing.T) {
		uc, userRepo := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:       "digest@example.com",
			Name:        "Digest Reader",
			Password:    "longenough",
			DigestOptIn: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.User.DigestOptIn {
			t.Error("expected digest opt-in on the returned user")
		}
		if stored := userRepo.users[output.User.ID]; stored == nil || !stored.DigestOptIn {
			t.Error("expected digest opt-in persisted")
		}
	})

	t.Run("digest opt-in defaults to off", func(t *testing.T) {
		uc, _ := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "quiet@example.com",
			Name:     "Quiet Reader",
			Password: "longenough",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.DigestOptIn {
			t.Error("expected digest opt-in off by default")
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Saver",
			Password: "longenough",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEmail, authErr.Code)
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "saver@example.com",
			Name:     "Saver",
			Password: "short",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
		}
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		uc, _ := newUseCase()

		input := RegisterUserInput{
			Email:    "saver@example.com",
			Name:     "Saver",
			Password: "longenough",
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error on first registration: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeEmailAlreadyExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailAlreadyExists, authErr.Code)
		}
	})
}
