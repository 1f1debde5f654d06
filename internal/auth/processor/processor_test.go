package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func testConfig() Config {
	return Config{
		AccessSecret:  "test-access-secret-test-access-secret",
		RefreshSecret: "test-refresh-secret-test-refresh-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	ctx := context.Background()
	email := "manager@example.com"
	userID := uuid.New()

	mockStore.EXPECT().CheckIfEmailExists(gomock.Any(), email).Return(false, nil)
	mockStore.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateUserParams) (store.User, error) {
			if params.Role != store.UserRoleUser {
				t.Errorf("expected role %s, got %s", store.UserRoleUser, params.Role)
			}
			if params.PasswordHash == "password123" {
				t.Error("expected password to be hashed")
			}
			return store.User{ID: userID, Email: email, Role: params.Role}, nil
		})

	user, tokens, err := processor.Register(ctx, RegisterParams{
		Email:     email,
		Password:  "password123",
		FirstName: "Sam",
		LastName:  "Rivera",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != email {
		t.Errorf("expected email %s, got %s", email, user.Email)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if tokens.ExpiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", tokens.ExpiresIn)
	}
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	mockStore.EXPECT().CheckIfEmailExists(gomock.Any(), "taken@example.com").Return(true, nil)

	_, _, err := processor.Register(context.Background(), RegisterParams{
		Email:    "taken@example.com",
		Password: "password123",
	})

	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	hasher := NewBcryptHasher()
	processor := New(mockStore, hasher, testConfig(), logger)

	email := "manager@example.com"
	userID := uuid.New()
	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	mockStore.EXPECT().GetUserByEmail(gomock.Any(), email).
		Return(store.User{ID: userID, Email: email, PasswordHash: hash, Role: store.UserRoleUser}, nil)
	mockStore.EXPECT().StampLastLogin(gomock.Any(), userID).Return(nil)

	user, tokens, err := processor.Login(context.Background(), email, "password123")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != userID {
		t.Errorf("expected user %s, got %s", userID, user.ID)
	}
	if tokens.AccessToken == "" {
		t.Error("expected access token to be issued")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	mockStore.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(store.User{}, store.ErrNotFound)

	_, _, err := processor.Login(context.Background(), "ghost@example.com", "password123")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	hasher := NewBcryptHasher()
	processor := New(mockStore, hasher, testConfig(), logger)

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	mockStore.EXPECT().GetUserByEmail(gomock.Any(), "manager@example.com").
		Return(store.User{ID: uuid.New(), PasswordHash: hash}, nil)

	_, _, err = processor.Login(context.Background(), "manager@example.com", "wrong-password")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateAccessToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	user := store.User{ID: uuid.New(), Email: "manager@label.io", Role: store.UserRoleManager}
	tokens, err := processor.issueTokenPair(user)
	if err != nil {
		t.Fatalf("failed to issue tokens: %v", err)
	}

	claims, err := processor.ValidateAccessToken(context.Background(), tokens.AccessToken)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Subject != user.ID.String() {
		t.Errorf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email claim %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != store.UserRoleManager {
		t.Errorf("expected role %s, got %s", store.UserRoleManager, claims.Role)
	}
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	tokens, err := processor.issueTokenPair(store.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("failed to issue tokens: %v", err)
	}

	_, err = processor.ValidateAccessToken(context.Background(), tokens.RefreshToken)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	user := store.User{ID: uuid.New(), Role: store.UserRoleUser}
	tokens, err := processor.issueTokenPair(user)
	if err != nil {
		t.Fatalf("failed to issue tokens: %v", err)
	}

	mockStore.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	refreshed, err := processor.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	tokens, err := processor.issueTokenPair(store.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("failed to issue tokens: %v", err)
	}

	_, err = processor.Refresh(context.Background(), tokens.AccessToken)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefresh_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	logger := observability.NewLogger()
	processor := New(mockStore, NewBcryptHasher(), testConfig(), logger)

	_, err := processor.Refresh(context.Background(), "not-a-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
