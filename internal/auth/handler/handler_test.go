package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soundreach-server/internal/apierrors"
	"soundreach-server/internal/auth/processor"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAuthStore is an in-memory AuthStore for driving the handlers over
// real HTTP round trips.
type memoryAuthStore struct {
	users map[string]store.User
}

func newMemoryAuthStore() *memoryAuthStore {
	return &memoryAuthStore{users: make(map[string]store.User)}
}

func (s *memoryAuthStore) CheckIfEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *memoryAuthStore) CreateUser(_ context.Context, params store.CreateUserParams) (store.User, error) {
	user := store.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         params.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[params.Email] = user
	return user, nil
}

func (s *memoryAuthStore) GetUserByEmail(_ context.Context, email string) (store.User, error) {
	user, ok := s.users[email]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *memoryAuthStore) GetUserByID(_ context.Context, userID uuid.UUID) (store.User, error) {
	for _, user := range s.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return store.User{}, store.ErrNotFound
}

func (s *memoryAuthStore) StampLastLogin(_ context.Context, userID uuid.UUID) error {
	for email, user := range s.users {
		if user.ID == userID {
			now := time.Now()
			user.LastLoginAt = &now
			s.users[email] = user
		}
	}
	return nil
}

// plainHasher keeps handler tests fast; a leaked hash would surface as the
// literal password in a response body.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != password {
		return processor.ErrInvalidCredentials
	}
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := observability.NewLogger()
	proc := processor.New(newMemoryAuthStore(), plainHasher{}, processor.Config{
		AccessSecret:  "test-access-secret-test-access-secret",
		RefreshSecret: "test-refresh-secret-test-refresh-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	}, logger)
	h := New(proc, logger)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/register", h.HandleRegister)
	auth.POST("/login", h.HandleLogin)
	auth.POST("/refresh", h.HandleRefresh)
	auth.GET("/me", h.HandleJWTMiddleware, h.HandleGetMe)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerBody(email string) map[string]any {
	return map[string]any{
		"email":     email,
		"password":  "hunter2hunter2",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	}
}

func TestHandleRegister_MissingEmailNamesField(t *testing.T) {
	router := newTestRouter(t)

	body := registerBody("ada@label.io")
	delete(body, "email")
	rec := postJSON(t, router, "/api/auth/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeInvalidInput, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Email is required")
}

func TestHandleRegister_CreatedWithoutPasswordHash(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2hunter2")

	var resp struct {
		User   store.User          `json:"user"`
		Tokens processor.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ada@label.io", resp.User.Email)
	assert.NotEqual(t, uuid.Nil, resp.User.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
}

func TestHandleRegister_DuplicateEmailConflicts(t *testing.T) {
	router := newTestRouter(t)

	first := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))
	require.Equal(t, http.StatusConflict, second.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeEmailExists, resp.Error.Code)
}

func TestHandleLogin_UnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := postJSON(t, router, "/api/auth/login", map[string]any{
		"email": "nobody@label.io", "password": "hunter2hunter2",
	})
	wrongPassword := postJSON(t, router, "/api/auth/login", map[string]any{
		"email": "ada@label.io", "password": "not-the-password",
	})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestHandleGetMe_RequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleGetMe_ReturnsAuthenticatedUser(t *testing.T) {
	router := newTestRouter(t)

	registered := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))
	require.Equal(t, http.StatusCreated, registered.Code)

	var resp struct {
		Tokens processor.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Tokens.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		User store.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "ada@label.io", me.User.Email)
}

func TestHandleRefresh_RejectsAccessToken(t *testing.T) {
	router := newTestRouter(t)

	registered := postJSON(t, router, "/api/auth/register", registerBody("ada@label.io"))
	require.Equal(t, http.StatusCreated, registered.Code)

	var resp struct {
		Tokens processor.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &resp))

	rec := postJSON(t, router, "/api/auth/refresh", map[string]any{
		"refreshToken": resp.Tokens.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
