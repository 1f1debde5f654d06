package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CheckIfEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	StampLastLogin(ctx context.Context, userID uuid.UUID) error
}

// PasswordHasher abstracts the password hashing scheme
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const tokenIssuer = "soundreach-server"

// Config holds the signing secrets and lifetimes for issued tokens
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// TokenPair is an access token with its refresh counterpart
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Claims binds a signed token to the user's ID (subject) and email
type Claims struct {
	TokenType string `json:"tokenType"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type AuthProcessor struct {
	store  AuthStore
	hasher PasswordHasher
	config Config
	logger *observability.Logger
}

func New(store AuthStore, hasher PasswordHasher, config Config, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:  store,
		hasher: hasher,
		config: config,
		logger: logger,
	}
}

// RegisterParams represents parameters for creating an account
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new account and signs its first token pair
func (p *AuthProcessor) Register(ctx context.Context, params RegisterParams) (store.User, TokenPair, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: params.Email})

	exists, err := p.store.CheckIfEmailExists(ctx, params.Email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return store.User{}, TokenPair{}, err
	}
	if exists {
		return store.User{}, TokenPair{}, ErrEmailAlreadyExists
	}

	hash, err := p.hasher.Hash(params.Password)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, TokenPair{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        params.Email,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         store.UserRoleUser,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, TokenPair{}, err
	}

	tokens, err := p.issueTokenPair(user)
	if err != nil {
		p.logger.Error(ctx, "failed to issue token pair", err)
		return store.User{}, TokenPair{}, err
	}

	p.logger.Info(ctx, "user registered")
	return user, tokens, nil
}

// Login verifies credentials and signs a fresh token pair.
// Unknown email and wrong password both map to ErrInvalidCredentials
// so responses do not reveal which accounts exist.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (store.User, TokenPair, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, TokenPair{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return store.User{}, TokenPair{}, err
	}

	if err := p.hasher.Compare(user.PasswordHash, password); err != nil {
		return store.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if err := p.store.StampLastLogin(ctx, user.ID); err != nil {
		p.logger.Error(ctx, "failed to stamp last login", err)
		return store.User{}, TokenPair{}, err
	}

	tokens, err := p.issueTokenPair(user)
	if err != nil {
		p.logger.Error(ctx, "failed to issue token pair", err)
		return store.User{}, TokenPair{}, err
	}

	p.logger.Info(ctx, "user logged in")
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (p *AuthProcessor) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := p.parseToken(refreshToken, p.config.RefreshSecret)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	if claims.TokenType != tokenTypeRefresh {
		return TokenPair{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return TokenPair{}, err
	}

	return p.issueTokenPair(user)
}

// ValidateAccessToken parses an access token and returns its claims
func (p *AuthProcessor) ValidateAccessToken(ctx context.Context, token string) (Claims, error) {
	claims, err := p.parseToken(token, p.config.AccessSecret)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.TokenType != tokenTypeAccess {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// GetUser retrieves the account behind a user ID
func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return store.User{}, err
	}
	return user, nil
}

func (p *AuthProcessor) issueTokenPair(user store.User) (TokenPair, error) {
	access, err := p.signToken(user, tokenTypeAccess, p.config.AccessSecret, p.config.AccessExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := p.signToken(user, tokenTypeRefresh, p.config.RefreshSecret, p.config.RefreshExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(p.config.AccessExpiry.Seconds()),
	}, nil
}

func (p *AuthProcessor) signToken(user store.User, tokenType, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		Email:     user.Email,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenIssuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (p *AuthProcessor) parseToken(token, secret string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
