package handler

import (
	"net/http"
	"strings"

	"soundreach-server/internal/apierrors"
	"soundreach-server/internal/auth/processor"
	"soundreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "User-ID"

type Handler struct {
	processor processor.AuthProcessor
	logger    *observability.Logger
}

func New(processor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterRequest represents the HTTP request for creating an account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
}

// LoginRequest represents the HTTP request for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the HTTP request for rotating tokens
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// HandleRegister creates a new account and returns it with its tokens
func (h *Handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, tokens, err := h.processor.Register(ctx, processor.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "tokens": tokens})
}

// HandleLogin verifies credentials and returns the account with fresh tokens
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, tokens, err := h.processor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": tokens})
}

// HandleRefresh exchanges a refresh token for a new token pair
func (h *Handler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	tokens, err := h.processor.Refresh(ctx, req.RefreshToken)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// HandleLogout acknowledges the logout. Tokens are stateless, so the
// client discards them; nothing is revoked server side.
func (h *Handler) HandleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// HandleGetMe returns the authenticated account
func (h *Handler) HandleGetMe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.processor.GetUser(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// HandleJWTMiddleware authenticates requests with a bearer access token
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenHeader := c.GetHeader("Authorization")
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.processor.ValidateAccessToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid or expired token"))
		c.Abort()
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// CurrentUserID returns the authenticated user ID set by the JWT middleware
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
