package handler

import (
	"net/http"
	"time"

	"soundreach-server/internal/apierrors"
	"soundreach-server/internal/artist/processor"
	"soundreach-server/internal/httputil"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ArtistProcessor
	logger    *observability.Logger
}

func New(processor processor.ArtistProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SocialProfileRequest represents one platform presence in HTTP requests
type SocialProfileRequest struct {
	Platform       string `json:"platform" binding:"required,oneof=soundcloud spotify youtube instagram tiktok twitter"`
	Username       string `json:"username" binding:"required,min=1"`
	URL            string `json:"url" binding:"required,url"`
	FollowersCount int    `json:"followersCount" binding:"gte=0"`
	IsVerified     bool   `json:"isVerified"`
}

// ContactInfoRequest represents artist contact details in HTTP requests
type ContactInfoRequest struct {
	Email           *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string `json:"phone,omitempty"`
	Website         *string `json:"website,omitempty" binding:"omitempty,url"`
	ManagementEmail *string `json:"managementEmail,omitempty" binding:"omitempty,email"`
	BookingEmail    *string `json:"bookingEmail,omitempty" binding:"omitempty,email"`
}

// CreateArtistRequest represents the HTTP request for adding an artist
type CreateArtistRequest struct {
	Name           string                 `json:"name" binding:"required,min=1,max=255"`
	DisplayName    *string                `json:"displayName,omitempty"`
	Bio            *string                `json:"bio,omitempty"`
	Genres         []string               `json:"genres"`
	Location       *string                `json:"location,omitempty"`
	SocialProfiles []SocialProfileRequest `json:"socialProfiles" binding:"omitempty,dive"`
	ContactInfo    *ContactInfoRequest    `json:"contactInfo,omitempty"`
	Tags           []string               `json:"tags"`
}

// UpdateArtistRequest represents the HTTP request for a partial artist update
type UpdateArtistRequest struct {
	Name               *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	DisplayName        *string                `json:"displayName,omitempty"`
	Bio                *string                `json:"bio,omitempty"`
	Genres             []string               `json:"genres,omitempty"`
	Location           *string                `json:"location,omitempty"`
	VerificationStatus *string                `json:"verificationStatus,omitempty" binding:"omitempty,oneof=unverified pending verified rejected"`
	SocialProfiles     []SocialProfileRequest `json:"socialProfiles,omitempty" binding:"omitempty,dive"`
	ContactInfo        *ContactInfoRequest    `json:"contactInfo,omitempty"`
	Metrics            *store.ArtistMetrics   `json:"metrics,omitempty"`
	Tags               []string               `json:"tags,omitempty"`
	IsActive           *bool                  `json:"isActive,omitempty"`
}

// DiscoverArtistsRequest represents the HTTP request for discovery search
type DiscoverArtistsRequest struct {
	Query        *string  `json:"query,omitempty"`
	Genres       []string `json:"genres"`
	Platforms    []string `json:"platforms" binding:"omitempty,dive,oneof=soundcloud spotify youtube instagram tiktok twitter"`
	MinFollowers *int     `json:"minFollowers,omitempty" binding:"omitempty,gte=0"`
	MaxFollowers *int     `json:"maxFollowers,omitempty" binding:"omitempty,gte=0"`
	Location     *string  `json:"location,omitempty"`
	Limit        int      `json:"limit" binding:"omitempty,gte=1,lte=100"`
}

// HandleCreateArtist adds an artist to the pool
func (h *Handler) HandleCreateArtist(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	artist, err := h.processor.CreateArtist(ctx, processor.CreateArtistParams{
		Name:           req.Name,
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		Genres:         req.Genres,
		Location:       req.Location,
		SocialProfiles: convertSocialProfiles(req.SocialProfiles),
		ContactInfo:    convertContactInfo(req.ContactInfo),
		Tags:           req.Tags,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"artist": artist})
}

// HandleListArtists lists the artist pool with optional filters
func (h *Handler) HandleListArtists(c *gin.Context) {
	ctx := c.Request.Context()

	page, limit := httputil.ParsePageQuery(c)
	genre := httputil.OptionalQuery(c, "genre")
	verification := httputil.OptionalQuery(c, "verificationStatus")
	query := httputil.OptionalQuery(c, "query")
	activeOnly := c.Query("activeOnly") == "true"

	result, err := h.processor.ListArtists(ctx, genre, verification, query, activeOnly, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	httputil.RespondWithList(c, result.Artists, result.Pagination)
}

// HandleGetArtist retrieves one artist by ID
func (h *Handler) HandleGetArtist(c *gin.Context) {
	ctx := c.Request.Context()

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
		return
	}

	artist, err := h.processor.GetArtist(ctx, artistID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// HandleDiscoverArtists searches the pool with discovery criteria
func (h *Handler) HandleDiscoverArtists(c *gin.Context) {
	ctx := c.Request.Context()

	var req DiscoverArtistsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	artists, err := h.processor.DiscoverArtists(ctx, processor.DiscoverArtistsParams{
		Query:        req.Query,
		Genres:       req.Genres,
		Platforms:    req.Platforms,
		MinFollowers: req.MinFollowers,
		MaxFollowers: req.MaxFollowers,
		Location:     req.Location,
		Limit:        req.Limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// HandleUpdateArtist applies a partial update to an artist
func (h *Handler) HandleUpdateArtist(c *gin.Context) {
	ctx := c.Request.Context()

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateArtistParams{
		Name:               req.Name,
		DisplayName:        req.DisplayName,
		Bio:                req.Bio,
		Genres:             req.Genres,
		Location:           req.Location,
		VerificationStatus: req.VerificationStatus,
		Metrics:            req.Metrics,
		Tags:               req.Tags,
		IsActive:           req.IsActive,
	}
	if req.SocialProfiles != nil {
		profiles := convertSocialProfiles(req.SocialProfiles)
		params.SocialProfiles = &profiles
	}
	if req.ContactInfo != nil {
		info := convertContactInfo(req.ContactInfo)
		params.ContactInfo = &info
	}

	artist, err := h.processor.UpdateArtist(ctx, artistID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// HandleDeleteArtist removes an artist from the pool
func (h *Handler) HandleDeleteArtist(c *gin.Context) {
	ctx := c.Request.Context()

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
		return
	}

	if err := h.processor.DeleteArtist(ctx, artistID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}

func convertSocialProfiles(reqs []SocialProfileRequest) store.SocialProfiles {
	profiles := make(store.SocialProfiles, 0, len(reqs))
	for _, req := range reqs {
		profiles = append(profiles, store.SocialProfile{
			Platform:       req.Platform,
			Username:       req.Username,
			URL:            req.URL,
			FollowersCount: req.FollowersCount,
			IsVerified:     req.IsVerified,
			LastUpdated:    time.Now(),
		})
	}
	return profiles
}

func convertContactInfo(req *ContactInfoRequest) store.ContactInfo {
	if req == nil {
		return store.ContactInfo{}
	}
	return store.ContactInfo{
		Email:           req.Email,
		Phone:           req.Phone,
		Website:         req.Website,
		ManagementEmail: req.ManagementEmail,
		BookingEmail:    req.BookingEmail,
	}
}
