package api

import (
	"net/http"
	"time"

	analyticsHandler "soundreach-server/internal/analytics/handler"
	artistHandler "soundreach-server/internal/artist/handler"
	authHandler "soundreach-server/internal/auth/handler"
	campaignHandler "soundreach-server/internal/campaign/handler"
	financeHandler "soundreach-server/internal/finance/handler"
	outreachHandler "soundreach-server/internal/outreach/handler"
	"soundreach-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	campaignHandler  campaignHandler.Handler
	artistHandler    artistHandler.Handler
	outreachHandler  outreachHandler.Handler
	financeHandler   financeHandler.Handler
	analyticsHandler analyticsHandler.Handler
	rateLimiter      *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	artistHandler artistHandler.Handler,
	outreachHandler outreachHandler.Handler,
	financeHandler financeHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		campaignHandler:  campaignHandler,
		artistHandler:    artistHandler,
		outreachHandler:  outreachHandler,
		financeHandler:   financeHandler,
		analyticsHandler: analyticsHandler,
		rateLimiter:      rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/register", a.authHandler.HandleRegister)
		authGroup.POST("/login", a.authHandler.HandleLogin)
		authGroup.POST("/refresh", a.authHandler.HandleRefresh)
	}

	protected := apiGroup.Group("", a.authHandler.HandleJWTMiddleware, a.rateLimiter.Middleware())

	protected.POST("/auth/logout", a.authHandler.HandleLogout)
	protected.GET("/auth/me", a.authHandler.HandleGetMe)

	campaigns := protected.Group("/campaigns")
	{
		campaigns.POST("", a.campaignHandler.HandleCreateCampaign)
		campaigns.GET("", a.campaignHandler.HandleListCampaigns)
		campaigns.GET("/:id", a.campaignHandler.HandleGetCampaign)
		campaigns.PATCH("/:id", a.campaignHandler.HandleUpdateCampaign)
		campaigns.PUT("/:id/metrics", a.campaignHandler.HandleUpdateMetrics)
		campaigns.DELETE("/:id", a.campaignHandler.HandleDeleteCampaign)
	}

	artists := protected.Group("/artists")
	{
		artists.POST("", a.artistHandler.HandleCreateArtist)
		artists.GET("", a.artistHandler.HandleListArtists)
		artists.POST("/discover", a.artistHandler.HandleDiscoverArtists)
		artists.GET("/:id", a.artistHandler.HandleGetArtist)
		artists.PATCH("/:id", a.artistHandler.HandleUpdateArtist)
		artists.DELETE("/:id", a.artistHandler.HandleDeleteArtist)
	}

	templates := protected.Group("/outreach/templates")
	{
		templates.POST("", a.outreachHandler.HandleCreateTemplate)
		templates.GET("", a.outreachHandler.HandleListTemplates)
		templates.POST("/generate", a.outreachHandler.HandleGenerateTemplate)
		templates.GET("/:id", a.outreachHandler.HandleGetTemplate)
		templates.PATCH("/:id", a.outreachHandler.HandleUpdateTemplate)
		templates.DELETE("/:id", a.outreachHandler.HandleDeleteTemplate)
	}

	outreachCampaigns := protected.Group("/outreach/campaigns")
	{
		outreachCampaigns.POST("", a.outreachHandler.HandleCreateCampaign)
		outreachCampaigns.GET("", a.outreachHandler.HandleListCampaigns)
		outreachCampaigns.GET("/:id", a.outreachHandler.HandleGetCampaign)
		outreachCampaigns.PATCH("/:id", a.outreachHandler.HandleUpdateCampaign)
		outreachCampaigns.DELETE("/:id", a.outreachHandler.HandleDeleteCampaign)
		outreachCampaigns.POST("/:id/send", a.outreachHandler.HandleSendCampaign)
		outreachCampaigns.GET("/:id/metrics", a.outreachHandler.HandleGetCampaignMetrics)
		outreachCampaigns.GET("/:id/emails", a.outreachHandler.HandleListEmailRecords)
	}

	finance := protected.Group("/finance")
	{
		finance.POST("/transactions", a.financeHandler.HandleCreateTransaction)
		finance.GET("/transactions", a.financeHandler.HandleListTransactions)
		finance.GET("/transactions/:id", a.financeHandler.HandleGetTransaction)
		finance.PATCH("/transactions/:id", a.financeHandler.HandleUpdateTransaction)
		finance.DELETE("/transactions/:id", a.financeHandler.HandleDeleteTransaction)
		finance.POST("/transactions/:id/payment-intent", a.financeHandler.HandleCreateTransactionPaymentIntent)
		finance.GET("/reports/pnl", a.financeHandler.HandleGetProfitAndLoss)
		finance.GET("/reports/expenses", a.financeHandler.HandleGetExpenseBreakdown)
		finance.GET("/reports/revenue", a.financeHandler.HandleGetRevenueOverview)
		finance.POST("/payments/intent", a.financeHandler.HandleCreatePaymentIntent)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/dashboard", a.analyticsHandler.HandleGetDashboard)
		analytics.GET("/campaigns/:id/metrics", a.analyticsHandler.HandleGetCampaignMetrics)
		analytics.GET("/outreach/stats", a.analyticsHandler.HandleGetOutreachStats)
		analytics.GET("/artists/performance", a.analyticsHandler.HandleGetArtistPerformance)
		analytics.GET("/revenue/overview", a.analyticsHandler.HandleGetRevenueOverview)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
