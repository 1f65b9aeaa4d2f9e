package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"fervo/internal/handler/api"
	"fervo/internal/handler/middleware"
	"fervo/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *slog.Logger
	AuthMw      *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter

	Auth       *api.AuthHandler
	Directory  *api.DirectoryHandler
	Engagement *api.EngagementHandler
	Me         *api.MeHandler
	Partner    *api.PartnerHandler
	Insights   *api.InsightsHandler
	Coupon     *api.CouponHandler
	Billing    *api.BillingHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{p.RateLimiter.Middleware()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.AuthMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: p.Auth.UpdateProfile},
			})
		}

		// public directory
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/venues", Handler: p.Directory.ListVenues},
			{Method: http.MethodGet, Path: "/venues/:id", Handler: p.Directory.GetVenue},
			{Method: http.MethodGet, Path: "/venues/:id/events", Handler: p.Directory.ListVenueEvents},
			{Method: http.MethodGet, Path: "/events", Handler: p.Directory.ListEvents},
			{Method: http.MethodGet, Path: "/events/:id", Handler: p.Directory.GetEvent},
			{Method: http.MethodGet, Path: "/events/:id/ratings", Handler: p.Engagement.ListRatings},
			{Method: http.MethodPost, Path: "/billing/webhook", Handler: p.Billing.Webhook},
		})

		member := apiGroup.Group("")
		member.Use(p.AuthMw.RequireAuth())
		{
			addRoutes(member, []route{
				{Method: http.MethodPost, Path: "/check-ins", Handler: p.Engagement.CheckIn, Mw: limited},
				{Method: http.MethodPost, Path: "/events/:id/shares", Handler: p.Engagement.Share, Mw: limited},
				{Method: http.MethodGet, Path: "/events/:id/rating", Handler: p.Engagement.GetMyRating},
				{Method: http.MethodPut, Path: "/events/:id/rating", Handler: p.Engagement.SubmitRating},
				{Method: http.MethodDelete, Path: "/events/:id/rating", Handler: p.Engagement.DeleteMyRating},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(p.AuthMw.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/coins", Handler: p.Me.ListBalances},
				{Method: http.MethodGet, Path: "/coupons", Handler: p.Me.ListCoupons},
				{Method: http.MethodGet, Path: "/check-ins", Handler: p.Me.ListCheckIns},
				{Method: http.MethodGet, Path: "/favorites", Handler: p.Me.ListFavorites},
				{Method: http.MethodPut, Path: "/favorites/:id", Handler: p.Me.AddFavorite},
				{Method: http.MethodDelete, Path: "/favorites/:id", Handler: p.Me.RemoveFavorite},
				{Method: http.MethodPost, Path: "/push-tokens", Handler: p.Me.RegisterPushToken},
				{Method: http.MethodDelete, Path: "/push-tokens", Handler: p.Me.RemovePushToken},
			})
		}

		partner := apiGroup.Group("/partner")
		partner.Use(p.AuthMw.RequireAuth(), p.AuthMw.RequirePartner())
		{
			addRoutes(partner, []route{
				{Method: http.MethodPut, Path: "/venue", Handler: p.Partner.UpdateVenue},
				{Method: http.MethodPost, Path: "/venue/image", Handler: p.Partner.UploadVenueImage},
				{Method: http.MethodGet, Path: "/events", Handler: p.Partner.ListEvents},
				{Method: http.MethodPost, Path: "/events", Handler: p.Partner.CreateEvent},
				{Method: http.MethodPut, Path: "/events/:id", Handler: p.Partner.UpdateEvent},
				{Method: http.MethodDelete, Path: "/events/:id", Handler: p.Partner.DeleteEvent},
				{Method: http.MethodPost, Path: "/events/:id/check-in-token", Handler: p.Partner.RegenerateCheckInToken},
				{Method: http.MethodGet, Path: "/events/:id/qr", Handler: p.Partner.GetEventQR},
				{Method: http.MethodGet, Path: "/events/:id/attendees", Handler: p.Partner.ListAttendees},
				{Method: http.MethodPost, Path: "/events/:id/feedback-summary", Handler: p.Insights.SummarizeFeedback},
				{Method: http.MethodGet, Path: "/analytics", Handler: p.Insights.GetAnalytics},
				{Method: http.MethodPost, Path: "/coupons/redeem", Handler: p.Coupon.Redeem, Mw: limited},
				{Method: http.MethodGet, Path: "/coupons/:code", Handler: p.Coupon.Lookup},
				{Method: http.MethodGet, Path: "/subscription", Handler: p.Billing.GetSubscription},
				{Method: http.MethodPost, Path: "/subscription/checkout", Handler: p.Billing.CreateCheckout},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
