package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vibra-app/vibra/internal/authz"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/handler/http/middleware"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

type Router struct {
	authHandler       *AuthHandler
	feedHandler       *FeedHandler
	walletHandler     *WalletHandler
	discoverHandler   *DiscoverHandler
	uploadHandler     *UploadHandler
	moderationHandler *ModerationHandler
	adminHandler      *AdminHandler
	profileHandler    *ProfileHandler
	navHandler        *NavHandler
	sessionUsecase    usecasecontract.ISessionUseCase
	jwtService        usecase.JWTService
}

func NewRouter(
	sessionUC usecasecontract.ISessionUseCase,
	feedUC usecasecontract.IFeedUseCase,
	walletUC usecasecontract.IWalletUseCase,
	discoverUC usecasecontract.IDiscoverUseCase,
	uploadUC usecasecontract.IUploadUseCase,
	moderationUC usecasecontract.IModerationUseCase,
	adminUC usecasecontract.IAdminUseCase,
	userRepo contract.IUserRepository,
	videoRepo contract.IVideoRepository,
	commentRepo contract.ICommentRepository,
	jwtService usecase.JWTService,
) *Router {
	return &Router{
		authHandler:       NewAuthHandler(sessionUC),
		feedHandler:       NewFeedHandler(feedUC),
		walletHandler:     NewWalletHandler(walletUC),
		discoverHandler:   NewDiscoverHandler(discoverUC),
		uploadHandler:     NewUploadHandler(uploadUC),
		moderationHandler: NewModerationHandler(moderationUC),
		adminHandler:      NewAdminHandler(adminUC),
		profileHandler:    NewProfileHandler(userRepo, videoRepo, commentRepo),
		navHandler:        NewNavHandler(),
		sessionUsecase:    sessionUC,
		jwtService:        jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/wallet-login", r.authHandler.WalletLogin)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.profileHandler.GetUser)
		users.GET("/profile/:id/videos", r.profileHandler.GetUserVideos)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.sessionUsecase))
	{
		// Current user routes
		protected.GET("/me", r.authHandler.GetCurrentUser)
		protected.PUT("/me", r.authHandler.UpdateProfile)
		protected.POST("/logout", r.authHandler.Logout)
		protected.GET("/navigation", r.navHandler.GetNavigation)

		// Feed routes
		protected.GET("/feed", r.feedHandler.GetFeed)
		protected.POST("/feed/scroll", r.feedHandler.Scroll)
		protected.POST("/feed/navigate", r.feedHandler.Navigate)
		protected.GET("/feed/state", r.feedHandler.GetState)
		protected.GET("/feed/active", r.feedHandler.GetActiveVideo)

		// Video interaction routes
		protected.POST("/videos/:videoID/like", r.feedHandler.ToggleLike)
		protected.POST("/videos/:videoID/share", r.feedHandler.Share)
		protected.GET("/videos/:videoID/comments", r.profileHandler.GetVideoComments)

		// Wallet routes
		protected.GET("/wallet", r.walletHandler.GetSummary)
		protected.GET("/wallet/transactions", r.walletHandler.GetTransactions)
		protected.POST("/wallet/withdraw", r.walletHandler.Withdraw)

		// Discover routes
		protected.GET("/discover", r.discoverHandler.Search)
		protected.GET("/discover/tags", r.discoverHandler.GetTrendingTags)

		// Upload route
		protected.POST("/upload", r.uploadHandler.Upload)

		// Moderation routes (moderator or admin)
		moderation := protected.Group("/moderation")
		moderation.Use(middleware.RequireRole(authz.RequireModerator))
		{
			moderation.GET("/reports", r.moderationHandler.GetReports)
			moderation.GET("/stats", r.moderationHandler.GetStats)
			moderation.PUT("/reports/:reportID/resolve", r.moderationHandler.ResolveReport)
			moderation.PUT("/reports/:reportID/dismiss", r.moderationHandler.DismissReport)
		}

		// Admin routes (admin only)
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(authz.RequireAdmin))
		{
			admin.GET("/overview", r.adminHandler.GetOverview)
			admin.GET("/users", r.adminHandler.GetUsers)
			admin.GET("/reward-rates", r.adminHandler.GetRewardRates)
			admin.PUT("/reward-rates", r.adminHandler.UpdateRewardRates)
		}
	}
}
