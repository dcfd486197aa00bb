package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"armust-news-cms/config"
	"armust-news-cms/handlers"
	"armust-news-cms/logger"
	"armust-news-cms/mailer"
	"armust-news-cms/middleware"
	"armust-news-cms/models"
	"armust-news-cms/repositories"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables; .env is optional in deployed environments
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	journalistRepo := repositories.NewJournalistRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	videoRepo := repositories.NewVideoRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	redirectRepo := repositories.NewRedirectRepository(db)
	sliderRepo := repositories.NewSliderRepository(db)

	// Initialize services
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	notifier := services.NewNotificationService(smtpMailer, cfg.SMTP.From, cfg.Site.SignInURL, log)
	accountService := services.NewAccountService(journalistRepo, newsRepo, videoRepo, notifier, cfg.Site.BaseURL, log)
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(newsRepo, redirectRepo, log)
	videoService := services.NewVideoService(videoRepo, log)
	galleryService := services.NewGalleryService(galleryRepo, journalistRepo, cfg.Site.UploadDir, log)
	taxonomyService := services.NewTaxonomyService(categoryRepo, redirectRepo, newsRepo)
	sliderService := services.NewSliderService(sliderRepo, categoryRepo, log)
	sitemapService := services.NewSitemapService(newsRepo, videoRepo, cfg.Site.BaseURL, "Armust News")
	exportService := services.NewExportService(newsRepo, videoRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService, authService)
	postHandler := handlers.NewPostHandler(postService)
	videoHandler := handlers.NewVideoHandler(videoService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	adminHandler := handlers.NewAdminHandler(accountService, postService, videoService, taxonomyService, exportService)
	sitemapHandler := handlers.NewSitemapHandler(sitemapService)
	categoryHandler := handlers.NewCategoryHandler(taxonomyService)
	sliderHandler := handlers.NewSliderHandler(sliderService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sitemaps live at the site root for crawler discovery
	router.GET("/sitemap.xml", sitemapHandler.Index)
	sitemap := router.Group("/sitemap")
	{
		sitemap.GET("/news.xml", sitemapHandler.News)
		sitemap.GET("/image.xml", sitemapHandler.ImageIndex)
		sitemap.GET("/image/:month", sitemapHandler.ImageMonth)
		sitemap.GET("/video.xml", sitemapHandler.VideoIndex)
		sitemap.GET("/video/:month", sitemapHandler.VideoMonth)
		sitemap.GET("/article.xml", sitemapHandler.ArticleIndex)
		sitemap.GET("/article/:month", sitemapHandler.ArticleMonth)
		sitemap.GET("/archive.xml", sitemapHandler.ArchiveIndex)
		sitemap.GET("/archive/:month", sitemapHandler.ArchiveMonth)
	}

	api := router.Group("/api/v1")
	{
		// Contributor onboarding and session
		auth := api.Group("/auth")
		{
			auth.POST("/sign-up", authHandler.SignUp)
			auth.POST("/sign-in", authHandler.SignIn)
			auth.POST("/check-email", authHandler.CheckEmail)
			auth.POST("/send-otp", authHandler.SendOTP)
			auth.POST("/verify-otp", authHandler.VerifyOTP)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)

			// Staff accounts
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public content
		public := api.Group("/public")
		{
			public.GET("/posts", postHandler.ListPublic)
			public.GET("/posts/:slug", postHandler.GetPublic)
			public.GET("/videos", videoHandler.ListPublic)
			public.GET("/videos/:slug", videoHandler.GetPublic)
			public.GET("/categories", categoryHandler.List)
			public.GET("/sliders", sliderHandler.List)
		}

		// Contributor surface
		journalist := api.Group("/journalist")
		journalist.Use(middleware.AuthMiddleware(), middleware.RequireJournalist())
		{
			journalist.GET("/profile", authHandler.Profile)
			journalist.GET("/dashboard", authHandler.Dashboard)
			journalist.POST("/artists/invite", authHandler.InviteArtist)

			journalist.POST("/posts", postHandler.Submit)
			journalist.PUT("/posts/:id", postHandler.Update)
			journalist.GET("/posts", postHandler.ListMine)

			journalist.POST("/videos", videoHandler.Submit)
			journalist.PUT("/videos/:id", videoHandler.Update)
			journalist.GET("/videos", videoHandler.ListMine)

			journalist.POST("/gallery", galleryHandler.Upload)
			journalist.GET("/gallery", galleryHandler.List)
			journalist.DELETE("/gallery/:id", galleryHandler.Remove)
		}

		// Editorial surface
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin), string(models.RoleEditor)))
		{
			admin.GET("/me", authHandler.Me)
			admin.PUT("/journalists/:id/status", adminHandler.UpdateAccountStatus)
			admin.PUT("/posts/:id/status", adminHandler.ModeratePost)
			admin.PUT("/videos/:id/status", adminHandler.ModerateVideo)
			admin.POST("/redirects", adminHandler.CreateRedirect)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.POST("/sub-categories", adminHandler.CreateSubCategory)
			admin.POST("/sliders", sliderHandler.Create)
			admin.PUT("/sliders/:id", sliderHandler.Update)
			admin.DELETE("/sliders/:id", sliderHandler.Remove)
			admin.GET("/reports/news.csv", adminHandler.ExportNewsCSV)
			admin.GET("/reports/videos.csv", adminHandler.ExportVideoCSV)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
