package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"armust-news-cms/handlers"
	"armust-news-cms/middleware"
	"armust-news-cms/mocks"
	"armust-news-cms/models"
	"armust-news-cms/repositories"
	"armust-news-cms/services"
)

// IntegrationTestSuite runs the full stack against a local postgres.
// The suite is skipped when the test database is unreachable.
type IntegrationTestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	mailer     *mocks.Mailer
	adminToken string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := "host=localhost port=5432 user=myuser password=mypassword dbname=armust_test_db sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		suite.T().Skip("test database unavailable:", err)
		return
	}
	suite.db = db

	if err := RunSQLFile(db, "../migration/000001_init.down.sql"); err != nil {
		suite.T().Fatal("reset schema:", err)
	}
	if err := RunSQLFile(db, "../migration/000001_init.up.sql"); err != nil {
		suite.T().Fatal("apply schema:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	userRepo := repositories.NewUserRepository(suite.db)
	journalistRepo := repositories.NewJournalistRepository(suite.db)
	newsRepo := repositories.NewNewsRepository(suite.db)
	videoRepo := repositories.NewVideoRepository(suite.db)
	galleryRepo := repositories.NewGalleryRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	redirectRepo := repositories.NewRedirectRepository(suite.db)

	suite.mailer = &mocks.Mailer{}
	notifier := services.NewNotificationService(suite.mailer, "no-reply@example.test", "https://example.test/auth/sign-in", log)
	accountService := services.NewAccountService(journalistRepo, newsRepo, videoRepo, notifier, "https://example.test", log)
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(newsRepo, redirectRepo, log)
	videoService := services.NewVideoService(videoRepo, log)
	galleryService := services.NewGalleryService(galleryRepo, journalistRepo, suite.T().TempDir(), log)
	taxonomyService := services.NewTaxonomyService(categoryRepo, redirectRepo, newsRepo)
	exportService := services.NewExportService(newsRepo, videoRepo)

	authHandler := handlers.NewAuthHandler(accountService, authService)
	postHandler := handlers.NewPostHandler(postService)
	videoHandler := handlers.NewVideoHandler(videoService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	adminHandler := handlers.NewAdminHandler(accountService, postService, videoService, taxonomyService, exportService)

	router := gin.New()

	api := router.Group("/api/v1")
	auth := api.Group("/auth")
	auth.POST("/sign-up", authHandler.SignUp)
	auth.POST("/sign-in", authHandler.SignIn)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	public := api.Group("/public")
	public.GET("/posts/:slug", postHandler.GetPublic)

	journalist := api.Group("/journalist")
	journalist.Use(middleware.AuthMiddleware(), middleware.RequireJournalist())
	journalist.POST("/posts", postHandler.Submit)
	journalist.GET("/posts", postHandler.ListMine)
	journalist.POST("/videos", videoHandler.Submit)
	journalist.POST("/gallery", galleryHandler.Upload)
	journalist.GET("/dashboard", authHandler.Dashboard)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin)))
	admin.PUT("/journalists/:id/status", adminHandler.UpdateAccountStatus)
	admin.PUT("/posts/:id/status", adminHandler.ModeratePost)
	admin.GET("/reports/news.csv", adminHandler.ExportNewsCSV)

	suite.router = router
}

func (suite *IntegrationTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.T().Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) TestContributorWorkflow() {
	// 1. Sign up a journalist: account starts inactive.
	w := suite.request("POST", "/api/v1/auth/sign-up", "", gin.H{
		"first_name":        "Danaryya",
		"last_name":         "Iyer",
		"registration_type": "journalist",
		"email":             "dana@example.test",
		"password":          "secret123",
		"confirm_password":  "secret123",
		"terms_accepted":    true,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created models.Journalist
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(models.AccountInactive, created.Status)
	suite.Regexp(`^DANA\d{4}$`, created.Username)

	// 2. Sign-in denied while inactive.
	w = suite.request("POST", "/api/v1/auth/sign-in", "", gin.H{
		"login":    "dana@example.test",
		"password": "secret123",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)

	// 3. Staff admin registers and logs in.
	w = suite.request("POST", "/api/v1/auth/register", "", gin.H{
		"username": "chief",
		"email":    "chief@example.test",
		"password": "adminpass",
		"role":     "admin",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var staffAuth models.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &staffAuth))
	suite.adminToken = staffAuth.Token

	// 4. Admin activates the account; one status mail goes out.
	mailsBefore := len(suite.mailer.Sent)
	w = suite.request("PUT", fmt.Sprintf("/api/v1/admin/journalists/%d/status", created.ID), suite.adminToken, gin.H{
		"status": "active",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(mailsBefore+1, len(suite.mailer.Sent))

	// 5. Journalist signs in now.
	w = suite.request("POST", "/api/v1/auth/sign-in", "", gin.H{
		"login":    "dana@example.test",
		"password": "secret123",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var journalistAuth models.JournalistAuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &journalistAuth))
	token := journalistAuth.Token

	// 6. Submitted post enters moderation as inactive.
	w = suite.request("POST", "/api/v1/journalist/posts", token, gin.H{
		"title": "Harbour Expansion Approved",
		"body":  "Full report on the harbour decision.",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var post models.NewsPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &post))
	suite.Equal(models.ContentInactive, post.Status)
	suite.Equal("harbour-expansion-approved", post.Slug)

	// 7. Not publicly visible until moderated.
	w = suite.request("GET", "/api/v1/public/posts/harbour-expansion-approved", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// 8. Admin activates the post; no mail for content transitions.
	mailsBefore = len(suite.mailer.Sent)
	w = suite.request("PUT", fmt.Sprintf("/api/v1/admin/posts/%d/status", post.ID), suite.adminToken, gin.H{
		"status": "active",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(mailsBefore, len(suite.mailer.Sent))

	// 9. Now public.
	w = suite.request("GET", "/api/v1/public/posts/harbour-expansion-approved", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	// 10. Dashboard reflects the counts.
	w = suite.request("GET", "/api/v1/journalist/dashboard", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var stats models.DashboardStats
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.Equal(int64(1), stats.ActivePosts)

	// 11. CSV report includes the post.
	w = suite.request("GET", "/api/v1/admin/reports/news.csv", suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "harbour-expansion-approved")
}

func (suite *IntegrationTestSuite) TestJournalistSurfaceRequiresToken() {
	w := suite.request("GET", "/api/v1/journalist/posts", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
