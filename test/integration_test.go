package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catalog-api/handlers"
	"catalog-api/middleware"
	"catalog-api/models"
	"catalog-api/repositories"
	"catalog-api/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db             *gorm.DB
	router         *gin.Engine
	historyService services.HistoryService
	token          string
	userID         uint
}

func (suite *IntegrationTestSuite) SetupSuite() {
	// Set test environment
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "myuser"),
		envOr("DB_PASSWORD", "mypassword"),
		envOr("DB_NAME", "catalog_test_db"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Skip("test database unavailable: " + err.Error())
	}

	suite.db = db

	if err := RunSQLFile(db, "../migration/init.sql"); err != nil {
		suite.T().Fatal("Failed to apply migration:", err)
	}

	// Setup router
	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(suite.db)
	modelRepo := repositories.NewModelRepository(suite.db)
	contentRepo := repositories.NewContentRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)
	likeRepo := repositories.NewLikeRepository(suite.db)
	historyRepo := repositories.NewHistoryRepository(suite.db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	suite.historyService = services.NewHistoryService(historyRepo)
	modelService := services.NewModelService(modelRepo, suite.historyService)
	commentService := services.NewCommentService(commentRepo, modelRepo, contentRepo)
	likeService := services.NewLikeService(likeRepo, modelRepo, contentRepo, suite.historyService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	modelHandler := handlers.NewModelHandler(modelService, commentService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	historyHandler := handlers.NewHistoryHandler(suite.historyService)
	ageHandler := handlers.NewAgeVerificationHandler()

	// Setup router
	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		age := v1.Group("/age-verification")
		{
			age.POST("/confirm", ageHandler.ConfirmAge)
			age.GET("/status", ageHandler.GetAgeStatus)
			age.POST("/revoke", ageHandler.RevokeAge)
		}

		catalog := v1.Group("/")
		catalog.Use(middleware.AgeVerificationMiddleware(), middleware.OptionalAuthMiddleware())
		{
			catalog.GET("/models", modelHandler.GetModels)
			catalog.GET("/models/:slug", modelHandler.GetModel)
			catalog.GET("/models/:slug/comments", modelHandler.GetModelComments)
			catalog.GET("/contents/:id/comments", commentHandler.GetContentComments)
			catalog.GET("/likes/count", likeHandler.GetLikeCount)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/history", historyHandler.GetHistory)

			comments := protected.Group("/comments")
			{
				comments.POST("", commentHandler.CreateComment)
				comments.DELETE("/:id", commentHandler.DeleteComment)
				comments.POST("/:id/like", commentHandler.ToggleCommentLike)
			}

			protected.POST("/likes", likeHandler.ToggleLike)

			admin := protected.Group("/models")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("", modelHandler.CreateModel)
				admin.PUT("/:id", modelHandler.UpdateModel)
				admin.DELETE("/:id", modelHandler.DeleteModel)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}

	if suite.historyService != nil {
		suite.historyService.Close()
	}

	// Clean up test database
	suite.db.Exec("DROP TABLE IF EXISTS user_histories")
	suite.db.Exec("DROP TABLE IF EXISTS likes")
	suite.db.Exec("DROP TABLE IF EXISTS comment_likes")
	suite.db.Exec("DROP TABLE IF EXISTS comments")
	suite.db.Exec("DROP TABLE IF EXISTS contents")
	suite.db.Exec("DROP TABLE IF EXISTS models")
	suite.db.Exec("DROP TABLE IF EXISTS users")
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("TRUNCATE TABLE user_histories RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE likes RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE comment_likes RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE comments RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE contents RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE models RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE")

	// Register and login an admin test user
	suite.registerAndLoginTestUser()
}

func (suite *IntegrationTestSuite) registerAndLoginTestUser() {
	registerPayload := models.RegisterRequest{
		Name:     "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	body, _ := json.Marshal(registerPayload)
	w := suite.do("POST", "/api/v1/auth/register", body, nil)
	suite.Equal(http.StatusOK, w.Code)

	var registerResp envelope[models.AuthResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &registerResp))
	suite.userID = registerResp.Data.User.ID

	// Promote to admin and log in again so the token carries the flag
	suite.db.Model(&models.User{}).Where("id = ?", suite.userID).Update("is_admin", true)

	loginPayload := models.LoginRequest{Email: "test@example.com", Password: "password123"}
	body, _ = json.Marshal(loginPayload)
	w = suite.do("POST", "/api/v1/auth/login", body, nil)
	suite.Equal(http.StatusOK, w.Code)

	var loginResp envelope[models.AuthResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &loginResp))
	suite.token = loginResp.Data.Token
}

type envelope[T any] struct {
	Code        int    `json:"code"`
	CodeType    string `json:"code_type"`
	CodeMessage string `json:"code_message"`
	Data        T      `json:"data"`
}

// do executes a request against the suite router. Extra headers are
// applied on top of defaults.
func (suite *IntegrationTestSuite) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) authHeaders() map[string]string {
	return map[string]string{
		"Authorization":   "Bearer " + suite.token,
		"X-Age-Confirmed": "true",
	}
}

func (suite *IntegrationTestSuite) createModel(payload models.CreateModelRequest) models.Model {
	body, _ := json.Marshal(payload)
	w := suite.do("POST", "/api/v1/models", body, suite.authHeaders())
	suite.Equal(http.StatusCreated, w.Code)

	var resp envelope[models.Model]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func (suite *IntegrationTestSuite) TestAuthFlow() {
	loginPayload := models.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	}

	body, _ := json.Marshal(loginPayload)
	w := suite.do("POST", "/api/v1/auth/login", body, nil)
	suite.Equal(http.StatusOK, w.Code)

	var loginResp envelope[models.AuthResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &loginResp))

	suite.NotEmpty(loginResp.Data.Token)
	suite.Equal("testuser", loginResp.Data.User.Name)

	w = suite.do("GET", "/api/v1/profile", nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var profileResp envelope[models.User]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &profileResp))
	suite.Equal("testuser", profileResp.Data.Name)
}

func (suite *IntegrationTestSuite) TestAgeGate() {
	w := suite.do("GET", "/api/v1/models", nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	var resp map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(true, resp["requiresAgeVerification"])

	w = suite.do("GET", "/api/v1/models", nil, map[string]string{"X-Age-Confirmed": "true"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestAgeConfirmation() {
	body, _ := json.Marshal(models.ConfirmAgeRequest{Confirmed: true, BirthDate: "1990-01-01"})
	w := suite.do("POST", "/api/v1/age-verification/confirm", body, nil)
	suite.Equal(http.StatusOK, w.Code)

	body, _ = json.Marshal(models.ConfirmAgeRequest{Confirmed: true, BirthDate: time.Now().AddDate(-17, 0, 0).Format("2006-01-02")})
	w = suite.do("POST", "/api/v1/age-verification/confirm", body, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	body, _ = json.Marshal(models.ConfirmAgeRequest{Confirmed: false})
	w = suite.do("POST", "/api/v1/age-verification/confirm", body, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestCreateAndGetModel() {
	age := 25
	created := suite.createModel(models.CreateModelRequest{
		Name:      "Maria Silva",
		Ethnicity: "latina",
		HairColor: "black",
		Age:       &age,
		Tags:      []string{"fitness", "travel"},
	})

	suite.Equal("Maria Silva", created.Name)
	suite.Regexp(`^maria-silva-[0-9a-f]{6}$`, created.Slug)

	// Each detail view bumps the counter by exactly one
	w := suite.do("GET", "/api/v1/models/"+created.Slug, nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var first envelope[models.Model]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &first))
	suite.Equal(int64(1), first.Data.Views)

	w = suite.do("GET", "/api/v1/models/"+created.Slug, nil, suite.authHeaders())
	var second envelope[models.Model]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &second))
	suite.Equal(int64(2), second.Data.Views)
}

func (suite *IntegrationTestSuite) TestConcurrentViewsNoLostUpdates() {
	created := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	const viewers = 20

	var wg sync.WaitGroup
	statuses := make(chan int, viewers)
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := suite.do("GET", "/api/v1/models/"+created.Slug, nil, suite.authHeaders())
			statuses <- w.Code
		}()
	}
	wg.Wait()
	close(statuses)

	for code := range statuses {
		suite.Equal(http.StatusOK, code)
	}

	// Every view survives; the stored counter equals the request count.
	var stored models.Model
	suite.NoError(suite.db.First(&stored, created.ID).Error)
	suite.Equal(int64(viewers), stored.Views)
}

func (suite *IntegrationTestSuite) TestUpdatePreservesConcurrentViews() {
	created := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	repo := repositories.NewModelRepository(suite.db)

	// An admin edit loads the row, then a public view lands before the
	// edit is saved. The save must not roll the counter back.
	stale, err := repo.GetByID(created.ID)
	suite.NoError(err)

	suite.NoError(repo.IncrementViews(created.ID))

	stale.Name = "Maria Santos"
	suite.NoError(repo.Update(stale))

	fresh, err := repo.GetBySlug(created.Slug)
	suite.NoError(err)
	suite.Equal("Maria Santos", fresh.Name)
	suite.Equal(int64(1), fresh.Views)
}

func (suite *IntegrationTestSuite) TestSameNameDistinctSlugs() {
	first := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})
	second := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	suite.NotEqual(first.Slug, second.Slug)
}

func (suite *IntegrationTestSuite) TestListPopularPagination() {
	// 15 active models with descending view counts 100, 90, ...
	for i := 0; i < 15; i++ {
		created := suite.createModel(models.CreateModelRequest{Name: fmt.Sprintf("Model %02d", i)})
		suite.db.Model(&models.Model{}).Where("id = ?", created.ID).Update("views", 100-10*i)
	}

	w := suite.do("GET", "/api/v1/models?page=1&limit=12&sortBy=popular", nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var resp envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	suite.Len(resp.Data.Models, 12)
	suite.Equal(int64(15), resp.Data.Pagination.TotalItems)
	suite.Equal(2, resp.Data.Pagination.TotalPages)
	suite.Equal(1, resp.Data.Pagination.CurrentPage)
	suite.Equal(12, resp.Data.Pagination.ItemsPerPage)

	for i := 1; i < len(resp.Data.Models); i++ {
		suite.GreaterOrEqual(resp.Data.Models[i-1].Views, resp.Data.Models[i].Views)
	}

	// Page beyond the end is empty, totals stay correct
	w = suite.do("GET", "/api/v1/models?page=5&limit=12&sortBy=popular", nil, suite.authHeaders())
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Data.Models)
	suite.Equal(int64(15), resp.Data.Pagination.TotalItems)
}

func (suite *IntegrationTestSuite) TestListAgeRangeInclusive() {
	young := 24
	older := 30
	suite.createModel(models.CreateModelRequest{Name: "Young Model", Age: &young})
	inRange := suite.createModel(models.CreateModelRequest{Name: "Older Model", Age: &older})

	w := suite.do("GET", "/api/v1/models?minAge=25&maxAge=30", nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var resp envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	suite.Len(resp.Data.Models, 1)
	suite.Equal(inRange.ID, resp.Data.Models[0].ID)
}

func (suite *IntegrationTestSuite) TestListFiltersCompose() {
	age := 26
	suite.createModel(models.CreateModelRequest{Name: "Ana", Ethnicity: "latina", HairColor: "black", Age: &age, Tags: []string{"fitness"}})
	suite.createModel(models.CreateModelRequest{Name: "Bea", Ethnicity: "latina", HairColor: "blonde", Age: &age})

	w := suite.do("GET", "/api/v1/models?ethnicity=latina", nil, suite.authHeaders())
	var broad envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &broad))
	suite.Equal(int64(2), broad.Data.Pagination.TotalItems)

	// Adding a filter never increases the result count
	w = suite.do("GET", "/api/v1/models?ethnicity=latina&hairColor=black", nil, suite.authHeaders())
	var narrow envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &narrow))
	suite.Equal(int64(1), narrow.Data.Pagination.TotalItems)

	w = suite.do("GET", "/api/v1/models?tags=fitness&tags=unknown", nil, suite.authHeaders())
	var tagged envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &tagged))
	suite.Equal(int64(1), tagged.Data.Pagination.TotalItems)
	suite.Equal("Ana", tagged.Data.Models[0].Name)
}

func (suite *IntegrationTestSuite) TestSoftDeletedInvisible() {
	created := suite.createModel(models.CreateModelRequest{Name: "Ghost Model"})

	w := suite.do("DELETE", fmt.Sprintf("/api/v1/models/%d", created.ID), nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/v1/models", nil, suite.authHeaders())
	var resp envelope[models.ModelListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(0), resp.Data.Pagination.TotalItems)

	w = suite.do("GET", "/api/v1/models/"+created.Slug, nil, suite.authHeaders())
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestUpdateKeepsSlug() {
	created := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	payload := map[string]string{"name": "Maria Santos"}
	body, _ := json.Marshal(payload)
	w := suite.do("PUT", fmt.Sprintf("/api/v1/models/%d", created.ID), body, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var resp envelope[models.Model]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Maria Santos", resp.Data.Name)
	suite.Equal(created.Slug, resp.Data.Slug)
}

func (suite *IntegrationTestSuite) TestCommentsAndLikes() {
	created := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	commentPayload := models.CreateCommentRequest{ModelID: &created.ID, Text: "Great profile"}
	body, _ := json.Marshal(commentPayload)
	w := suite.do("POST", "/api/v1/comments", body, suite.authHeaders())
	suite.Equal(http.StatusCreated, w.Code)

	var commentResp envelope[models.Comment]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &commentResp))
	comment := commentResp.Data

	w = suite.do("GET", "/api/v1/models/"+created.Slug+"/comments", nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var listResp envelope[models.CommentListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	suite.Len(listResp.Data.Comments, 1)
	suite.Equal("Great profile", listResp.Data.Comments[0].Text)

	// Toggle comment like on, then off
	w = suite.do("POST", fmt.Sprintf("/api/v1/comments/%d/like", comment.ID), []byte("{}"), suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&count)
	suite.Equal(int64(1), count)

	w = suite.do("POST", fmt.Sprintf("/api/v1/comments/%d/like", comment.ID), []byte("{}"), suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	suite.db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&count)
	suite.Equal(int64(0), count)

	// Like the model and read the count back
	likePayload := models.ToggleLikeRequest{ModelID: &created.ID, Type: models.LikeTypeModel}
	body, _ = json.Marshal(likePayload)
	w = suite.do("POST", "/api/v1/likes", body, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", fmt.Sprintf("/api/v1/likes/count?model_id=%d", created.ID), nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	var countResp envelope[map[string]int64]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &countResp))
	suite.Equal(int64(1), countResp.Data["count"])
}

func (suite *IntegrationTestSuite) TestHistoryRecordedOnView() {
	created := suite.createModel(models.CreateModelRequest{Name: "Maria Silva"})

	w := suite.do("GET", "/api/v1/models/"+created.Slug, nil, suite.authHeaders())
	suite.Equal(http.StatusOK, w.Code)

	// History writes are asynchronous; poll briefly
	var historyResp envelope[models.HistoryListResponse]
	for i := 0; i < 50; i++ {
		w = suite.do("GET", "/api/v1/history", nil, suite.authHeaders())
		suite.Equal(http.StatusOK, w.Code)
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &historyResp))
		if historyResp.Data.Pagination.TotalItems > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	suite.Equal(int64(1), historyResp.Data.Pagination.TotalItems)
	suite.Equal(created.ID, historyResp.Data.History[0].ModelID)
	suite.Equal(models.ActionView, historyResp.Data.History[0].Action)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
