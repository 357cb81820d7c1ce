package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/profissaovlog/profissaovlog-api/internal/application"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
	"github.com/profissaovlog/profissaovlog-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// envelope mirrors the response.APIResponse shape for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

type apiEnv struct {
	store  *memory.Store
	jwt    *helpers.JWTManager
	engine *gin.Engine
}

// newAPIEnv wires the full route surface against a fresh store, using
// the real auth and role middleware with redis disabled.
func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	store := memory.NewStore()
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", time.Hour, 168*time.Hour)

	catalogSvc := application.NewCatalogService(store.Users, store.Categories, store.Videos, store.Ratings, nil, nil, "", nil, "")
	commerceSvc := application.NewCommerceService(store.Videos, store.Purchases, store.Ratings, catalogSvc, nil)
	accountSvc := application.NewAccountService(store.Users, jwt, nil, nil)

	accountH := NewAccountHandler(accountSvc, nil, "localhost", false)
	catalogH := NewCatalogHandler(catalogSvc, nil)
	commerceH := NewCommerceHandler(commerceSvc, nil)
	dashboardH := NewDashboardHandler(commerceSvc, nil)

	engine := gin.New()
	api := engine.Group("/api")

	api.POST("/register", accountH.Register)
	api.POST("/login", accountH.Login)
	api.POST("/refresh", accountH.Refresh)

	api.GET("/categories", catalogH.ListCategories)
	api.GET("/videos", catalogH.ListVideos)
	api.GET("/videos/search", catalogH.SearchVideos)
	api.GET("/videos/:id", catalogH.GetVideo)
	api.GET("/professionals", catalogH.ListProfessionals)
	api.GET("/professionals/:id", catalogH.GetProfessional)
	api.GET("/ratings/video/:id", commerceH.ListVideoRatings)

	auth := api.Group("/")
	auth.Use(middleware.Auth(nil, jwt))
	{
		auth.POST("/logout", accountH.Logout)
		auth.GET("/user", accountH.Me)
		auth.GET("/purchases/user", commerceH.ListUserPurchases)

		pro := auth.Group("/")
		pro.Use(middleware.RequireUserType(entity.UserTypeProfessional))
		{
			pro.POST("/videos", catalogH.CreateVideo)
		}

		student := auth.Group("/")
		student.Use(middleware.RequireUserType(entity.UserTypeStudent))
		{
			student.POST("/purchases", commerceH.CreatePurchase)
			student.POST("/ratings", commerceH.SubmitRating)
		}

		auth.GET("/dashboard/professional", middleware.RequireUserType(entity.UserTypeProfessional), dashboardH.Professional)
		auth.GET("/dashboard/student", middleware.RequireUserType(entity.UserTypeStudent), dashboardH.Student)
	}

	return &apiEnv{store: store, jwt: jwt, engine: engine}
}

func (e *apiEnv) addUser(t *testing.T, username, userType string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    username + "@example.com",
		Username: username,
		Name:     username,
		UserType: userType,
		Password: "$2a$10$not.a.real.hash",
	}
	require.NoError(t, e.store.Users.Create(u))
	return u
}

func (e *apiEnv) addCatalog(t *testing.T, ownerID int) (*entity.Category, *entity.Video) {
	t.Helper()
	cat := &entity.Category{Name: "technology", DisplayName: "Tecnologia", Color: "#3A86FF"}
	require.NoError(t, e.store.Categories.Create(cat))
	v := &entity.Video{
		Title:       "daily life in tech",
		Description: "desc",
		VideoURL:    "https://example.com/v",
		Price:       29.99,
		Duration:    1104,
		UserID:      ownerID,
		CategoryID:  cat.ID,
	}
	require.NoError(t, e.store.Videos.Create(v))
	return cat, v
}

// cookieFor mints an access token cookie for the given user, bypassing
// the login flow.
func (e *apiEnv) cookieFor(t *testing.T, u *entity.User) *http.Cookie {
	t.Helper()
	token, _, err := e.jwt.GenerateAccessToken(u.ID, u.UserType)
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestRegisterLoginAndMe(t *testing.T) {
	e := newAPIEnv(t)

	rec, env := e.do(t, http.MethodPost, "/api/register", gin.H{
		"email":    "maria@example.com",
		"username": "mariaest",
		"password": "password123",
		"name":     "Maria Estudante",
		"userType": "student",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var cookies []*http.Cookie
	rec2 := httptest.NewRecorder()
	body, _ := json.Marshal(gin.H{"email": "maria@example.com", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.engine.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	cookies = rec2.Result().Cookies()

	var access *http.Cookie
	for _, c := range cookies {
		if c.Name == "access_token" {
			access = c
		}
	}
	require.NotNil(t, access, "login must set the access token cookie")

	rec3, env3 := e.do(t, http.MethodGet, "/api/user", nil, access)
	require.Equal(t, http.StatusOK, rec3.Code)
	var me entity.User
	require.NoError(t, json.Unmarshal(env3.Data, &me))
	require.Equal(t, "mariaest", me.Username)
}

func TestRegisterValidation(t *testing.T) {
	e := newAPIEnv(t)

	rec, env := e.do(t, http.MethodPost, "/api/register", gin.H{
		"email":    "not-an-email",
		"username": "ab",
		"password": "short",
		"name":     "X",
		"userType": "wizard",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newAPIEnv(t)

	rec, env := e.do(t, http.MethodPost, "/api/login", gin.H{"email": "ghost@example.com", "password": "password123"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, env.Success)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	e := newAPIEnv(t)

	rec, _ := e.do(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = e.do(t, http.MethodGet, "/api/user", nil, &http.Cookie{Name: "access_token", Value: "garbage"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetVideo(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	_, v := e.addCatalog(t, pro.ID)

	rec, env := e.do(t, http.MethodGet, fmt.Sprintf("/api/videos/%d", v.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view entity.VideoWithDetails
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Equal(t, v.Title, view.Title)
	require.Equal(t, pro.ID, view.Professional.ID)

	rec, _ = e.do(t, http.MethodGet, "/api/videos/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = e.do(t, http.MethodGet, "/api/videos/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVideosCategoryFilter(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	cat, _ := e.addCatalog(t, pro.ID)

	other := &entity.Category{Name: "health", DisplayName: "Saúde", Color: "#28A745"}
	require.NoError(t, e.store.Categories.Create(other))
	require.NoError(t, e.store.Videos.Create(&entity.Video{
		Title: "hospital rounds", Description: "d", VideoURL: "https://example.com/h",
		Price: 34.99, Duration: 1860, UserID: pro.ID, CategoryID: other.ID,
	}))

	rec, env := e.do(t, http.MethodGet, fmt.Sprintf("/api/videos?categoryId=%d", cat.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var views []entity.VideoWithDetails
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	require.Equal(t, cat.ID, views[0].CategoryID)

	rec, _ = e.do(t, http.MethodGet, "/api/videos?categoryId=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVideoRoleGate(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	student := e.addUser(t, "mariaest", entity.UserTypeStudent)
	cat, _ := e.addCatalog(t, pro.ID)

	payload := gin.H{
		"title":       "new video",
		"description": "desc",
		"videoUrl":    "https://example.com/new",
		"price":       19.99,
		"duration":    1320,
		"categoryId":  cat.ID,
	}

	rec, _ := e.do(t, http.MethodPost, "/api/videos", payload, e.cookieFor(t, student))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := e.do(t, http.MethodPost, "/api/videos", payload, e.cookieFor(t, pro))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.Video
	require.NoError(t, json.Unmarshal(env.Data, &created))
	// Owner comes from the session, not the payload.
	require.Equal(t, pro.ID, created.UserID)
}

func TestPurchaseFlow(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	student := e.addUser(t, "mariaest", entity.UserTypeStudent)
	_, v := e.addCatalog(t, pro.ID)
	cookie := e.cookieFor(t, student)

	payload := gin.H{"videoId": v.ID, "amount": v.Price, "paymentMethod": "credit_card"}

	rec, _ := e.do(t, http.MethodPost, "/api/purchases", payload, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/api/purchases", payload, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/api/purchases", gin.H{"videoId": 999, "amount": 1.0, "paymentMethod": "pix"}, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := e.do(t, http.MethodGet, "/api/purchases/user", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var purchases []entity.Purchase
	require.NoError(t, json.Unmarshal(env.Data, &purchases))
	require.Len(t, purchases, 1)

	// Professionals cannot buy.
	rec, _ = e.do(t, http.MethodPost, "/api/purchases", payload, e.cookieFor(t, pro))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRatingFlow(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	student := e.addUser(t, "mariaest", entity.UserTypeStudent)
	_, v := e.addCatalog(t, pro.ID)
	cookie := e.cookieFor(t, student)

	rec, _ := e.do(t, http.MethodPost, "/api/ratings", gin.H{"videoId": v.ID, "rating": 5}, cookie)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/api/purchases", gin.H{"videoId": v.ID, "amount": v.Price, "paymentMethod": "credit_card"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/api/ratings", gin.H{"videoId": v.ID, "rating": 6}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/api/ratings", gin.H{"videoId": v.ID, "rating": 5, "comment": "great"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Repeat submission updates in place.
	rec, _ = e.do(t, http.MethodPost, "/api/ratings", gin.H{"videoId": v.ID, "rating": 3}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := e.do(t, http.MethodGet, fmt.Sprintf("/api/ratings/video/%d", v.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ratings []entity.Rating
	require.NoError(t, json.Unmarshal(env.Data, &ratings))
	require.Len(t, ratings, 1)
	require.Equal(t, 3, ratings[0].Rating)
}

func TestListVideoRatingsEmpty(t *testing.T) {
	e := newAPIEnv(t)

	rec, env := e.do(t, http.MethodGet, "/api/ratings/video/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	// Empty lists are dropped from the envelope by omitempty.
	require.Empty(t, env.Data)
}

func TestGetProfessional(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	student := e.addUser(t, "mariaest", entity.UserTypeStudent)
	e.addCatalog(t, pro.ID)

	rec, env := e.do(t, http.MethodGet, fmt.Sprintf("/api/professionals/%d", pro.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view entity.ProfessionalWithVideos
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Videos, 1)

	// Students are not professionals.
	rec, _ = e.do(t, http.MethodGet, fmt.Sprintf("/api/professionals/%d", student.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardRoleGates(t *testing.T) {
	e := newAPIEnv(t)
	pro := e.addUser(t, "ricardodev", entity.UserTypeProfessional)
	student := e.addUser(t, "mariaest", entity.UserTypeStudent)

	rec, _ := e.do(t, http.MethodGet, "/api/dashboard/professional", nil, e.cookieFor(t, student))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = e.do(t, http.MethodGet, "/api/dashboard/student", nil, e.cookieFor(t, pro))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := e.do(t, http.MethodGet, "/api/dashboard/professional", nil, e.cookieFor(t, pro))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	rec, env = e.do(t, http.MethodGet, "/api/dashboard/student", nil, e.cookieFor(t, student))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
}

func TestSearchVideosWithoutElasticsearch(t *testing.T) {
	e := newAPIEnv(t)

	rec, env := e.do(t, http.MethodGet, "/api/videos/search?q=tecnologia", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.Empty(t, env.Data)

	rec, _ = e.do(t, http.MethodGet, "/api/videos/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
