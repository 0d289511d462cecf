package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/database"
	"github.com/hmorita/group-task-api/internal/dto"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/middleware"
	"github.com/hmorita/group-task-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateWith(db))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userService := services.NewUserService(db)
	handler := NewUserHandler(userService, logger.NewNop())

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", handler.Signup)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(), handler.GetCurrentUser)

	return userTestEnv{
		db:          db,
		router:      r,
		userService: userService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Signup(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/signup", map[string]string{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response["user_id"])
}

func TestUserHandler_SignupMissingFields(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/signup", map[string]string{
		"username": "newuser",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "110", response["error_no"])
}

func TestUserHandler_LoginAndMe(t *testing.T) {
	env := setupUserTestEnv(t)

	userID, err := env.userService.Create(services.CreateUserInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, userID, response.ID)
	require.Equal(t, "existing", response.Username)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	me := httptest.NewRecorder()
	env.router.ServeHTTP(me, req)

	require.Equal(t, http.StatusOK, me.Code)
	var meResponse dto.UserDTO
	require.NoError(t, json.Unmarshal(me.Body.Bytes(), &meResponse))
	require.Equal(t, userID, meResponse.ID)
}

func TestUserHandler_LoginWrongPassword(t *testing.T) {
	env := setupUserTestEnv(t)

	_, err := env.userService.Create(services.CreateUserInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "303", response["error_no"])
}

func TestUserHandler_MeRequiresSession(t *testing.T) {
	env := setupUserTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
