package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"tabrev/internal/domain"
	"tabrev/internal/middleware"
	"tabrev/internal/service"
	"tabrev/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/me", func(c *gin.Context) {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": middleware.GetRole(c)})
	})
	r.DELETE("/admin-only", middleware.RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	userID := uuid.New()
	authSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: userID,
		Email:  "user@test.com",
		Role:   domain.RoleMember,
	}, nil)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	r := protectedRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authSvc.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "member-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleMember,
	}, nil)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer member-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleAdmin,
	}, nil)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/admin-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
