package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	internalmiddleware "github.com/cms-preschool/checkin-api/internal/middleware"
	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/pkg/config"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

func buildAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock, err := service.NewClock("UTC")
	require.NoError(t, err)
	authSvc, err := service.NewAuthService(config.AuthConfig{
		Passphrase:    "sunflower room",
		TokenSecret:   "test-secret",
		SessionTTL:    12 * time.Hour,
		RememberedTTL: 720 * time.Hour,
	}, clock, validator.New(), zap.NewNop())
	require.NoError(t, err)

	h := NewAuthHandler(authSvc, zap.NewNop())
	router := gin.New()
	router.POST("/auth/login", h.Login)

	secured := router.Group("")
	secured.Use(internalmiddleware.Session(authSvc))
	secured.POST("/auth/logout", h.Logout)
	secured.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestLoginAndSessionMiddleware(t *testing.T) {
	router := buildAuthRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"password":"sunflower room"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	token := envelope.Data.(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	// The token opens protected routes, via header or query parameter.
	req, _ = http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, performRequest(router, req).Code)

	req, _ = http.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	require.Equal(t, http.StatusOK, performRequest(router, req).Code)

	req, _ = http.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	require.Equal(t, http.StatusNoContent, performRequest(router, req).Code)
}

func TestLoginRejectsWrongPassphraseOverHTTP(t *testing.T) {
	router := buildAuthRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"password":"daisy room"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.NotContains(t, resp.Body.String(), `"token"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := buildAuthRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	require.Equal(t, http.StatusUnauthorized, performRequest(router, req).Code)

	req, _ = http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	require.Equal(t, http.StatusUnauthorized, performRequest(router, req).Code)
}
