package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testSigningKey = []byte("test-signing-key")

func signToken(t *testing.T, subject, scope string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Scopes: scope,
	})
	signed, err := token.SignedString(testSigningKey)
	require.NoError(t, err)
	return signed
}

func newAuthRouter(requiredScope string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandlerWithKeyfunc(func(token *jwt.Token) (interface{}, error) {
		return testSigningKey, nil
	}, requiredScope)
	router.Use(handler.AuthMiddleware())
	router.GET("/calls", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserIDKey))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	valid := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		requiredScope string
		header        string
		wantStatus    int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + signToken(t, "op-1", "", time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + signToken(t, "op-1", "", valid), wantStatus: http.StatusOK},
		{name: "missing scope", requiredScope: "ivr/calls", header: "Bearer " + signToken(t, "op-1", "openid", valid), wantStatus: http.StatusForbidden},
		{name: "has scope", requiredScope: "ivr/calls", header: "Bearer " + signToken(t, "op-1", "openid ivr/calls", valid), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.requiredScope)
			req := httptest.NewRequest(http.MethodGet, "/calls", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "op-1", w.Body.String())
			}
		})
	}
}
