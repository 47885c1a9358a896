package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"simplecrm/internal/authz"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, claims *Claims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func authRouter() (*gin.Engine, *authz.Actor) {
	gin.SetMode(gin.TestMode)
	var captured authz.Actor
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		v, _ := c.Get(ActorKey)
		captured = v.(authz.Actor)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validClaims() *Claims {
	return &Claims{
		UserID:      1,
		OrgID:       10,
		IsOrganizer: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	r, captured := authRouter()

	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := request(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
	if w := request(r, signedToken(t, validClaims(), []byte("wrong"))); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", w.Code)
	}

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	if w := request(r, signedToken(t, expired, testSecret)); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}

	if w := request(r, signedToken(t, validClaims(), testSecret)); w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
	if !captured.IsOrganizer() || captured.OrgID != 10 {
		t.Errorf("actor = %+v, want organizer of org 10", *captured)
	}
}

// Токен агента без профиля — нарушение предусловия, не 401.
func TestAuthMiddlewareMissingAgentProfile(t *testing.T) {
	r, _ := authRouter()

	claims := validClaims()
	claims.IsOrganizer = false
	claims.AgentID = 0
	if w := request(r, signedToken(t, claims, testSecret)); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRequireOrganizer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.POST("/protected", RequireOrganizer(), func(c *gin.Context) { c.Status(http.StatusOK) })

	agent := validClaims()
	agent.IsOrganizer = false
	agent.AgentID = 3

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, agent, testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("agent: status = %d, want 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, validClaims(), testSecret))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("organizer: status = %d, want 200", w.Code)
	}
}
