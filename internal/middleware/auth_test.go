package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", RequireAuth(testSecret))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/whoami", func(c *gin.Context) {
		id, role := Actor(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		UserID: 7,
		Role:   "student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := doRequest(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body)
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := doRequest(protectedRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	w := doRequest(protectedRouter(), "Token abcdef")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", Claims{UserID: 7, Role: "student"})

	w := doRequest(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		UserID: 7,
		Role:   "student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	w := doRequest(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	student := signToken(t, testSecret, Claims{UserID: 7, Role: "student"})
	mediator := signToken(t, testSecret, Claims{UserID: 8, Role: "mediator"})

	r := protectedRouter("admin", "mediator")

	if w := doRequest(r, "Bearer "+student); w.Code != http.StatusForbidden {
		t.Fatalf("student status = %d, want 403", w.Code)
	}
	if w := doRequest(r, "Bearer "+mediator); w.Code != http.StatusOK {
		t.Fatalf("mediator status = %d, want 200 (body: %s)", w.Code, w.Body)
	}
}
