package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contactbook/internal/token"
	"contactbook/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "middleware-test-secret-32-chars!!"

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine builds a minimal gin engine with both middleware variants.
// Each handler writes the userID from context so we can assert on it.
func newEngine() *gin.Engine {
	r := gin.New()
	echo := func(c *gin.Context) {
		c.String(http.StatusOK, "%s", c.GetString("userID"))
	}
	r.GET("/protected", middleware.Auth([]byte(testKey)), echo)
	r.GET("/relaxed", middleware.AuthOptional([]byte(testKey)), echo)
	return r
}

func makeToken(t *testing.T, userID string) string {
	t.Helper()
	signed, err := token.Sign([]byte(testKey), userID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func serve(r *gin.Engine, path, rawToken string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if rawToken != "" {
		req.Header.Set(middleware.TokenHeader, rawToken)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	w := serve(newEngine(), "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken_Returns401(t *testing.T) {
	w := serve(newEngine(), "/protected", "not.a.jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	claims := jwt.MapClaims{
		"user": map[string]any{"id": "user-1"},
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := serve(newEngine(), "/protected", expired)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_WrongSigningKey_Returns401(t *testing.T) {
	signed, err := token.Sign([]byte("different-key-that-is-32-chars!!"), "user-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := serve(newEngine(), "/protected", signed)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ValidToken_PassesAndSetsUserID(t *testing.T) {
	const userID = "user-abc"
	w := serve(newEngine(), "/protected", makeToken(t, userID))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != userID {
		t.Errorf("body = %q, want %q", got, userID)
	}
}

func TestAuthOptional_MissingHeader_PassesAnonymously(t *testing.T) {
	w := serve(newEngine(), "/relaxed", "")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "" {
		t.Errorf("userID = %q, want empty", got)
	}
}

func TestAuthOptional_InvalidToken_PassesAnonymously(t *testing.T) {
	w := serve(newEngine(), "/relaxed", "not.a.jwt")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "" {
		t.Errorf("userID = %q, want empty", got)
	}
}

func TestAuthOptional_ValidToken_SetsUserID(t *testing.T) {
	const userID = "user-xyz"
	w := serve(newEngine(), "/relaxed", makeToken(t, userID))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != userID {
		t.Errorf("userID = %q, want %q", got, userID)
	}
}
