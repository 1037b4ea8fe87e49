package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Put("/routes/x", JWTMiddleware("secret"), func(c *fiber.Ctx) error {
		if c.Locals("operator") != "editor" {
			return fiber.NewError(fiber.StatusUnauthorized)
		}
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/routes/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestJWTMiddleware(t *testing.T) {
	app := newProtectedApp()

	if code := call(t, app, ""); code != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized without token, got %d", code)
	}

	token, err := IssueToken("secret", "editor", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if code := call(t, app, "Bearer "+token); code != http.StatusOK {
		t.Fatalf("expected ok, got %d", code)
	}
	if code := call(t, app, "bearer "+token); code != http.StatusOK {
		t.Fatalf("scheme should be case-insensitive, got %d", code)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	app := newProtectedApp()

	wrong, _ := IssueToken("other-secret", "editor", time.Minute)
	expired, _ := IssueToken("secret", "editor", -time.Minute)
	noOperator, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))

	for name, header := range map[string]string{
		"wrong secret": "Bearer " + wrong,
		"expired":      "Bearer " + expired,
		"no operator":  "Bearer " + noOperator,
		"basic scheme": "Basic abc",
		"garbage":      "Bearer not-a-token",
	} {
		if code := call(t, app, header); code != http.StatusUnauthorized {
			t.Fatalf("%s: expected unauthorized, got %d", name, code)
		}
	}
}

func TestIssueTokenRequiresOperator(t *testing.T) {
	if _, err := IssueToken("secret", "", time.Minute); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBearerFromHeader(t *testing.T) {
	if bearerFromHeader("Bearer abc") != "abc" {
		t.Fatalf("expected token")
	}
	if bearerFromHeader("abc") != "" {
		t.Fatalf("expected empty token")
	}
}
