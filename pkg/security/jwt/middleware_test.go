package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nexushq/talent-registry/pkg/auth"
)

func newTestApp(g *Generator) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(g), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", NewAuthMiddleware(g), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func issue(t *testing.T, g *Generator, role auth.Role) string {
	t.Helper()
	tok, err := g.Generate(context.Background(), auth.User{ID: uuid.New(), Email: "t@x.com", Role: role})
	require.NoError(t, err)
	return tok
}

func TestMiddlewareMissingHeader(t *testing.T) {
	t.Parallel()

	app := newTestApp(NewGenerator("s", "i", time.Hour))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAcceptsBearerAndBareToken(t *testing.T) {
	t.Parallel()

	g := NewGenerator("s", "i", time.Hour)
	app := newTestApp(g)
	tok := issue(t, g, auth.RoleCandidate)

	for _, header := range []string{"Bearer " + tok, tok} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
	}
}

func TestMiddlewareRejectsExpired(t *testing.T) {
	t.Parallel()

	g := NewGenerator("s", "i", -time.Minute)
	app := newTestApp(g)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, g, auth.RoleCandidate))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	g := NewGenerator("s", "i", time.Hour)
	app := newTestApp(g)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, g, auth.RoleCandidate))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, g, auth.RoleAdmin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
