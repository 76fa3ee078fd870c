package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apihttp "github.com/nexushq/talent-registry/api/http"
	"github.com/nexushq/talent-registry/api/http/handlers"
	"github.com/nexushq/talent-registry/pkg/auth"
	"github.com/nexushq/talent-registry/pkg/health"
	"github.com/nexushq/talent-registry/pkg/match"
	"github.com/nexushq/talent-registry/pkg/registry"
	"github.com/nexushq/talent-registry/pkg/repository/memory"
	"github.com/nexushq/talent-registry/pkg/security/jwt"
	"github.com/nexushq/talent-registry/pkg/security/password"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := memory.NewUserRepository()
	require.NoError(t, auth.Bootstrap(context.Background(), repo))

	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	jwtGen := jwt.NewGenerator("test-secret", "talent-registry", time.Hour)

	authUC := auth.NewAuthService(repo, hasher, jwtGen, time.Hour)
	registryUC := registry.NewService(repo)
	matchUC := match.NewService(nil, "")

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewRegistryHandler(registryUC),
		handlers.NewMatchHandler(matchUC, registryUC),
		handlers.NewHealthHandler(health.NewService()),
		jwt.NewAuthMiddleware(jwtGen),
		jwt.RequireAdmin(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	_ = json.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed, string(raw)
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "admin@123gmail.com",
		"password": "admin@123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	app := newTestApp(t)

	status, body, raw := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":       "Test",
		"email":      "t@x.com",
		"password":   "pw1",
		"domain":     "Developer",
		"skill":      "Go",
		"experience": "3 years",
	})
	require.Equal(t, http.StatusCreated, status)
	require.NotContains(t, raw, "passwordHash")
	require.NotContains(t, raw, "pw1")

	verificationToken, _ := body["verificationToken"].(string)
	require.NotEmpty(t, verificationToken)
	user, _ := body["user"].(map[string]any)
	require.Equal(t, "CANDIDATE", user["role"])
	require.Equal(t, "Pending", user["status"])
	require.Equal(t, false, user["isVerified"])

	status, body, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/verify-email", "", fiber.Map{
		"token": verificationToken,
	})
	require.Equal(t, http.StatusOK, status)
	verified, _ := body["user"].(map[string]any)
	require.Equal(t, true, verified["isVerified"])

	// second consumption fails generically
	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/verify-email", "", fiber.Map{
		"token": verificationToken,
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, body, raw = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "t@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body["token"])
	require.NotContains(t, raw, "passwordHash")
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	app := newTestApp(t)

	status, wrongBody, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "admin@123gmail.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, unknownBody, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "nobody@x.com", "password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, wrongBody["message"], unknownBody["message"])
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{"name": "Test", "email": "dup@x.com", "password": "pw1"}
	status, _, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, status)

	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, status)
}

func TestForgotResetFlow(t *testing.T) {
	app := newTestApp(t)

	status, _, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name": "Test", "email": "t@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/forgot-password", "", fiber.Map{
		"email": "t@x.com",
	})
	require.Equal(t, http.StatusOK, status)
	resetToken, _ := body["resetToken"].(string)
	require.NotEmpty(t, resetToken)

	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/reset-password", "", fiber.Map{
		"token": resetToken, "password": "pw2",
	})
	require.Equal(t, http.StatusOK, status)

	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "t@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "t@x.com", "password": "pw2",
	})
	require.Equal(t, http.StatusOK, status)
}

func TestForgotPasswordUnknownEmailIsGeneric(t *testing.T) {
	app := newTestApp(t)

	status, body, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/forgot-password", "", fiber.Map{
		"email": "nobody@x.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid request", body["message"])
}

func TestMeRequiresToken(t *testing.T) {
	app := newTestApp(t)

	status, _, _ := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	token := adminToken(t, app)
	status, body, raw := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "admin@123gmail.com", body["email"])
	require.NotContains(t, raw, "passwordHash")
}
