package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	initErr error
	inits   int
}

func (f *fakeValidator) Init(requestProtocol, requestHost string) error {
	f.inits++
	return f.initErr
}

func (f *fakeValidator) ValidateSession(cookie string, roles []string) (*services.SessionUser, error) {
	if cookie != "good" {
		return nil, errors.New("session is not valid")
	}
	return &services.SessionUser{ID: "user-1"}, nil
}

func setupApp(validator services.SessionValidator) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var ce *types.CustomError
			if errors.As(err, &ce) {
				return c.Status(ce.Code).SendString(ce.Type)
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	app.Get("/whoami", AuthUser(validator), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func request(t *testing.T, app *fiber.App, cookie string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthUserValidSession(t *testing.T) {
	validator := &fakeValidator{}
	app := setupApp(validator)

	status, body := request(t, app, "good")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body)
	assert.Equal(t, 1, validator.inits)
}

func TestAuthUserMissingCookie(t *testing.T) {
	status, body := request(t, setupApp(&fakeValidator{}), "")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "data.authorization.user", body)
}

func TestAuthUserInvalidSession(t *testing.T) {
	status, _ := request(t, setupApp(&fakeValidator{}), "bad")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAuthUserAuthorizerUnavailable(t *testing.T) {
	status, _ := request(t, setupApp(&fakeValidator{initErr: errors.New("down")}), "good")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestUserIDWithoutAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + UserID(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
