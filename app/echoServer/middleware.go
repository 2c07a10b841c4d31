package echoServer

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rentabook/model"
	jwtutil "rentabook/util/jwt"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		MaxAge:       3600,
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
			)
			return err
		}
	}
}

type UserLoader interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

// TokenVersionCheck runs after echo-jwt has verified the signature. It pins
// the token's "tv" claim to the user's current tokenVersion, so a password
// reset invalidates every token issued before it, and leaves user_id/email
// in the request context for controllers to pass down explicitly.
func TokenVersionCheck(users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := c.Get("user").(*jwt.Token)
			if !ok || tok == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if err := establishIdentity(c, users, claims); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// TokenAuth authenticates from a raw token instead of echo-jwt. Websocket
// handshakes go through here: browsers cannot set an Authorization header on
// a ws connection, so the token may also arrive as a "token" query param.
func TokenAuth(secret string, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				raw = c.QueryParam("token")
			}
			claims, err := jwtutil.ParseAuth(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if err := establishIdentity(c, users, claims); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// establishIdentity loads the user named by the claims, enforces the token
// version and stores user_id/email for the handlers downstream.
func establishIdentity(c echo.Context, users UserLoader, claims map[string]any) error {
	sub, _ := claims["sub"].(string)
	tv, tvOK := jwtutil.TokenVersion(claims)
	if sub == "" || !tvOK {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	u, err := users.ByID(c.Request().Context(), sub)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if u.TokenVersion != tv {
		return echo.NewHTTPError(http.StatusUnauthorized, "token invalidated")
	}

	c.Set("user_id", u.ID.Hex())
	c.Set("email", u.Email)
	return nil
}
