package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	usersvc "rentabook/service/user"
	"rentabook/util/apperr"
	booksutil "rentabook/util/books"
)

type SetImageReq struct {
	ImageID string `json:"imageId" validate:"required"`
}

type Controller struct {
	Svc   usersvc.Service
	Books booksutil.Client
	Log   *slog.Logger
}

// GET /users/me
func (h *Controller) Me(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	u, err := h.Svc.Me(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /users/me/image
func (h *Controller) SetImage(c echo.Context) error {
	var req SetImageReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := h.Svc.SetUserImage(c.Request().Context(), uid, req.ImageID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "image set"})
}

// GET /public/user/:id
func (h *Controller) Public(c echo.Context) error {
	view, err := h.Svc.Public(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// GET /public/books/:id — Google Books volume lookup.
func (h *Controller) Book(c echo.Context) error {
	vol, err := h.Books.Volume(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booksutil.ErrVolumeNotFound) {
			return apperr.New(apperr.ErrNotFound, "book not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, vol)
}
