package image

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	imagesvc "rentabook/service/image"
)

type Controller struct {
	Svc imagesvc.Service
	Log *slog.Logger
}

// POST /image/new (multipart, field "file")
func (h *Controller) Upload(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	img, err := h.Svc.Upload(c.Request().Context(), uid, fh.Header.Get("Content-Type"), fh.Filename, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": img.ID.Hex()})
}

// GET /public/image/:id
func (h *Controller) Get(c echo.Context) error {
	img, data, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, img.ContentType, data)
}
