package sale

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	salesvc "rentabook/service/sale"
)

type CreateSaleReq struct {
	AnnouncementID string `json:"announcementId" validate:"required"`
	AddressID      string `json:"addressId"`
}

type Controller struct {
	Svc salesvc.Service
	Log *slog.Logger
}

// POST /sales/create
func (h *Controller) Create(c echo.Context) error {
	var req CreateSaleReq
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

	view, err := h.Svc.Create(c.Request().Context(), uid, salesvc.CreateForm{
		AnnouncementID: req.AnnouncementID,
		AddressID:      req.AddressID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// PUT /sales/:id/accept
func (h *Controller) Accept(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	view, err := h.Svc.Accept(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// PUT /sales/:id/undo
func (h *Controller) Undo(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	view, err := h.Svc.Cancel(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// GET /sales/my
func (h *Controller) My(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	rows, err := h.Svc.My(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
