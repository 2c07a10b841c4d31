package address

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	addresssvc "rentabook/service/address"
)

type CreateAddressReq struct {
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

type Controller struct {
	Svc addresssvc.Service
	Log *slog.Logger
}

// POST /address/new
func (h *Controller) Create(c echo.Context) error {
	var req CreateAddressReq
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

	view, err := h.Svc.Create(c.Request().Context(), uid, addresssvc.CreateForm{
		Street:     req.Street,
		Number:     req.Number,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// GET /public/address/:id
func (h *Controller) Public(c echo.Context) error {
	view, err := h.Svc.Public(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
