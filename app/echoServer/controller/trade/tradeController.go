package trade

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	tradesvc "rentabook/service/trade"
)

type CreateTradeReq struct {
	AnnouncementID string `json:"announcementId" validate:"required"`
	OfferedBookID  string `json:"offeredBookId" validate:"required"`
}

type Controller struct {
	Svc tradesvc.Service
	Log *slog.Logger
}

// POST /trades/create
func (h *Controller) Create(c echo.Context) error {
	var req CreateTradeReq
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

	view, err := h.Svc.Create(c.Request().Context(), uid, tradesvc.CreateForm{
		AnnouncementID: req.AnnouncementID,
		OfferedBookID:  req.OfferedBookID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// PUT /trades/:id/accept
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

// PUT /trades/:id/undo
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

// GET /trades/my
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
