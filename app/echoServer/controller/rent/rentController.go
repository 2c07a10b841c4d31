package rent

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	rentsvc "rentabook/service/rent"
)

type Controller struct {
	Svc rentsvc.Service
	Log *slog.Logger
}

const dateLayout = "2006-01-02"

// POST /announcement/rent
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate, want YYYY-MM-DD")
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate, want YYYY-MM-DD")
		}
		end = &e
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	view, err := h.Svc.Create(c.Request().Context(), uid, rentsvc.CreateForm{
		AnnouncementID: req.AnnouncementID,
		StartDate:      start,
		EndDate:        end,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// PUT /rents/:id/accept
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

// PUT /rents/:id/undo
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

// GET /rents/my
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
