package announcement

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	announcementsvc "rentabook/service/announcement"
)

type Controller struct {
	Svc announcementsvc.Service
	Log *slog.Logger
}

// POST /announcement/new
func (h *Controller) Create(c echo.Context) error {
	var req CreateAnnouncementReq
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

	view, err := h.Svc.Create(c.Request().Context(), uid, announcementsvc.CreateForm{
		BookID:           req.BookID,
		Description:      req.Description,
		ImageIDs:         req.Images,
		LocationID:       req.LocationID,
		AnnouncementType: req.AnnouncementType,
		DailyValue:       req.DailyValue,
		SaleValue:        req.SaleValue,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// GET /announcements/find (public)
func (h *Controller) Find(c echo.Context) error {
	f := announcementsvc.Filter{
		BookID:    c.QueryParam("bookId"),
		Rent:      c.QueryParam("rent") == "true",
		Sale:      c.QueryParam("sale") == "true",
		Trade:     c.QueryParam("trade") == "true",
		Available: true,
	}
	if p, err := strconv.ParseInt(c.QueryParam("page"), 10, 64); err == nil && p > 0 {
		f.Page = p
	}
	if n, err := strconv.ParseInt(c.QueryParam("pageSize"), 10, 64); err == nil && n > 0 {
		f.PageSize = n
	}

	rows, err := h.Svc.Find(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /announcements/my
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

// GET /announcements/:id
func (h *Controller) Detail(c echo.Context) error {
	view, err := h.Svc.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
