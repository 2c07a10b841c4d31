package chat

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"rentabook/app/echoServer/jwtx"
	"rentabook/app/echoServer/ws"
	chatsvc "rentabook/service/chat"
)

type SendMessageReq struct {
	ChatID  string `json:"chatId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type Controller struct {
	Svc chatsvc.Service
	Hub *ws.Hub
	Log *slog.Logger
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is not checked; access is gated by the JWT middleware and the
	// participant check below.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /chats/my
func (h *Controller) My(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	rows, err := h.Svc.Mine(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /chats/:id/messages
func (h *Controller) Messages(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	rows, err := h.Svc.Messages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /chat_messages/new
func (h *Controller) Send(c echo.Context) error {
	var req SendMessageReq
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

	view, err := h.Svc.Send(c.Request().Context(), uid, req.ChatID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// GET /ws/chats/:id — live message feed for one chat.
func (h *Controller) Subscribe(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	chatID := c.Param("id")

	ok, err := h.Svc.Participant(c.Request().Context(), uid, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "not a participant of this chat")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.Log.Warn("ws upgrade failed", "err", err, "chat_id", chatID)
		return err
	}

	client := ws.NewClient(h.Hub, conn, chatID, uid)
	client.Serve()
	return nil
}
