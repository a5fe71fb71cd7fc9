package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	hub *Hub
	log *zap.Logger
}

func NewWsHandler(hub *Hub, log *zap.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWs godoc
// @Summary Eventos de mudança de status das cidades.
// @Tags Events
// @Router /ws [get]
func (h *Handler) HandleWs(c echo.Context) error {
	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn("falha no upgrade do websocket", zap.Error(err))
		return nil
	}

	cl := NewClient(conn)
	if !h.hub.Register(cl) {
		return conn.Close()
	}

	go cl.writeMessage()
	cl.readMessage(h.hub)
	return nil
}
