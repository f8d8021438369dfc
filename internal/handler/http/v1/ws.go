package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/kiddo_tracking_system/pkg/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Демо-система: принимаем подключения с любого origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS апгрейдит соединение до WebSocket и подключает клиента к хабу.
// Клиент получает поток сообщений location и alert; входящие данные игнорируются.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade WebSocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn)
	client.Run()
}
