package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait - максимальное время записи одного сообщения
	writeWait = 10 * time.Second

	// pongWait - максимальное время ожидания pong от клиента
	pongWait = 60 * time.Second

	// pingPeriod должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize - максимальный размер входящего сообщения
	maxMessageSize = 1024
)

// Client - одно WebSocket-соединение
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient создает клиента и регистрирует его в хабе
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 64),
	}
	hub.register <- client
	return client
}

// Run запускает циклы чтения и записи клиента.
// Блокируется до закрытия соединения.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump читает из соединения, чтобы обнаружить отключение и pong.
// Входящие данные от клиентов не обрабатываются: поток односторонний.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump пишет сообщения в соединение. Только эта горутина
// выполняет запись, поэтому гонок на соединении нет.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл канал, отправляем close frame
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
