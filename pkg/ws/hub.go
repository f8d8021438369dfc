package ws

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Hub хранит множество активных WebSocket-клиентов и рассылает им сообщения.
// Все изменения множества клиентов происходят в одной горутине Run,
// поэтому мапа клиентов не требует мьютекса.
type Hub struct {
	logger *logrus.Logger

	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Входящие сообщения для рассылки
	broadcast chan []byte

	// Запросы регистрации от клиентов
	register chan *Client

	// Запросы отключения от клиентов
	unregister chan *Client
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run запускает основной цикл хаба. Вызывается в отдельной горутине.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.WithField("clients", len(h.clients)).Debug("WebSocket client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.logger.WithField("clients", len(h.clients)).Debug("WebSocket client disconnected")

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Буфер клиента переполнен: клиент слишком медленный,
					// отключаем его, чтобы не блокировать рассылку
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("Dropped slow WebSocket client")
				}
			}
		}
	}
}

// Broadcast ставит сообщение в очередь рассылки всем клиентам.
// При переполнении очереди сообщение отбрасывается.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("WebSocket broadcast queue full, dropping message")
	}
}

// BroadcastJSON сериализует значение в JSON и рассылает всем клиентам
func (h *Hub) BroadcastJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(data)
	return nil
}
