package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

const (
	// writeWait — таймаут на запись одного сообщения
	writeWait = 10 * time.Second

	// pongWait — максимальное ожидание pong от клиента
	pongWait = 60 * time.Second

	// pingInterval — период отправки ping, должен быть меньше pongWait
	pingInterval = 30 * time.Second

	// maxMessageSize — лимит входящего сообщения; зрители ничего не присылают
	maxMessageSize = 512

	// sendBufferSize — буфер исходящих сообщений клиента
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дашборд открывается с произвольного origin, ограничения решает CORS на HTTP-уровне
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Envelope — обертка сообщений, уходящих зрителям дашборда
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client представляет одно подключение зрителя дашборда
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub рассылает SOS-оповещения всем подключенным зрителям дашборда.
// Медленные клиенты отключаются: гарантий доставки нет.
type Hub struct {
	logger     *logrus.Logger
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub создает новый Hub. Цикл обработки запускается отдельно через Run.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan []byte, 256),
	}
}

// Name реализует service.AlertPublisher
func (h *Hub) Name() string { return "dashboard" }

// Publish ставит оповещение в очередь рассылки, не блокируясь.
// Возвращает ошибку при переполненной очереди.
func (h *Hub) Publish(ctx context.Context, alert *models.SOSAlert) error {
	payload, err := json.Marshal(Envelope{Type: "sos_alert", Data: alert})
	if err != nil {
		return fmt.Errorf("failed to marshal alert envelope: %w", err)
	}

	select {
	case h.broadcast <- payload:
		return nil
	default:
		return fmt.Errorf("broadcast queue is full")
	}
}

// ClientCount возвращает число подключенных зрителей
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Run обрабатывает регистрацию, отключение и рассылку. Завершается по ctx.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("Dashboard hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			metrics.DashboardClients.Inc()
			h.logger.WithField("client_id", client.id).Info("Dashboard client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.DashboardClients.Dec()
			}
			h.mu.Unlock()
			h.logger.WithField("client_id", client.id).Info("Dashboard client disconnected")

		case message := <-h.broadcast:
			// Полная блокировка: медленные клиенты удаляются прямо в цикле
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
					metrics.DashboardClients.Dec()
					metrics.DashboardDroppedTotal.Inc()
					h.logger.WithField("client_id", client.id).Warn("Dropped slow dashboard client")
				}
			}
			h.mu.Unlock()
		}
	}
}

// ServeWS переводит HTTP-запрос в WebSocket и регистрирует зрителя
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		hub:  h,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump вычитывает входящий трафик ради обработки close и pong.
// Содержимое сообщений зрителей игнорируется.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.WithError(err).WithField("client_id", c.id).Debug("Dashboard client read error")
			}
			return
		}
	}
}

// writePump пишет сообщения и ping-и клиенту
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
