package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/interfaces/http/response"
	"bank-portal.backend/pkg/jwt"
	"bank-portal.backend/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Clients never send application frames; the channel is push only.
	maxMessageSize = 512

	sendBufferSize = 16
)

// TicketValidator checks websocket tickets presented on the handshake
type TicketValidator interface {
	Validate(tokenString string) (*jwt.TicketClaims, error)
}

// Client is one websocket connection registered with the hub
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	topic   string
	isAdmin bool
}

// Handler upgrades authenticated requests to websocket connections
type Handler struct {
	hub            *Hub
	tickets        TicketValidator
	upgrader       websocket.Upgrader
	allowedOrigins []string
}

// NewHandler creates a new websocket handler. An empty origin list
// accepts any origin, which is only suitable for local development.
func NewHandler(hub *Hub, tickets TicketValidator, allowedOrigins []string) *Handler {
	h := &Handler{
		hub:            hub,
		tickets:        tickets,
		allowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Serve authenticates the handshake and hands the connection to the hub
// GET /ws?ticket=...
func (h *Handler) Serve(c *gin.Context) {
	ticket := c.Query("ticket")
	if ticket == "" {
		response.Error(c, domainerrors.Unauthorized("Missing ticket"))
		return
	}

	claims, err := h.tickets.Validate(ticket)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid ticket"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the handshake failure
		logger.Warn(c.Request.Context(), "websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		hub:     h.hub,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		topic:   claims.UserID.String(),
		isAdmin: claims.IsAdmin,
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// readPump drains the connection so control frames are processed and
// disconnects are noticed promptly. Application frames are discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump pushes hub payloads and heartbeats to the peer
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
