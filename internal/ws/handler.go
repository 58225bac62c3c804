package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"worklink/internal/pkg/jwt"
)

// Handler upgrades authenticated clients onto the notification hub.
// Browsers cannot set an Authorization header on a websocket dial, so the
// access token also travels as a query parameter.
type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, ok := h.authenticate(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("WS upgrade error | user=%s error=%v", userID, err)
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authenticate(c fiber.Ctx) (uuid.UUID, bool) {
	if h.jwt == nil {
		return uuid.Nil, false
	}

	token := c.Query("token")
	if token == "" {
		const prefix = "Bearer "
		header := c.Get("Authorization")
		if len(header) > len(prefix) {
			token = header[len(prefix):]
		}
	}
	if token == "" {
		return uuid.Nil, false
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	if claims.TokenType != jwt.TokenTypeAccess || h.jwt.IsRefreshToken(claims) {
		return uuid.Nil, false
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
