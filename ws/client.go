package ws

import (
	"context"

	"movieblend_backend/internal/logger"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan Event
	Ctx  context.Context

	Manager *WebSocketManager
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	// Канал только для серверных уведомлений: входящие сообщения
	// игнорируются, но читать нужно, чтобы обрабатывать ping/close
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.CtxWarn(c.Ctx, "WebSocket read error", "user_id", c.ID, "error", err.Error())
			}
			break
		}
	}
}

func (c *Client) writePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.CtxWarn(c.Ctx, "WebSocket write error", "user_id", c.ID, "error", err.Error())
			break
		}
	}
	c.Conn.Close()
}
