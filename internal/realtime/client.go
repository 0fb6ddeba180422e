package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"solotrip/internal/models/db_models"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 << 10
	sendTimeout    = 10 * time.Second
	sendBuffer     = 32
)

// CommentSender stores a comment posted on a socket. Broadcasting is its job, not the socket's.
type CommentSender interface {
	Create(ctx context.Context, tripID, userID, userName, text string) (*db_models.Comment, error)
}

// Identity is the caller behind a socket; UserID is empty for anonymous viewers.
type Identity struct {
	UserID   string
	UserName string
}

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	room     string
	userID   string
	userName string
	sender   CommentSender
	log      *logger.Logger
}

// Attach joins conn to the trip room and starts its pumps. The hub owns conn afterwards.
func (h *Hub) Attach(conn *websocket.Conn, tripID string, id Identity, sender CommentSender) {
	c := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		room:     tripID,
		userID:   id.UserID,
		userName: id.UserName,
		sender:   sender,
		log:      h.log.With("room", tripID, "user_id", id.UserID),
	}
	if !h.join(c) {
		_ = conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("socket read failed", "error", err)
			}
			return
		}
		c.handle(raw)
	}
}

func (c *Client) handle(raw []byte) {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		c.fail("Invalid message")
		return
	}

	switch in.Action {
	case ActionSendComment:
		if c.userID == "" {
			c.fail("Authentication required")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if _, err := c.sender.Create(ctx, c.room, c.userID, c.userName, in.Text); err != nil {
			var vErr *utils.ValidationError
			if errors.As(err, &vErr) {
				c.fail(strings.Join(vErr.Errors, "; "))
				return
			}
			c.log.Error("socket comment failed", "error", err)
			c.fail("Failed to post comment")
		}
	default:
		c.fail("Unknown action")
	}
}

func (c *Client) fail(message string) {
	c.hub.reply(c, encodeOutbound(Outbound{Event: EventError, Error: message}))
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
