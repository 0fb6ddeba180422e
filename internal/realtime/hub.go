package realtime

import (
	"sync"

	"solotrip/pkg/logger"
)

type roomMessage struct {
	room string
	data []byte
}

type directMessage struct {
	client *Client
	data   []byte
}

// Hub owns the trip rooms. Only the Run goroutine touches the room map.
type Hub struct {
	rooms      map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage
	direct     chan directMessage
	done       chan struct{}
	stopOnce   sync.Once
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomMessage, 64),
		direct:     make(chan directMessage, 64),
		done:       make(chan struct{}),
		log:        log.With("component", "Hub"),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			if h.rooms[c.room] == nil {
				h.rooms[c.room] = make(map[*Client]struct{})
			}
			h.rooms[c.room][c] = struct{}{}
			h.log.Debug("client joined", "room", c.room, "user_id", c.userID, "members", len(h.rooms[c.room]))

		case c := <-h.unregister:
			h.remove(c)

		case m := <-h.broadcast:
			for c := range h.rooms[m.room] {
				select {
				case c.send <- m.data:
				default:
					h.log.Warn("dropping slow client", "room", m.room, "user_id", c.userID)
					h.remove(c)
				}
			}

		case m := <-h.direct:
			if _, ok := h.rooms[m.client.room][m.client]; !ok {
				continue
			}
			select {
			case m.client.send <- m.data:
			default:
				h.remove(m.client)
			}

		case <-h.done:
			for room, members := range h.rooms {
				for c := range members {
					close(c.send)
				}
				delete(h.rooms, room)
			}
			return
		}
	}
}

// remove closes the client's send channel once, only while it is still a member.
func (h *Hub) remove(c *Client) {
	members, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, ok := members[c]; !ok {
		return
	}
	delete(members, c)
	close(c.send)
	if len(members) == 0 {
		delete(h.rooms, c.room)
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Broadcast queues data for every member of room. It is a no-op after Stop.
func (h *Hub) Broadcast(room string, data []byte) {
	select {
	case h.broadcast <- roomMessage{room: room, data: data}:
	case <-h.done:
	}
}

func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) reply(c *Client, data []byte) {
	select {
	case h.direct <- directMessage{client: c, data: data}:
	case <-h.done:
	}
}
