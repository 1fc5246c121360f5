package ws

import (
	"sync"
	"sync/atomic"
)

var hub *Hub
var once sync.Once

type clients struct {
	sync.Mutex
	// member_id -> connections
	c map[uint]map[*Client]bool
}

// Hub fans committed membership events out to a member's open sockets.
type Hub struct {
	clients    *clients
	register   chan *Client
	unregister chan *Client
	count      int64
	stop       bool
	OnComplete func()
}

func GetHub() *Hub {
	once.Do(func() {
		hub = &Hub{
			clients:    &clients{c: make(map[uint]map[*Client]bool)},
			register:   make(chan *Client),
			unregister: make(chan *Client),
			OnComplete: func() {},
		}
	})
	return hub
}

func (h *Hub) Register() chan<- *Client {
	return h.register
}

// Broadcast queues payload for every open socket of a member. Slow or gone
// clients are skipped, the feed is best-effort.
func (h *Hub) Broadcast(memberID uint, payload []byte) {
	h.clients.Lock()
	defer h.clients.Unlock()
	for c := range h.clients.c[memberID] {
		select {
		case c.send <- payload:
		default:
		}
	}
}

func (h *Hub) Run() {
	defer func() {
		go h.OnComplete()
	}()
	for {
		select {
		case c := <-h.register:
			h.clients.Lock()
			if h.clients.c[c.memberID] == nil {
				h.clients.c[c.memberID] = make(map[*Client]bool)
			}
			h.clients.c[c.memberID][c] = true
			atomic.AddInt64(&h.count, 1)
			h.clients.Unlock()
		case c := <-h.unregister:
			if c == nil {
				continue
			}
			h.clients.Lock()
			if conns := h.clients.c[c.memberID]; conns[c] {
				delete(conns, c)
				close(c.send)
				atomic.AddInt64(&h.count, -1)
			}
			h.clients.Unlock()
			if h.stop && atomic.LoadInt64(&h.count) == 0 {
				return
			}
		}
	}
}

func (h *Hub) Close() {
	h.clients.Lock()
	h.stop = true
	for _, conns := range h.clients.c {
		for c := range conns {
			c.conn.Close()
		}
	}
	h.clients.Unlock()
}
