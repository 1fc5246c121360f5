package socket

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/puoklam/lab-app-backend/middleware"
	"github.com/puoklam/lab-app-backend/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handlers struct {
	logger *log.Logger
}

// serveWs hooks the member's socket into the hub; the feed consumer pushes
// committed membership events to it.
func (h *Handlers) serveWs(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Println(err)
		return
	}
	c := ws.NewClient(&ws.ClientCfg{
		Logger:   h.logger,
		Conn:     conn,
		MemberID: m.ID,
	})
	ws.GetHub().Register() <- c
	go c.WritePump()
	go c.ReadPump()
}

func (h *Handlers) connect(w http.ResponseWriter, r *http.Request) {
	h.serveWs(w, r)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/ws", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger))
		r.Get("/", h.connect)
	})
}

func NewHandlers(logger *log.Logger) *Handlers {
	return &Handlers{logger}
}
