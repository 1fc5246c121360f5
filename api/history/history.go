package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/puoklam/lab-app-backend/api"
	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/puoklam/lab-app-backend/lifecycle"
	"github.com/puoklam/lab-app-backend/middleware"
)

type Handlers struct {
	logger *log.Logger
	engine *lifecycle.Engine
}

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	v, err := strconv.ParseUint(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	entries, err := h.engine.ListHistory(r.Context(), uint(v), m.ID)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entries)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/members", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger))
		r.Get("/{memberID}/history", h.list)
	})
}

func NewHandlers(l *log.Logger, e *lifecycle.Engine) *Handlers {
	return &Handlers{l, e}
}
