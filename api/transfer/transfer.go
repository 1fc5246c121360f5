package transfer

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

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

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	var body InRequestTransfer
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if body.SourceMembershipID == nil || body.ProjectID == nil || body.LinkType == nil ||
		body.Role == nil || body.WeeklyHours == nil || body.StartDate == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing fields"))
		return
	}
	start, err := time.Parse(api.DateLayout, *body.StartDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid start_date"))
		return
	}

	id, err := h.engine.RequestTransfer(r.Context(), lifecycle.RequestTransferInput{
		MemberID:           m.ID,
		TargetProjectID:    *body.ProjectID,
		LinkType:           model.LinkType(*body.LinkType),
		Role:               model.Role(*body.Role),
		WeeklyHours:        *body.WeeklyHours,
		StartDate:          start,
		SourceMembershipID: *body.SourceMembershipID,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(&OutRequestTransfer{ID: id, Status: model.StatusPending})
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/transfers", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger))
		r.Post("/", h.create)
	})
}

func NewHandlers(l *log.Logger, e *lifecycle.Engine) *Handlers {
	return &Handlers{l, e}
}
