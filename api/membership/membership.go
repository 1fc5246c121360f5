package membership

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
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
	var body InCreateMembership
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if body.ProjectID == nil || body.LinkType == nil || body.Role == nil || body.WeeklyHours == nil || body.StartDate == nil {
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

	id, err := h.engine.SubmitApplication(r.Context(), lifecycle.SubmitApplicationInput{
		MemberID:    m.ID,
		ProjectID:   *body.ProjectID,
		LinkType:    model.LinkType(*body.LinkType),
		Role:        model.Role(*body.Role),
		WeeklyHours: *body.WeeklyHours,
		StartDate:   start,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(&OutCreateMembership{ID: id, Status: model.StatusPending})
}

func (h *Handlers) approve(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	id, ok := membershipID(w, r)
	if !ok {
		return
	}
	if err := h.engine.Approve(r.Context(), id, m.ID); err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) reject(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	id, ok := membershipID(w, r)
	if !ok {
		return
	}
	var body InReject
	json.NewDecoder(r.Body).Decode(&body)
	reason := ""
	if body.Reason != nil {
		reason = *body.Reason
	}
	if err := h.engine.Reject(r.Context(), id, m.ID, reason); err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) setEndDate(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	id, ok := membershipID(w, r)
	if !ok {
		return
	}
	var body InSetEndDate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var end *time.Time
	if body.EndDate != nil {
		t, err := time.Parse(api.DateLayout, *body.EndDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("invalid end_date"))
			return
		}
		end = &t
	}
	if err := h.engine.SetEndDate(r.Context(), id, m.ID, end); err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) remove(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	id, ok := membershipID(w, r)
	if !ok {
		return
	}
	if err := h.engine.Remove(r.Context(), id, m.ID); err != nil {
		api.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func membershipID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, "membershipID"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	return uint(v), true
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/memberships", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger))
		r.Post("/", h.create)
		r.Post("/{membershipID}/approve", h.approve)
		r.Post("/{membershipID}/reject", h.reject)
		r.Put("/{membershipID}/end-date", h.setEndDate)
		r.Delete("/{membershipID}", h.remove)
	})
}

func NewHandlers(l *log.Logger, e *lifecycle.Engine) *Handlers {
	return &Handlers{l, e}
}
