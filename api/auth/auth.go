package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/puoklam/lab-app-backend/db"
	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/puoklam/lab-app-backend/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handlers struct {
	logger *log.Logger
}

func (h *Handlers) signin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(body.Email) < 1 || len(body.Password) < 1 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid input"))
		return
	}

	c := r.Context()
	m, err := getMemberFromEmail(c, body.Email)
	if err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if m == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(m.Pass), []byte(body.Password)) != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	ip := c.Value("deviceIP").(string)
	s := &model.Session{}
	if err := db.GetDB(c).Where(&model.Session{MemberID: m.ID, IP: ip}).First(s).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Println(err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if s, err = insertSession(c, m.ID, ip, c.Value("expoPushToken").(string)); err != nil {
			h.logger.Println(err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	accessToken, err := genAccessToken(ip, strconv.FormatUint(uint64(m.ID), 10))
	if err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Expires:  time.Now().Add(2 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
	json.NewEncoder(w).Encode(&OutSignin{
		AccessToken: accessToken,
		Member: OutMember{
			Base:               m.Base,
			Name:               m.Name,
			Email:              m.Email,
			RegistrationStatus: m.RegistrationStatus,
		},
	})
}

func (h *Handlers) signout(w http.ResponseWriter, r *http.Request) {
	m := r.Context().Value("member").(*model.Member)
	s := r.Context().Value("session").(*model.Session)
	if err := db.GetDB(r.Context()).Delete(&model.Session{}, "member_id = ? AND ip = ?", m.ID, s.IP).Error; err != nil {
		h.logger.Println(err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
	})
}

func getMemberFromEmail(ctx context.Context, email string) (*model.Member, error) {
	var m model.Member
	if err := db.GetDB(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func insertSession(ctx context.Context, memberID uint, ip, expoPushToken string) (*model.Session, error) {
	s := &model.Session{
		MemberID:      memberID,
		IP:            ip,
		ExpoPushToken: expoPushToken,
	}
	if err := db.GetDB(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.WithExpoPushToken).Post("/signin", h.signin)
		r.With(middleware.Authenticator(h.logger)).Post("/signout", h.signout)
	})
}

func NewHandlers(logger *log.Logger) *Handlers {
	return &Handlers{logger}
}
