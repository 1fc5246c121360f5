package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/puoklam/lab-app-backend/db"
	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/gorm"
)

var hs256Secret any

func init() {
	hs256Secret = []byte(os.Getenv("HS256_SECRET"))
}

// Authenticator resolves the acting member from the access token and puts
// the member and device session on the request context. It decides who the
// actor is, never what the actor may do; the lifecycle engine owns that.
func Authenticator(logger *log.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie("accessToken")
			if err != nil {
				if errors.Is(err, http.ErrNoCookie) {
					w.WriteHeader(http.StatusUnauthorized)
				} else {
					logger.Println(err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}
			t, err := jwt.Parse(c.Value, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return hs256Secret, nil
			})
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			claims, ok := t.Claims.(jwt.MapClaims)
			if !ok || !t.Valid || claims["aud"] != r.Context().Value("deviceIP") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			mid := claims["sub"].(string)
			ip := claims["aud"].(string)
			var m model.Member
			if err := db.GetDB(r.Context()).Preload("Sessions").First(&m, mid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.WriteHeader(http.StatusForbidden)
				} else {
					logger.Println(err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}
			var s *model.Session
			for i, ss := range m.Sessions {
				if ss.IP == ip {
					s = &m.Sessions[i]
					break
				}
			}
			if s == nil {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("session does not exist"))
				return
			}
			ctx := context.WithValue(context.WithValue(r.Context(), "member", &m), "session", s)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
