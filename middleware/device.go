package middleware

import (
	"context"
	"net/http"
	"strings"
)

func WithDeviceInfo(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ip := strings.Split(r.RemoteAddr, ":")[0]
		ctx := context.WithValue(r.Context(), "deviceIP", ip)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// WithExpoPushToken requires the device to announce its push token so the
// session row can be kept current for the push worker.
func WithExpoPushToken(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		t := r.Header.Get("X-Expo-Push-Token")
		if t == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("missing header: X-Expo-Push-Token"))
			return
		}
		ctx := context.WithValue(r.Context(), "expoPushToken", t)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
