package env

import (
	"os"
)

type convertible interface {
	~[]byte | ~string
}

var (
	HS256_SECRET    []byte
	NSQD_TCP_ADDR   string
	NSQLOOKUPD_ADDR string
	EVENTS_TOPIC    string
	DB_CONN         string
	APP_PORT        string
	SERVER_ID       string
)

func initEnv[T convertible](dst *T, key string) {
	v := os.Getenv(key)
	if v == "" {
		os.Exit(1)
	}
	*dst = T(v)
}

func init() {
	initEnv(&HS256_SECRET, "HS256_SECRET")
	initEnv(&NSQD_TCP_ADDR, "NSQD_TCP_ADDR")
	initEnv(&NSQLOOKUPD_ADDR, "NSQLOOKUPD_ADDR")
	initEnv(&EVENTS_TOPIC, "EVENTS_TOPIC")
	initEnv(&DB_CONN, "DB_CONN")
	initEnv(&APP_PORT, "APP_PORT")
	initEnv(&SERVER_ID, "SERVER_ID")
}
