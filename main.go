package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/puoklam/lab-app-backend/api/auth"
	"github.com/puoklam/lab-app-backend/api/history"
	"github.com/puoklam/lab-app-backend/api/membership"
	"github.com/puoklam/lab-app-backend/api/socket"
	"github.com/puoklam/lab-app-backend/api/transfer"
	"github.com/puoklam/lab-app-backend/db"
	"github.com/puoklam/lab-app-backend/env"
	"github.com/puoklam/lab-app-backend/lifecycle"
	"github.com/puoklam/lab-app-backend/mq"
	"github.com/puoklam/lab-app-backend/server"
	"github.com/puoklam/lab-app-backend/ws"
)

func cleanup() {
	mq.StopConsumers()
	mq.StopProducers()
	ws.GetHub().Close()
}

func main() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cleanup()
		fmt.Println("quit")
		os.Exit(0)
	}()

	logger := log.New(os.Stdout, "lab-backend", log.LstdFlags|log.Lshortfile)

	if err := db.Init(env.DB_CONN); err != nil {
		logger.Fatalln(err)
	}

	go ws.GetHub().Run()
	if err := mq.StartFeedConsumer(logger); err != nil {
		logger.Fatalln(err)
	}
	if err := mq.StartPushWorker(logger); err != nil {
		logger.Fatalln(err)
	}

	engine := lifecycle.NewEngine(db.GetDB(context.Background()), mq.Notifier{}, logger)

	r := chi.NewRouter()
	server.SetupMiddlewares(r)

	authHandlers := auth.NewHandlers(logger)
	authHandlers.SetupRoutes(r)

	msHandlers := membership.NewHandlers(logger, engine)
	msHandlers.SetupRoutes(r)

	tfHandlers := transfer.NewHandlers(logger, engine)
	tfHandlers.SetupRoutes(r)

	histHandlers := history.NewHandlers(logger, engine)
	histHandlers.SetupRoutes(r)

	wsHandlers := socket.NewHandlers(logger)
	wsHandlers.SetupRoutes(r)

	srv := server.New(r)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalln(err)
	}
}
