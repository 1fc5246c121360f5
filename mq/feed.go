package mq

import (
	"encoding/json"
	"log"

	"github.com/nsqio/go-nsq"
	"github.com/puoklam/lab-app-backend/env"
	"github.com/puoklam/lab-app-backend/lifecycle"
	"github.com/puoklam/lab-app-backend/ws"
)

var fc *nsq.Consumer

// StartFeedConsumer relays committed membership events to the affected
// member's connected websocket clients. Channel is per server so every
// instance delivers to its own sockets.
func StartFeedConsumer(logger *log.Logger) error {
	consumer, err := nsq.NewConsumer(env.EVENTS_TOPIC, "feed-"+env.SERVER_ID, nsq.NewConfig())
	if err != nil {
		return err
	}
	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		var ev lifecycle.Event
		if err := json.Unmarshal(message.Body, &ev); err != nil {
			// malformed event, don't requeue
			logger.Println(err)
			return nil
		}
		ws.GetHub().Broadcast(ev.MemberID, message.Body)
		return nil
	}))
	if err := consumer.ConnectToNSQLookupd(env.NSQLOOKUPD_ADDR); err != nil {
		consumer.Stop()
		return err
	}
	fc = consumer
	return nil
}

func StopConsumers() {
	if fc != nil {
		fc.Stop()
	}
	if pc != nil {
		pc.Stop()
	}
}
