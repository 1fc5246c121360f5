package mq

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nsqio/go-nsq"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	"github.com/puoklam/lab-app-backend/db"
	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/puoklam/lab-app-backend/env"
	"github.com/puoklam/lab-app-backend/lifecycle"
)

var pc *nsq.Consumer

// StartPushWorker delivers committed membership events to the member's
// registered devices through Expo. Shared channel: one delivery per event
// across all servers.
func StartPushWorker(logger *log.Logger) error {
	consumer, err := nsq.NewConsumer(env.EVENTS_TOPIC, "push", nsq.NewConfig())
	if err != nil {
		return err
	}
	client := expo.NewPushClient(nil)
	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		var ev lifecycle.Event
		if err := json.Unmarshal(message.Body, &ev); err != nil {
			logger.Println(err)
			return nil
		}
		var sessions []model.Session
		if err := db.GetDB(context.Background()).
			Where("member_id = ?", ev.MemberID).
			Find(&sessions).Error; err != nil {
			return err
		}
		for _, s := range sessions {
			if s.ExpoPushToken == "" {
				continue
			}
			token, err := expo.NewExponentPushToken(s.ExpoPushToken)
			if err != nil {
				continue
			}
			if _, err := client.Publish(&expo.PushMessage{
				To:    []expo.ExponentPushToken{token},
				Title: pushTitle(ev.Kind),
				Body:  pushBody(ev),
				Sound: "default",
			}); err != nil {
				logger.Println(err)
			}
		}
		return nil
	}))
	if err := consumer.ConnectToNSQLookupd(env.NSQLOOKUPD_ADDR); err != nil {
		consumer.Stop()
		return err
	}
	pc = consumer
	return nil
}

func pushTitle(kind lifecycle.EventKind) string {
	switch kind {
	case lifecycle.EventNewApplication:
		return "Application received"
	case lifecycle.EventApplicationApproved:
		return "Application approved"
	case lifecycle.EventApplicationRejected:
		return "Application rejected"
	case lifecycle.EventTransferApproved:
		return "Transfer approved"
	case lifecycle.EventTransferRejected:
		return "Transfer rejected"
	}
	return "Membership update"
}

func pushBody(ev lifecycle.Event) string {
	if r, ok := ev.Payload["reason"].(string); ok && r != "" {
		return r
	}
	return "Open the app for details"
}
