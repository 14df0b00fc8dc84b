package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/pkg/mailer"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
	"nexum-inventory-be/pkg/events"
	pktNats "nexum-inventory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// AlertDelivery pushes stock alerts to connected dashboard clients.
// Implemented by the WebSocket hub.
type AlertDelivery interface {
	Broadcast(notification dto.StockAlertNotification)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	delivery       AlertDelivery
	alertEmailsOn  bool
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	delivery AlertDelivery,
	alertEmailsOn bool,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		delivery:       delivery,
		alertEmailsOn:  alertEmailsOn,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.StockLevelChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal stock change message: %v", err)
		msg.Ack() // invalid payload never becomes valid on retry
		return
	}

	// Only transitions INTO critical raise alerts; staying critical is noise.
	if payload.Status != string(entity.StockStatusCritical) ||
		payload.PreviousStatus == string(entity.StockStatusCritical) {
		msg.Ack()
		return
	}

	log.Printf("[INFO] Item %s became critical (coverage %.1f days)", payload.Code, payload.CoverageDays)

	if cs.eventPublisher != nil {
		event := events.NewStockCriticalEvent(payload.Code, payload.CoverageDays)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish STOCK_CRITICAL event: %v", err)
		}
	}

	if cs.delivery != nil {
		cs.delivery.Broadcast(dto.StockAlertNotification{
			Code:         payload.Code,
			Description:  payload.Description,
			Status:       payload.Status,
			CoverageDays: payload.CoverageDays,
			Message:      fmt.Sprintf("%s is below its safety level", payload.Code),
		})
	}

	if cs.alertEmailsOn && cs.emailService != nil {
		cs.sendAlertEmails(ctx, &payload)
	}

	msg.Ack()
}

func (cs *consumerService) sendAlertEmails(ctx context.Context, payload *dto.StockLevelChangedMessage) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	subscribers, err := uow.UserRepository().FindAll(ctx, specification.AlertSubscribers{})
	if err != nil {
		log.Printf("[ERROR] Failed to load alert subscribers: %v", err)
		return
	}

	for _, user := range subscribers {
		go func(email string) {
			if err := cs.emailService.SendStockAlert(email, payload.Code, payload.Description, payload.CoverageDays); err != nil {
				log.Printf("[WARN] Failed to send stock alert to %s: %v", email, err)
			}
		}(user.Email)
	}
}
