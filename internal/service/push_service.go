package service

import (
	"context"
	"fmt"

	"fitcoach-be/internal/pkg/logger"
	"fitcoach-be/internal/websocket"
	"fitcoach-be/pkg/events"
	pktNats "fitcoach-be/pkg/nats"

	"github.com/google/uuid"
)

type IPushService interface {
	Start() error
}

// pushService bridges coach events on NATS to websocket pushes: PB alerts
// and program-ready notices reach connected clients without polling.
type pushService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewPushService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) IPushService {
	return &pushService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *pushService) Start() error {
	if s.subscriber == nil {
		return fmt.Errorf("push service started without a NATS subscriber")
	}

	if err := s.subscriber.Subscribe("events."+events.TypePBLogged, "push-pb-logged", s.forward(websocket.PushPRAlert)); err != nil {
		return err
	}
	if err := s.subscriber.Subscribe("events."+events.TypeProgramReady, "push-program-ready", s.forward(websocket.PushProgramReady)); err != nil {
		return err
	}

	s.logger.Info("PushService", "Listening for coach events", nil)
	return nil
}

func (s *pushService) forward(pushType string) pktNats.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		payload := event.Payload()

		userIdStr, ok := payload["user_id"].(string)
		if !ok {
			// No addressee; ack and move on rather than redelivering forever.
			s.logger.Warn("PushService", "Event without user_id dropped", map[string]interface{}{"type": event.EventType()})
			return nil
		}
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			s.logger.Warn("PushService", "Event with bad user_id dropped", map[string]interface{}{"user_id": userIdStr})
			return nil
		}

		s.hub.Send(userId, pushType, payload)
		return nil
	}
}
