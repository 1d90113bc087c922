package service

import (
	"context"
	"encoding/json"

	"fitcoach-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IProgramQueueService enqueues program generation work. It satisfies the
// coach handlers' ProgramQueue dependency.
type IProgramQueueService interface {
	EnqueueGeneration(ctx context.Context, userId uuid.UUID, programType string, answers json.RawMessage) error
}

type programQueueService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewProgramQueueService(topicName string, pubSub *gochannel.GoChannel) IProgramQueueService {
	return &programQueueService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *programQueueService) EnqueueGeneration(ctx context.Context, userId uuid.UUID, programType string, answers json.RawMessage) error {
	payload, err := json.Marshal(dto.PublishGenerateProgramMessage{
		UserId:      userId,
		ProgramType: programType,
		Answers:     answers,
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}
