package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fitcoach-be/internal/constant"
	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/events"
	"fitcoach-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// eventPublisher is the slice of the NATS publisher the consumer needs.
type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// consumerService generates multi-week programs off the request queue so a
// coach turn never blocks on the slow generation call.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	eventPub    eventPublisher
	logger      *log.Logger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventPub eventPublisher,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		eventPub:    eventPub,
		logger:      initLLMLogger(),
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
	var payload dto.PublishGenerateProgramMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Printf("[ERROR] Failed to unmarshal program request: %v", err)
		msg.Ack() // invalid payloads never become valid; don't retry
		return
	}

	cs.logger.Printf("[INFO] Generating %s program for user %s", payload.ProgramType, payload.UserId)

	genCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	prompt := fmt.Sprintf(constant.ProgramGenerationPrompt, payload.ProgramType, string(payload.Answers))
	raw, err := cs.llmProvider.Generate(genCtx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		cs.logger.Printf("[ERROR] Program generation failed for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	structure, weeks, err := parseProgramStructure(raw)
	if err != nil {
		cs.logger.Printf("[ERROR] Program output unparseable for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	program := &entity.Program{
		Id:          uuid.New(),
		UserId:      payload.UserId,
		ProgramType: payload.ProgramType,
		Weeks:       weeks,
		Structure:   structure,
	}
	if err := uow.ProgramRepository().Create(ctx, program); err != nil {
		cs.logger.Printf("[ERROR] Failed to persist program for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	cs.logger.Printf("[SUCCESS] %d-week %s program %s stored for user %s",
		weeks, payload.ProgramType, program.Id, payload.UserId)

	// Best-effort push so connected clients don't have to poll.
	if cs.eventPub != nil {
		evt := events.NewProgramReadyEvent(payload.UserId.String(), program.Id.String(), program.ProgramType, weeks)
		if err := cs.eventPub.Publish(ctx, evt); err != nil {
			cs.logger.Printf("[WARN] Program ready event not published: %v", err)
		}
	}

	msg.Ack()
}

// parseProgramStructure validates the generator output and pulls the week
// count out of it. Fences are tolerated, anything else malformed is not.
func parseProgramStructure(raw string) (json.RawMessage, int, error) {
	cleaned := llm.StripCodeFences(raw)

	var envelope struct {
		Weeks int `json:"weeks"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, 0, err
	}
	weeks := envelope.Weeks
	if weeks <= 0 {
		weeks = 8
	}
	return json.RawMessage(cleaned), weeks, nil
}
