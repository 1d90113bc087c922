// Package coach is the public entry point of the conversational pipeline:
// classify, retrieve, dispatch, respond.
package coach

import (
	"context"
	"log"
	"strings"

	"fitcoach-be/internal/constant"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/coach/handler"
	"fitcoach-be/pkg/llm"

	"github.com/google/uuid"
)

const fallbackReply = "Sorry, something went sideways on my end. Say that again and I'll take another run at it."

// Coach sequences one conversational turn: classification, handler
// dispatch, and chat-history persistence. Every failure path still yields a
// typed conversational response; callers never surface raw errors to users.
type Coach struct {
	pipeline   *classifier.Pipeline
	registry   *handler.Registry
	uowFactory unitofwork.RepositoryFactory
	logger     *log.Logger
}

func New(
	pipeline *classifier.Pipeline,
	registry *handler.Registry,
	uowFactory unitofwork.RepositoryFactory,
	logger *log.Logger,
) *Coach {
	return &Coach{
		pipeline:   pipeline,
		registry:   registry,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// ProcessMessage handles one inbound message end to end.
func (c *Coach) ProcessMessage(
	ctx context.Context,
	userID uuid.UUID,
	message string,
	sctx *classifier.MessageContext,
	loggingMethod string,
) *handler.Response {

	uow := c.uowFactory.NewUnitOfWork(ctx)

	history := c.loadHistory(ctx, uow, userID)

	result := c.pipeline.Classify(ctx, message, sctx)
	c.logger.Printf("[COACH] user=%s intent=%s confidence=%.2f pattern=%t",
		userID, result.Intent, result.Confidence, result.UsedPattern)

	req := &handler.Request{
		UserID:         userID,
		Message:        message,
		Classification: result,
		Context:        sctx,
		History:        history,
		LoggingMethod:  loggingMethod,
	}

	resp, err := c.registry.Resolve(result.Intent).Handle(ctx, uow, req)
	if err != nil {
		c.logger.Printf("[COACH] Handler for %s failed: %v", result.Intent, err)
		resp = &handler.Response{
			Reply:  fallbackReply,
			Intent: result.Intent,
		}
	}

	c.recordTurns(ctx, uow, userID, message, resp)
	return resp
}

// ProcessMessageStream runs the same turn but delivers the reply through
// onChunk in order, for transports that render progressively. The full
// response is still returned for persistence and payload access.
func (c *Coach) ProcessMessageStream(
	ctx context.Context,
	userID uuid.UUID,
	message string,
	sctx *classifier.MessageContext,
	loggingMethod string,
	onChunk func(chunk string),
) *handler.Response {

	resp := c.ProcessMessage(ctx, userID, message, sctx, loggingMethod)

	words := strings.Fields(resp.Reply)
	const wordsPerChunk = 8
	for i := 0; i < len(words); i += wordsPerChunk {
		end := i + wordsPerChunk
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if end < len(words) {
			chunk += " "
		}
		onChunk(chunk)
	}
	return resp
}

// loadHistory returns the last turns in chronological order. History is
// best-effort; a read failure just means an uncontextualized prompt.
func (c *Coach) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID) []llm.Message {
	turns, err := uow.ChatTurnRepository().FindRecent(ctx, userID, 5)
	if err != nil {
		c.logger.Printf("[COACH] History load failed: %v", err)
		return nil
	}

	history := make([]llm.Message, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		role := "user"
		if turns[i].Role == constant.ChatTurnRoleCoach {
			role = "assistant"
		}
		history = append(history, llm.Message{Role: role, Content: turns[i].Content})
	}
	return history
}

func (c *Coach) recordTurns(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID, message string, resp *handler.Response) {
	turns := []*entity.ChatTurn{
		{Id: uuid.New(), UserId: userID, Role: constant.ChatTurnRoleUser, Content: message, Intent: string(resp.Intent)},
		{Id: uuid.New(), UserId: userID, Role: constant.ChatTurnRoleCoach, Content: resp.Reply, Intent: string(resp.Intent)},
	}
	for _, turn := range turns {
		if err := uow.ChatTurnRepository().Create(ctx, turn); err != nil {
			c.logger.Printf("[COACH] Failed to record chat turn: %v", err)
			return
		}
	}
}
