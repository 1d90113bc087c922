package handler

import (
	"context"
	"fmt"
	"log"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/events"
)

// WODLogHandler records benchmark workout attempts. Unlike strength PRs,
// lower elapsed time wins, and the superseded best is kept on the new row.
type WODLogHandler struct {
	publisher EventPublisher
	logger    *log.Logger
}

func NewWODLogHandler(publisher EventPublisher, logger *log.Logger) *WODLogHandler {
	return &WODLogHandler{
		publisher: publisher,
		logger:    logger,
	}
}

func (h *WODLogHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	data := req.Classification.Extracted

	if data.WODName == "" {
		return &Response{
			Reply:  "Which workout was that? Give me the name and your time.",
			Intent: classifier.IntentWODLog,
		}, nil
	}

	benchmark, err := uow.BenchmarkRepository().FindByName(ctx, data.WODName)
	if err != nil {
		return nil, err
	}
	if benchmark == nil {
		return &Response{
			Reply:  fmt.Sprintf("I don't know a benchmark called %q. What's the full name?", data.WODName),
			Intent: classifier.IntentWODLog,
		}, nil
	}

	if data.WODTime == nil {
		return &Response{
			Reply:  fmt.Sprintf("What was your time on %s?", benchmark.Name),
			Intent: classifier.IntentWODLog,
		}, nil
	}
	elapsed := *data.WODTime

	best, err := uow.BenchmarkRepository().BestResult(ctx, req.UserID, benchmark.Id)
	if err != nil {
		return nil, err
	}

	var previousBest *int
	isPB := best == nil || elapsed < best.TimeSeconds
	if best != nil {
		t := best.TimeSeconds
		previousBest = &t
	}

	result := &entity.BenchmarkResult{
		UserId:              req.UserID,
		BenchmarkId:         benchmark.Id,
		TimeSeconds:         elapsed,
		Rounds:              data.WODRounds,
		IsPB:                isPB,
		PreviousBestSeconds: previousBest,
		RawTranscript:       req.Message,
	}
	if err := uow.BenchmarkRepository().CreateResult(ctx, result); err != nil {
		return nil, err
	}

	action := ActionWODLogged
	if isPB {
		action = ActionPBLogged
		if h.publisher != nil {
			if err := h.publisher.Publish(ctx, events.NewPBLoggedEvent(req.UserID.String(), benchmark.Id.String(), elapsed, previousBest)); err != nil {
				h.logger.Printf("[WOD_LOG] Failed to publish PB event: %v", err)
			}
		}
	}

	return &Response{
		Reply:  confirmWOD(benchmark.Name, elapsed, previousBest, isPB),
		Intent: classifier.IntentWODLog,
		Action: action,
		Payload: map[string]interface{}{
			"benchmark_id": benchmark.Id.String(),
			"time_seconds": elapsed,
			"is_pb":        isPB,
		},
	}, nil
}

func confirmWOD(name string, elapsed int, previousBest *int, isPB bool) string {
	if isPB && previousBest != nil {
		return fmt.Sprintf("%s in %s — new personal best, down from %s. Outstanding!",
			name, formatElapsed(elapsed), formatElapsed(*previousBest))
	}
	if isPB {
		return fmt.Sprintf("%s in %s logged — that's your benchmark to beat now.",
			name, formatElapsed(elapsed))
	}
	return fmt.Sprintf("%s in %s logged. Your best is still %s — it's in reach.",
		name, formatElapsed(elapsed), formatElapsed(*previousBest))
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
