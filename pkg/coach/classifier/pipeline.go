package classifier

import (
	"context"
	"log"
)

// Outcome makes the fast-path/slow-path escalation explicit instead of
// relying on a nil sentinel crossing package boundaries.
type Outcome struct {
	Result          *ClassificationResult
	NeedsEscalation bool
}

// Pipeline is the two-stage classifier: deterministic patterns first, LLM
// fallback only when the pattern stage is inconclusive or below threshold.
type Pipeline struct {
	pattern  *PatternClassifier
	fallback *FallbackClassifier
	logger   *log.Logger
}

func NewPipeline(pattern *PatternClassifier, fallback *FallbackClassifier, logger *log.Logger) *Pipeline {
	return &Pipeline{
		pattern:  pattern,
		fallback: fallback,
		logger:   logger,
	}
}

// ClassifyFast runs only the pattern stage and reports whether escalation
// is needed
func (p *Pipeline) ClassifyFast(message string, sctx *MessageContext) Outcome {
	result := p.pattern.Classify(message, sctx)
	if result == nil {
		return Outcome{NeedsEscalation: true}
	}
	if result.Confidence < EscalationThreshold {
		return Outcome{Result: result, NeedsEscalation: true}
	}
	return Outcome{Result: result}
}

// Classify resolves the message to a ClassificationResult, escalating to
// the fallback classifier when necessary. Always returns a valid result.
func (p *Pipeline) Classify(ctx context.Context, message string, sctx *MessageContext) *ClassificationResult {
	outcome := p.ClassifyFast(message, sctx)
	if !outcome.NeedsEscalation {
		p.logger.Printf("[CLASSIFIER] Pattern hit: intent=%s confidence=%.2f",
			outcome.Result.Intent, outcome.Result.Confidence)
		return outcome.Result
	}

	p.logger.Printf("[CLASSIFIER] Escalating to fallback classifier")
	return p.fallback.Classify(ctx, message, sctx, outcome.Result)
}
