package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"fitcoach-be/pkg/llm"
)

// FallbackClassifier resolves intent with an LLM when the pattern battery is
// inconclusive. It never returns an error: every failure path degrades to a
// valid ClassificationResult.
type FallbackClassifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
	timeout     time.Duration
}

const defaultFallbackTimeout = 8 * time.Second

func NewFallbackClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *FallbackClassifier {
	return &FallbackClassifier{
		llmProvider: llmProvider,
		logger:      logger,
		timeout:     defaultFallbackTimeout,
	}
}

// fallbackWire is the strict JSON shape requested from the model
type fallbackWire struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Extracted  struct {
		Exercise   string   `json:"exercise"`
		BodyPart   string   `json:"body_part"`
		Weight     *float64 `json:"weight"`
		WeightUnit string   `json:"weight_unit"`
		Reps       *int     `json:"reps"`
		Sets       *int     `json:"sets"`
		RPE        *float64 `json:"rpe"`
		WODName    string   `json:"wod_name"`
		WODTime    *int     `json:"wod_time"`
	} `json:"extracted_data"`
}

// Classify invokes the completion service with a bounded timeout. patternResult
// may carry a low-confidence pattern match to fall back on when the model
// output cannot be parsed.
func (f *FallbackClassifier) Classify(
	ctx context.Context,
	message string,
	sctx *MessageContext,
	patternResult *ClassificationResult,
) *ClassificationResult {

	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	prompt := f.buildPrompt(message, sctx)

	response, err := f.llmProvider.Generate(timeoutCtx, prompt, llm.WithTemperature(0.0), llm.WithMaxTokens(400))
	if err != nil {
		f.logger.Printf("[FALLBACK] LLM classification failed: %v", err)
		return f.degrade(patternResult)
	}

	result, err := f.parseResponse(response)
	if err != nil {
		f.logger.Printf("[FALLBACK] Parsing failed, degrading: %v", err)
		return f.degrade(patternResult)
	}

	f.logger.Printf("[FALLBACK] Resolved intent=%s confidence=%.2f", result.Intent, result.Confidence)
	return result
}

func (f *FallbackClassifier) buildPrompt(message string, sctx *MessageContext) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are an intent analyzer for a fitness coaching assistant. Your ONLY job is to classify what the user wants.\n")
	prompt.WriteString("You do NOT answer the message. You only classify it and extract structured fields.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<session_state>\n")
	if sctx != nil && sctx.ActiveWorkoutID != "" {
		prompt.WriteString("ACTIVE_WORKOUT: user has an open workout they can log sets against.\n")
		if sctx.CurrentExercise != "" {
			prompt.WriteString(fmt.Sprintf("CURRENT_EXERCISE: %q\n", sctx.CurrentExercise))
		}
		if sctx.LastWeight != nil {
			prompt.WriteString(fmt.Sprintf("LAST_WEIGHT: %.1f %s\n", *sctx.LastWeight, sctx.LastWeightUnit))
		}
	} else {
		prompt.WriteString("NO_ACTIVE_WORKOUT: nothing is being logged right now.\n")
	}
	prompt.WriteString("</session_state>\n\n")

	prompt.WriteString("<user_message>\n")
	prompt.WriteString(message)
	prompt.WriteString("\n</user_message>\n\n")

	prompt.WriteString("<intents>\n")
	prompt.WriteString("Choose exactly ONE intent:\n")
	for _, intent := range AllIntents() {
		prompt.WriteString(fmt.Sprintf("- %s: %s\n", intent, intentDescriptions[intent]))
	}
	prompt.WriteString("</intents>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON, no prose, no code fences:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"intent\": \"workout_log\",\n")
	prompt.WriteString("  \"confidence\": 0.8,\n")
	prompt.WriteString("  \"extracted_data\": {\n")
	prompt.WriteString("    \"exercise\": \"\", \"body_part\": \"\", \"weight\": null, \"weight_unit\": \"\",\n")
	prompt.WriteString("    \"reps\": null, \"sets\": null, \"rpe\": null, \"wod_name\": \"\", \"wod_time\": null\n")
	prompt.WriteString("  }\n")
	prompt.WriteString("}\n")
	prompt.WriteString("Omit nothing; use null or empty string for unknown fields. wod_time is elapsed seconds.\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func (f *FallbackClassifier) parseResponse(response string) (*ClassificationResult, error) {
	jsonContent := extractJSON(llm.StripCodeFences(response))
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var wire fallbackWire
	if err := json.Unmarshal([]byte(jsonContent), &wire); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	intent := strings.ToLower(strings.TrimSpace(wire.Intent))
	if !IsValid(intent) {
		return nil, fmt.Errorf("unknown intent %q", wire.Intent)
	}

	confidence := wire.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &ClassificationResult{
		Intent:     Intent(intent),
		Confidence: confidence,
		Extracted: ExtractedData{
			Exercise:   wire.Extracted.Exercise,
			BodyPart:   wire.Extracted.BodyPart,
			Weight:     wire.Extracted.Weight,
			WeightUnit: wire.Extracted.WeightUnit,
			Reps:       wire.Extracted.Reps,
			Sets:       wire.Extracted.Sets,
			RPE:        wire.Extracted.RPE,
			WODName:    wire.Extracted.WODName,
			WODTime:    wire.Extracted.WODTime,
		},
		UsedPattern: false,
	}, nil
}

// degrade substitutes the best available result when the model output is
// unusable: the low-confidence pattern match if one existed, else a generic
// low-confidence default.
func (f *FallbackClassifier) degrade(patternResult *ClassificationResult) *ClassificationResult {
	if patternResult != nil {
		return patternResult
	}
	return &ClassificationResult{
		Intent:     IntentGeneralFitness,
		Confidence: 0.3,
	}
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
