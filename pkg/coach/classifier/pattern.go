package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	weightRepsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(kgs?|kilos?|lbs?|pounds?)?\s*(?:for|x)\s*(\d+)\s*(?:reps?)?`)
	weightRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(kgs?|kilos?|lbs?|pounds?)\b`)
	repsRe       = regexp.MustCompile(`(\d+)\s*reps?\b`)
	setsRe       = regexp.MustCompile(`(\d+)\s*sets?\b`)
	rpeRe        = regexp.MustCompile(`rpe\s*(\d+(?:\.\d+)?)`)
	clockTimeRe  = regexp.MustCompile(`(\d+):([0-5]\d)`)
	minutesRe    = regexp.MustCompile(`(\d+)\s*min(?:ute)?s?\b`)
	roundsRe     = regexp.MustCompile(`(\d+)\s*rounds?\b`)
)

// PatternClassifier is the deterministic fast path: pure, no I/O,
// sub-millisecond. A nil result is the explicit signal to escalate to the
// LLM fallback.
type PatternClassifier struct{}

func NewPatternClassifier() *PatternClassifier {
	return &PatternClassifier{}
}

// Classify runs the ordered rule battery. Rule ordering is significant:
// later categories assume earlier ones already claimed the more specific
// matches (off_topic runs before recovery on purpose).
func (c *PatternClassifier) Classify(message string, sctx *MessageContext) *ClassificationResult {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return nil
	}

	// Entity extraction runs once up front and is merged into whichever
	// branch fires.
	entities := extractEntities(msg)

	if r := c.matchGreeting(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchWODLog(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchWorkoutLog(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchSubstitution(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchExerciseQuestion(msg, entities); r != nil {
		return merge(r, entities)
	}
	if r := c.matchOffTopic(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchRecovery(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchProgram(msg); r != nil {
		return merge(r, entities)
	}
	if r := c.matchNutrition(msg); r != nil {
		return merge(r, entities)
	}

	return nil
}

func extractEntities(msg string) ExtractedData {
	var data ExtractedData
	if name, ok := containsAny(msg, exerciseNames); ok {
		data.Exercise = name
	}
	if part, ok := containsAny(msg, bodyParts); ok {
		data.BodyPart = part
	}
	return data
}

func merge(r *ClassificationResult, entities ExtractedData) *ClassificationResult {
	if r.Extracted.Exercise == "" {
		r.Extracted.Exercise = entities.Exercise
	}
	if r.Extracted.BodyPart == "" {
		r.Extracted.BodyPart = entities.BodyPart
	}
	r.UsedPattern = true
	return r
}

func (c *PatternClassifier) matchGreeting(msg string) *ClassificationResult {
	if _, ok := hasPrefixAny(msg, greetingPrefixes); !ok {
		return nil
	}
	// A long message starting with "hey" is usually a real question
	if len(strings.Fields(msg)) > 4 {
		return nil
	}
	return &ClassificationResult{Intent: IntentGreeting, Confidence: 0.95}
}

func (c *PatternClassifier) matchWODLog(msg string) *ClassificationResult {
	name, ok := containsAnyWord(msg, wodNames)
	if !ok {
		return nil
	}

	result := &ClassificationResult{
		Intent:     IntentWODLog,
		Confidence: 0.90,
		Extracted:  ExtractedData{WODName: name},
	}

	if m := clockTimeRe.FindStringSubmatch(msg); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		total := minutes*60 + seconds
		result.Extracted.WODTime = &total
	} else if m := minutesRe.FindStringSubmatch(msg); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		total := minutes * 60
		result.Extracted.WODTime = &total
	}

	if m := roundsRe.FindStringSubmatch(msg); m != nil {
		rounds, _ := strconv.Atoi(m[1])
		result.Extracted.WODRounds = &rounds
	}

	return result
}

func (c *PatternClassifier) matchWorkoutLog(msg string) *ClassificationResult {
	data := extractSetData(msg)

	hasWeight := data.Weight != nil
	hasReps := data.Reps != nil
	_, pastTense := containsAny(msg, pastTenseVerbs)

	logShape := hasWeight && hasReps && !isQuestion(msg)
	verbShape := pastTense && (hasWeight || hasReps)

	if !logShape && !verbShape {
		return nil
	}

	return &ClassificationResult{
		Intent:     IntentWorkoutLog,
		Confidence: 0.85,
		Extracted:  data,
	}
}

// extractSetData pulls weight, unit, reps, sets and RPE out of a set-log
// style message. Unit tokens starting with "k" normalize to kg, everything
// else (including no token) to lbs.
func extractSetData(msg string) ExtractedData {
	var data ExtractedData

	if m := weightRepsRe.FindStringSubmatch(msg); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			data.Weight = &w
			data.WeightUnit = normalizeUnit(m[2])
		}
		if r, err := strconv.Atoi(m[3]); err == nil {
			data.Reps = &r
		}
	} else {
		if m := weightRe.FindStringSubmatch(msg); m != nil {
			if w, err := strconv.ParseFloat(m[1], 64); err == nil {
				data.Weight = &w
				data.WeightUnit = normalizeUnit(m[2])
			}
		}
		if m := repsRe.FindStringSubmatch(msg); m != nil {
			if r, err := strconv.Atoi(m[1]); err == nil {
				data.Reps = &r
			}
		}
	}

	if m := setsRe.FindStringSubmatch(msg); m != nil {
		if s, err := strconv.Atoi(m[1]); err == nil {
			data.Sets = &s
		}
	}
	if m := rpeRe.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			data.RPE = &v
		}
	}

	return data
}

func normalizeUnit(token string) string {
	if strings.HasPrefix(token, "k") {
		return "kg"
	}
	return "lbs"
}

func (c *PatternClassifier) matchSubstitution(msg string) *ClassificationResult {
	if _, ok := containsAny(msg, substitutionPhrases); !ok {
		return nil
	}
	return &ClassificationResult{Intent: IntentExerciseSubstitution, Confidence: 0.90}
}

func (c *PatternClassifier) matchExerciseQuestion(msg string, entities ExtractedData) *ClassificationResult {
	if strings.Contains(msg, "form check") || strings.Contains(msg, "check my form") {
		return &ClassificationResult{Intent: IntentFormCheck, Confidence: 0.90}
	}

	if !isQuestion(msg) {
		return nil
	}
	if _, ok := containsAny(msg, formWords); !ok {
		return nil
	}

	confidence := 0.75
	if entities.Exercise != "" {
		confidence = 0.90
	}
	return &ClassificationResult{Intent: IntentExerciseQuestion, Confidence: confidence}
}

func (c *PatternClassifier) matchOffTopic(msg string) *ClassificationResult {
	if _, ok := containsAny(msg, offTopicWords); !ok {
		return nil
	}
	return &ClassificationResult{Intent: IntentOffTopic, Confidence: 0.80}
}

func (c *PatternClassifier) matchRecovery(msg string) *ClassificationResult {
	if _, ok := containsAny(msg, recoveryWords); !ok {
		return nil
	}
	return &ClassificationResult{Intent: IntentRecovery, Confidence: 0.85}
}

func (c *PatternClassifier) matchProgram(msg string) *ClassificationResult {
	_, construction := containsAny(msg, constructionVerbs)
	_, programNoun := containsAny(msg, programNouns)
	_, daily := containsAny(msg, dailyMarkers)

	if !daily && !(construction && programNoun) {
		return nil
	}

	if construction && programNoun {
		if _, running := containsAny(msg, runningMarkers); running {
			return &ClassificationResult{Intent: IntentRunningProgram, Confidence: 0.75}
		}
		if _, multiWeek := containsAny(msg, multiWeekMarkers); multiWeek {
			return &ClassificationResult{Intent: IntentFullProgram, Confidence: 0.75}
		}
	}

	// Daily-workout phrasing routes to the lighter intent
	return &ClassificationResult{Intent: IntentProgramRequest, Confidence: 0.85}
}

func (c *PatternClassifier) matchNutrition(msg string) *ClassificationResult {
	if _, ok := containsAny(msg, nutritionNouns); ok {
		return &ClassificationResult{Intent: IntentNutrition, Confidence: 0.85}
	}
	// Eating verbs alone are too ambiguous; only count them in questions
	if _, ok := containsAny(msg, eatingVerbs); ok && isQuestion(msg) {
		return &ClassificationResult{Intent: IntentNutrition, Confidence: 0.85}
	}
	return nil
}
