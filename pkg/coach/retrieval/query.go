package retrieval

import (
	"regexp"
	"strings"

	"fitcoach-be/pkg/coach/classifier"
)

const (
	maxQueryTerms     = 6
	rawQueryMaxLength = 100
)

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// BuildOptimizedQuery derives a search query from intent plus extracted
// entities. Raw user phrasing under-performs against the technical knowledge
// corpus, so each intent appends fixed domain-keyword expansions.
func BuildOptimizedQuery(message string, intent classifier.Intent, data classifier.ExtractedData) string {
	var terms []string

	entity := data.Exercise
	if entity == "" {
		entity = data.BodyPart
	}

	switch intent {
	case classifier.IntentExerciseQuestion, classifier.IntentFormCheck:
		if entity != "" {
			terms = append(terms, entity)
		}
		terms = append(terms, "technique", "form", "cues")

	case classifier.IntentExerciseSubstitution:
		if entity != "" {
			terms = append(terms, entity)
		}
		terms = append(terms, "alternative", "variation", "substitute")

	case classifier.IntentNutrition:
		lower := strings.ToLower(message)
		if strings.Contains(lower, "protein") {
			terms = append(terms, "protein", "intake")
		}
		if strings.Contains(lower, "pre-workout") || strings.Contains(lower, "before workout") || strings.Contains(lower, "before training") {
			terms = append(terms, "pre-workout", "nutrition")
		}
		if strings.Contains(lower, "post-workout") || strings.Contains(lower, "after workout") || strings.Contains(lower, "after training") {
			terms = append(terms, "post-workout", "recovery")
		}
		if len(terms) > 0 {
			terms = append(terms, "diet")
		}

	case classifier.IntentRecovery:
		if data.BodyPart != "" {
			terms = append(terms, data.BodyPart)
		}
		terms = append(terms, "recovery", "injury", "rest")

	case classifier.IntentProgramRequest, classifier.IntentFullProgram:
		if data.BodyPart != "" {
			terms = append(terms, data.BodyPart)
		}
		terms = append(terms, "programming", "training", "volume")

	case classifier.IntentRunningProgram:
		terms = append(terms, "running", "endurance", "training", "plan")

	case classifier.IntentProgressCheck:
		if entity != "" {
			terms = append(terms, entity)
		}
		terms = append(terms, "progress", "strength", "standards")

	case classifier.IntentMotivation:
		terms = append(terms, "motivation", "consistency", "habit")

	default:
		if entity != "" {
			terms = append(terms, entity)
		}
	}

	if len(terms) == 0 {
		return rawFallbackQuery(message)
	}

	if len(terms) > maxQueryTerms {
		terms = terms[:maxQueryTerms]
	}
	return strings.Join(terms, " ")
}

// rawFallbackQuery lower-cases the message, strips punctuation and truncates
func rawFallbackQuery(message string) string {
	cleaned := punctuationRe.ReplaceAllString(strings.ToLower(message), "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len(cleaned) > rawQueryMaxLength {
		cleaned = cleaned[:rawQueryMaxLength]
	}
	return cleaned
}
