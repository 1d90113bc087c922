// Package prompt builds the system and user prompts for knowledge-seeking
// coach turns.
package prompt

import (
	"fmt"
	"strings"

	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/llm"
)

const basePersona = "You are an experienced, encouraging strength and conditioning coach. " +
	"Answer concisely and practically. Ground your advice in the provided reference material " +
	"when it is relevant; never invent citations. Stay on fitness topics."

// intentPersonas narrows the coaching voice per intent. Intents without an
// entry use the base persona alone.
var intentPersonas = map[classifier.Intent]string{
	classifier.IntentExerciseQuestion:     "Focus on movement technique: setup, execution cues, and common faults.",
	classifier.IntentFormCheck:            "The user wants form feedback. Ask for the key checkpoints you cannot see, then give the most likely corrections.",
	classifier.IntentExerciseSubstitution: "Suggest one or two substitutions that match the original movement pattern and equipment constraints, and say why.",
	classifier.IntentNutrition:            "Give practical, food-first nutrition guidance. No supplements unless asked.",
	classifier.IntentRecovery:             "Be conservative with pain. Distinguish normal soreness from symptoms that need a professional.",
	classifier.IntentProgramRequest:       "Design a single session or short plan matching the user's stated goal and experience.",
	classifier.IntentRunningProgram:       "You are also a running coach. Respect progressive overload and easy/hard day separation.",
	classifier.IntentProgressCheck:        "Summarize trends honestly. Celebrate real progress, flag stalls without judgment.",
	classifier.IntentMotivation:           "Be brief and genuinely encouraging. No platitude stacking.",
}

// SystemPrompt returns the system prompt for a knowledge-seeking intent.
func SystemPrompt(intent classifier.Intent) string {
	persona, ok := intentPersonas[intent]
	if !ok {
		return basePersona
	}
	return basePersona + "\n\n" + persona
}

// historyWindow bounds how many prior turns the prompt carries.
const historyWindow = 5

// BuildUserPrompt assembles profile summary, retrieved knowledge and recent
// history around the current message.
func BuildUserPrompt(profileSummary, ragBlock string, history []llm.Message, message string) string {
	var sb strings.Builder

	if profileSummary != "" {
		sb.WriteString("<user_profile>\n")
		sb.WriteString(profileSummary)
		sb.WriteString("\n</user_profile>\n\n")
	}

	if ragBlock != "" {
		sb.WriteString("<reference_material>\n")
		sb.WriteString(ragBlock)
		sb.WriteString("\n</reference_material>\n\n")
	}

	if len(history) > 0 {
		start := 0
		if len(history) > historyWindow {
			start = len(history) - historyWindow
		}
		sb.WriteString("<recent_conversation>\n")
		for _, turn := range history[start:] {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
		sb.WriteString("</recent_conversation>\n\n")
	}

	sb.WriteString("User message: ")
	sb.WriteString(message)
	return sb.String()
}

// ProfileSummary renders the compact profile line injected into prompts.
func ProfileSummary(name, goal, experience string) string {
	parts := make([]string, 0, 3)
	if name != "" {
		parts = append(parts, "Name: "+name)
	}
	if goal != "" {
		parts = append(parts, "Goal: "+goal)
	}
	if experience != "" {
		parts = append(parts, "Experience: "+experience)
	}
	return strings.Join(parts, " | ")
}
