package classifier

// Intent is the closed set of user request categories the coach understands.
// Adding one is a compile-time-checked change: the handler registry in
// pkg/coach refuses to start with an unmapped intent.
type Intent string

const (
	IntentGreeting             Intent = "greeting"
	IntentWorkoutLog           Intent = "workout_log"
	IntentWODLog               Intent = "wod_log"
	IntentSetExercise          Intent = "set_exercise"
	IntentExerciseQuestion     Intent = "exercise_question"
	IntentFormCheck            Intent = "form_check"
	IntentExerciseSubstitution Intent = "exercise_substitution"
	IntentNutrition            Intent = "nutrition"
	IntentRecovery             Intent = "recovery"
	IntentProgramRequest       Intent = "program_request"
	IntentFullProgram          Intent = "full_program"
	IntentRunningProgram       Intent = "running_program"
	IntentMotivation           Intent = "motivation"
	IntentProgressCheck        Intent = "progress_check"
	IntentOffTopic             Intent = "off_topic"
	IntentGeneralFitness       Intent = "general_fitness"
)

// AllIntents returns every known intent in a stable order
func AllIntents() []Intent {
	return []Intent{
		IntentGreeting,
		IntentWorkoutLog,
		IntentWODLog,
		IntentSetExercise,
		IntentExerciseQuestion,
		IntentFormCheck,
		IntentExerciseSubstitution,
		IntentNutrition,
		IntentRecovery,
		IntentProgramRequest,
		IntentFullProgram,
		IntentRunningProgram,
		IntentMotivation,
		IntentProgressCheck,
		IntentOffTopic,
		IntentGeneralFitness,
	}
}

// intentDescriptions feed the fallback classifier prompt, one line each
var intentDescriptions = map[Intent]string{
	IntentGreeting:             "User is saying hello or opening the conversation",
	IntentWorkoutLog:           "User reports a completed set of an exercise (weight and/or reps)",
	IntentWODLog:               "User reports finishing a named benchmark workout with a time",
	IntentSetExercise:          "User announces which exercise they are doing next, without logging a set",
	IntentExerciseQuestion:     "User asks how to perform an exercise or about programming it",
	IntentFormCheck:            "User asks for feedback on their lifting form or technique",
	IntentExerciseSubstitution: "User wants an alternative exercise for one they cannot do",
	IntentNutrition:            "User asks about food, protein, calories, supplements or diet",
	IntentRecovery:             "User mentions pain, soreness, injury, rest or recovery",
	IntentProgramRequest:       "User wants a single workout or today's training suggestion",
	IntentFullProgram:          "User wants a complete multi-week training program",
	IntentRunningProgram:       "User wants a running-specific training plan",
	IntentMotivation:           "User needs encouragement or is struggling with consistency",
	IntentProgressCheck:        "User asks how their lifts or training are progressing",
	IntentOffTopic:             "Message is unrelated to fitness, training or nutrition",
	IntentGeneralFitness:       "General fitness question that fits no other category",
}

// IsValid reports whether s names a known intent
func IsValid(s string) bool {
	_, ok := intentDescriptions[Intent(s)]
	return ok
}

// IsKnowledgeSeeking reports whether the intent's handler grounds its answer
// in retrieved knowledge (and therefore needs RAG context)
func (i Intent) IsKnowledgeSeeking() bool {
	switch i {
	case IntentExerciseQuestion, IntentFormCheck, IntentExerciseSubstitution,
		IntentNutrition, IntentRecovery, IntentProgramRequest,
		IntentRunningProgram, IntentProgressCheck, IntentGeneralFitness,
		IntentMotivation:
		return true
	}
	return false
}
