package constant

const (
	ChatTurnRoleUser  = "user"
	ChatTurnRoleCoach = "coach"

	LoggingMethodChat  = "chat"
	LoggingMethodVoice = "voice"

	ProgramTypeStrength = "strength"
	ProgramTypeRunning  = "running"
)

// ProgramGenerationPrompt is filled with the program type and the intake
// answers JSON. The generator must answer with bare JSON; the consumer
// tolerates fences but nothing else.
const ProgramGenerationPrompt = `You are a strength and conditioning coach writing a structured training program.

Program type: %s
Athlete intake answers (JSON): %s

Design a realistic multi-week program that respects the athlete's answers.
Respond with ONLY valid JSON, no prose, in exactly this shape:
{
  "weeks": 8,
  "days_per_week": 3,
  "schedule": [
    {
      "week": 1,
      "days": [
        {
          "day": "Monday",
          "focus": "lower body",
          "items": [
            {"exercise": "back squat", "sets": 3, "reps": "5", "intensity": "70%%"}
          ]
        }
      ]
    }
  ]
}
Progressively overload across weeks. Include every week in "schedule".`
