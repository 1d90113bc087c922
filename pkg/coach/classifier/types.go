package classifier

// ExtractedData carries the fields a classifier pulled out of the message.
// Every field is independently optional; presence of one implies nothing
// about the others.
type ExtractedData struct {
	Exercise   string   `json:"exercise,omitempty"`
	BodyPart   string   `json:"body_part,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	WeightUnit string   `json:"weight_unit,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
	Sets       *int     `json:"sets,omitempty"`
	RPE        *float64 `json:"rpe,omitempty"`
	WODName    string   `json:"wod_name,omitempty"`
	WODTime    *int     `json:"wod_time,omitempty"` // elapsed seconds
	WODRounds  *int     `json:"wod_rounds,omitempty"`
	WODReps    *int     `json:"wod_reps,omitempty"`
}

// ClassificationResult is the shape both classifiers produce so the router
// stays classifier-agnostic. Confidence is tied to the matching rule, not
// learned.
type ClassificationResult struct {
	Intent      Intent        `json:"intent"`
	Confidence  float64       `json:"confidence"`
	Extracted   ExtractedData `json:"extracted_data"`
	UsedPattern bool          `json:"used_pattern"`
}

// MessageContext is the optional session context accompanying a message
type MessageContext struct {
	UserName          string
	ActiveWorkoutID   string
	CurrentExercise   string
	CurrentExerciseID string
	LastWeight        *float64
	LastWeightUnit    string
}

// EscalationThreshold is the confidence below which a pattern match is not
// trusted and the fallback classifier runs. It exists to keep the slow LLM
// path rare.
const EscalationThreshold = 0.75
