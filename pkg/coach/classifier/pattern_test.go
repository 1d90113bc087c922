package classifier

import (
	"testing"
)

func TestPatternClassify(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantConf   float64
	}{
		{name: "bare greeting", message: "hey", wantIntent: IntentGreeting, wantConf: 0.95},
		{name: "greeting with name", message: "good morning coach", wantIntent: IntentGreeting, wantConf: 0.95},
		{name: "wod with clock time", message: "did fran in 3:45", wantIntent: IntentWODLog, wantConf: 0.90},
		{name: "wod with minutes", message: "murph in 42 minutes", wantIntent: IntentWODLog, wantConf: 0.90},
		{name: "wod with rounds", message: "cindy 18 rounds", wantIntent: IntentWODLog, wantConf: 0.90},
		{name: "set with kg", message: "deadlift 100 kg for 10", wantIntent: IntentWorkoutLog, wantConf: 0.85},
		{name: "set without unit", message: "bench 185 for 8", wantIntent: IntentWorkoutLog, wantConf: 0.85},
		{name: "past tense set", message: "squatted 225 for 5 reps", wantIntent: IntentWorkoutLog, wantConf: 0.85},
		{name: "substitution", message: "what can i swap for lunges", wantIntent: IntentExerciseSubstitution, wantConf: 0.90},
		{name: "form question with exercise", message: "what's the proper squat form", wantIntent: IntentExerciseQuestion, wantConf: 0.90},
		{name: "explicit form check", message: "form check on my deadlift", wantIntent: IntentFormCheck, wantConf: 0.90},
		{name: "nutrition noun", message: "how much protein should i get", wantIntent: IntentNutrition, wantConf: 0.85},
		{name: "nutrition eating question", message: "what should i eat before training", wantIntent: IntentNutrition, wantConf: 0.85},
		{name: "recovery", message: "my shoulder hurts after pressing", wantIntent: IntentRecovery, wantConf: 0.85},
		{name: "full program", message: "build me a 12 week strength program", wantIntent: IntentFullProgram, wantConf: 0.75},
		{name: "running program", message: "create a running plan for a 10k", wantIntent: IntentRunningProgram, wantConf: 0.75},
		{name: "daily workout request", message: "what should i train today", wantIntent: IntentProgramRequest, wantConf: 0.85},
	}

	c := NewPatternClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.message, nil)
			if result == nil {
				t.Fatalf("Classify(%q) = nil, want %s", tt.message, tt.wantIntent)
			}
			if result.Intent != tt.wantIntent {
				t.Errorf("Intent = %s, want %s", result.Intent, tt.wantIntent)
			}
			if result.Confidence != tt.wantConf {
				t.Errorf("Confidence = %.2f, want %.2f", result.Confidence, tt.wantConf)
			}
			if !result.UsedPattern {
				t.Errorf("UsedPattern = false, want true")
			}
		})
	}
}

func TestPatternClassifyEscalates(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "empty message", message: ""},
		{name: "unintelligible", message: "asdf qwerty zxcv"},
		{name: "long greeting-prefixed question", message: "hey so i was wondering about periodization for intermediate lifters"},
		{name: "ambiguous statement", message: "i went to the gym yesterday"},
		{name: "wod name inside another word", message: "flying to france tomorrow"},
	}

	c := NewPatternClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := c.Classify(tt.message, nil); result != nil {
				t.Errorf("Classify(%q) = %+v, want nil", tt.message, result)
			}
		})
	}
}

func TestContainsAnyWord(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		wantHit string
		wantOK  bool
	}{
		{name: "bare name", msg: "fran", wantHit: "fran", wantOK: true},
		{name: "name mid sentence", msg: "did fran in 3:45", wantHit: "fran", wantOK: true},
		{name: "punctuation boundary", msg: "fran, finally!", wantHit: "fran", wantOK: true},
		{name: "inside a longer word", msg: "flying to france tomorrow", wantOK: false},
		{name: "suffix of a longer word", msg: "safran is a spice", wantOK: false},
		{name: "multi-word entry", msg: "finished fight gone bad today", wantHit: "fight gone bad", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := containsAnyWord(tt.msg, wodNames)
			if ok != tt.wantOK || hit != tt.wantHit {
				t.Errorf("containsAnyWord(%q) = %q, %v, want %q, %v", tt.msg, hit, ok, tt.wantHit, tt.wantOK)
			}
		})
	}
}

func TestExtractSetData(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		weight   float64
		unit     string
		reps     int
		wantRPE  *float64
		wantSets *int
	}{
		{name: "kg with for", message: "deadlift 100 kg for 10", weight: 100, unit: "kg", reps: 10},
		{name: "no unit defaults lbs", message: "bench 185 for 8", weight: 185, unit: "lbs", reps: 8},
		{name: "explicit lbs", message: "squat 315 lbs for 3", weight: 315, unit: "lbs", reps: 3},
		{name: "x notation with rpe", message: "squat 200x5 rpe 8", weight: 200, unit: "lbs", reps: 5, wantRPE: f64(8)},
		{name: "kilos spelled out", message: "pressed 60 kilos for 6", weight: 60, unit: "kg", reps: 6},
		{name: "decimal weight", message: "ohp 42.5 kg for 5", weight: 42.5, unit: "kg", reps: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := extractSetData(tt.message)
			if data.Weight == nil || *data.Weight != tt.weight {
				t.Errorf("Weight = %v, want %v", data.Weight, tt.weight)
			}
			if data.WeightUnit != tt.unit {
				t.Errorf("WeightUnit = %q, want %q", data.WeightUnit, tt.unit)
			}
			if data.Reps == nil || *data.Reps != tt.reps {
				t.Errorf("Reps = %v, want %v", data.Reps, tt.reps)
			}
			if tt.wantRPE != nil && (data.RPE == nil || *data.RPE != *tt.wantRPE) {
				t.Errorf("RPE = %v, want %v", data.RPE, *tt.wantRPE)
			}
		})
	}
}

func TestWODTimeExtraction(t *testing.T) {
	c := NewPatternClassifier()

	result := c.Classify("did fran in 3:45", nil)
	if result == nil || result.Extracted.WODTime == nil {
		t.Fatal("expected a WOD time for clock notation")
	}
	if *result.Extracted.WODTime != 225 {
		t.Errorf("WODTime = %d, want 225", *result.Extracted.WODTime)
	}
	if result.Extracted.WODName != "fran" {
		t.Errorf("WODName = %q, want %q", result.Extracted.WODName, "fran")
	}

	result = c.Classify("murph in 42 minutes", nil)
	if result == nil || result.Extracted.WODTime == nil {
		t.Fatal("expected a WOD time for minute notation")
	}
	if *result.Extracted.WODTime != 2520 {
		t.Errorf("WODTime = %d, want 2520", *result.Extracted.WODTime)
	}
}

// Off-topic must claim messages that also contain recovery vocabulary; the
// rule order is load-bearing.
func TestOffTopicBeforeRecovery(t *testing.T) {
	c := NewPatternClassifier()

	result := c.Classify("that movie about injury recovery", nil)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Intent != IntentOffTopic {
		t.Errorf("Intent = %s, want %s", result.Intent, IntentOffTopic)
	}
	if result.Confidence != 0.80 {
		t.Errorf("Confidence = %.2f, want 0.80", result.Confidence)
	}
}

func TestEntityExtraction(t *testing.T) {
	c := NewPatternClassifier()

	result := c.Classify("deadlift 100 kg for 10", nil)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Extracted.Exercise != "deadlift" {
		t.Errorf("Exercise = %q, want %q", result.Extracted.Exercise, "deadlift")
	}

	// Longest exercise name must win over its substrings.
	result = c.Classify("romanian deadlift 80 kg for 8", nil)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Extracted.Exercise != "romanian deadlift" {
		t.Errorf("Exercise = %q, want %q", result.Extracted.Exercise, "romanian deadlift")
	}
}

func TestHasSameWeightReferent(t *testing.T) {
	if !HasSameWeightReferent("same weight for 8") {
		t.Error("expected referent for 'same weight'")
	}
	if !HasSameWeightReferent("Another set of 5") {
		t.Error("expected referent for 'another set'")
	}
	if HasSameWeightReferent("bench 185 for 8") {
		t.Error("unexpected referent for explicit weight")
	}
}

func f64(v float64) *float64 { return &v }
