package retrieval

import (
	"strings"
	"testing"

	"fitcoach-be/pkg/coach/classifier"
)

func TestBuildOptimizedQuery(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  classifier.Intent
		data    classifier.ExtractedData
		want    string
	}{
		{
			name:   "form question with exercise",
			intent: classifier.IntentFormCheck,
			data:   classifier.ExtractedData{Exercise: "deadlift"},
			want:   "deadlift technique form cues",
		},
		{
			name:   "form question without entity",
			intent: classifier.IntentExerciseQuestion,
			want:   "technique form cues",
		},
		{
			name:   "substitution",
			intent: classifier.IntentExerciseSubstitution,
			data:   classifier.ExtractedData{Exercise: "leg press"},
			want:   "leg press alternative variation substitute",
		},
		{
			name:    "protein nutrition",
			message: "how much protein do I need",
			intent:  classifier.IntentNutrition,
			want:    "protein intake diet",
		},
		{
			name:   "recovery with body part",
			intent: classifier.IntentRecovery,
			data:   classifier.ExtractedData{BodyPart: "shoulders"},
			want:   "shoulders recovery injury rest",
		},
		{
			name:   "running program",
			intent: classifier.IntentRunningProgram,
			want:   "running endurance training plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildOptimizedQuery(tt.message, tt.intent, tt.data)
			if got != tt.want {
				t.Errorf("BuildOptimizedQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildOptimizedQueryRawFallback(t *testing.T) {
	got := BuildOptimizedQuery("What's a good warm-up, Coach?!", classifier.IntentGeneralFitness, classifier.ExtractedData{})
	if got != "whats a good warmup coach" {
		t.Errorf("raw fallback = %q, want %q", got, "whats a good warmup coach")
	}

	long := strings.Repeat("blah ", 40)
	got = BuildOptimizedQuery(long, classifier.IntentGeneralFitness, classifier.ExtractedData{})
	if len(got) > rawQueryMaxLength {
		t.Errorf("raw fallback length = %d, want <= %d", len(got), rawQueryMaxLength)
	}
}

func TestBuildOptimizedQueryTermCap(t *testing.T) {
	// Nutrition with every trigger phrase present expands past the cap.
	msg := "protein before training and after training"
	got := BuildOptimizedQuery(msg, classifier.IntentNutrition, classifier.ExtractedData{})
	if n := len(strings.Fields(got)); n > maxQueryTerms {
		t.Errorf("term count = %d, want <= %d", n, maxQueryTerms)
	}
}

func TestSelectIndexes(t *testing.T) {
	tests := []struct {
		name   string
		intent classifier.Intent
		data   classifier.ExtractedData
		want   []string
	}{
		{
			name:   "form check",
			intent: classifier.IntentFormCheck,
			want:   []string{PartitionExerciseTechnique, PartitionGeneral},
		},
		{
			name:   "squat refinement comes first",
			intent: classifier.IntentFormCheck,
			data:   classifier.ExtractedData{Exercise: "back squat"},
			want:   []string{PartitionSquatTechnique, PartitionExerciseTechnique, PartitionGeneral},
		},
		{
			name:   "squat refinement capped at three",
			intent: classifier.IntentExerciseQuestion,
			data:   classifier.ExtractedData{Exercise: "squat"},
			want:   []string{PartitionSquatTechnique, PartitionExerciseTechnique, PartitionProgramming},
		},
		{
			name:   "unmapped intent gets general only",
			intent: classifier.IntentGreeting,
			want:   []string{PartitionGeneral},
		},
		{
			name:   "motivation dedups general",
			intent: classifier.IntentMotivation,
			want:   []string{PartitionGeneral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectIndexes(tt.intent, tt.data)
			if len(got) != len(tt.want) {
				t.Fatalf("SelectIndexes() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
