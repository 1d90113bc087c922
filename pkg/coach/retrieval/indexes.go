package retrieval

import (
	"strings"

	"fitcoach-be/pkg/coach/classifier"
)

// Knowledge partitions. Each is queried independently by the search service.
const (
	PartitionExerciseTechnique  = "exercise_technique"
	PartitionSquatTechnique     = "squat_technique"
	PartitionNutrition          = "nutrition"
	PartitionRecovery           = "recovery"
	PartitionProgramming        = "programming"
	PartitionCrossfitBenchmarks = "crossfit_benchmarks"
	PartitionRunning            = "running"
	PartitionGeneral            = "fitness_general"
)

// maxIndexes caps fan-out width; a deliberate latency/recall tradeoff
const maxIndexes = 3

var intentPartitions = map[classifier.Intent][]string{
	classifier.IntentExerciseQuestion:     {PartitionExerciseTechnique, PartitionProgramming},
	classifier.IntentFormCheck:            {PartitionExerciseTechnique},
	classifier.IntentExerciseSubstitution: {PartitionExerciseTechnique, PartitionProgramming},
	classifier.IntentNutrition:            {PartitionNutrition},
	classifier.IntentRecovery:             {PartitionRecovery, PartitionExerciseTechnique},
	classifier.IntentProgramRequest:       {PartitionProgramming},
	classifier.IntentFullProgram:          {PartitionProgramming},
	classifier.IntentRunningProgram:       {PartitionRunning, PartitionProgramming},
	classifier.IntentWODLog:               {PartitionCrossfitBenchmarks},
	classifier.IntentProgressCheck:        {PartitionProgramming},
	classifier.IntentMotivation:           {PartitionGeneral},
}

// SelectIndexes returns the ordered, deduplicated, capped partition list for
// a classified message. The general partition is always appended as a
// fallback before dedup/truncation.
func SelectIndexes(intent classifier.Intent, data classifier.ExtractedData) []string {
	partitions := append([]string{}, intentPartitions[intent]...)

	// Entity refinement: squat-family questions get the dedicated partition
	if (intent == classifier.IntentExerciseQuestion || intent == classifier.IntentFormCheck) &&
		strings.Contains(strings.ToLower(data.Exercise), "squat") {
		partitions = append([]string{PartitionSquatTechnique}, partitions...)
	}

	partitions = append(partitions, PartitionGeneral)

	seen := make(map[string]bool, len(partitions))
	unique := make([]string, 0, len(partitions))
	for _, p := range partitions {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}

	if len(unique) > maxIndexes {
		unique = unique[:maxIndexes]
	}
	return unique
}
