package main

import (
	"context"
	"log"

	"fitcoach-be/internal/config"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/embedding"

	"gorm.io/gorm"
)

type knowledgeSeed struct {
	Partition string
	Title     string
	Category  string
	Content   string
}

var knowledgeSeeds = []knowledgeSeed{
	{
		Partition: "squat_technique",
		Title:     "Back squat depth and bracing",
		Category:  "technique",
		Content:   "Set the bar on the upper traps, brace before descending, and squat until the hip crease passes below the knee. Knees track over the toes; weight stays mid-foot. Common faults are heels rising, knees caving in, and losing the brace at the bottom.",
	},
	{
		Partition: "exercise_technique",
		Title:     "Deadlift setup",
		Category:  "technique",
		Content:   "Stand with the bar over mid-foot, hinge to grip just outside the shins, flatten the back, and push the floor away. The bar stays in contact with the legs the whole pull. Rounding under load is the main injury risk.",
	},
	{
		Partition: "exercise_technique",
		Title:     "Bench press execution",
		Category:  "technique",
		Content:   "Retract the shoulder blades, keep feet planted, lower the bar to the lower chest with forearms vertical, and press back toward the rack. Flaring the elbows to 90 degrees strains the shoulder.",
	},
	{
		Partition: "nutrition",
		Title:     "Protein intake for strength athletes",
		Category:  "nutrition",
		Content:   "1.6 to 2.2 grams of protein per kilogram of bodyweight per day supports muscle growth for most lifters. Spread intake across 3-5 meals. Going beyond 2.2 g/kg has not shown additional hypertrophy benefit in controlled studies.",
	},
	{
		Partition: "nutrition",
		Title:     "Eating around training",
		Category:  "nutrition",
		Content:   "A mixed meal with carbohydrate and protein 1-3 hours before training improves session quality. Post-workout, total daily intake matters more than timing, but 20-40 g of protein within a few hours is a reasonable habit.",
	},
	{
		Partition: "recovery",
		Title:     "Sleep and training adaptation",
		Category:  "recovery",
		Content:   "7-9 hours of sleep is the single biggest recovery lever. Chronic short sleep reduces strength gains, raises injury rates, and blunts appetite regulation. Deload weeks every 4-8 weeks of hard training help resolve accumulated fatigue.",
	},
	{
		Partition: "recovery",
		Title:     "Managing muscle soreness",
		Category:  "recovery",
		Content:   "Delayed onset muscle soreness peaks 24-72 hours after novel or eccentric-heavy work. Light movement, adequate protein, and sleep help; soreness is not required for growth and severe soreness suggests ramping volume too fast.",
	},
	{
		Partition: "programming",
		Title:     "Progressive overload basics",
		Category:  "programming",
		Content:   "Progress load, reps, or sets gradually week over week. Beginners can add weight most sessions; intermediates progress weekly; advanced lifters periodize over months. If all three stall for multiple weeks, reduce volume and rebuild.",
	},
	{
		Partition: "programming",
		Title:     "Weekly volume guidelines",
		Category:  "programming",
		Content:   "10-20 hard sets per muscle group per week is the productive range for most. Start at the low end, add sets only when progress stalls, and distribute volume across 2+ sessions per muscle per week.",
	},
	{
		Partition: "crossfit_benchmarks",
		Title:     "Benchmark WOD pacing",
		Category:  "conditioning",
		Content:   "Named benchmarks like Fran and Helen are repeatable fitness tests. Pace the first round at 80 percent so the later rounds don't collapse. Log times under consistent standards or the comparisons are meaningless.",
	},
	{
		Partition: "running",
		Title:     "Easy/hard running distribution",
		Category:  "running",
		Content:   "Roughly 80 percent of weekly mileage should be easy conversational pace, 20 percent at higher intensity. Raise weekly mileage no more than about 10 percent per week and hold a week steady after every third increase.",
	},
	{
		Partition: "fitness_general",
		Title:     "Warming up",
		Category:  "general",
		Content:   "A useful warm-up raises heart rate for 3-5 minutes, moves the joints you are about to load, and ramps to working weight in 3-5 progressively heavier sets. Long static stretching before lifting reduces force output.",
	},
}

// SeedKnowledge embeds and stores the starter knowledge corpus. It needs the
// embedding provider configured, so it reads the same env config as the server.
func SeedKnowledge(db *gorm.DB) {
	log.Println("Seeding Knowledge Corpus...")

	cfg := config.Load()

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	seeded := 0
	for _, seed := range knowledgeSeeds {
		res, err := provider.Generate(seed.Content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("Warn: Failed to embed %q: %v", seed.Title, err)
			continue
		}

		chunk := &entity.KnowledgeChunk{
			Partition: seed.Partition,
			Title:     seed.Title,
			Content:   seed.Content,
			Category:  seed.Category,
		}
		if err := uow.KnowledgeRepository().Create(ctx, chunk, res.Embedding.Values); err != nil {
			log.Printf("Warn: Failed to store %q: %v", seed.Title, err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d knowledge chunks", seeded)
}
