package main

import (
	"log"
	"os"

	"fitcoach-be/internal/model"
	"fitcoach-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedExercises(db)
	seedBenchmarks(db)
	SeedKnowledge(db)

	log.Println("✅ Success: Seeding completed.")
}

func seedExercises(db *gorm.DB) {
	log.Println("Seeding Exercise Catalog...")

	exercises := []model.Exercise{
		{Name: "back squat", BodyPart: "legs", Equipment: "barbell", Synonyms: pq.StringArray{"squat", "squats"}},
		{Name: "front squat", BodyPart: "legs", Equipment: "barbell"},
		{Name: "deadlift", BodyPart: "back", Equipment: "barbell", Synonyms: pq.StringArray{"deadlifts", "dl"}},
		{Name: "romanian deadlift", BodyPart: "hamstrings", Equipment: "barbell", Synonyms: pq.StringArray{"rdl", "rdls"}},
		{Name: "bench press", BodyPart: "chest", Equipment: "barbell", Synonyms: pq.StringArray{"bench", "flat bench"}},
		{Name: "incline bench press", BodyPart: "chest", Equipment: "barbell", Synonyms: pq.StringArray{"incline bench", "incline"}},
		{Name: "overhead press", BodyPart: "shoulders", Equipment: "barbell", Synonyms: pq.StringArray{"ohp", "shoulder press", "military press"}},
		{Name: "barbell row", BodyPart: "back", Equipment: "barbell", Synonyms: pq.StringArray{"bent over row", "rows"}},
		{Name: "pull-up", BodyPart: "back", Equipment: "bodyweight", Synonyms: pq.StringArray{"pull up", "pullup", "pullups"}},
		{Name: "chin-up", BodyPart: "back", Equipment: "bodyweight", Synonyms: pq.StringArray{"chin up", "chinup"}},
		{Name: "dip", BodyPart: "chest", Equipment: "bodyweight", Synonyms: pq.StringArray{"dips"}},
		{Name: "push-up", BodyPart: "chest", Equipment: "bodyweight", Synonyms: pq.StringArray{"push up", "pushup", "pushups"}},
		{Name: "dumbbell curl", BodyPart: "biceps", Equipment: "dumbbell", Synonyms: pq.StringArray{"curls", "bicep curl", "bicep curls"}},
		{Name: "lateral raise", BodyPart: "shoulders", Equipment: "dumbbell", Synonyms: pq.StringArray{"side raise", "lat raise"}},
		{Name: "leg press", BodyPart: "legs", Equipment: "machine"},
		{Name: "lat pulldown", BodyPart: "back", Equipment: "machine", Synonyms: pq.StringArray{"pulldown", "pulldowns"}},
		{Name: "hip thrust", BodyPart: "glutes", Equipment: "barbell", Synonyms: pq.StringArray{"hip thrusts"}},
		{Name: "lunge", BodyPart: "legs", Equipment: "dumbbell", Synonyms: pq.StringArray{"lunges", "walking lunge"}},
		{Name: "power clean", BodyPart: "full body", Equipment: "barbell", Synonyms: pq.StringArray{"clean", "cleans"}},
		{Name: "snatch", BodyPart: "full body", Equipment: "barbell"},
	}

	for _, ex := range exercises {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&ex).Error
		if err != nil {
			log.Printf("Warn: Failed to seed exercise %q: %v", ex.Name, err)
		}
	}
	log.Printf("Seeded %d exercises", len(exercises))
}

func seedBenchmarks(db *gorm.DB) {
	log.Println("Seeding Benchmark WODs...")

	wods := []model.BenchmarkWOD{
		{Name: "Fran", Description: "21-15-9 reps of thrusters (95/65 lb) and pull-ups", Format: "for_time"},
		{Name: "Grace", Description: "30 clean and jerks (135/95 lb) for time", Format: "for_time"},
		{Name: "Helen", Description: "3 rounds: 400m run, 21 kettlebell swings (53/35 lb), 12 pull-ups", Format: "for_time"},
		{Name: "Diane", Description: "21-15-9 reps of deadlifts (225/155 lb) and handstand push-ups", Format: "for_time"},
		{Name: "Murph", Description: "1 mile run, 100 pull-ups, 200 push-ups, 300 squats, 1 mile run", Format: "for_time"},
		{Name: "Cindy", Description: "AMRAP 20: 5 pull-ups, 10 push-ups, 15 squats", Format: "amrap"},
		{Name: "Annie", Description: "50-40-30-20-10 reps of double-unders and sit-ups", Format: "for_time"},
	}

	for _, wod := range wods {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&wod).Error
		if err != nil {
			log.Printf("Warn: Failed to seed benchmark %q: %v", wod.Name, err)
		}
	}
	log.Printf("Seeded %d benchmark WODs", len(wods))
}
