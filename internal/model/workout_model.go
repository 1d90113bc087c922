package model

import (
	"time"

	"github.com/google/uuid"
)

type Workout struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID  `gorm:"type:uuid;index;not null"`
	Title       string     `gorm:"type:varchar(255)"`
	StartedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time `gorm:""`
}

func (Workout) TableName() string {
	return "workouts"
}

type LoggedSet struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;index;not null"`
	WorkoutId     uuid.UUID `gorm:"type:uuid;index;not null"`
	ExerciseId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Weight        *float64  `gorm:"type:numeric"`
	WeightUnit    string    `gorm:"type:varchar(10)"`
	Reps          int       `gorm:"not null"`
	RPE           *float64  `gorm:"column:rpe;type:numeric"`
	SetNumber     int       `gorm:"not null"`
	Estimated1RM  *float64  `gorm:"column:estimated_1rm;type:numeric"`
	IsPR          bool      `gorm:"column:is_pr;default:false"`
	LoggingMethod string    `gorm:"type:varchar(20)"`
	RawTranscript string    `gorm:"type:text"`
	Confidence    float64   `gorm:"type:numeric"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (LoggedSet) TableName() string {
	return "logged_sets"
}
