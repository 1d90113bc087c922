package model

import (
	"time"

	"github.com/google/uuid"
)

type BenchmarkWOD struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Format      string    `gorm:"type:varchar(20)"`
}

func (BenchmarkWOD) TableName() string {
	return "benchmark_wods"
}

type BenchmarkResult struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID `gorm:"type:uuid;index;not null"`
	BenchmarkId         uuid.UUID `gorm:"type:uuid;index;not null"`
	TimeSeconds         int       `gorm:"not null"`
	Rounds              *int      `gorm:""`
	IsPB                bool      `gorm:"column:is_pb;default:false"`
	PreviousBestSeconds *int      `gorm:""`
	RawTranscript       string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (BenchmarkResult) TableName() string {
	return "benchmark_results"
}
