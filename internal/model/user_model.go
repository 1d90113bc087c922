package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Goal            string     `gorm:"type:varchar(50)"`
	ExperienceLevel string     `gorm:"type:varchar(50)"`
	BodyweightKg    *float64   `gorm:"type:numeric"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
