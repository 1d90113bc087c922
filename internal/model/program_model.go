package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Program struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;index;not null"`
	ProgramType string         `gorm:"type:varchar(20);not null"`
	Weeks       int            `gorm:"not null"`
	Structure   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (Program) TableName() string {
	return "programs"
}

type IntakeResponse struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;index;not null"`
	ProgramType string         `gorm:"type:varchar(20);not null"`
	Answers     datatypes.JSON `gorm:"type:jsonb"`
	NextField   string         `gorm:"type:varchar(50)"`
	CompletedAt *time.Time     `gorm:""`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (IntakeResponse) TableName() string {
	return "intake_responses"
}
