package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Exercise struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	BodyPart  string         `gorm:"type:varchar(100);index"`
	Equipment string         `gorm:"type:varchar(100)"`
	Synonyms  pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Exercise) TableName() string {
	return "exercises"
}
