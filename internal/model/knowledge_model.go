package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgeChunk struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Partition string          `gorm:"type:varchar(100);index;not null"`
	Title     string          `gorm:"type:varchar(255)"`
	Content   string          `gorm:"type:text;not null"`
	Category  string          `gorm:"type:varchar(100)"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeChunk) TableName() string {
	return "knowledge_chunks"
}
