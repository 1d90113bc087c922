package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one indexed piece of the coaching knowledge corpus,
// scoped to a named partition
type KnowledgeChunk struct {
	Id        uuid.UUID
	Partition string
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
}
