package contract

import (
	"context"

	"fitcoach-be/internal/entity"
)

// ScoredKnowledgeChunk pairs a chunk with its cosine similarity to a query.
type ScoredKnowledgeChunk struct {
	Chunk      *entity.KnowledgeChunk
	Similarity float64
}

type KnowledgeRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk, embedding []float32) error
	// SearchSimilarWithScore runs a vector search restricted to one partition.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, partition string, limit int) ([]*ScoredKnowledgeChunk, error)
}
