// Package search implements knowledge retrieval over the pgvector corpus.
package search

import (
	"context"
	"fmt"
	"log"

	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/embedding"
	"fitcoach-be/pkg/store"
)

// VectorSearchService embeds the query text and runs a cosine similarity
// search against one knowledge partition.
type VectorSearchService struct {
	embedder   embedding.EmbeddingProvider
	uowFactory unitofwork.RepositoryFactory
	logger     *log.Logger
}

func NewVectorSearchService(
	embedder embedding.EmbeddingProvider,
	uowFactory unitofwork.RepositoryFactory,
	logger *log.Logger,
) *VectorSearchService {
	return &VectorSearchService{
		embedder:   embedder,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *VectorSearchService) Search(ctx context.Context, partition, query string, limit int) ([]store.Document, error) {
	embRes, err := s.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeRepository().SearchSimilarWithScore(ctx, embRes.Embedding.Values, partition, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search on %s failed: %w", partition, err)
	}

	s.logger.Printf("[SEARCH] partition=%s hits=%d", partition, len(scored))

	docs := make([]store.Document, len(scored))
	for i, sc := range scored {
		docs[i] = store.Document{
			ID:              sc.Chunk.Id.String(),
			Score:           float32(sc.Similarity),
			Title:           sc.Chunk.Title,
			Content:         sc.Chunk.Content,
			SourcePartition: partition,
		}
	}
	return docs, nil
}
