package retrieval

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"fitcoach-be/pkg/cache"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/store"
)

// SearchService is the external search collaborator: partition name plus
// query text in, scored documents out. It must be safe to invoke
// concurrently across distinct partitions.
type SearchService interface {
	Search(ctx context.Context, partition, query string, limit int) ([]store.Document, error)
}

const (
	// perPartitionLimit is intentionally wider than topDocuments so the
	// merge step has material to rank
	perPartitionLimit = 5
	topDocuments      = 3

	cacheTTL = 600 * time.Second
)

// Retriever fans out across knowledge partitions, merges by document id
// (highest score wins), and caches the formatted block. Cached blocks may be
// stale within the TTL window.
type Retriever struct {
	search SearchService
	cache  cache.Service
	logger *log.Logger
}

func NewRetriever(search SearchService, cacheService cache.Service, logger *log.Logger) *Retriever {
	return &Retriever{
		search: search,
		cache:  cacheService,
		logger: logger,
	}
}

// GetContext returns the formatted knowledge block for a classified message.
// A single bad partition never fails the whole retrieval; its results are
// simply empty.
func (r *Retriever) GetContext(
	ctx context.Context,
	message string,
	intent classifier.Intent,
	data classifier.ExtractedData,
) string {

	query := BuildOptimizedQuery(message, intent, data)
	indexes := SelectIndexes(intent, data)

	key := fmt.Sprintf("rag:%s:%s", intent, query)
	if cached, hit := r.cache.Get(ctx, key); hit {
		r.logger.Printf("[RETRIEVAL] Cache hit for %s", key)
		return cached
	}

	merged := r.fanOut(ctx, indexes, query)
	if len(merged) == 0 {
		return ""
	}

	block := FormatDocuments(merged)
	r.cache.Set(ctx, key, block, cacheTTL)
	return block
}

// fanOut queries every partition concurrently and merges the results
func (r *Retriever) fanOut(ctx context.Context, partitions []string, query string) []store.Document {
	type partitionResult struct {
		order int
		docs  []store.Document
	}

	results := make([]partitionResult, 0, len(partitions))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, partition := range partitions {
		wg.Add(1)
		go func(order int, partition string) {
			defer wg.Done()

			docs, err := r.search.Search(ctx, partition, query, perPartitionLimit)
			if err != nil {
				// Failure isolation: a hung or broken partition must not
				// abort the turn
				r.logger.Printf("[RETRIEVAL] Partition %s failed: %v", partition, err)
				return
			}

			mu.Lock()
			results = append(results, partitionResult{order: order, docs: docs})
			mu.Unlock()
		}(i, partition)
	}
	wg.Wait()

	// Deterministic merge: iterate in selection order so ties break
	// first-seen regardless of goroutine completion order
	sort.Slice(results, func(i, j int) bool { return results[i].order < results[j].order })

	ordered := make([][]store.Document, 0, len(results))
	for _, res := range results {
		ordered = append(ordered, res.docs)
	}
	return mergeByMaxScore(ordered)
}

func mergeByMaxScore(results [][]store.Document) []store.Document {
	byID := make(map[string]int)
	var merged []store.Document

	for _, docs := range results {
		for _, doc := range docs {
			idx, seen := byID[doc.ID]
			if !seen {
				byID[doc.ID] = len(merged)
				merged = append(merged, doc)
				continue
			}
			// Same id in multiple partitions: highest score wins, the
			// losing copy is discarded (no averaging)
			if doc.Score > merged[idx].Score {
				merged[idx] = doc
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })

	if len(merged) > topDocuments {
		merged = merged[:topDocuments]
	}
	return merged
}

// InvalidateQuery drops a cached block, forcing fresh retrieval on the next
// turn
func (r *Retriever) InvalidateQuery(ctx context.Context, intent classifier.Intent, query string) {
	r.cache.Delete(ctx, fmt.Sprintf("rag:%s:%s", intent, query))
}
