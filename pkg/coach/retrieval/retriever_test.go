package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"fitcoach-be/pkg/cache"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/store"
)

// fakeSearch returns canned documents per partition and records the queries
// it receives. Partitions listed in failing return an error.
type fakeSearch struct {
	docs    map[string][]store.Document
	failing map[string]bool
	calls   []string
}

func (f *fakeSearch) Search(ctx context.Context, partition, query string, limit int) ([]store.Document, error) {
	f.calls = append(f.calls, partition)
	if f.failing[partition] {
		return nil, errors.New("partition unavailable")
	}
	return f.docs[partition], nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func doc(id string, score float32, partition string) store.Document {
	return store.Document{
		ID:              id,
		Score:           score,
		Title:           "T-" + id,
		Content:         "Content for " + id + ".",
		SourcePartition: partition,
	}
}

func TestMergeByMaxScore(t *testing.T) {
	merged := mergeByMaxScore([][]store.Document{
		{doc("a", 0.70, "exercise_technique"), doc("b", 0.60, "exercise_technique")},
		{doc("a", 0.90, "programming"), doc("c", 0.80, "programming")},
	})

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].ID != "a" || merged[0].Score != 0.90 {
		t.Errorf("merged[0] = %s/%.2f, want a/0.90 (highest copy wins)", merged[0].ID, merged[0].Score)
	}
	if merged[0].SourcePartition != "programming" {
		t.Errorf("winning copy partition = %q, want %q", merged[0].SourcePartition, "programming")
	}
	if merged[1].ID != "c" || merged[2].ID != "b" {
		t.Errorf("order = [%s %s %s], want [a c b]", merged[0].ID, merged[1].ID, merged[2].ID)
	}
}

func TestMergeByMaxScoreTieBreaksFirstSeen(t *testing.T) {
	merged := mergeByMaxScore([][]store.Document{
		{doc("first", 0.80, "recovery")},
		{doc("second", 0.80, "exercise_technique")},
	})

	if merged[0].ID != "first" || merged[1].ID != "second" {
		t.Errorf("tie order = [%s %s], want [first second]", merged[0].ID, merged[1].ID)
	}
}

func TestMergeByMaxScoreCapsAtTop(t *testing.T) {
	merged := mergeByMaxScore([][]store.Document{
		{
			doc("a", 0.9, "programming"),
			doc("b", 0.8, "programming"),
			doc("c", 0.7, "programming"),
			doc("d", 0.6, "programming"),
			doc("e", 0.5, "programming"),
		},
	})

	if len(merged) != topDocuments {
		t.Fatalf("len(merged) = %d, want %d", len(merged), topDocuments)
	}
	if merged[topDocuments-1].ID != "c" {
		t.Errorf("lowest kept doc = %s, want c", merged[topDocuments-1].ID)
	}
}

func TestRetrieverGetContext(t *testing.T) {
	search := &fakeSearch{
		docs: map[string][]store.Document{
			PartitionNutrition: {doc("n1", 0.85, PartitionNutrition)},
			PartitionGeneral:   {doc("g1", 0.40, PartitionGeneral)},
		},
	}
	r := NewRetriever(search, cache.NewMemoryCache(), discardLogger())

	ctx := context.Background()
	block := r.GetContext(ctx, "how much protein should i get", classifier.IntentNutrition, classifier.ExtractedData{})
	if !strings.Contains(block, "Content for n1.") {
		t.Errorf("block missing nutrition doc: %q", block)
	}
	if !strings.Contains(block, "Content for g1.") {
		t.Errorf("block missing general doc: %q", block)
	}
	if len(search.calls) != 2 {
		t.Errorf("partitions queried = %d, want 2", len(search.calls))
	}

	// Second identical turn is served from cache without touching search.
	again := r.GetContext(ctx, "how much protein should i get", classifier.IntentNutrition, classifier.ExtractedData{})
	if again != block {
		t.Errorf("cached block = %q, want %q", again, block)
	}
	if len(search.calls) != 2 {
		t.Errorf("partitions queried after cache hit = %d, want 2", len(search.calls))
	}
}

func TestRetrieverPartitionFailureIsolation(t *testing.T) {
	search := &fakeSearch{
		docs: map[string][]store.Document{
			PartitionGeneral: {doc("g1", 0.55, PartitionGeneral)},
		},
		failing: map[string]bool{PartitionNutrition: true},
	}
	r := NewRetriever(search, cache.NewMemoryCache(), discardLogger())

	block := r.GetContext(context.Background(), "how much protein should i get", classifier.IntentNutrition, classifier.ExtractedData{})
	if !strings.Contains(block, "Content for g1.") {
		t.Errorf("healthy partition missing from block: %q", block)
	}
}

func TestRetrieverEmptyResultsNotCached(t *testing.T) {
	search := &fakeSearch{}
	mem := cache.NewMemoryCache()
	r := NewRetriever(search, mem, discardLogger())

	block := r.GetContext(context.Background(), "hello there", classifier.IntentGreeting, classifier.ExtractedData{})
	if block != "" {
		t.Errorf("block = %q, want empty", block)
	}
	if _, hit := mem.Get(context.Background(), "rag:greeting:hello there"); hit {
		t.Error("empty retrieval must not be cached")
	}
}

func TestRetrieverCacheKey(t *testing.T) {
	search := &fakeSearch{
		docs: map[string][]store.Document{
			PartitionGeneral: {doc("g1", 0.50, PartitionGeneral)},
		},
	}
	mem := cache.NewMemoryCache()
	r := NewRetriever(search, mem, discardLogger())

	ctx := context.Background()
	mem.Set(ctx, "rag:nutrition:protein intake diet", "PRIMED", time.Minute)

	block := r.GetContext(ctx, "how much protein should i get", classifier.IntentNutrition, classifier.ExtractedData{})
	if block != "PRIMED" {
		t.Errorf("block = %q, want the primed cache entry", block)
	}

	r.InvalidateQuery(ctx, classifier.IntentNutrition, "protein intake diet")
	if _, hit := mem.Get(ctx, "rag:nutrition:protein intake diet"); hit {
		t.Error("InvalidateQuery left the entry behind")
	}
}

func TestFormatDocuments(t *testing.T) {
	block := FormatDocuments([]store.Document{
		{ID: "a", Title: "Squat Depth", Content: "Break parallel.", SourcePartition: "squat_technique"},
		{ID: "b", Content: "Eat enough protein.", SourcePartition: "nutrition"},
	})

	if !strings.Contains(block, "[Source 1: squat_technique - Squat Depth]") {
		t.Errorf("missing titled header: %q", block)
	}
	if !strings.Contains(block, "[Source 2: nutrition]") {
		t.Errorf("missing untitled header: %q", block)
	}
	if !strings.Contains(block, "Break parallel.") || !strings.Contains(block, "Eat enough protein.") {
		t.Errorf("missing content: %q", block)
	}
}

func TestTruncateAtSentence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{name: "under limit untouched", text: "Short note.", limit: 50, want: "Short note."},
		{name: "cuts at sentence boundary", text: "First sentence here. Second sentence runs long past the cap.", limit: 30, want: "First sentence here."},
		{name: "hard cut with ellipsis", text: strings.Repeat("x", 80), limit: 20, want: strings.Repeat("x", 20) + "..."},
		{name: "hard cut backs off to rune boundary", text: strings.Repeat("é", 40), limit: 19, want: strings.Repeat("é", 9) + "..."},
		{name: "limit already on rune boundary", text: strings.Repeat("é", 40), limit: 20, want: strings.Repeat("é", 10) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateAtSentence(tt.text, tt.limit); got != tt.want {
				t.Errorf("truncateAtSentence() = %q, want %q", got, tt.want)
			}
		})
	}
}
