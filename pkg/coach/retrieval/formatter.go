package retrieval

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fitcoach-be/pkg/store"
)

// maxDocumentChars bounds each document's contribution to the prompt
const maxDocumentChars = 500

// FormatDocuments renders retrieved documents as labeled blocks for prompt
// injection.
func FormatDocuments(docs []store.Document) string {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		category := doc.SourcePartition
		if doc.Title != "" {
			category = fmt.Sprintf("%s - %s", doc.SourcePartition, doc.Title)
		}
		b.WriteString(fmt.Sprintf("[Source %d: %s]\n", i+1, category))
		b.WriteString(truncateAtSentence(doc.Content, maxDocumentChars))
	}
	return b.String()
}

// truncateAtSentence cuts text at the nearest preceding sentence boundary
// when one exists in the back half of the window, else hard-cuts with an
// ellipsis.
func truncateAtSentence(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	// Back the window off to a rune boundary so the hard cut never splits a
	// multi-byte character.
	end := limit
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}

	window := text[:end]
	cut := strings.LastIndexAny(window, ".!?")
	if cut >= limit/2 {
		return window[:cut+1]
	}
	return window + "..."
}
