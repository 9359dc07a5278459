package core

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"wacs.com.ng/support-chatbot/internal/store"
	"wacs.com.ng/support-chatbot/internal/utils"
)

const (
	// NumRelevantFAQs is how many records a chat turn retrieves for context.
	NumRelevantFAQs = 3
	// NumSearchFAQs is how many records the direct search endpoint returns.
	NumSearchFAQs = 5
)

type indexedFAQ struct {
	ID        string
	Embedding []float32
	Record    store.FAQ
}

// Retriever holds the embedded FAQ catalog in memory. The index is built
// once at construction and is read-only afterwards, so concurrent queries
// need no synchronization.
type Retriever struct {
	embedder Embedder
	index    []indexedFAQ
}

// NewRetriever embeds every catalog record and builds the in-memory index.
// When a cache is provided, vectors for unchanged documents are reused
// instead of re-calling the embedding API; cache write failures are logged
// and ignored. An embedding failure for an uncached record aborts startup.
func NewRetriever(ctx context.Context, embedder Embedder, cache *store.EmbeddingCache) (*Retriever, error) {
	index := make([]indexedFAQ, 0, len(faqCatalog))

	for _, record := range faqCatalog {
		document := fmt.Sprintf("Question: %s\nAnswer: %s", record.Question, record.Answer)

		var embedding []float32
		if cache != nil {
			cached, found, err := cache.Get(document)
			if err != nil {
				log.Printf("Embedding cache lookup failed, falling through to the API: %v", err)
			} else if found {
				embedding = cached
			}
		}

		if embedding == nil {
			fresh, err := embedder.Embed(ctx, document)
			if err != nil {
				return nil, fmt.Errorf("failed to embed FAQ %q: %w", record.Question, err)
			}
			embedding = fresh
			if cache != nil {
				if err := cache.Put(document, embedding); err != nil {
					log.Printf("Failed to cache embedding for %q: %v", record.Question, err)
				}
			}
		}

		index = append(index, indexedFAQ{
			ID:        uuid.NewString(),
			Embedding: embedding,
			Record:    record,
		})
	}

	log.Printf("FAQ index built with %d records", len(index))
	return &Retriever{embedder: embedder, index: index}, nil
}

type scoredFAQ struct {
	faq        indexedFAQ
	similarity float32
}

// Retrieve returns the k catalog records nearest the query by cosine
// similarity, most relevant first. It never fails its caller: any internal
// fault is logged and an empty result returned, and the conversation
// continues without context.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) []store.FAQ {
	queryEmbedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		log.Printf("Failed to embed query, returning no FAQ context: %v", err)
		return nil
	}

	scored := make([]scoredFAQ, 0, len(r.index))
	for _, entry := range r.index {
		similarity, err := utils.CosineSimilarity(queryEmbedding, entry.Embedding)
		if err != nil {
			log.Printf("Error scoring FAQ %s against query: %v. Skipping.", entry.ID, err)
			continue
		}
		scored = append(scored, scoredFAQ{faq: entry, similarity: similarity})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]store.FAQ, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, scored[i].faq.Record)
	}
	return results
}
