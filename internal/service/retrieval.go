package service

import (
	"context"
	"strings"

	"fortitwin/internal/repository"
)

const (
	retrievalTopK      = 3
	retrievalChunkSize = 1200
)

// Retriever looks up free-text background material for a role/company query.
// An empty result is fine; the engine simply omits the context line.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (string, error)
}

// NoopRetriever is used when no document backend is configured
type NoopRetriever struct{}

func (NoopRetriever) Retrieve(ctx context.Context, query string) (string, error) {
	return "", nil
}

// DocumentRetriever serves retrieval context from the document repository
type DocumentRetriever struct {
	docs repository.DocumentRepo
}

func NewDocumentRetriever(docs repository.DocumentRepo) *DocumentRetriever {
	return &DocumentRetriever{docs: docs}
}

// Retrieve returns the top matching documents, each clipped to 1200 bytes,
// joined with a --- divider
func (r *DocumentRetriever) Retrieve(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", nil
	}

	docs, err := r.docs.Search(ctx, query, retrievalTopK)
	if err != nil {
		return "", err
	}

	chunks := make([]string, 0, len(docs))
	for _, doc := range docs {
		body := doc.Body
		if len(body) > retrievalChunkSize {
			body = body[:retrievalChunkSize]
		}
		chunks = append(chunks, body)
	}
	return strings.Join(chunks, "\n\n---\n\n"), nil
}
