package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

// Store is the Typesense-backed destination index.
type Store struct {
	ts *typesense.Client
}

func NewStore(host, apiKey string) *Store {
	return &Store{ts: typesense.NewClient(
		typesense.WithServer(host),
		typesense.WithAPIKey(apiKey),
		typesense.WithConnectionTimeout(10*time.Second),
		typesense.WithCircuitBreakerMaxRequests(50),
		typesense.WithCircuitBreakerInterval(2*time.Minute),
		typesense.WithCircuitBreakerTimeout(1*time.Minute),
	)}
}

func (s *Store) Drop(ctx context.Context, name string) error {
	_, err := s.ts.Collection(name).Delete(ctx)
	return err
}

func (s *Store) Create(ctx context.Context, schema *api.CollectionSchema) error {
	_, err := s.ts.Collections().Create(ctx, schema)
	return err
}

// Import pushes one chunk as a single bulk write. A per-document rejection
// inside an otherwise accepted bulk write is surfaced as an error so the
// caller can log the chunk as failed.
func (s *Store) Import(ctx context.Context, name string, docs []any) error {
	params := &api.ImportDocumentsParams{
		Action:    pointer.String("create"),
		BatchSize: pointer.Int(len(docs)),
	}
	resps, err := s.ts.Collection(name).Documents().Import(ctx, docs, params)
	if err != nil {
		return err
	}
	for _, r := range resps {
		if !r.Success {
			return fmt.Errorf("document rejected: %s", r.Error)
		}
	}
	return nil
}
