package search

import (
	"context"
	"fmt"
	"log"

	"github.com/typesense/typesense-go/v2/typesense/api"

	"cragstore/internal/models"
)

// DefaultPageSize is how many source records one page scan pulls; each page
// becomes one import chunk.
const DefaultPageSize = 100

// Source is the read side of a sync pass. Implementations return an empty
// slice once the collection is exhausted; ClimbPage returns climbs with the
// owning area's path tokens already joined in.
type Source interface {
	AreaPage(ctx context.Context, page, pageSize int) ([]models.Area, error)
	ClimbPage(ctx context.Context, page, pageSize int) ([]models.ClimbWithPath, error)
}

// Index is the destination side. Drop failures are advisory (the collection
// may simply not exist yet); Create failures are fatal to the run.
type Index interface {
	Drop(ctx context.Context, name string) error
	Create(ctx context.Context, schema *api.CollectionSchema) error
	Import(ctx context.Context, name string, docs []any) error
}

type Options struct {
	Areas    bool
	Climbs   bool
	PageSize int // 0 means DefaultPageSize
}

// Run performs one full resync per selected entity kind, areas first. Each
// pass provisions its own destination collection; there is no coordination
// between the two.
func Run(ctx context.Context, src Source, idx Index, opts Options) error {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if opts.Areas {
		if err := SyncAreas(ctx, src, idx, size); err != nil {
			return err
		}
	}
	if opts.Climbs {
		if err := SyncClimbs(ctx, src, idx, size); err != nil {
			return err
		}
	}
	return nil
}

// SyncAreas rebuilds the areas search collection from scratch: drop, create,
// then page through the source uploading one chunk per page.
func SyncAreas(ctx context.Context, src Source, idx Index, pageSize int) error {
	if err := provision(ctx, idx, areaSchema()); err != nil {
		return err
	}
	total := 0
	for page := 0; ; page++ {
		areas, err := src.AreaPage(ctx, page, pageSize)
		if err != nil {
			return fmt.Errorf("areas page %d: %w", page, err)
		}
		if len(areas) == 0 {
			break
		}
		docs := make([]any, 0, len(areas))
		for _, a := range areas {
			docs = append(docs, AreaToDoc(a))
		}
		uploadChunk(ctx, idx, AreasCollection, page, docs)
		total += len(areas)
	}
	log.Printf(`{"msg":"areas-sync-done","records":%d}`, total)
	return nil
}

// SyncClimbs is the climbs counterpart of SyncAreas.
func SyncClimbs(ctx context.Context, src Source, idx Index, pageSize int) error {
	if err := provision(ctx, idx, climbSchema()); err != nil {
		return err
	}
	total := 0
	for page := 0; ; page++ {
		climbs, err := src.ClimbPage(ctx, page, pageSize)
		if err != nil {
			return fmt.Errorf("climbs page %d: %w", page, err)
		}
		if len(climbs) == 0 {
			break
		}
		docs := make([]any, 0, len(climbs))
		for _, cl := range climbs {
			docs = append(docs, ClimbToDoc(cl))
		}
		uploadChunk(ctx, idx, ClimbsCollection, page, docs)
		total += len(climbs)
	}
	log.Printf(`{"msg":"climbs-sync-done","records":%d}`, total)
	return nil
}

// provision destructively recreates the destination collection so every run
// starts from a clean schema. A failed drop usually just means the collection
// did not exist yet; a failed create must abort the run.
func provision(ctx context.Context, idx Index, schema *api.CollectionSchema) error {
	if err := idx.Drop(ctx, schema.Name); err != nil {
		log.Printf(`{"msg":"drop-skipped","collection":%q,"err":%q}`, schema.Name, err.Error())
	}
	if err := idx.Create(ctx, schema); err != nil {
		return fmt.Errorf("create collection %s: %w", schema.Name, err)
	}
	return nil
}

// uploadChunk is best-effort: a failed chunk is logged and the run moves on
// to the next page. Empty chunks are a no-op.
func uploadChunk(ctx context.Context, idx Index, name string, page int, docs []any) {
	if len(docs) == 0 {
		return
	}
	if err := idx.Import(ctx, name, docs); err != nil {
		log.Printf(`{"msg":"chunk-failed","collection":%q,"page":%d,"err":%q}`, name, page, err.Error())
	}
}
