package ports

import (
	"context"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// AreaCache memoises area query results for identical viewport corners.
// A failing cache must never fail the query; callers treat errors as misses.
type AreaCache interface {
	Get(ctx context.Context, topRight, bottomLeft string) ([]domain.Cat, bool, error)
	Set(ctx context.Context, topRight, bottomLeft string, cats []domain.Cat) error
}
