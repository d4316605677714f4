package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

// CategoryRepository defines the read contract for storage categories.
// Categories are seeded reference data; nothing writes them at runtime.
type CategoryRepository interface {
	// GetByName retrieves a category by its well-known name.
	// Returns ObjectNotFoundError when the catalog was not seeded.
	GetByName(ctx context.Context, name catalog.CategoryName) (*catalog.Category, error)

	// GetAll retrieves every category ordered by priority level.
	GetAll(ctx context.Context) ([]*catalog.Category, error)
}
