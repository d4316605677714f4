package categoryrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetByName retrieves a category by its well-known name.
func (r *GormCategoryRepository) GetByName(
	ctx context.Context,
	name catalog.CategoryName,
) (*catalog.Category, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", name.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every category ordered by priority level.
func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("priority_level").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		category, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}
