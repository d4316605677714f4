package catalog

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// GridConfig describes the storage grid provisioned for each category:
// Aisles aisles per zone, Shelves shelves per aisle.
type GridConfig struct {
	Aisles  int
	Shelves int
}

// DefaultGridConfig returns the deployment default of 5 aisles with 4 shelves
// each, i.e. 20 locations per category.
func DefaultGridConfig() GridConfig {
	return GridConfig{Aisles: 5, Shelves: 4}
}

// Validate checks that the grid has at least one slot per category.
func (g GridConfig) Validate() error {
	if g.Aisles < 1 {
		return errs.NewValueIsInvalidErrorWithCause("aisles",
			fmt.Errorf("%d is not greater than 0", g.Aisles))
	}
	if g.Shelves < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shelves",
			fmt.Errorf("%d is not greater than 0", g.Shelves))
	}
	return nil
}

// CategoriesSeed returns the fixed category reference data in seed order.
// The function is pure and deterministic: identities are derived from the
// category names, so repeated seeding resolves to the same rows.
func CategoriesSeed() []*Category {
	specs := []struct {
		name          CategoryName
		description   string
		zone          string
		maxWeight     float64
		priorityLevel int
	}{
		{Standard, "Regular packages, standard delivery", "A", 30.0, 3},
		{Express, "High priority, expedited delivery", "B", 25.0, 1},
		{Fragile, "Handle with care, delicate items", "C", 20.0, 2},
		{Heavy, "Heavy items requiring special handling", "D", 100.0, 4},
		{International, "International shipments", "E", 50.0, 2},
	}

	categories := make([]*Category, 0, len(specs))
	for _, s := range specs {
		id := kernel.NamedUUID("category/" + string(s.name))
		// Seed data is static and validated by tests; a construction error
		// here means the seed table itself is broken.
		category, err := NewCategory(id, s.name, s.description, s.zone, s.maxWeight, s.priorityLevel)
		if err != nil {
			panic(fmt.Sprintf("invalid category seed %q: %v", s.name, err))
		}
		categories = append(categories, category)
	}

	return categories
}

// LocationsSeed returns the full location grid for the given categories in
// seed order: per category, aisles ascending, shelves ascending. Location
// identities derive from their codes, keeping the seed deterministic.
func LocationsSeed(categories []*Category, grid GridConfig) ([]*Location, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	locations := make([]*Location, 0, len(categories)*grid.Aisles*grid.Shelves)
	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return nil, err
		}

		for aisle := 1; aisle <= grid.Aisles; aisle++ {
			for shelf := 1; shelf <= grid.Shelves; shelf++ {
				code := LocationCode(category.Zone(), aisle, shelf)
				id := kernel.NamedUUID("location/" + code)

				location, err := NewLocation(id, category.Zone(), aisle, shelf, category.ID())
				if err != nil {
					return nil, err
				}
				locations = append(locations, location)
			}
		}
	}

	return locations, nil
}
