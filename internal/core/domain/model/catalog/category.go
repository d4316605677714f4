package catalog

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory function.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// CategoryName identifies one of the five handling classes a package can be
// assigned to. The set is closed: reference data is seeded from these names
// and the allocator only ever produces them.
type CategoryName string

const (
	Standard      CategoryName = "Standard"
	Express       CategoryName = "Express"
	Fragile       CategoryName = "Fragile"
	Heavy         CategoryName = "Heavy"
	International CategoryName = "International"
)

// Validate checks that the name is one of the known categories.
func (n CategoryName) Validate() error {
	switch n {
	case Standard, Express, Fragile, Heavy, International:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category name",
			fmt.Errorf("%q is not a known category", string(n)))
	}
}

// String returns the category name as stored in the database.
func (n CategoryName) String() string {
	return string(n)
}

// Category is an immutable reference entity describing how packages of one
// handling class are stored: which zone holds them, the weight ceiling the
// zone is rated for, and the handling priority level.
//
// Categories are seeded once at initialization and never mutated afterwards;
// the identity of a category is a deterministic UUID derived from its name.
type Category struct {
	id            kernel.UUID
	name          CategoryName
	description   string
	zone          string
	maxWeight     float64
	priorityLevel int

	guard kernel.ConstructorGuard
}

// NewCategory creates a Category with validation. The id is expected to be
// the deterministic name-based UUID produced by the seed (see CategoriesSeed).
func NewCategory(
	id kernel.UUID, name CategoryName, description, zone string, maxWeight float64, priorityLevel int,
) (*Category, error) {
	category := &Category{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
		category.setZone(zone),
		category.setMaxWeight(maxWeight),
		category.setPriorityLevel(priorityLevel),
	); err != nil {
		return nil, err
	}

	category.description = description
	return category, nil
}

// Validate ensures the Category was created via NewCategory.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// IsEqual compares two categories by identity.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() CategoryName {
	return c.name
}

// Description returns the human-readable category description.
func (c *Category) Description() string {
	return c.description
}

// Zone returns the zone code whose locations belong to this category.
func (c *Category) Zone() string {
	return c.zone
}

// MaxWeight returns the weight ceiling in kilograms for the category's zone.
func (c *Category) MaxWeight() float64 {
	return c.maxWeight
}

// PriorityLevel returns the handling priority (1 is most urgent).
func (c *Category) PriorityLevel() int {
	return c.priorityLevel
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name CategoryName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Category) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	c.zone = zone
	return nil
}

func (c *Category) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weight",
			fmt.Errorf("%v is not greater than 0", maxWeight))
	}
	c.maxWeight = maxWeight
	return nil
}

func (c *Category) setPriorityLevel(priorityLevel int) error {
	if priorityLevel < 1 {
		return errs.NewValueIsInvalidErrorWithCause("priority level",
			fmt.Errorf("%d is not greater than 0", priorityLevel))
	}
	c.priorityLevel = priorityLevel
	return nil
}
