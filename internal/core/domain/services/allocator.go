package services

import (
	"strings"

	"warehouse/internal/core/domain/model/catalog"
)

const (
	heavyWeightThreshold   = 50.0
	fragileWeightThreshold = 5.0
)

// Allocator assigns parcels to storage categories.
//
// The rules are ordered; the first match wins:
//  1. priority tag "express" (any casing) forces the Express category
//  2. a destination mentioning "international" or naming more than two
//     comma-separated parts is International
//  3. weight above 50 kg is Heavy
//  4. weight below 5 kg is Fragile
//  5. everything else is Standard
type Allocator struct{}

// NewAllocator creates the category allocation service.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Categorize returns the storage category for a parcel. The decision depends
// only on its arguments.
func (a *Allocator) Categorize(weight float64, priority string, destination string) catalog.CategoryName {
	if strings.EqualFold(priority, "Express") {
		return catalog.Express
	}

	dest := strings.ToLower(destination)
	if strings.Contains(dest, "international") || strings.Count(destination, ",") > 1 {
		return catalog.International
	}

	if weight > heavyWeightThreshold {
		return catalog.Heavy
	}
	if weight < fragileWeightThreshold {
		return catalog.Fragile
	}

	return catalog.Standard
}
