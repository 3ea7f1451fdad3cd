// Package entity contains the core business objects of the project.
package entity

// UncategorizedCategory is the category assigned to products stored without one.
const UncategorizedCategory = "Uncategorized"

// Product is the core entity for a listed catalog item.
// Every product is owned by exactly one store.
type Product struct {
	ID       int64   // Unique, immutable numeric identifier.
	StoreID  int64   // The owning store.
	Name     string  // Display name, used for text matching and ordering.
	SKU      string  // Stock-keeping unit, used for text matching.
	Price    float64 // Non-negative price; 0 means "price unset", not "free".
	Category string  // Category value; never empty, defaults to UncategorizedCategory.
	Stock    int     // Non-negative units in stock.
	Supplier string  // Free-form supplier name.
}
