package models

// Category is a catalog section shown in the storefront navigation.
// Order is an explicit display position; GET /categories returns rows
// sorted by it ascending.
type Category struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Slug  string `json:"slug" bson:"slug"`
	Order int    `json:"order" bson:"order"`
}

// WeightPrice is an optional price override for a specific packaged
// weight of a product, distinct from the product's base price. Entries
// keep the order the caller submitted them in.
type WeightPrice struct {
	Weight string  `json:"weight" bson:"weight"`
	Price  float64 `json:"price" bson:"price"`
}

// Product is a catalog item. CategoryID references a Category id but is
// not enforced against the categories collection: deleting a category
// leaves its products dangling on purpose.
type Product struct {
	ID           string        `json:"id" bson:"id"`
	Name         string        `json:"name" bson:"name"`
	Description  string        `json:"description" bson:"description"`
	CategoryID   string        `json:"category_id" bson:"category_id"`
	Image        string        `json:"image" bson:"image"`
	BasePrice    float64       `json:"base_price" bson:"base_price"`
	WeightPrices []WeightPrice `json:"weight_prices" bson:"weight_prices"`
	CreatedAt    string        `json:"created_at" bson:"created_at"` // RFC3339 UTC, set once at creation
}
