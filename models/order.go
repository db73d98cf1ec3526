package models

// OrderItem is an embedded line of an order. Weight is nil for products
// sold only at the base price.
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Weight   *string `json:"weight" bson:"weight"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order is a captured checkout. Totals are persisted exactly as the
// customer submitted them; the server never recomputes subtotal,
// discount or total. Orders are immutable after creation.
type Order struct {
	ID            string      `json:"id" bson:"id"`
	CustomerName  string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone string      `json:"customer_phone" bson:"customer_phone"`
	Items         []OrderItem `json:"items" bson:"items"`
	Subtotal      float64     `json:"subtotal" bson:"subtotal"`
	Discount      float64     `json:"discount" bson:"discount"`
	Total         float64     `json:"total" bson:"total"`
	Promocode     *string     `json:"promocode" bson:"promocode"`
	CreatedAt     string      `json:"created_at" bson:"created_at"` // RFC3339 UTC
}
