package models

// DiscountType selects how a promocode discount is applied to an order
// subtotal.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Promocode is a reusable discount code. CurrentUses counts orders that
// were submitted with the code; a code stops validating once it reaches
// MaxUses or is deactivated.
type Promocode struct {
	ID            string       `json:"id" bson:"id"`
	Code          string       `json:"code" bson:"code"`
	DiscountType  DiscountType `json:"discount_type" bson:"discount_type"`
	DiscountValue float64      `json:"discount_value" bson:"discount_value"`
	MaxUses       int          `json:"max_uses" bson:"max_uses"`
	CurrentUses   int          `json:"current_uses" bson:"current_uses"`
	IsActive      bool         `json:"is_active" bson:"is_active"`
}
