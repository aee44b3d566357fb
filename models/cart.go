package models

import "time"

// Cart is one line in a user's cart. The unique index on (user, product)
// backs the merge-on-add behavior: adding the same product twice bumps the
// quantity of the existing row instead of inserting a duplicate.
type Cart struct {
	CartID    uint      `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
