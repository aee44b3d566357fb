package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	OrderID     uint           `gorm:"primaryKey" json:"order_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"user"`
	BillingID   uint           `json:"billing_id"`
	Billing     BillingDetails `gorm:"foreignKey:BillingID" json:"billing"`
	Items       []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64        `json:"total_amount"`
	Status      OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// OrderItem freezes quantity and unit price at purchase time, so later
// product edits do not rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type BillingDetails struct {
	BillingID     uint    `gorm:"primaryKey" json:"billing_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Country       string  `json:"country"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	ZipCode       string  `json:"zip_code"`
	PaymentMethod string  `json:"payment_method"`
	Orders        []Order `gorm:"foreignKey:BillingID" json:"orders,omitempty"`
}
