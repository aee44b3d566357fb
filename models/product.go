package models

import "time"

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Price        float64        `gorm:"not null" json:"price"`
	Stock        int            `json:"stock"`
	Description  string         `json:"description"`
	CategoryName string         `gorm:"index" json:"category_name"`
	Images       []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
}
