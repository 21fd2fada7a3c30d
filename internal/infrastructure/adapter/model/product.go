package model

import (
	"time"
)

// Product represents the database model for catalog products
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null;size:255"`
	Price       int64     `gorm:"not null"` // Price in paise
	Description string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
