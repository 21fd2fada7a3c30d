package model

import (
	"time"
)

// Purchase represents the database model for product purchases
type Purchase struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	ProductID     uint64    `gorm:"not null;index"`
	AmountPaid    int64     `gorm:"not null"` // Price paid at purchase time, in paise
	TransactionID uint64    `gorm:"not null;uniqueIndex"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User        User        `gorm:"foreignKey:UserID;references:ID"`
	Product     Product     `gorm:"foreignKey:ProductID;references:ID"`
	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
