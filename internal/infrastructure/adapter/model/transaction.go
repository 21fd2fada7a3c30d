package model

import (
	"time"
)

// Transaction represents the database model for ledger entries.
// Rows are append-only: nothing in the codebase updates or deletes them.
type Transaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uint64    `gorm:"not null;index"`
	CounterpartyID *uint64   `gorm:"index"`
	TransferID     string    `gorm:"size:36;index"`
	Kind           string    `gorm:"not null;size:10"`
	Amount         int64     `gorm:"not null"` // Amount in paise
	UpdatedBalance int64     `gorm:"not null"` // Owner's balance after this entry, in paise
	Description    string    `gorm:"size:255"`
	CreatedAt      time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
