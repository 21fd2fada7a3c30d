package entity

import (
	"time"
)

// Product is a catalog item purchasable with wallet balance.
// Immutable after creation.
type Product struct {
	ID          uint64    // Unique identifier for the product
	Name        string    // Display name
	Price       Money     // Price in paise, always positive
	Description string    // Optional free-text description
	CreatedAt   time.Time // When the product was added to the catalog
}

// Purchase links a user to a product they bought. AmountPaid captures the
// price at purchase time and TransactionID references the debit ledger entry
// that paid for it; exactly one purchase per debit entry.
type Purchase struct {
	ID            uint64    // Unique identifier for the purchase
	UserID        uint64    // Buyer
	ProductID     uint64    // Product bought
	AmountPaid    Money     // Price actually paid, captured at purchase time
	TransactionID uint64    // The debit ledger entry that funded this purchase
	CreatedAt     time.Time // When the purchase happened
}
