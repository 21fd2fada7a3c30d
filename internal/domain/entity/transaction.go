package entity

import (
	"time"
)

// TransactionKind represents the direction of a ledger entry
type TransactionKind string

// Transaction kinds
const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// IsValidTransactionKind validates if the kind is one of the allowed values
func IsValidTransactionKind(kind string) bool {
	return kind == string(KindCredit) || kind == string(KindDebit)
}

// Transaction is an append-only ledger entry recording one balance mutation.
// Each entry belongs to exactly one owning user: the party whose balance
// changed. A transfer between two users produces two entries (a debit on the
// payer and a credit on the payee) sharing the same TransferID.
// Entries are never updated or deleted once written.
type Transaction struct {
	ID             uint64          // Unique identifier for the ledger entry
	UserID         uint64          // Owning user whose balance this entry changed
	CounterpartyID *uint64         // The other user in a transfer; nil for funding and purchases
	TransferID     string          // Links both legs of a transfer; empty for single-leg entries
	Kind           TransactionKind // credit or debit
	Amount         Money           // Amount moved, always positive
	UpdatedBalance Money           // Owner's balance immediately after this entry
	Description    string          // Human-readable description
	CreatedAt      time.Time       // When the entry was written
}

// IsCredit reports whether this entry increased the owner's balance
func (t *Transaction) IsCredit() bool {
	return t.Kind == KindCredit
}

// IsDebit reports whether this entry decreased the owner's balance
func (t *Transaction) IsDebit() bool {
	return t.Kind == KindDebit
}
