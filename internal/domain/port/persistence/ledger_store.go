package persistence

import (
	"context"

	"wallet/internal/domain/entity"
)

// LedgerStore exposes the atomic balance mutation operations. Each operation
// either fully applies (balance updated, ledger entries written) or fully
// rolls back; no partial writes are ever visible to other operations.
//
// Concurrency contract: two concurrent operations touching the same user's
// balance serialize (the implementation takes exclusive row locks on every
// user row it mutates), while operations on disjoint users may proceed in
// parallel. Operations touching two users acquire their locks in ascending
// user-ID order so opposite-direction transfers cannot deadlock.
type LedgerStore interface {
	// Credit increases the user's balance and appends one credit ledger
	// entry carrying the resulting balance
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrStorageFailure: If the datastore fails
	Credit(ctx context.Context, userID uint64, amount entity.Money, description string) (entity.Money, error)

	// Debit decreases the user's balance and appends one debit ledger entry
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrInsufficientFunds: If amount exceeds the user's balance
	// - ErrStorageFailure: If the datastore fails
	Debit(ctx context.Context, userID uint64, amount entity.Money, description string) (entity.Money, error)

	// Transfer moves amount from payer to payee in one atomic unit: a debit
	// entry on the payer and a credit entry on the payee, both sharing one
	// transfer reference. Returns the payer's new balance.
	//
	// Possible errors:
	// - ErrUserNotFound: If either user doesn't exist
	// - ErrInsufficientFunds: If the payer's balance is insufficient
	// - ErrStorageFailure: If the datastore fails
	Transfer(ctx context.Context, payerID, payeeID uint64, amount entity.Money, debitDesc, creditDesc string) (entity.Money, error)

	// Purchase debits the user for the product's price and records a
	// purchase referencing the resulting debit entry, atomically.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrUnknownProduct: If the product doesn't exist
	// - ErrInsufficientFunds: If the user's balance is insufficient
	// - ErrStorageFailure: If the datastore fails
	Purchase(ctx context.Context, userID uint64, product *entity.Product, description string) (*entity.Purchase, entity.Money, error)

	// Statement returns all ledger entries owned by the user, most recent
	// first, ties broken by ascending entry ID.
	//
	// Possible errors:
	// - ErrStorageFailure: If the datastore fails
	Statement(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
