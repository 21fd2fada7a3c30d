package repository

import (
	"context"
	"errors"
	"fmt"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/infrastructure/adapter/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository implements the LedgerStore port using GORM. Every mutation
// runs inside a single database transaction and takes a FOR UPDATE lock on
// each user row it touches, so concurrent mutations to the same balance
// serialize while disjoint users proceed in parallel. Transfers lock both
// rows in ascending user-ID order to avoid deadlock between concurrent
// opposite-direction transfers.
type LedgerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// lockUser loads a user row under an exclusive row lock
func (r *LedgerRepository) lockUser(tx *gorm.DB, userID uint64) (*model.User, error) {
	var userModel model.User
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &userModel, nil
}

// appendEntry writes one ledger entry and updates the owner's balance row.
// Must be called with the owner's row already locked.
func (r *LedgerRepository) appendEntry(
	tx *gorm.DB,
	owner *model.User,
	kind entity.TransactionKind,
	amount entity.Money,
	newBalance entity.Money,
	description string,
	counterpartyID *uint64,
	transferID string,
) (*model.Transaction, error) {
	result := tx.Model(&model.User{}).
		Where("id = ?", owner.ID).
		Update("balance", newBalance.Paise())
	if result.Error != nil {
		return nil, result.Error
	}

	entry := model.Transaction{
		UserID:         owner.ID,
		CounterpartyID: counterpartyID,
		TransferID:     transferID,
		Kind:           string(kind),
		Amount:         amount.Paise(),
		UpdatedBalance: newBalance.Paise(),
		Description:    description,
		CreatedAt:      r.timeProvider.Now(),
	}
	if result := tx.Create(&entry); result.Error != nil {
		return nil, result.Error
	}
	return &entry, nil
}

// wrapTxError translates a transaction callback error, passing domain
// sentinels through untouched and hiding raw datastore detail behind
// ErrStorageFailure.
func (r *LedgerRepository) wrapTxError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errs.IsInsufficientFundsError(err) || errs.IsNotFoundError(err) {
		return err
	}
	r.logger.Error(fmt.Sprintf("Ledger operation failed: %s", operation), map[string]any{
		"error":      err.Error(),
		"lock_error": r.errorClassifier.IsLockError(err),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorageFailure, err.Error())
}

// Credit increases the user's balance and appends one credit entry
func (r *LedgerRepository) Credit(ctx context.Context, userID uint64, amount entity.Money, description string) (entity.Money, error) {
	var newBalance entity.Money

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userModel, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		newBalance = entity.MoneyFromPaise(userModel.Balance).Add(amount)
		_, err = r.appendEntry(tx, userModel, entity.KindCredit, amount, newBalance, description, nil, "")
		return err
	})
	if err != nil {
		return 0, r.wrapTxError("credit", err)
	}

	r.logger.Debug("Credit applied", map[string]any{
		"user_id":     userID,
		"amount":      amount.String(),
		"new_balance": newBalance.String(),
	})
	return newBalance, nil
}

// Debit decreases the user's balance and appends one debit entry
func (r *LedgerRepository) Debit(ctx context.Context, userID uint64, amount entity.Money, description string) (entity.Money, error) {
	var newBalance entity.Money

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userModel, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		balance := entity.MoneyFromPaise(userModel.Balance)
		newBalance, err = balance.Sub(amount)
		if err != nil {
			return errs.NewInsufficientFundsError(userID, amount.String(), balance.String())
		}

		_, err = r.appendEntry(tx, userModel, entity.KindDebit, amount, newBalance, description, nil, "")
		return err
	})
	if err != nil {
		return 0, r.wrapTxError("debit", err)
	}

	r.logger.Debug("Debit applied", map[string]any{
		"user_id":     userID,
		"amount":      amount.String(),
		"new_balance": newBalance.String(),
	})
	return newBalance, nil
}

// Transfer moves amount from payer to payee in one atomic unit, writing a
// debit entry on the payer and a credit entry on the payee that share one
// transfer reference. Both user rows are locked in ascending ID order.
func (r *LedgerRepository) Transfer(ctx context.Context, payerID, payeeID uint64, amount entity.Money, debitDesc, creditDesc string) (entity.Money, error) {
	var payerBalance entity.Money
	transferID := uuid.NewString()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := make(map[uint64]*model.User, 2)
		for _, id := range lockOrder(payerID, payeeID) {
			userModel, err := r.lockUser(tx, id)
			if err != nil {
				return err
			}
			locked[id] = userModel
		}

		payer := locked[payerID]
		payee := locked[payeeID]

		balance := entity.MoneyFromPaise(payer.Balance)
		newPayerBalance, err := balance.Sub(amount)
		if err != nil {
			return errs.NewInsufficientFundsError(payerID, amount.String(), balance.String())
		}
		newPayeeBalance := entity.MoneyFromPaise(payee.Balance).Add(amount)

		if _, err := r.appendEntry(tx, payer, entity.KindDebit, amount, newPayerBalance, debitDesc, &payeeID, transferID); err != nil {
			return err
		}
		if _, err := r.appendEntry(tx, payee, entity.KindCredit, amount, newPayeeBalance, creditDesc, &payerID, transferID); err != nil {
			return err
		}

		payerBalance = newPayerBalance
		return nil
	})
	if err != nil {
		return 0, r.wrapTxError("transfer", err)
	}

	r.logger.Info("Transfer applied", map[string]any{
		"transfer_id": transferID,
		"payer_id":    payerID,
		"payee_id":    payeeID,
		"amount":      amount.String(),
	})
	return payerBalance, nil
}

// Purchase debits the user for the product's price and records the purchase
// referencing the debit entry, all in one transaction
func (r *LedgerRepository) Purchase(ctx context.Context, userID uint64, product *entity.Product, description string) (*entity.Purchase, entity.Money, error) {
	var (
		purchase   *entity.Purchase
		newBalance entity.Money
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check the product inside the transaction; the price used is the
		// one stored at this instant, decoupled from later catalog changes
		var productModel model.Product
		if result := tx.First(&productModel, product.ID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUnknownProduct
			}
			return result.Error
		}
		price := entity.MoneyFromPaise(productModel.Price)

		userModel, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		balance := entity.MoneyFromPaise(userModel.Balance)
		newBalance, err = balance.Sub(price)
		if err != nil {
			return errs.NewInsufficientFundsError(userID, price.String(), balance.String())
		}

		entry, err := r.appendEntry(tx, userModel, entity.KindDebit, price, newBalance, description, nil, "")
		if err != nil {
			return err
		}

		purchaseModel := model.Purchase{
			UserID:        userID,
			ProductID:     productModel.ID,
			AmountPaid:    price.Paise(),
			TransactionID: entry.ID,
			CreatedAt:     r.timeProvider.Now(),
		}
		if result := tx.Create(&purchaseModel); result.Error != nil {
			return result.Error
		}

		purchase = &entity.Purchase{
			ID:            purchaseModel.ID,
			UserID:        purchaseModel.UserID,
			ProductID:     purchaseModel.ProductID,
			AmountPaid:    price,
			TransactionID: purchaseModel.TransactionID,
			CreatedAt:     purchaseModel.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, 0, r.wrapTxError("purchase", err)
	}

	r.logger.Info("Purchase applied", map[string]any{
		"user_id":     userID,
		"product_id":  product.ID,
		"amount_paid": purchase.AmountPaid.String(),
	})
	return purchase, newBalance, nil
}

// Statement returns the user's ledger entries, newest first, ties broken by
// ascending entry ID
func (r *LedgerRepository) Statement(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var entryModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStorageFailure, result.Error.Error())
	}

	entries := make([]*entity.Transaction, 0, len(entryModels))
	for i := range entryModels {
		m := &entryModels[i]
		entries = append(entries, &entity.Transaction{
			ID:             m.ID,
			UserID:         m.UserID,
			CounterpartyID: m.CounterpartyID,
			TransferID:     m.TransferID,
			Kind:           entity.TransactionKind(m.Kind),
			Amount:         entity.MoneyFromPaise(m.Amount),
			UpdatedBalance: entity.MoneyFromPaise(m.UpdatedBalance),
			Description:    m.Description,
			CreatedAt:      m.CreatedAt,
		})
	}
	return entries, nil
}

// lockOrder returns the two user IDs in ascending order
func lockOrder(a, b uint64) [2]uint64 {
	if a < b {
		return [2]uint64{a, b}
	}
	return [2]uint64{b, a}
}
