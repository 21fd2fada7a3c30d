package ledger

import (
	"context"
	"errors"
	"fmt"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/port/persistence"
)

// Standard ledger entry descriptions
const (
	FundingDescription = "Account funding"
)

// Service is the transfer engine: it translates API-level intents into
// atomic LedgerStore operations, validating amounts and resolving
// counterparties before any storage is touched. Each method is the unit of
// atomicity seen by the caller; on failure no balance change or ledger entry
// is observable.
type Service struct {
	store    persistence.LedgerStore
	users    persistence.UserRepository
	products persistence.ProductRepository
	logger   coreport.Logger
}

// NewService creates a new transfer engine instance
func NewService(
	store persistence.LedgerStore,
	users persistence.UserRepository,
	products persistence.ProductRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		store:    store,
		users:    users,
		products: products,
		logger:   logger,
	}
}

// FundAccount credits the user's balance with an externally funded amount.
// The amount is validated through the Money type before any mutation.
func (s *Service) FundAccount(ctx context.Context, user *entity.User, amount string) (entity.Money, error) {
	amt, err := entity.ParseAmount(amount)
	if err != nil {
		s.logger.Warn("Rejected funding amount", map[string]any{
			"user_id": user.ID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return 0, err
	}

	newBalance, err := s.store.Credit(ctx, user.ID, amt, FundingDescription)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Account funded", map[string]any{
		"user_id":     user.ID,
		"amount":      amt.String(),
		"new_balance": newBalance.String(),
	})
	return newBalance, nil
}

// PayUser transfers amount from the payer to the named recipient. The
// recipient is resolved by exact, case-sensitive username. Self-payments are
// rejected before storage is touched. Returns the payer's new balance.
func (s *Service) PayUser(ctx context.Context, payer *entity.User, recipientUsername, amount string) (entity.Money, error) {
	amt, err := entity.ParseAmount(amount)
	if err != nil {
		s.logger.Warn("Rejected payment amount", map[string]any{
			"payer_id": payer.ID,
			"amount":   amount,
			"error":    err.Error(),
		})
		return 0, err
	}

	recipient, err := s.users.GetByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Payment to unknown recipient", map[string]any{
				"payer_id":  payer.ID,
				"recipient": recipientUsername,
			})
			return 0, errs.ErrUnknownRecipient
		}
		return 0, err
	}

	if recipient.ID == payer.ID {
		return 0, errs.ErrSelfTransfer
	}

	debitDesc := fmt.Sprintf("Payment to %s", recipient.Username)
	creditDesc := fmt.Sprintf("Payment from %s", payer.Username)

	newBalance, err := s.store.Transfer(ctx, payer.ID, recipient.ID, amt, debitDesc, creditDesc)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Payment completed", map[string]any{
		"payer_id":     payer.ID,
		"recipient_id": recipient.ID,
		"amount":       amt.String(),
		"new_balance":  newBalance.String(),
	})
	return newBalance, nil
}

// BuyProduct debits the user for the product's price and records the
// purchase. Returns the purchase record and the user's new balance.
func (s *Service) BuyProduct(ctx context.Context, user *entity.User, productID uint64) (*entity.Purchase, entity.Money, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownProduct) {
			s.logger.Warn("Purchase of unknown product", map[string]any{
				"user_id":    user.ID,
				"product_id": productID,
			})
		}
		return nil, 0, err
	}

	description := fmt.Sprintf("Purchase: %s", product.Name)

	purchase, newBalance, err := s.store.Purchase(ctx, user.ID, product, description)
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("Product purchased", map[string]any{
		"user_id":     user.ID,
		"product_id":  product.ID,
		"amount_paid": purchase.AmountPaid.String(),
		"new_balance": newBalance.String(),
	})
	return purchase, newBalance, nil
}

// Statement returns the user's ledger entries, most recent first
func (s *Service) Statement(ctx context.Context, user *entity.User) ([]*entity.Transaction, error) {
	return s.store.Statement(ctx, user.ID)
}
