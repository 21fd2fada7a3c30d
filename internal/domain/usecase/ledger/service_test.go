package ledger

import (
	"context"
	"testing"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coremocks "wallet/mocks/port/core"
	persistencemocks "wallet/mocks/port/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *persistencemocks.MockLedgerStore, *persistencemocks.MockUserRepository, *persistencemocks.MockProductRepository) {
	mockStore := persistencemocks.NewMockLedgerStore(t)
	mockUsers := persistencemocks.NewMockUserRepository(t)
	mockProducts := persistencemocks.NewMockProductRepository(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(mockStore, mockUsers, mockProducts, mockLogger), mockStore, mockUsers, mockProducts
}

func TestFundAccount(t *testing.T) {
	ctx := context.Background()
	payer := &entity.User{ID: 1, Username: "alice", Balance: entity.MoneyFromPaise(1000)}

	t.Run("Successful funding", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		mockStore.EXPECT().
			Credit(mock.Anything, uint64(1), entity.MoneyFromPaise(1050), FundingDescription).
			Return(entity.MoneyFromPaise(2050), nil).
			Once()

		balance, err := service.FundAccount(ctx, payer, "10.50")

		require.NoError(t, err)
		assert.Equal(t, "20.50", balance.String())
	})

	t.Run("Invalid amount never reaches storage", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		_, err := service.FundAccount(ctx, payer, "10.505")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		mockStore.AssertNotCalled(t, "Credit")
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		_, err := service.FundAccount(ctx, payer, "0")

		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
		mockStore.AssertNotCalled(t, "Credit")
	})

	t.Run("Amount above maximum rejected", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		_, err := service.FundAccount(ctx, payer, "1000000.00")

		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
		mockStore.AssertNotCalled(t, "Credit")
	})
}

func TestPayUser(t *testing.T) {
	ctx := context.Background()
	payer := &entity.User{ID: 1, Username: "alice"}
	recipient := &entity.User{ID: 2, Username: "bob"}

	t.Run("Successful payment", func(t *testing.T) {
		service, mockStore, mockUsers, _ := newTestService(t)

		mockUsers.EXPECT().GetByUsername(mock.Anything, "bob").Return(recipient, nil).Once()
		mockStore.EXPECT().
			Transfer(mock.Anything, uint64(1), uint64(2), entity.MoneyFromPaise(2500), "Payment to bob", "Payment from alice").
			Return(entity.MoneyFromPaise(7500), nil).
			Once()

		balance, err := service.PayUser(ctx, payer, "bob", "25.00")

		require.NoError(t, err)
		assert.Equal(t, "75.00", balance.String())
	})

	t.Run("Unknown recipient", func(t *testing.T) {
		service, mockStore, mockUsers, _ := newTestService(t)

		mockUsers.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := service.PayUser(ctx, payer, "ghost", "25.00")

		assert.ErrorIs(t, err, errs.ErrUnknownRecipient)
		mockStore.AssertNotCalled(t, "Transfer")
	})

	t.Run("Self payment rejected", func(t *testing.T) {
		service, mockStore, mockUsers, _ := newTestService(t)

		mockUsers.EXPECT().GetByUsername(mock.Anything, "alice").Return(payer, nil).Once()

		_, err := service.PayUser(ctx, payer, "alice", "25.00")

		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
		mockStore.AssertNotCalled(t, "Transfer")
	})

	t.Run("Invalid amount resolved before recipient lookup", func(t *testing.T) {
		service, mockStore, mockUsers, _ := newTestService(t)

		_, err := service.PayUser(ctx, payer, "bob", "-5.00")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		mockUsers.AssertNotCalled(t, "GetByUsername")
		mockStore.AssertNotCalled(t, "Transfer")
	})

	t.Run("Insufficient funds propagates", func(t *testing.T) {
		service, mockStore, mockUsers, _ := newTestService(t)

		mockUsers.EXPECT().GetByUsername(mock.Anything, "bob").Return(recipient, nil).Once()
		mockStore.EXPECT().
			Transfer(mock.Anything, uint64(1), uint64(2), mock.Anything, mock.Anything, mock.Anything).
			Return(entity.Money(0), errs.NewInsufficientFundsError(1, "25.00", "10.00")).
			Once()

		_, err := service.PayUser(ctx, payer, "bob", "25.00")

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})
}

func TestBuyProduct(t *testing.T) {
	ctx := context.Background()
	buyer := &entity.User{ID: 1, Username: "alice"}
	product := &entity.Product{ID: 7, Name: "Coffee Mug", Price: entity.MoneyFromPaise(49900)}

	t.Run("Successful purchase", func(t *testing.T) {
		service, mockStore, _, mockProducts := newTestService(t)

		mockProducts.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockStore.EXPECT().
			Purchase(mock.Anything, uint64(1), product, "Purchase: Coffee Mug").
			Return(&entity.Purchase{ID: 3, UserID: 1, ProductID: 7, AmountPaid: product.Price}, entity.MoneyFromPaise(100), nil).
			Once()

		purchase, balance, err := service.BuyProduct(ctx, buyer, 7)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), purchase.ProductID)
		assert.Equal(t, "1.00", balance.String())
	})

	t.Run("Unknown product", func(t *testing.T) {
		service, mockStore, _, mockProducts := newTestService(t)

		mockProducts.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUnknownProduct).Once()

		_, _, err := service.BuyProduct(ctx, buyer, 99)

		assert.ErrorIs(t, err, errs.ErrUnknownProduct)
		mockStore.AssertNotCalled(t, "Purchase")
	})

	t.Run("Insufficient funds propagates", func(t *testing.T) {
		service, mockStore, _, mockProducts := newTestService(t)

		mockProducts.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockStore.EXPECT().
			Purchase(mock.Anything, uint64(1), product, mock.Anything).
			Return(nil, entity.Money(0), errs.NewInsufficientFundsError(1, "499.00", "1.00")).
			Once()

		_, _, err := service.BuyProduct(ctx, buyer, 7)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})
}

func TestStatement(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 1, Username: "alice"}

	t.Run("Entries pass through unchanged", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		entries := []*entity.Transaction{
			{ID: 2, UserID: 1, Kind: entity.KindDebit, Amount: entity.MoneyFromPaise(500)},
			{ID: 1, UserID: 1, Kind: entity.KindCredit, Amount: entity.MoneyFromPaise(1000)},
		}
		mockStore.EXPECT().Statement(mock.Anything, uint64(1)).Return(entries, nil).Once()

		result, err := service.Statement(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Storage failure propagates", func(t *testing.T) {
		service, mockStore, _, _ := newTestService(t)

		mockStore.EXPECT().Statement(mock.Anything, uint64(1)).Return(nil, errs.ErrStorageFailure).Once()

		_, err := service.Statement(ctx, owner)

		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}
