package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	"wallet/internal/domain/usecase/catalog"
	"wallet/internal/domain/usecase/currency"
	"wallet/internal/domain/usecase/ledger"
	userUseCase "wallet/internal/domain/usecase/user"
	"wallet/internal/infrastructure/adapter/api/handler"
	"wallet/internal/infrastructure/adapter/logger"
	coremocks "wallet/mocks/port/core"
	persistencemocks "wallet/mocks/port/persistence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubAuth resolves one fixed credential pair to one fixed user
type stubAuth struct {
	username string
	password string
	user     *entity.User
}

func (s *stubAuth) Authenticate(_ context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, errs.ErrUnauthenticated
	}
	if username != s.username || password != s.password {
		return nil, errs.ErrInvalidCredentials
	}
	return s.user, nil
}

type routerFixture struct {
	router   *gin.Engine
	store    *persistencemocks.MockLedgerStore
	users    *persistencemocks.MockUserRepository
	products *persistencemocks.MockProductRepository
}

func newRouterFixture(t *testing.T) *routerFixture {
	gin.SetMode(gin.TestMode)
	noop := logger.NewNoopLogger()

	mockStore := persistencemocks.NewMockLedgerStore(t)
	mockUsers := persistencemocks.NewMockUserRepository(t)
	mockProducts := persistencemocks.NewMockProductRepository(t)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	authedUser := &entity.User{ID: 1, Username: "alice", Balance: entity.MoneyFromPaise(100000)}

	userService := userUseCase.NewService(mockUsers, mockTime, noop)
	catalogService := catalog.NewService(mockProducts, mockTime, noop)
	ledgerService := ledger.NewService(mockStore, mockUsers, mockProducts, noop)
	converter := currency.NewConverter(nil, noop)

	router := SetupRouter(Handlers{
		User:    handler.NewUserHandler(userService, noop),
		Wallet:  handler.NewWalletHandler(ledgerService, converter, noop),
		Product: handler.NewProductHandler(catalogService, ledgerService, noop),
		Health:  handler.NewHealthHandler(),
	}, &stubAuth{username: "alice", password: "secret123", user: authedUser}, noop)

	return &routerFixture{
		router:   router,
		store:    mockStore,
		users:    mockUsers,
		products: mockProducts,
	}
}

func (f *routerFixture) request(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.SetBasicAuth("alice", "secret123")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	w := f.request(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Digital Wallet API is running", body["message"])
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Successful registration", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		w := f.request(t, http.MethodPost, "/register", `{"username":"bob","password":"secret123"}`, false)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUsername).Once()

		w := f.request(t, http.MethodPost, "/register", `{"username":"bob","password":"secret123"}`, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeDuplicateUsername), body["code"])
		assert.Contains(t, body["error"], "already exists")
	})

	t.Run("Malformed body", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodPost, "/register", `{"username":`, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFundEndpoint(t *testing.T) {
	t.Run("Requires authentication", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodPost, "/fund", `{"amt":"10.50"}`, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("String amount", func(t *testing.T) {
		f := newRouterFixture(t)
		f.store.EXPECT().
			Credit(mock.Anything, uint64(1), entity.MoneyFromPaise(1050), ledger.FundingDescription).
			Return(entity.MoneyFromPaise(101050), nil).
			Once()

		w := f.request(t, http.MethodPost, "/fund", `{"amt":"10.50"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1010.50", decodeBody(t, w)["balance"])
	})

	t.Run("Numeric amount", func(t *testing.T) {
		f := newRouterFixture(t)
		f.store.EXPECT().
			Credit(mock.Anything, uint64(1), entity.MoneyFromPaise(1050), ledger.FundingDescription).
			Return(entity.MoneyFromPaise(1050), nil).
			Once()

		w := f.request(t, http.MethodPost, "/fund", `{"amt":10.50}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Amount out of range", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodPost, "/fund", `{"amt":"1000000.00"}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeAmountOutOfRange), decodeBody(t, w)["code"])
	})
}

func TestPayEndpoint(t *testing.T) {
	t.Run("Unknown recipient", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		w := f.request(t, http.MethodPost, "/pay", `{"to":"ghost","amt":"5.00"}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeUnknownRecipient), decodeBody(t, w)["code"])
	})

	t.Run("Successful payment", func(t *testing.T) {
		f := newRouterFixture(t)
		recipient := &entity.User{ID: 2, Username: "bob"}
		f.users.EXPECT().GetByUsername(mock.Anything, "bob").Return(recipient, nil).Once()
		f.store.EXPECT().
			Transfer(mock.Anything, uint64(1), uint64(2), entity.MoneyFromPaise(500), mock.Anything, mock.Anything).
			Return(entity.MoneyFromPaise(99500), nil).
			Once()

		w := f.request(t, http.MethodPost, "/pay", `{"to":"bob","amt":"5.00"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "995.00", decodeBody(t, w)["balance"])
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		f := newRouterFixture(t)
		recipient := &entity.User{ID: 2, Username: "bob"}
		f.users.EXPECT().GetByUsername(mock.Anything, "bob").Return(recipient, nil).Once()
		f.store.EXPECT().
			Transfer(mock.Anything, uint64(1), uint64(2), mock.Anything, mock.Anything, mock.Anything).
			Return(entity.Money(0), errs.NewInsufficientFundsError(1, "5000.00", "1000.00")).
			Once()

		w := f.request(t, http.MethodPost, "/pay", `{"to":"bob","amt":"5000.00"}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeInsufficientFunds), decodeBody(t, w)["code"])
	})
}

func TestBalanceEndpoint(t *testing.T) {
	t.Run("Base currency by default", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodGet, "/bal", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "1000.00", body["balance"])
		assert.Equal(t, "INR", body["currency"])
	})

	t.Run("Converted with fallback rate", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodGet, "/bal?currency=USD", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "12.00", body["balance"])
		assert.Equal(t, "USD", body["currency"])
	})

	t.Run("Unsupported currency", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodGet, "/bal?currency=XYZ", "", true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeUnsupportedCurrency), decodeBody(t, w)["code"])
	})
}

func TestStatementEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	created := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	f.store.EXPECT().Statement(mock.Anything, uint64(1)).Return([]*entity.Transaction{
		{
			ID:             2,
			UserID:         1,
			Kind:           entity.KindDebit,
			Amount:         entity.MoneyFromPaise(500),
			UpdatedBalance: entity.MoneyFromPaise(99500),
			Description:    "Payment to bob",
			CreatedAt:      created,
		},
		{
			ID:             1,
			UserID:         1,
			Kind:           entity.KindCredit,
			Amount:         entity.MoneyFromPaise(100000),
			UpdatedBalance: entity.MoneyFromPaise(100000),
			Description:    "Account funding",
			CreatedAt:      created.Add(-time.Hour),
		},
	}, nil).Once()

	w := f.request(t, http.MethodGet, "/stmt", "", true)

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "debit", entries[0]["kind"])
	assert.Equal(t, "5.00", entries[0]["amt"])
	assert.Equal(t, "995.00", entries[0]["updated_bal"])
	assert.Equal(t, "Payment to bob", entries[0]["description"])
	assert.Equal(t, "2024-06-01T10:30:00Z", entries[0]["timestamp"])
	assert.Equal(t, "credit", entries[1]["kind"])
}

func TestProductEndpoints(t *testing.T) {
	t.Run("Listing is public", func(t *testing.T) {
		f := newRouterFixture(t)
		f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{
			{ID: 1, Name: "Pen", Price: entity.MoneyFromPaise(1000), Description: "Blue ink"},
		}, nil).Once()

		w := f.request(t, http.MethodGet, "/product", "", false)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Pen", products[0]["name"])
		assert.Equal(t, "10.00", products[0]["price"])
	})

	t.Run("Creation requires authentication", func(t *testing.T) {
		f := newRouterFixture(t)

		w := f.request(t, http.MethodPost, "/product", `{"name":"Pen","price":"10.00"}`, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Successful creation", func(t *testing.T) {
		f := newRouterFixture(t)
		f.products.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		w := f.request(t, http.MethodPost, "/product", `{"name":"Pen","price":"10.00","description":"Blue ink"}`, true)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Buy unknown product", func(t *testing.T) {
		f := newRouterFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUnknownProduct).Once()

		w := f.request(t, http.MethodPost, "/buy", `{"product_id":99}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(errs.CodeUnknownProduct), decodeBody(t, w)["code"])
	})

	t.Run("Successful purchase", func(t *testing.T) {
		f := newRouterFixture(t)
		product := &entity.Product{ID: 7, Name: "Coffee Mug", Price: entity.MoneyFromPaise(49900)}
		f.products.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		f.store.EXPECT().
			Purchase(mock.Anything, uint64(1), product, mock.Anything).
			Return(&entity.Purchase{ID: 1, UserID: 1, ProductID: 7, AmountPaid: product.Price}, entity.MoneyFromPaise(50100), nil).
			Once()

		w := f.request(t, http.MethodPost, "/buy", `{"product_id":7}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "501.00", decodeBody(t, w)["balance"])
	})
}

func TestInvalidCredentialsRejected(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/bal", nil)
	req.SetBasicAuth("alice", "wrong-password")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, float64(errs.CodeInvalidCredentials), decodeBody(t, w)["code"])
}
