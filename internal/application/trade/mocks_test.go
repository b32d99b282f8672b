package trade

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseDocumentRepository is a mock implementation of trade.PurchaseDocumentRepository
type MockPurchaseDocumentRepository struct {
	mock.Mock
}

func (m *MockPurchaseDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseDocument), args.Error(1)
}

func (m *MockPurchaseDocumentRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]trade.PurchaseDocument, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseDocument), args.Error(1)
}

func (m *MockPurchaseDocumentRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]trade.PurchaseDocument, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseDocument), args.Error(1)
}

func (m *MockPurchaseDocumentRepository) Save(ctx context.Context, document *trade.PurchaseDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockPurchaseDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesLineRepository is a mock implementation of trade.SalesLineRepository
type MockSalesLineRepository struct {
	mock.Mock
}

func (m *MockSalesLineRepository) Append(ctx context.Context, line *trade.SalesLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockSalesLineRepository) FindActiveByReceipt(ctx context.Context, receiptID string) ([]trade.SalesLine, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) MarkReceiptCanceled(ctx context.Context, receiptID string) (int64, error) {
	args := m.Called(ctx, receiptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesLineRepository) FindActiveBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) FindCashLinesBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) RecentReceipts(ctx context.Context, limit int) ([]trade.ReceiptSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.ReceiptSummary), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCounterpartyRepository is a mock implementation of partner.CounterpartyRepository
type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Counterparty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Counterparty, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) FindByType(ctx context.Context, cpType partner.CounterpartyType) ([]partner.Counterparty, error) {
	args := m.Called(ctx, cpType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) Save(ctx context.Context, counterparty *partner.Counterparty) error {
	args := m.Called(ctx, counterparty)
	return args.Error(0)
}

func (m *MockCounterpartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLedgerMovementRepository is a mock implementation of partner.LedgerMovementRepository
type MockLedgerMovementRepository struct {
	mock.Mock
}

func (m *MockLedgerMovementRepository) Append(ctx context.Context, movement *partner.LedgerMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockLedgerMovementRepository) FindByCounterparty(ctx context.Context, counterpartyID uuid.UUID) ([]partner.LedgerMovement, error) {
	args := m.Called(ctx, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.LedgerMovement), args.Error(1)
}

func (m *MockLedgerMovementRepository) FindByKindsBetween(ctx context.Context, kinds []partner.MovementKind, from, to *time.Time) ([]partner.LedgerMovement, error) {
	args := m.Called(ctx, kinds, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.LedgerMovement), args.Error(1)
}

type testRepos struct {
	documents      *MockPurchaseDocumentRepository
	sales          *MockSalesLineRepository
	products       *MockProductRepository
	counterparties *MockCounterpartyRepository
	movements      *MockLedgerMovementRepository
}

func newTestScope(t *testing.T) (*NoOpTransactionScope, *testRepos) {
	t.Helper()
	repos := &testRepos{
		documents:      new(MockPurchaseDocumentRepository),
		sales:          new(MockSalesLineRepository),
		products:       new(MockProductRepository),
		counterparties: new(MockCounterpartyRepository),
		movements:      new(MockLedgerMovementRepository),
	}
	scope := NewNoOpTransactionScope(repos.documents, repos.sales, repos.products, repos.counterparties, repos.movements)
	return scope, repos
}
