package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Upsert(ctx context.Context, a *address.Address) (*address.Address, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]cart.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]cart.Product), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) GetByMerchantPaymentID(
	ctx context.Context,
	id payment.MerchantPaymentID,
) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) AddAll(ctx context.Context, items []payment.LineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockLineItemRepository) ListByPayment(ctx context.Context, paymentID int64) ([]payment.LineItem, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.LineItem), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Transition(
	ctx context.Context,
	id int64,
	from shipment.State,
	action shipment.Action,
	at time.Time,
) error {
	args := m.Called(ctx, id, from, action, at)
	return args.Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct {
	MockTx
	addresses *MockAddressRepository
	products  *MockProductRepository
	payments  *MockPaymentRepository
	lineItems *MockLineItemRepository
	shipments *MockShipmentRepository
}

func newMockOrderUoW() *MockOrderUoW {
	return &MockOrderUoW{
		addresses: new(MockAddressRepository),
		products:  new(MockProductRepository),
		payments:  new(MockPaymentRepository),
		lineItems: new(MockLineItemRepository),
		shipments: new(MockShipmentRepository),
	}
}

func (m *MockOrderUoW) AddressRepository() ports.AddressRepository   { return m.addresses }
func (m *MockOrderUoW) ProductRepository() ports.ProductRepository   { return m.products }
func (m *MockOrderUoW) PaymentRepository() ports.PaymentRepository   { return m.payments }
func (m *MockOrderUoW) LineItemRepository() ports.LineItemRepository { return m.lineItems }
func (m *MockOrderUoW) ShipmentRepository() ports.ShipmentRepository { return m.shipments }

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoW struct {
	MockTx
	shipments *MockShipmentRepository
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository { return m.shipments }

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAddressUoW struct {
	MockTx
	addresses *MockAddressRepository
}

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository { return m.addresses }

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateQRCode(ctx context.Context, req ports.QRCodeRequest) (ports.QRCode, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.QRCode), args.Error(1)
}

func (m *MockPaymentGateway) GetPaymentDetails(ctx context.Context, id string) (*ports.PaymentDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentDetails), args.Error(1)
}
