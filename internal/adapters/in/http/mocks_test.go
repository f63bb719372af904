package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/address"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockUpdateShipmentStatusHandler struct{ mock.Mock }

func (m *MockUpdateShipmentStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateShipmentStatusCommand,
) (commands.UpdateShipmentStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateShipmentStatusResult), args.Error(1)
}

type MockUpsertAddressHandler struct{ mock.Mock }

func (m *MockUpsertAddressHandler) Handle(ctx context.Context, cmd commands.UpsertAddressCommand) (*address.Address, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

type MockPaymentCallbackHandler struct{ mock.Mock }

func (m *MockPaymentCallbackHandler) Handle(
	ctx context.Context,
	query queries.HandlePaymentCallbackQuery,
) (queries.HandlePaymentCallbackQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.HandlePaymentCallbackQueryResponse), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

type MockGetAddressHandler struct{ mock.Mock }

func (m *MockGetAddressHandler) Handle(ctx context.Context, query queries.GetAddressQuery) (queries.GetAddressQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetAddressQueryResponse), args.Error(1)
}
