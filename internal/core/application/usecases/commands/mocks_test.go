package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOperationLogRepository struct{ mock.Mock }

func (m *MockOperationLogRepository) Push(ctx context.Context, entry *operation.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOperationLogRepository) List(
	ctx context.Context, limit int,
) ([]*operation.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Entry), args.Error(1)
}

func (m *MockOperationLogRepository) ListByOrder(
	ctx context.Context, orderCode string, limit int,
) ([]*operation.Entry, error) {
	args := m.Called(ctx, orderCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Entry), args.Error(1)
}

type MockFulfillmentUoW struct{ mock.Mock }

func (m *MockFulfillmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) OperationLogRepository() ports.OperationLogRepository {
	args := m.Called()
	return args.Get(0).(ports.OperationLogRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) DeductForShipment(
	ctx context.Context, lines []order.ProductLine,
) (ports.InventorySnapshot, error) {
	args := m.Called(ctx, lines)
	return args.Get(0).(ports.InventorySnapshot), args.Error(1)
}

func (m *MockInventoryLedger) RestoreFromReturn(
	ctx context.Context, lines []order.ProductLine,
) (ports.InventorySnapshot, error) {
	args := m.Called(ctx, lines)
	return args.Get(0).(ports.InventorySnapshot), args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Save(ctx context.Context, s *session.PreparationSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (*session.PreparationSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.PreparationSession), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// makeLines builds fresh product lines for test orders.
func makeLines() []order.ProductLine {
	widget, _ := order.NewProductLine("SKU-1", "Widget", 2)
	gadget, _ := order.NewProductLine("SKU-2", "Gadget", 1)
	return []order.ProductLine{widget, gadget}
}

// makeConfirmedOrder builds a confirmed order with two lines.
func makeConfirmedOrder(code string) *order.Order {
	o, _ := order.NewOrder(kernel.NewUUID(), code, makeLines())
	return o
}

// makePreparedOrder walks an order to Prepared.
func makePreparedOrder(code string) *order.Order {
	o := makeConfirmedOrder(code)
	_ = o.AssignCarrier("DHL", "TRK-1")
	_ = o.PrintLabel()

	scanned := make([]order.ProductLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		for !line.Completed() {
			line, _ = line.Scan()
		}
		scanned = append(scanned, line)
	}
	_ = o.CompletePreparation(scanned)
	return o
}
